// Package rust is the Rust backend of tlgen. It emits serde-annotated
// `types`, `enums` and `functions` modules.
//
// Only enums and functions carry the "@type" tag. Structs in `types` are
// untagged because every variant of an internally tagged enum wraps one and
// a struct-level tag would emit the key twice. A struct serialized on its
// own, as a bare constructor field, therefore has no "@type" key.
package rust

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/tl"
	"github.com/teranos/tlgen/tlgen"
	"github.com/teranos/tlgen/tlgen/util"
)

// Options configure the Rust backend
type Options struct {
	// Runtime is the path of the crate module providing `RemoteFunction`
	// and the `int64` serde helpers; defaults to "crate"
	Runtime string
}

// Generator implements tlgen.Backend for Rust
type Generator struct {
	runtime string
}

// New creates a Rust backend
func New(opts Options) *Generator {
	rt := opts.Runtime
	if rt == "" {
		rt = "crate"
	}
	return &Generator{runtime: rt}
}

// Language returns "rust"
func (g *Generator) Language() string {
	return "rust"
}

// FileExtension returns "rs"
func (g *Generator) FileExtension() string {
	return "rs"
}

// Rust keywords that need raw identifier prefix (r#)
var rustKeywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true, "yield": true,
	"abstract": true, "become": true, "box": true, "do": true, "final": true,
	"macro": true, "override": true, "priv": true, "try": true, "typeof": true,
	"unsized": true, "virtual": true,
}

// Keywords that cannot be raw identifiers
var unrawable = map[string]bool{"self": true, "Self": true, "super": true, "crate": true}

// toRustIdent converts an identifier to a valid Rust identifier.
// Adds r# prefix for Rust keywords, or a trailing underscore for the
// keywords r# does not accept.
func toRustIdent(s string) string {
	if !rustKeywords[s] {
		return s
	}
	if unrawable[s] {
		return s + "_"
	}
	return "r#" + s
}

// Naming gives each module its own namespace, and fields and variants one
// namespace per owner
func (g *Generator) Naming() tlgen.Naming {
	return tlgen.Naming{
		Namespace: func(scope tlgen.Scope, owner string) string {
			switch scope {
			case tlgen.ScopeField, tlgen.ScopeVariant:
				return scope.String() + ":" + owner
			default:
				return scope.String()
			}
		},
		Case: func(scope tlgen.Scope, segment string) string {
			if scope == tlgen.ScopeField {
				return util.ToSnakeCase(segment)
			}
			return util.ToPascalCase(segment)
		},
		Qualify: func(scope tlgen.Scope, namespace []string, ident string) string {
			if scope == tlgen.ScopeField {
				return util.JoinSnake(namespace, ident)
			}
			return util.JoinPascal(namespace, ident)
		},
		Reserved: func(scope tlgen.Scope, ident string) bool {
			return rustKeywords[ident]
		},
		Escape: func(scope tlgen.Scope, ident string) string {
			return toRustIdent(ident)
		},
		Suffix: func(scope tlgen.Scope) string {
			switch scope {
			case tlgen.ScopeType:
				return "Type"
			case tlgen.ScopeEnum:
				return "Enum"
			case tlgen.ScopeFunction:
				return "Function"
			case tlgen.ScopeVariant:
				return "Variant"
			default:
				return "_"
			}
		},
	}
}

// DeclareGroup names the variants of a union. The union name is stripped
// from the front of each constructor name ("ChatTypePrivate" in "ChatType"
// becomes "Private") unless nothing or no word would remain.
func (g *Generator) DeclareGroup(gen *tlgen.Generation, group *tlgen.VariantGroup) error {
	enum := gen.EnumIdent(group.Type)
	for _, ctor := range group.Constructors {
		base := variantName(enum, util.ToPascalCase(ctor.ShortName()))
		if _, err := gen.Declare(ctor.Name, base, tlgen.ScopeVariant, group.Type); err != nil {
			return err
		}
	}
	return nil
}

func variantName(enum, ctor string) string {
	if !strings.HasPrefix(ctor, enum) {
		return ctor
	}
	rest := ctor[len(enum):]
	r, _ := utf8.DecodeRuneInString(rest)
	if rest == "" || !unicode.IsUpper(r) {
		return ctor
	}
	return rest
}

// Render writes the requested modules. A single file wraps each unit in
// `pub mod <unit>`; split files hold the module body only.
func (g *Generator) Render(gen *tlgen.Generation, units []tlgen.Unit, split bool) ([]byte, error) {
	var sb strings.Builder

	if header := gen.Header(); header != "" {
		sb.WriteString(header)
		sb.WriteString("\n")
	}
	sb.WriteString(tlgen.GeneratedMarker + "\n")
	if v := gen.TDLibVersion(); v != "" {
		sb.WriteString(fmt.Sprintf("// TDLib version: %s\n", v))
	}

	for _, unit := range units {
		w := &writer{gen: gen, runtime: g.runtime, sb: &sb}
		if !split {
			sb.WriteString(fmt.Sprintf("\npub mod %s {\n", unit))
			w.indent = "    "
		}

		switch unit {
		case tlgen.UnitTypes:
			w.writeTypes()
		case tlgen.UnitEnums:
			w.writeEnums()
		case tlgen.UnitFunctions:
			w.writeFunctions()
		default:
			return nil, errors.AssertionFailedf("rust: unknown unit %d", unit)
		}

		if !split {
			sb.WriteString("}\n")
		}
	}

	if err := gen.Err(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

const derive = "#[derive(Clone, Debug, PartialEq, ::serde::Serialize, ::serde::Deserialize)]"

// writer emits one module body
type writer struct {
	gen     *tlgen.Generation
	runtime string
	sb      *strings.Builder
	indent  string
}

func (w *writer) line(format string, args ...interface{}) {
	if format == "" {
		w.sb.WriteString("\n")
		return
	}
	w.sb.WriteString(w.indent)
	w.sb.WriteString(fmt.Sprintf(format, args...))
	w.sb.WriteString("\n")
}

func (w *writer) doc(extra, desc string) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return
	}
	for _, l := range strings.Split(desc, "\n") {
		l = strings.TrimRight(l, " \t")
		if l == "" {
			w.line("%s///", extra)
			continue
		}
		w.line("%s/// %s", extra, l)
	}
}

func (w *writer) writeTypes() {
	for _, rec := range w.gen.Records() {
		w.line("")
		w.doc("", rec.Description)
		w.line("%s", derive)
		w.writeStruct(rec, w.gen.TypeIdent(rec))
	}
}

func (w *writer) writeEnums() {
	for _, group := range w.gen.Groups() {
		w.line("")
		if group.Opaque {
			w.line("/// Result of requests whose type the schema does not define. It has no variants.")
		}
		w.line("%s", derive)
		w.line(`#[serde(tag = "@type")]`)
		w.line("pub enum %s {", w.gen.EnumIdent(group.Type))
		for _, ctor := range group.Constructors {
			w.doc("    ", ctor.Description)
			w.line(`    #[serde(rename = "%s")]`, ctor.Name)
			w.line("    %s(::std::boxed::Box<super::types::%s>),",
				w.gen.Ident(ctor.Name, tlgen.ScopeVariant, group.Type), w.gen.TypeIdent(ctor))
		}
		w.line("}")
	}
}

func (w *writer) writeFunctions() {
	for _, fn := range w.gen.Functions() {
		ident := w.gen.FunctionIdent(fn)
		w.line("")
		w.doc("", fn.Description)
		w.line("%s", derive)
		w.line(`#[serde(tag = "@type", rename = "%s")]`, fn.Name)
		w.writeStruct(fn, ident)
		w.line("")
		w.line("impl %s::RemoteFunction for %s {", w.runtime, ident)
		w.line("    type Response = %s;", w.rustType(w.gen.Result(fn), false))
		w.line("}")
	}
}

func (w *writer) writeStruct(def *tl.Definition, ident string) {
	fields := w.gen.Fields(def)
	if len(fields) == 0 {
		w.line("pub struct %s {}", ident)
		return
	}

	w.line("pub struct %s {", ident)
	for _, f := range fields {
		w.doc("    ", f.Param.Description)
		if strings.TrimPrefix(f.Ident, "r#") != f.Param.Name {
			w.line(`    #[serde(rename = "%s")]`, f.Param.Name)
		}
		nullable := f.Param.Nullable()
		if helper := w.int64Helper(f.Ref, nullable); helper != "" {
			w.line(`    #[serde(with = "%s")]`, helper)
		}
		if nullable {
			w.line("    #[serde(default)]")
		}
		typ := w.rustType(f.Ref, true)
		if nullable {
			typ = "::std::option::Option<" + typ + ">"
		}
		w.line("    pub %s: %s,", f.Ident, typ)
	}
	w.line("}")
}

// rustType maps a reference; bare record references outside a Vec are boxed
// so that recursive records have a finite size
func (w *writer) rustType(ref tlgen.TypeRef, boxRecords bool) string {
	switch ref.Kind {
	case tlgen.RefScalar:
		return scalarTypes[ref.Scalar]
	case tlgen.RefVector:
		return "::std::vec::Vec<" + w.rustType(*ref.Elem, false) + ">"
	case tlgen.RefEnum:
		return "super::enums::" + w.gen.EnumIdent(ref.Name)
	case tlgen.RefRecord:
		ctor, ok := w.gen.Metadata().Constructor(ref.Name)
		if !ok {
			w.gen.Fail(errors.AssertionFailedf("rust: unknown constructor %s", ref.Name))
			return ref.Name
		}
		path := "super::types::" + w.gen.TypeIdent(ctor)
		if boxRecords {
			return "::std::boxed::Box<" + path + ">"
		}
		return path
	default:
		w.gen.Fail(errors.AssertionFailedf("rust: invalid type reference %v", ref))
		return "()"
	}
}

// int64Helper names the serde module carrying Int64 values as strings:
// int64, int64_vec, int64_vec_vec, ... with an _opt suffix when nullable
func (w *writer) int64Helper(ref tlgen.TypeRef, nullable bool) string {
	inner := ref.Innermost()
	if inner.Kind != tlgen.RefScalar || inner.Scalar != tlgen.ScalarInt64 {
		return ""
	}
	name := "int64" + strings.Repeat("_vec", ref.Depth())
	if nullable {
		name += "_opt"
	}
	return w.runtime + "::" + name
}

// scalarTypes maps special-cased and builtin types to Rust types.
// Bytes stay base64 text on the Rust side.
var scalarTypes = map[tlgen.Scalar]string{
	tlgen.ScalarBool:   "bool",
	tlgen.ScalarBytes:  "::std::string::String",
	tlgen.ScalarInt32:  "i32",
	tlgen.ScalarInt53:  "i64",
	tlgen.ScalarInt64:  "i64",
	tlgen.ScalarDouble: "f64",
	tlgen.ScalarString: "::std::string::String",
}
