// Package golang is the Go backend of tlgen. It emits one Go package whose
// records, unions and requests encode to and decode from TDLib JSON through
// the tljson runtime.
package golang

import (
	"bytes"
	"fmt"
	"go/token"

	"golang.org/x/tools/imports"

	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/tlgen"
	"github.com/teranos/tlgen/tlgen/util"
)

// DefaultRuntimeImport is the import path of the wire runtime
const DefaultRuntimeImport = "github.com/teranos/tlgen/tljson"

// Options configure the Go backend
type Options struct {
	// Package is the generated package name; defaults to "tdapi"
	Package string
	// RuntimeImport is the import path of tljson; defaults to DefaultRuntimeImport
	RuntimeImport string
}

// Generator implements tlgen.Backend for Go
type Generator struct {
	pkg     string
	runtime string
}

// New creates a Go backend
func New(opts Options) *Generator {
	g := &Generator{pkg: opts.Package, runtime: opts.RuntimeImport}
	if g.pkg == "" {
		g.pkg = "tdapi"
	}
	if g.runtime == "" {
		g.runtime = DefaultRuntimeImport
	}
	return g
}

// Language returns "go"
func (g *Generator) Language() string {
	return "go"
}

// FileExtension returns "go"
func (g *Generator) FileExtension() string {
	return "go"
}

// Methods every generated record or request may define; fields cannot use them
var reservedFieldNames = map[string]bool{
	"TLType":         true,
	"MarshalJSON":    true,
	"UnmarshalJSON":  true,
	"DecodeResponse": true,
}

// Naming places records, unions, requests and decoders in the package
// namespace and fields in one namespace per owner
func (g *Generator) Naming() tlgen.Naming {
	return tlgen.Naming{
		Namespace: func(scope tlgen.Scope, owner string) string {
			switch scope {
			case tlgen.ScopeField, tlgen.ScopeVariant:
				return scope.String() + ":" + owner
			default:
				return "package"
			}
		},
		Case: func(scope tlgen.Scope, segment string) string {
			if scope == tlgen.ScopeField {
				return util.GoFieldName(segment)
			}
			return util.UpperFirst(segment)
		},
		Qualify: func(scope tlgen.Scope, namespace []string, ident string) string {
			return util.JoinPascal(namespace, ident)
		},
		Reserved: func(scope tlgen.Scope, ident string) bool {
			if token.IsKeyword(ident) || !token.IsExported(ident) {
				return true
			}
			return scope == tlgen.ScopeField && reservedFieldNames[ident]
		},
		Escape: func(scope tlgen.Scope, ident string) string {
			if !token.IsExported(ident) {
				return "X" + ident
			}
			return ident + "_"
		},
		Suffix: func(scope tlgen.Scope) string {
			switch scope {
			case tlgen.ScopeType:
				return "Type"
			case tlgen.ScopeEnum:
				return "Enum"
			case tlgen.ScopeFunction:
				return "Func"
			case tlgen.ScopeHelper:
				return "Decoder"
			default:
				return "_"
			}
		},
	}
}

// DeclareGroup issues the name of the union decoder function
func (g *Generator) DeclareGroup(gen *tlgen.Generation, group *tlgen.VariantGroup) error {
	_, err := gen.Declare(group.Type, "Unmarshal"+gen.EnumIdent(group.Type), tlgen.ScopeHelper, "")
	return err
}

// Render writes a complete Go file holding units, formatted by goimports.
// Unused imports are pruned, so a unit without definitions still compiles.
func (g *Generator) Render(gen *tlgen.Generation, units []tlgen.Unit, split bool) ([]byte, error) {
	var buf bytes.Buffer

	if header := gen.Header(); header != "" {
		buf.WriteString(header)
		buf.WriteString("\n")
	}
	buf.WriteString(tlgen.GeneratedMarker + "\n")
	if v := gen.TDLibVersion(); v != "" {
		fmt.Fprintf(&buf, "// TDLib version: %s\n", v)
	}
	fmt.Fprintf(&buf, "\npackage %s\n\n", g.pkg)
	fmt.Fprintf(&buf, "import (\n\t\"encoding/json\"\n\n\ttljson %q\n)\n", g.runtime)

	e := &emitter{gen: gen, buf: &buf}
	for _, unit := range units {
		switch unit {
		case tlgen.UnitTypes:
			e.writeTypes()
		case tlgen.UnitEnums:
			e.writeEnums()
		case tlgen.UnitFunctions:
			e.writeFunctions()
		default:
			return nil, errors.AssertionFailedf("golang: unknown unit %d", unit)
		}
	}
	if err := gen.Err(); err != nil {
		return nil, err
	}

	name := "tdapi.go"
	if split && len(units) == 1 {
		name = units[0].String() + ".go"
	}
	out, err := imports.Process(name, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "format generated %s", name)
	}
	return out, nil
}
