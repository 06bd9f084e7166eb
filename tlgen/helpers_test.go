package tlgen

import (
	"fmt"
	"strings"

	"github.com/teranos/tlgen/tl"
	"github.com/teranos/tlgen/tlgen/util"
)

// ctor builds a constructor from TL-like shorthand: ctor("messageText", "MessageContent", "text:string")
func ctor(name, result string, params ...string) tl.Definition {
	return mkdef(tl.CategoryType, name, result, params...)
}

// fn builds a function definition
func fn(name, result string, params ...string) tl.Definition {
	return mkdef(tl.CategoryFunction, name, result, params...)
}

func mkdef(cat tl.Category, name, result string, params ...string) tl.Definition {
	d := tl.Definition{Name: name, Category: cat, Type: mustType(result)}
	for _, p := range params {
		parts := strings.SplitN(p, ":", 2)
		d.Params = append(d.Params, tl.Parameter{Name: parts[0], Type: mustType(parts[1])})
	}
	return d
}

func mustType(s string) tl.Type {
	t, err := tl.ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

// primitives mirrors the scalar definitions at the top of td_api.tl
func primitives() []tl.Definition {
	return []tl.Definition{
		ctor("double", "Double"),
		ctor("string", "String"),
		ctor("int32", "Int32"),
		ctor("int53", "Int53"),
		ctor("int64", "Int64"),
		ctor("bytes", "Bytes"),
		ctor("boolFalse", "Bool"),
		ctor("boolTrue", "Bool"),
		ctor("vector", "Vector", "t:Type"),
	}
}

// fakeBackend lists the issued identifiers, one declaration per line
type fakeBackend struct {
	suffixes map[Scope]string
}

func (b *fakeBackend) Language() string      { return "fake" }
func (b *fakeBackend) FileExtension() string { return "txt" }

func (b *fakeBackend) Naming() Naming {
	return Naming{
		Namespace: func(scope Scope, owner string) string {
			if scope == ScopeField || scope == ScopeVariant {
				return scope.String() + ":" + owner
			}
			return "package"
		},
		Case: func(scope Scope, segment string) string {
			if scope == ScopeField {
				return util.GoFieldName(segment)
			}
			return util.UpperFirst(segment)
		},
		Qualify: func(scope Scope, namespace []string, ident string) string {
			return util.JoinPascal(namespace, ident)
		},
		Reserved: func(scope Scope, ident string) bool {
			return ident == "Reserved"
		},
		Escape: func(scope Scope, ident string) string {
			return ident + "_"
		},
		Suffix: func(scope Scope) string {
			if b.suffixes != nil {
				return b.suffixes[scope]
			}
			return map[Scope]string{ScopeType: "Type", ScopeEnum: "Enum", ScopeFunction: "Func", ScopeHelper: "Decoder"}[scope]
		},
	}
}

func (b *fakeBackend) DeclareGroup(g *Generation, group *VariantGroup) error {
	_, err := g.Declare(group.Type, "Decode"+g.EnumIdent(group.Type), ScopeHelper, "")
	return err
}

func (b *fakeBackend) Render(g *Generation, units []Unit, split bool) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(g.Header())
	for _, unit := range units {
		fmt.Fprintf(&sb, "[%s]\n", unit)
		switch unit {
		case UnitTypes:
			for _, rec := range g.Records() {
				fmt.Fprintf(&sb, "record %s %s%s\n", g.TypeIdent(rec), rec.Name, fieldList(g, rec))
			}
		case UnitEnums:
			for _, group := range g.Groups() {
				fmt.Fprintf(&sb, "enum %s %s %s opaque=%t variants=%d\n", g.EnumIdent(group.Type),
					g.Ident(group.Type, ScopeHelper, ""), group.Type, group.Opaque, len(group.Constructors))
			}
		case UnitFunctions:
			for _, f := range g.Functions() {
				fmt.Fprintf(&sb, "function %s %s -> %s%s\n", g.FunctionIdent(f), f.Name, g.Result(f), fieldList(g, f))
			}
		}
	}
	return []byte(sb.String()), nil
}

func fieldList(g *Generation, def *tl.Definition) string {
	var sb strings.Builder
	for _, f := range g.Fields(def) {
		fmt.Fprintf(&sb, " %s:%s", f.Ident, f.Ref)
	}
	return sb.String()
}
