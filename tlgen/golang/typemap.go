package golang

import (
	"fmt"

	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/tlgen"
)

// scalarTypes maps special-cased and builtin types to Go types
var scalarTypes = map[tlgen.Scalar]string{
	tlgen.ScalarBool:   "bool",
	tlgen.ScalarBytes:  "[]byte",
	tlgen.ScalarInt32:  "int32",
	tlgen.ScalarInt53:  "int64",
	tlgen.ScalarInt64:  "tljson.Int64",
	tlgen.ScalarDouble: "float64",
	tlgen.ScalarString: "string",
}

// goType returns the Go type of a field or result
func (e *emitter) goType(ref tlgen.TypeRef) string {
	switch ref.Kind {
	case tlgen.RefScalar:
		return scalarTypes[ref.Scalar]
	case tlgen.RefVector:
		return "[]" + e.goType(*ref.Elem)
	case tlgen.RefEnum:
		return e.gen.EnumIdent(ref.Name)
	case tlgen.RefRecord:
		ctor, ok := e.gen.Metadata().Constructor(ref.Name)
		if !ok {
			e.gen.Fail(errors.AssertionFailedf("golang: unknown constructor %s", ref.Name))
			return ref.Name
		}
		return "*" + e.gen.TypeIdent(ctor)
	default:
		e.gen.Fail(errors.AssertionFailedf("golang: invalid type reference %v", ref))
		return "invalid"
	}
}

// rawType is the type a union-bearing value is first decoded into
func rawType(ref tlgen.TypeRef) string {
	if ref.Kind == tlgen.RefVector {
		return "[]" + rawType(*ref.Elem)
	}
	return "json.RawMessage"
}

// decoderIdent returns the decoder function of a union
func (e *emitter) decoderIdent(typeName string) string {
	return e.gen.Ident(typeName, tlgen.ScopeHelper, "")
}

// decodeExpr returns an expression of type (goType(ref), error) decoding
// src, which holds rawType(ref). Only valid when ref.HasEnum().
func (e *emitter) decodeExpr(ref tlgen.TypeRef, src string, depth int) string {
	if ref.Kind == tlgen.RefEnum {
		return fmt.Sprintf("%s(%s)", e.decoderIdent(ref.Name), src)
	}

	elem := *ref.Elem
	if elem.Kind == tlgen.RefEnum {
		return fmt.Sprintf("tljson.DecodeSlice(%s, %s)", src, e.decoderIdent(elem.Name))
	}
	param := fmt.Sprintf("r%d", depth)
	return fmt.Sprintf("tljson.DecodeSlice(%s, func(%s %s) (%s, error) {\nreturn %s\n})",
		src, param, rawType(elem), e.goType(elem), e.decodeExpr(elem, param, depth+1))
}
