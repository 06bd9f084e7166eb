package golang

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/teranos/tlgen/tl"
	"github.com/teranos/tlgen/tlgen"
)

// emitter writes Go source into buf. gofmt runs afterwards, so indentation
// only needs to be syntactically valid.
type emitter struct {
	gen *tlgen.Generation
	buf *bytes.Buffer
}

func (e *emitter) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.buf, format, args...)
}

// writeDoc writes a description as a doc comment
func (e *emitter) writeDoc(desc string) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return
	}
	for _, line := range strings.Split(desc, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			e.printf("//\n")
			continue
		}
		e.printf("// %s\n", line)
	}
}

// writeRecord emits the struct of a constructor or request with its TLType,
// MarshalJSON and, when a field needs a union decoder, UnmarshalJSON
func (e *emitter) writeRecord(def *tl.Definition, ident string) {
	fields := e.gen.Fields(def)

	e.printf("\n")
	e.writeDoc(def.Description)
	e.printf("type %s struct {\n", ident)
	for _, f := range fields {
		e.writeDoc(f.Param.Description)
		e.printf("%s %s `json:%q`\n", f.Ident, e.goType(f.Ref), f.Param.Name)
	}
	e.printf("}\n\n")

	e.printf("// TLType returns the wire tag of %s\n", ident)
	e.printf("func (*%s) TLType() string { return %q }\n\n", ident, def.Name)

	e.printf("// MarshalJSON encodes %s with its \"@type\" tag\n", ident)
	e.printf("func (v %s) MarshalJSON() ([]byte, error) {\n", ident)
	e.printf("type stub %s\n", ident)
	e.printf("return tljson.MarshalTagged(%q, stub(v))\n", def.Name)
	e.printf("}\n")

	var unionFields []tlgen.Field
	for _, f := range fields {
		if f.Ref.HasEnum() {
			unionFields = append(unionFields, f)
		}
	}
	if len(unionFields) == 0 {
		return
	}

	e.printf("\n// UnmarshalJSON decodes %s, resolving union fields by their \"@type\"\n", ident)
	e.printf("func (v *%s) UnmarshalJSON(data []byte) error {\n", ident)
	e.printf("type stub %s\n", ident)
	e.printf("var raw struct {\n*stub\n")
	for _, f := range unionFields {
		e.printf("%s %s `json:%q`\n", f.Ident, rawType(f.Ref), f.Param.Name)
	}
	e.printf("}\n")
	e.printf("raw.stub = (*stub)(v)\n")
	e.printf("if err := json.Unmarshal(data, &raw); err != nil {\nreturn err\n}\n")
	e.printf("var err error\n")
	for _, f := range unionFields {
		e.printf("if v.%s, err = %s; err != nil {\n", f.Ident, e.decodeExpr(f.Ref, "raw."+f.Ident, 0))
		e.printf("return tljson.WrapField(%q, %q, err)\n}\n", def.Name, f.Param.Name)
	}
	e.printf("return nil\n}\n")
}

// writeTypes emits one record per constructor in group order
func (e *emitter) writeTypes() {
	for _, rec := range e.gen.Records() {
		e.writeRecord(rec, e.gen.TypeIdent(rec))
	}
}

// writeEnums emits one union per variant group: the interface, the marker
// method of every variant and the decoder dispatching on "@type"
func (e *emitter) writeEnums() {
	for _, group := range e.gen.Groups() {
		ident := e.gen.EnumIdent(group.Type)
		marker := "is" + ident

		e.printf("\n")
		if group.Opaque {
			e.printf("// %s is the result of requests whose type the schema does not define.\n", ident)
			e.printf("// It has no variants; decoding always fails with tljson.ErrUnrecognizedVariant.\n")
		} else {
			names := make([]string, len(group.Constructors))
			for i, ctor := range group.Constructors {
				names[i] = e.gen.TypeIdent(ctor)
			}
			e.printf("// %s is one of: %s\n", ident, strings.Join(names, ", "))
		}
		e.printf("type %s interface {\ntljson.Object\n%s()\n}\n\n", ident, marker)

		for _, ctor := range group.Constructors {
			e.printf("func (*%s) %s() {}\n", e.gen.TypeIdent(ctor), marker)
		}

		decoder := e.decoderIdent(group.Type)
		e.printf("\n// %s decodes a %s by its \"@type\" tag. JSON null decodes to nil.\n", decoder, ident)
		e.printf("func %s(data json.RawMessage) (%s, error) {\n", decoder, ident)
		e.printf("if tljson.IsNull(data) {\nreturn nil, nil\n}\n")
		e.printf("tag, err := tljson.PeekType(data)\nif err != nil {\nreturn nil, err\n}\n")
		e.printf("switch tag {\n")
		for _, ctor := range group.Constructors {
			e.printf("case %q:\n", ctor.Name)
			e.printf("v := new(%s)\n", e.gen.TypeIdent(ctor))
			e.printf("if err := json.Unmarshal(data, v); err != nil {\nreturn nil, err\n}\n")
			e.printf("return v, nil\n")
		}
		e.printf("default:\nreturn nil, tljson.UnrecognizedVariant(%q, tag)\n}\n}\n", group.Type)
	}
}

// writeFunctions emits one request per function: a record plus
// DecodeResponse, which ties the request to its response type
func (e *emitter) writeFunctions() {
	for _, fn := range e.gen.Functions() {
		ident := e.gen.FunctionIdent(fn)
		e.writeRecord(fn, ident)

		result := e.gen.Result(fn)
		resultType := e.goType(result)
		e.printf("\n// DecodeResponse decodes the %s answering %s\n", resultType, ident)
		e.printf("func (*%s) DecodeResponse(data json.RawMessage) (%s, error) {\n", ident, resultType)
		switch {
		case result.Kind == tlgen.RefEnum:
			e.printf("return %s(data)\n", e.decoderIdent(result.Name))
		case result.HasEnum():
			e.printf("var raw %s\n", rawType(result))
			e.printf("if err := json.Unmarshal(data, &raw); err != nil {\nreturn nil, err\n}\n")
			e.printf("return %s\n", e.decodeExpr(result, "raw", 0))
		default:
			e.printf("return tljson.DecodeValue[%s](data)\n", resultType)
		}
		e.printf("}\n")
	}
}
