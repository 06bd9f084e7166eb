package tlgen

// Scalar is a native value type a reference maps to
type Scalar int

const (
	ScalarBool Scalar = iota + 1
	ScalarBytes
	ScalarInt32
	ScalarInt53
	ScalarInt64
	ScalarDouble
	ScalarString
)

func (s Scalar) String() string {
	switch s {
	case ScalarBool:
		return "Bool"
	case ScalarBytes:
		return "Bytes"
	case ScalarInt32:
		return "Int32"
	case ScalarInt53:
		return "Int53"
	case ScalarInt64:
		return "Int64"
	case ScalarDouble:
		return "Double"
	case ScalarString:
		return "String"
	default:
		return "invalid"
	}
}

// scalarOfType maps a boxed type name to its scalar
var scalarOfType = map[string]Scalar{
	"Bool":   ScalarBool,
	"Bytes":  ScalarBytes,
	"Int32":  ScalarInt32,
	"Int53":  ScalarInt53,
	"Int64":  ScalarInt64,
	"Double": ScalarDouble,
	"String": ScalarString,
}

// scalarOfBare maps bare primitive names used when the schema does not
// define them itself
var scalarOfBare = map[string]Scalar{
	"bool":   ScalarBool,
	"bytes":  ScalarBytes,
	"int":    ScalarInt32,
	"int32":  ScalarInt32,
	"int53":  ScalarInt53,
	"long":   ScalarInt64,
	"int64":  ScalarInt64,
	"double": ScalarDouble,
	"string": ScalarString,
}

// RefKind classifies a resolved type reference
type RefKind int

const (
	RefScalar RefKind = iota + 1
	RefVector
	RefEnum   // boxed reference to a union
	RefRecord // bare reference to a single constructor
)

// TypeRef is a schema type reference resolved against the metadata
type TypeRef struct {
	Kind   RefKind
	Scalar Scalar   // RefScalar
	Elem   *TypeRef // RefVector
	Name   string   // RefEnum: union type name; RefRecord: constructor name
}

// HasEnum reports whether decoding the reference needs a union decoder
func (r TypeRef) HasEnum() bool {
	switch r.Kind {
	case RefEnum:
		return true
	case RefVector:
		return r.Elem.HasEnum()
	default:
		return false
	}
}

// Innermost returns the element reference under all vector layers
func (r TypeRef) Innermost() TypeRef {
	for r.Kind == RefVector {
		r = *r.Elem
	}
	return r
}

// Depth returns the number of vector layers
func (r TypeRef) Depth() int {
	n := 0
	for r.Kind == RefVector {
		n++
		r = *r.Elem
	}
	return n
}

func (r TypeRef) String() string {
	switch r.Kind {
	case RefScalar:
		return r.Scalar.String()
	case RefVector:
		return "vector<" + r.Elem.String() + ">"
	case RefEnum, RefRecord:
		return r.Name
	default:
		return "invalid"
	}
}
