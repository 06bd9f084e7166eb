package tlgen

import (
	"github.com/teranos/tlgen/tl"
)

// Metadata indexes a schema for the emitters. It is built in a single pass
// and read-only afterwards.
type Metadata struct {
	defs         []tl.Definition
	constructors map[string][]*tl.Definition // result type name -> constructors in schema order
	typeOrder    []string                    // result type names by first appearance
	byName       map[string]*tl.Definition   // constructor name -> constructor
	functions    []*tl.Definition
	diagnostics  Diagnostics
}

// NewMetadata builds the metadata of defs. It never fails; problems are
// recorded as diagnostics and surfaced when generating.
func NewMetadata(defs []tl.Definition) *Metadata {
	m := &Metadata{
		defs:         append([]tl.Definition(nil), defs...),
		constructors: make(map[string][]*tl.Definition),
		byName:       make(map[string]*tl.Definition),
	}

	for i := range m.defs {
		def := &m.defs[i]
		switch def.Category {
		case tl.CategoryType:
			name := def.Type.FullName()
			if _, seen := m.constructors[name]; !seen {
				m.typeOrder = append(m.typeOrder, name)
			}
			m.constructors[name] = append(m.constructors[name], def)
			if prev, dup := m.byName[def.Name]; dup {
				m.diagnostics.add(SeverityError, CodeDuplicate, def.Name,
					"constructor is defined twice (results %s and %s)", prev.Type.FullName(), name)
				continue
			}
			m.byName[def.Name] = def
		case tl.CategoryFunction:
			m.functions = append(m.functions, def)
		}
	}

	for _, fn := range m.functions {
		if _, ok := m.ResultRef(fn); !ok {
			m.diagnostics.add(SeverityWarning, CodeDanglingResult, fn.Name,
				"result type %s has no constructors", fn.Type)
		}
	}

	return m
}

// Definitions returns the schema in its original order
func (m *Metadata) Definitions() []tl.Definition {
	return m.defs
}

// Constructors returns the constructors of a result type in schema order
func (m *Metadata) Constructors(typeName string) []*tl.Definition {
	return m.constructors[typeName]
}

// Constructor looks up a constructor by its full name
func (m *Metadata) Constructor(name string) (*tl.Definition, bool) {
	def, ok := m.byName[name]
	return def, ok
}

// TypeNames returns result type names in order of first appearance
func (m *Metadata) TypeNames() []string {
	return m.typeOrder
}

// Functions returns the function definitions in schema order
func (m *Metadata) Functions() []*tl.Definition {
	return m.functions
}

// Emitted reports whether a union is generated for the result type name
func (m *Metadata) Emitted(typeName string) bool {
	ctors := m.constructors[typeName]
	return len(ctors) > 0 && !neverEmitted(ctors[0].Type)
}

// Diagnostics returns what was found while indexing
func (m *Metadata) Diagnostics() Diagnostics {
	return m.diagnostics
}

// Ref resolves a parameter or result type reference. It reports false when
// the reference names nothing the generator can map.
func (m *Metadata) Ref(t tl.Type) (TypeRef, bool) {
	if t.IsVector() {
		elem, ok := m.Ref(*t.GenericArg)
		if !ok {
			return TypeRef{}, false
		}
		return TypeRef{Kind: RefVector, Elem: &elem}, true
	}

	name := t.FullName()
	if t.Bare {
		if ctor, ok := m.byName[name]; ok {
			if neverEmitted(ctor.Type) {
				if s, ok := scalarOfType[ctor.Type.Name]; ok {
					return TypeRef{Kind: RefScalar, Scalar: s}, true
				}
				return TypeRef{}, false
			}
			return TypeRef{Kind: RefRecord, Name: name}, true
		}
		if s, ok := scalarOfBare[name]; ok {
			return TypeRef{Kind: RefScalar, Scalar: s}, true
		}
		// %T is the bare form of boxed type T
		if len(m.constructors[name]) == 1 && !neverEmitted(t) {
			return TypeRef{Kind: RefRecord, Name: m.constructors[name][0].Name}, true
		}
	}

	if len(t.Namespace) == 0 {
		if s, ok := scalarOfType[t.Name]; ok {
			return TypeRef{Kind: RefScalar, Scalar: s}, true
		}
	}
	if m.Emitted(name) {
		return TypeRef{Kind: RefEnum, Name: name}, true
	}
	return TypeRef{}, false
}

// ResultRef resolves the result type of a function
func (m *Metadata) ResultRef(fn *tl.Definition) (TypeRef, bool) {
	return m.Ref(fn.Type)
}
