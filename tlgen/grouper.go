package tlgen

import "github.com/teranos/tlgen/tl"

// VariantGroup is one abstract type and the constructors producing it
type VariantGroup struct {
	// Type is the full result type name, e.g. "MessageContent"
	Type string
	// Constructors in schema order
	Constructors []*tl.Definition
	// Opaque groups have no constructors; they stand in for function
	// results the schema never defines
	Opaque bool
}

// Group partitions the Type-category definitions into variant groups.
// Groups are ordered by first appearance of their result type and keep
// constructors in schema order; special-cased and builtin types are dropped.
func Group(defs []tl.Definition) []*VariantGroup {
	return NewMetadata(defs).Groups()
}

// Groups returns the variant groups of the indexed schema
func (m *Metadata) Groups() []*VariantGroup {
	groups := make([]*VariantGroup, 0, len(m.typeOrder))
	for _, name := range m.typeOrder {
		if !m.Emitted(name) {
			continue
		}
		groups = append(groups, &VariantGroup{
			Type:         name,
			Constructors: m.constructors[name],
		})
	}
	return groups
}
