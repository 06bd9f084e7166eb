package tlgen

import "github.com/teranos/tlgen/tl"

// SpecialCasedTypes are never emitted; references to them map to native scalars
var SpecialCasedTypes = [...]string{"Bool", "Bytes", "Int32", "Int53", "Int64"}

// builtinTypes are TL's own primitive types. Like the special-cased ones
// they have schema definitions but are never emitted.
var builtinTypes = [...]string{"Double", "String", "Vector"}

// IsSpecialCased reports whether name is one of SpecialCasedTypes
func IsSpecialCased(name string) bool {
	for _, s := range SpecialCasedTypes {
		if s == name {
			return true
		}
	}
	return false
}

func isBuiltin(name string) bool {
	for _, b := range builtinTypes {
		if b == name {
			return true
		}
	}
	return false
}

// neverEmitted reports whether constructors of t are excluded from output
func neverEmitted(t tl.Type) bool {
	if len(t.Namespace) > 0 {
		return false
	}
	return IsSpecialCased(t.Name) || isBuiltin(t.Name)
}
