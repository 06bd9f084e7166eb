package tlgen

import (
	"strings"

	"github.com/teranos/tlgen/errors"
)

// Scope is the syntactic role of a generated identifier
type Scope int

const (
	ScopeType     Scope = iota + 1 // records
	ScopeEnum                      // unions
	ScopeVariant                   // union variants, owned by a union
	ScopeField                     // record and request fields, owned by a definition
	ScopeFunction                  // requests
	ScopeHelper                    // target-derived names such as union decoders
)

func (s Scope) String() string {
	switch s {
	case ScopeType:
		return "type"
	case ScopeEnum:
		return "enum"
	case ScopeVariant:
		return "variant"
	case ScopeField:
		return "field"
	case ScopeFunction:
		return "function"
	case ScopeHelper:
		return "helper"
	default:
		return "invalid"
	}
}

// Naming holds the target-language rules the resolver applies
type Naming struct {
	// Namespace returns the key of the identifier namespace of (scope, owner).
	// Scopes returning the same key compete for the same identifiers.
	Namespace func(scope Scope, owner string) string
	// Case converts one schema name segment for the scope
	Case func(scope Scope, segment string) string
	// Qualify prefixes an identifier with the schema namespace path
	Qualify func(scope Scope, namespace []string, ident string) string
	// Reserved reports identifiers that cannot be used as-is
	Reserved func(scope Scope, ident string) bool
	// Escape turns a reserved identifier into a usable one
	Escape func(scope Scope, ident string) string
	// Suffix is appended as the last disambiguation step
	Suffix func(scope Scope) string
}

type resolveKey struct {
	scope Scope
	owner string
	raw   string
}

// Resolver issues collision-free identifiers. It is stateful and owned by
// a single generation run.
type Resolver struct {
	naming Naming
	cache  map[resolveKey]string
	issued map[string]map[string]string // namespace -> identifier -> raw name holding it
}

// NewResolver creates a resolver applying naming
func NewResolver(naming Naming) *Resolver {
	return &Resolver{
		naming: naming,
		cache:  make(map[resolveKey]string),
		issued: make(map[string]map[string]string),
	}
}

// Resolve returns the identifier of a schema name in scope. The same
// (raw, scope, owner) always yields the same identifier.
func (r *Resolver) Resolve(raw string, scope Scope, owner string) (string, error) {
	segments := strings.Split(raw, ".")
	base := r.naming.Case(scope, segments[len(segments)-1])
	return r.Derive(raw, base, scope, owner)
}

// Derive is Resolve with a caller-computed base identifier, for names that
// are derived from other identifiers rather than cased from the schema name.
func (r *Resolver) Derive(raw, base string, scope Scope, owner string) (string, error) {
	key := resolveKey{scope: scope, owner: owner, raw: raw}
	if ident, ok := r.cache[key]; ok {
		return ident, nil
	}

	ns := r.naming.Namespace(scope, owner)
	taken := r.issued[ns]
	if taken == nil {
		taken = make(map[string]string)
		r.issued[ns] = taken
	}

	candidates := r.candidates(raw, base, scope)
	for _, ident := range candidates {
		if _, used := taken[ident]; !used {
			taken[ident] = raw
			r.cache[key] = ident
			return ident, nil
		}
	}

	first := candidates[0]
	return "", errors.WithHint(
		errors.Mark(
			errors.Newf("identifier collision in %s scope: %q and %q both resolve to %s",
				scope, taken[first], raw, first),
			errors.ErrIdentifierCollision),
		"rename one of the definitions in the schema")
}

// candidates lists the identifiers to try in order: the cased name, the
// namespace-qualified name, then the suffixed name
func (r *Resolver) candidates(raw, base string, scope Scope) []string {
	segments := strings.Split(raw, ".")
	namespace := segments[:len(segments)-1]

	out := []string{r.escape(scope, base)}
	best := base
	if len(namespace) > 0 {
		best = r.naming.Qualify(scope, namespace, base)
		out = append(out, r.escape(scope, best))
	}
	if suffix := r.naming.Suffix(scope); suffix != "" {
		out = append(out, r.escape(scope, best+suffix))
	}
	return out
}

func (r *Resolver) escape(scope Scope, ident string) string {
	if r.naming.Reserved(scope, ident) {
		return r.naming.Escape(scope, ident)
	}
	return ident
}

// Lookup returns a previously issued identifier
func (r *Resolver) Lookup(raw string, scope Scope, owner string) (string, bool) {
	ident, ok := r.cache[resolveKey{scope: scope, owner: owner, raw: raw}]
	return ident, ok
}

// Issued returns the number of identifiers issued in scope's namespace
func (r *Resolver) Issued(scope Scope, owner string) int {
	return len(r.issued[r.naming.Namespace(scope, owner)])
}
