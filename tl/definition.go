package tl

import (
	"strconv"
	"strings"

	"github.com/teranos/tlgen/errors"
)

// Parameter is one named argument of a definition
type Parameter struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Type        Type   `json:"type" yaml:"type" toml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// Nullable reports whether the documentation allows the value to be absent.
// TDLib documents optional parameters with "may be null" or "pass null".
func (p Parameter) Nullable() bool {
	d := strings.ToLower(p.Description)
	return strings.Contains(d, "may be null") || strings.Contains(d, "pass null")
}

// Definition is a constructor or a function of the schema. Name is the full
// namespaced name, e.g. "auth.sendCode".
type Definition struct {
	Name        string      `json:"name" yaml:"name" toml:"name"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Params      []Parameter `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`
	Type        Type        `json:"type" yaml:"type" toml:"type"`
	Category    Category    `json:"category" yaml:"category" toml:"category"`
}

// Namespace returns the namespace segments of the definition name
func (d Definition) Namespace() []string {
	parts := strings.Split(d.Name, ".")
	return parts[:len(parts)-1]
}

// ShortName returns the last segment of the definition name
func (d Definition) ShortName() string {
	return d.Name[strings.LastIndex(d.Name, ".")+1:]
}

// Schema is a serialized schema document
type Schema struct {
	// TDLibVersion is the TDLib release the definitions were taken from
	TDLibVersion string       `json:"tdlib_version,omitempty" yaml:"tdlib_version,omitempty" toml:"tdlib_version,omitempty"`
	Definitions  []Definition `json:"definitions" yaml:"definitions" toml:"definitions"`
}

// Validate checks that every definition is well formed. It does not check
// cross references; that happens during generation.
func Validate(defs []Definition) error {
	for i, d := range defs {
		if err := validateDefinition(d); err != nil {
			name := d.Name
			if name == "" {
				name = "#" + strconv.Itoa(i)
			}
			return errors.Mark(errors.Wrapf(err, "definition %s", name), errors.ErrInvalidSchema)
		}
	}
	return nil
}

func validateDefinition(d Definition) error {
	for _, seg := range strings.Split(d.Name, ".") {
		if !isIdent(seg) {
			return errors.Newf("invalid name %q", d.Name)
		}
	}
	if d.Category != CategoryType && d.Category != CategoryFunction {
		return errors.New("missing or invalid category")
	}
	// The builtin constructor "vector {t:Type} # [ t ] = Vector t" declares
	// the bare generic type; only references to it need an argument.
	if !(d.Category == CategoryType && isVector(d.Type) && d.Type.GenericArg == nil) {
		if err := validateType(d.Type); err != nil {
			return errors.Wrap(err, "result type")
		}
	}

	seen := make(map[string]bool, len(d.Params))
	for _, p := range d.Params {
		if !isIdent(p.Name) {
			return errors.Newf("invalid parameter name %q", p.Name)
		}
		if seen[p.Name] {
			return errors.Newf("duplicate parameter %q", p.Name)
		}
		seen[p.Name] = true
		if err := validateType(p.Type); err != nil {
			return errors.Wrapf(err, "parameter %s", p.Name)
		}
	}
	return nil
}

func isVector(t Type) bool {
	return (t.Name == "vector" || t.Name == "Vector") && len(t.Namespace) == 0
}

func validateType(t Type) error {
	if !isIdent(t.Name) {
		return errors.Newf("invalid type name %q", t.Name)
	}
	for _, seg := range t.Namespace {
		if !isIdent(seg) {
			return errors.Newf("invalid namespace %q in %s", seg, t.FullName())
		}
	}
	if isVector(t) && t.GenericArg == nil {
		return errors.Newf("%s requires a generic argument", t.Name)
	}
	if t.GenericArg != nil {
		return validateType(*t.GenericArg)
	}
	return nil
}
