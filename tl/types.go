// Package tl models the parsed form of a TL schema: definitions, their
// parameters and the type references between them.
//
// Parsing .tl grammar is out of scope; schemas arrive already parsed and
// serialized as JSON, YAML or TOML (see Load).
package tl

import (
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/teranos/tlgen/errors"
)

// Category tells constructors apart from functions
type Category int

const (
	CategoryType Category = iota + 1
	CategoryFunction
)

func (c Category) String() string {
	switch c {
	case CategoryType:
		return "type"
	case CategoryFunction:
		return "function"
	default:
		return "unknown"
	}
}

// MarshalText encodes the category as "type" or "function"
func (c Category) MarshalText() ([]byte, error) {
	if c != CategoryType && c != CategoryFunction {
		return nil, errors.Newf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText accepts "type"/"types" and "function"/"functions"
func (c *Category) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "type", "types":
		*c = CategoryType
	case "function", "functions":
		*c = CategoryFunction
	default:
		return errors.Newf("unknown category %q", string(text))
	}
	return nil
}

// Type is a reference to a type, e.g. `Message`, `auth.SentCode`,
// `vector<int53>` or the bare constructor reference `chatPosition`.
type Type struct {
	Namespace  []string `json:"namespace,omitempty" yaml:"namespace,omitempty" toml:"namespace,omitempty"`
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Bare       bool     `json:"bare,omitempty" yaml:"bare,omitempty" toml:"bare,omitempty"`
	GenericArg *Type    `json:"generic_arg,omitempty" yaml:"generic_arg,omitempty" toml:"generic_arg,omitempty"`
}

// FullName returns the namespaced name without generic arguments
func (t Type) FullName() string {
	if len(t.Namespace) == 0 {
		return t.Name
	}
	return strings.Join(t.Namespace, ".") + "." + t.Name
}

// String renders the shorthand form accepted by ParseType
func (t Type) String() string {
	s := t.FullName()
	if t.Bare && !startsLower(t.Name) {
		s = "%" + s
	}
	if t.GenericArg != nil {
		s += "<" + t.GenericArg.String() + ">"
	}
	return s
}

// IsVector reports whether t is `vector<T>` or `Vector<T>`
func (t Type) IsVector() bool {
	return len(t.Namespace) == 0 && t.GenericArg != nil &&
		(t.Name == "vector" || t.Name == "Vector")
}

// ParseType parses the shorthand form of a type reference.
//
// Grammar: ['%'] ident ('.' ident)* ['<' type '>']. A leading '%' or a
// lowercase first letter in the last segment marks a bare type.
func ParseType(s string) (Type, error) {
	t, rest, err := parseType(strings.TrimSpace(s))
	if err != nil {
		return Type{}, errors.Wrapf(err, "parse type %q", s)
	}
	if rest != "" {
		return Type{}, errors.Newf("parse type %q: unexpected %q", s, rest)
	}
	return t, nil
}

func parseType(s string) (Type, string, error) {
	var t Type
	if strings.HasPrefix(s, "%") {
		t.Bare = true
		s = s[1:]
	}

	end := strings.IndexAny(s, "<>")
	if end < 0 {
		end = len(s)
	}
	path := strings.TrimSpace(s[:end])
	rest := s[end:]
	if path == "" {
		return Type{}, "", errors.New("missing type name")
	}

	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if !isIdent(seg) {
			return Type{}, "", errors.Newf("invalid identifier %q", seg)
		}
	}
	t.Name = segments[len(segments)-1]
	if len(segments) > 1 {
		t.Namespace = segments[:len(segments)-1]
	}
	if startsLower(t.Name) {
		t.Bare = true
	}

	if strings.HasPrefix(rest, "<") {
		arg, after, err := parseType(strings.TrimSpace(rest[1:]))
		if err != nil {
			return Type{}, "", err
		}
		after = strings.TrimSpace(after)
		if !strings.HasPrefix(after, ">") {
			return Type{}, "", errors.Newf("unterminated generic argument of %s", path)
		}
		t.GenericArg = &arg
		rest = after[1:]
	}

	return t, strings.TrimSpace(rest), nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

func startsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLower(r)
}

// typeFields has the same layout as Type without its decoding methods
type typeFields Type

// UnmarshalJSON accepts the structured object form or the shorthand string
func (t *Type) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return t.UnmarshalText([]byte(s))
	}
	var f typeFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*t = Type(f)
	return nil
}

// UnmarshalYAML accepts a mapping or a scalar shorthand
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return t.UnmarshalText([]byte(node.Value))
	}
	var f typeFields
	if err := node.Decode(&f); err != nil {
		return err
	}
	*t = Type(f)
	return nil
}

// UnmarshalTOML accepts an inline table or a string shorthand
func (t *Type) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case string:
		return t.UnmarshalText([]byte(v))
	case map[string]interface{}:
		return t.fromMap(v)
	default:
		return errors.Newf("type reference must be a string or table, got %T", data)
	}
}

func (t *Type) fromMap(m map[string]interface{}) error {
	var out Type
	for key, val := range m {
		switch key {
		case "name":
			s, ok := val.(string)
			if !ok {
				return errors.Newf("type name must be a string, got %T", val)
			}
			out.Name = s
		case "namespace":
			list, ok := val.([]interface{})
			if !ok {
				return errors.Newf("type namespace must be an array, got %T", val)
			}
			for _, item := range list {
				s, ok := item.(string)
				if !ok {
					return errors.Newf("type namespace entries must be strings, got %T", item)
				}
				out.Namespace = append(out.Namespace, s)
			}
		case "bare":
			b, ok := val.(bool)
			if !ok {
				return errors.Newf("type bare flag must be a boolean, got %T", val)
			}
			out.Bare = b
		case "generic_arg":
			var arg Type
			if err := arg.UnmarshalTOML(val); err != nil {
				return errors.Wrap(err, "generic_arg")
			}
			out.GenericArg = &arg
		default:
			return errors.Newf("unknown type reference key %q", key)
		}
	}
	*t = out
	return nil
}

// UnmarshalText parses the shorthand string form
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
