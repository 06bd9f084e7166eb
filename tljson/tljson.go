// Package tljson is the wire runtime imported by generated Go code. It
// implements the TDLib JSON conventions: every object carries its
// constructor name under "@type", Int64 travels as a decimal string, and
// requests may carry a caller-attached "@extra".
package tljson

import (
	"bytes"
	"encoding/json"

	"github.com/teranos/tlgen/errors"
)

// Wire keys reserved by the protocol
const (
	TypeKey     = "@type"
	ExtraKey    = "@extra"
	ClientIDKey = "@client_id"
)

// Object is implemented by every generated record and request
type Object interface {
	// TLType returns the exact schema constructor name used as the wire tag
	TLType() string
}

var (
	// ErrMissingType indicates a JSON object without an "@type" key
	ErrMissingType = errors.New("missing @type")

	// ErrUnrecognizedVariant is matched by every *UnrecognizedVariantError
	ErrUnrecognizedVariant = errors.New("unrecognized variant")
)

// UnrecognizedVariantError is returned by generated union decoders when the
// wire tag names no known variant. Callers decide whether to skip or fail.
type UnrecognizedVariantError struct {
	Enum string // union being decoded
	Tag  string // raw "@type" value
}

func (e *UnrecognizedVariantError) Error() string {
	return "unrecognized variant " + quote(e.Tag) + " of " + e.Enum
}

// Is makes errors.Is(err, ErrUnrecognizedVariant) hold
func (e *UnrecognizedVariantError) Is(target error) bool {
	return target == ErrUnrecognizedVariant
}

// UnrecognizedVariant builds the error returned by generated decoders
func UnrecognizedVariant(enum, tag string) error {
	return &UnrecognizedVariantError{Enum: enum, Tag: tag}
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// MarshalTagged marshals v, which must encode as a JSON object, and puts
// "@type": tag first. Generated MarshalJSON methods pass a method-less copy
// of the record to avoid recursion.
func MarshalTagged(tag string, v interface{}) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s", tag)
	}
	body = bytes.TrimSpace(body)
	if len(body) < 2 || body[0] != '{' {
		return nil, errors.AssertionFailedf("marshal %s: expected a JSON object, got %s", tag, body)
	}

	var buf bytes.Buffer
	buf.Grow(len(body) + len(tag) + 12)
	buf.WriteString(`{"` + TypeKey + `":`)
	buf.WriteString(quote(tag))
	rest := bytes.TrimSpace(body[1:])
	if len(rest) > 0 && rest[0] != '}' {
		buf.WriteByte(',')
	}
	buf.Write(rest)
	return buf.Bytes(), nil
}

// Envelope holds the protocol keys of an incoming object
type Envelope struct {
	Type     string          `json:"@type"`
	Extra    json.RawMessage `json:"@extra,omitempty"`
	ClientID *int32          `json:"@client_id,omitempty"`
}

// PeekEnvelope reads the protocol keys without decoding the payload
func PeekEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, errors.Wrap(err, "decode envelope")
	}
	if env.Type == "" {
		return Envelope{}, ErrMissingType
	}
	return env, nil
}

// PeekType returns the "@type" of a JSON object
func PeekType(data []byte) (string, error) {
	var head struct {
		Type *string `json:"@type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return "", errors.Wrap(err, "decode @type")
	}
	if head.Type == nil || *head.Type == "" {
		return "", ErrMissingType
	}
	return *head.Type, nil
}

// IsNull reports whether data is absent or the JSON literal null
func IsNull(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}

// DecodeSlice decodes every element of raws with decode. A nil input stays
// nil so that absent and empty arrays survive a round trip.
func DecodeSlice[R, T any](raws []R, decode func(R) (T, error)) ([]T, error) {
	if raws == nil {
		return nil, nil
	}
	out := make([]T, len(raws))
	for i, raw := range raws {
		v, err := decode(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "[%d]", i)
		}
		out[i] = v
	}
	return out, nil
}

// DecodeValue decodes data into a T with encoding/json. Generated
// DecodeResponse methods use it for scalar and record results.
func DecodeValue[T any](data json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Wrapf(err, "decode %T", v)
	}
	return v, nil
}

// WrapField annotates a decoding error with the record and field it came from
func WrapField(record, field string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "%s.%s", record, field)
}

// SetField sets a top-level key of a marshaled JSON object, replacing an
// existing value. It is how "@extra" is attached to a request without the
// request type knowing about it.
func SetField(obj []byte, key string, value interface{}) ([]byte, error) {
	val, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s", key)
	}

	obj = bytes.TrimSpace(obj)
	if len(obj) < 2 || obj[0] != '{' || obj[len(obj)-1] != '}' {
		return nil, errors.Newf("set %s: not a JSON object", key)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(obj, &fields); err != nil {
		return nil, errors.Wrapf(err, "set %s", key)
	}
	if _, exists := fields[key]; exists {
		fields[key] = val
		return json.Marshal(fields)
	}

	var buf bytes.Buffer
	buf.Write(obj[:len(obj)-1])
	if len(fields) > 0 {
		buf.WriteByte(',')
	}
	buf.WriteString(quote(key))
	buf.WriteByte(':')
	buf.Write(val)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
