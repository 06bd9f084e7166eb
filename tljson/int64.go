package tljson

import (
	"bytes"
	"strconv"

	"github.com/teranos/tlgen/errors"
)

// Int64 is a 64-bit integer that travels as a JSON string of decimal digits,
// since JSON numbers lose precision above 2^53 in many decoders. Decoding
// also accepts a bare number.
type Int64 int64

// MarshalJSON encodes the value as a quoted decimal string
func (i Int64) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 22)
	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, int64(i), 10)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON accepts "123", 123 and null (which leaves the value unchanged)
func (i *Int64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid int64 %s", data)
	}
	*i = Int64(v)
	return nil
}

func (i Int64) String() string {
	return strconv.FormatInt(int64(i), 10)
}
