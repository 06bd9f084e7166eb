package tljson

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64Marshal(t *testing.T) {
	tests := []struct {
		in   Int64
		want string
	}{
		{0, `"0"`},
		{math.MaxInt64, `"9223372036854775807"`},
		{math.MinInt64, `"-9223372036854775808"`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(data))
	}
}

func TestInt64Unmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    Int64
		wantErr bool
	}{
		{`"9223372036854775807"`, math.MaxInt64, false},
		{`-5`, -5, false},
		{`"-5"`, -5, false},
		{`null`, 0, false},
		{`"9223372036854775808"`, 0, true},
		{`"12a"`, 0, true},
		{`1.5`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got Int64
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInt64String(t *testing.T) {
	assert.Equal(t, "-42", Int64(-42).String())
}
