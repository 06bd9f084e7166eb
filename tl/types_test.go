package tl

import (
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input string
		want  Type
	}{
		{"Message", Type{Name: "Message"}},
		{"int53", Type{Name: "int53", Bare: true}},
		{"auth.SentCode", Type{Namespace: []string{"auth"}, Name: "SentCode"}},
		{"%Message", Type{Name: "Message", Bare: true}},
		{"vector<int64>", Type{Name: "vector", Bare: true, GenericArg: &Type{Name: "int64", Bare: true}}},
		{
			"vector<vector<PhotoSize>>",
			Type{Name: "vector", Bare: true, GenericArg: &Type{
				Name: "vector", Bare: true, GenericArg: &Type{Name: "PhotoSize"},
			}},
		},
		{" Vector< chatPosition > ", Type{Name: "Vector", GenericArg: &Type{Name: "chatPosition", Bare: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTypeErrors(t *testing.T) {
	for _, input := range []string{"", "vector<int", "a..b", "Message>", "1abc", "vector<>", "x<y>z"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseType(input)
			assert.Error(t, err)
		})
	}
}

func TestTypeString(t *testing.T) {
	for _, s := range []string{"Message", "auth.SentCode", "vector<vector<int53>>", "%Message", "chatPosition"} {
		parsed, err := ParseType(s)
		require.NoError(t, err)
		assert.Equal(t, s, parsed.String())
	}
}

func TestTypeIsVector(t *testing.T) {
	v, _ := ParseType("vector<int32>")
	assert.True(t, v.IsVector())
	v, _ = ParseType("Vector<int32>")
	assert.True(t, v.IsVector())
	v, _ = ParseType("vector")
	assert.False(t, v.IsVector())
	v, _ = ParseType("ns.vector<int32>")
	assert.False(t, v.IsVector())
}

func TestTypeUnmarshalForms(t *testing.T) {
	want := Type{Name: "vector", Bare: true, GenericArg: &Type{Name: "Message"}}

	t.Run("json string", func(t *testing.T) {
		var got Type
		require.NoError(t, json.Unmarshal([]byte(`"vector<Message>"`), &got))
		assert.Equal(t, want, got)
	})

	t.Run("json object", func(t *testing.T) {
		var got Type
		require.NoError(t, json.Unmarshal([]byte(`{"name":"vector","bare":true,"generic_arg":"Message"}`), &got))
		assert.Equal(t, want, got)
	})

	t.Run("yaml scalar", func(t *testing.T) {
		var got Type
		require.NoError(t, yaml.Unmarshal([]byte(`vector<Message>`), &got))
		assert.Equal(t, want, got)
	})

	t.Run("yaml mapping", func(t *testing.T) {
		var got Type
		require.NoError(t, yaml.Unmarshal([]byte("name: vector\nbare: true\ngeneric_arg:\n  name: Message\n"), &got))
		assert.Equal(t, want, got)
	})

	t.Run("toml string and table", func(t *testing.T) {
		var doc struct {
			A Type `toml:"a"`
			B Type `toml:"b"`
		}
		_, err := toml.Decode("a = \"vector<Message>\"\nb = { name = \"vector\", bare = true, generic_arg = \"Message\" }\n", &doc)
		require.NoError(t, err)
		assert.Equal(t, want, doc.A)
		assert.Equal(t, want, doc.B)
	})

	t.Run("toml unknown key", func(t *testing.T) {
		var doc struct {
			A Type `toml:"a"`
		}
		_, err := toml.Decode("a = { nme = \"Message\" }\n", &doc)
		assert.Error(t, err)
	})
}

func TestCategoryText(t *testing.T) {
	var c Category
	require.NoError(t, c.UnmarshalText([]byte("functions")))
	assert.Equal(t, CategoryFunction, c)
	require.NoError(t, c.UnmarshalText([]byte("Type")))
	assert.Equal(t, CategoryType, c)
	assert.Error(t, c.UnmarshalText([]byte("method")))

	text, err := CategoryFunction.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "function", string(text))

	_, err = Category(0).MarshalText()
	assert.Error(t, err)
}
