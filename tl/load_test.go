package tl

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tlgen/errors"
)

const jsonSchema = `{
  "tdlib_version": "1.8.29",
  "definitions": [
    {"name": "int53", "type": "Int53", "category": "type"},
    {
      "name": "messageText",
      "description": "A text message",
      "params": [
        {"name": "text", "type": "string", "description": "Text of the message"},
        {"name": "web_page", "type": "WebPage", "description": "A link preview; may be null"}
      ],
      "type": "MessageContent",
      "category": "type"
    },
    {
      "name": "getChats",
      "params": [{"name": "limit", "type": "int32"}],
      "type": {"name": "Chats"},
      "category": "function"
    }
  ]
}`

const yamlSchema = `
tdlib_version: 1.8.29
definitions:
  - name: int53
    type: Int53
    category: type
  - name: messageText
    description: A text message
    params:
      - name: text
        type: string
        description: Text of the message
      - name: web_page
        type: WebPage
        description: A link preview; may be null
    type: MessageContent
    category: type
  - name: getChats
    params:
      - {name: limit, type: int32}
    type: {name: Chats}
    category: function
`

const tomlSchema = `
tdlib_version = "1.8.29"

[[definitions]]
name = "int53"
type = "Int53"
category = "type"

[[definitions]]
name = "messageText"
description = "A text message"
type = "MessageContent"
category = "type"

  [[definitions.params]]
  name = "text"
  type = "string"
  description = "Text of the message"

  [[definitions.params]]
  name = "web_page"
  type = "WebPage"
  description = "A link preview; may be null"

[[definitions]]
name = "getChats"
type = { name = "Chats" }
category = "function"

  [[definitions.params]]
  name = "limit"
  type = "int32"
`

func assertSampleSchema(t *testing.T, schema *Schema) {
	t.Helper()
	require.Len(t, schema.Definitions, 3)
	assert.Equal(t, "1.8.29", schema.TDLibVersion)

	msg := schema.Definitions[1]
	assert.Equal(t, "messageText", msg.Name)
	assert.Equal(t, CategoryType, msg.Category)
	assert.Equal(t, "MessageContent", msg.Type.Name)
	require.Len(t, msg.Params, 2)
	assert.Equal(t, Type{Name: "string", Bare: true}, msg.Params[0].Type)
	assert.False(t, msg.Params[0].Nullable())
	assert.True(t, msg.Params[1].Nullable())

	fn := schema.Definitions[2]
	assert.Equal(t, CategoryFunction, fn.Category)
	assert.Equal(t, "Chats", fn.Type.Name)
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		format Format
		doc    string
	}{
		{FormatJSON, jsonSchema},
		{FormatYAML, yamlSchema},
		{FormatTOML, tomlSchema},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			schema, err := Load(strings.NewReader(tt.doc), tt.format)
			require.NoError(t, err)
			assertSampleSchema(t, schema)
		})
	}
}

func TestLoadBareList(t *testing.T) {
	schema, err := Load(strings.NewReader(`[{"name":"ok","type":"Ok","category":"type"}]`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, schema.Definitions, 1)
	assert.Equal(t, "", schema.TDLibVersion)

	schema, err = Load(strings.NewReader("- {name: ok, type: Ok, category: type}\n"), FormatYAML)
	require.NoError(t, err)
	require.Len(t, schema.Definitions, 1)
}

func TestLoadBuiltinVector(t *testing.T) {
	schema, err := Load(strings.NewReader(`[
		{"name": "vector", "params": [{"name": "t", "type": "Type"}], "type": "Vector", "category": "type"},
		{"name": "ids", "params": [{"name": "ids", "type": "vector<int53>"}], "type": "Ids", "category": "type"}
	]`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, schema.Definitions, 2)
	assert.Equal(t, "Vector", schema.Definitions[0].Type.Name)
	assert.Nil(t, schema.Definitions[0].Type.GenericArg)

	schema, err = Load(strings.NewReader("- {name: vector, type: Vector, category: type}\n"), FormatYAML)
	require.NoError(t, err)
	require.Len(t, schema.Definitions, 1)
}

func TestLoadEmpty(t *testing.T) {
	schema, err := Load(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, schema.Definitions)

	schema, err = Load(strings.NewReader("[]"), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, schema.Definitions)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"malformed json", `{"definitions": [`, "decode json schema"},
		{"missing category", `[{"name":"ok","type":"Ok"}]`, "category"},
		{"bad name", `[{"name":"has space","type":"Ok","category":"type"}]`, "invalid name"},
		{"bad type", `[{"name":"ok","type":"vector<","category":"type"}]`, "decode json schema"},
		{"duplicate param", `[{"name":"ok","params":[{"name":"a","type":"int32"},{"name":"a","type":"int32"}],"type":"Ok","category":"type"}]`, "duplicate parameter"},
		{"bare vector", `[{"name":"ok","params":[{"name":"a","type":"vector"}],"type":"Ok","category":"type"}]`, "generic argument"},
		{"function returning bare vector", `[{"name":"getAll","type":"Vector","category":"function"}]`, "generic argument"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc), FormatJSON)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidSchema(err), "expected ErrInvalidSchema, got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFormatDetection(t *testing.T) {
	tests := []struct {
		source string
		want   Format
	}{
		{"td_api.json", FormatJSON},
		{"schema/td_api.yml", FormatYAML},
		{"td_api.TOML", FormatTOML},
		{"https://example.com/td/td_api.json?ref=v1", FormatJSON},
		{"git::https://example.com/repo.git//schema/td_api.yaml?ref=v1.8.29", FormatYAML},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.source)
		require.NoError(t, err, tt.source)
		assert.Equal(t, tt.want, got, tt.source)
	}

	_, err := FormatFromPath("td_api")
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "td_api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlSchema), 0o644))

	schema, err := LoadFile(path, "")
	require.NoError(t, err)
	assertSampleSchema(t, schema)

	_, err = LoadFile(filepath.Join(dir, "missing.json"), "")
	assert.Error(t, err)
}

func TestLoadSourceLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "td_api.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlSchema), 0o644))

	assert.False(t, IsRemote(path))
	schema, err := LoadSource(context.Background(), path, "", FetchOptions{})
	require.NoError(t, err)
	assertSampleSchema(t, schema)
}

func TestFetchFileSource(t *testing.T) {
	src := filepath.Join(t.TempDir(), "td_api.json")
	require.NoError(t, os.WriteFile(src, []byte(jsonSchema), 0o644))

	dst := t.TempDir()
	local, err := Fetch(context.Background(), "file::"+src, dst, FetchOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dst, "td_api.json"), local)

	schema, err := LoadFile(local, "")
	require.NoError(t, err)
	assertSampleSchema(t, schema)
}

func TestFetchHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, jsonSchema)
	}))
	defer srv.Close()

	schema, err := LoadSource(context.Background(), srv.URL+"/td_api.json", "", FetchOptions{})
	require.NoError(t, err)
	assertSampleSchema(t, schema)

	_, err = LoadSource(context.Background(), srv.URL+"/td_api.json", "", FetchOptions{BlockPrivateIP: true})
	assert.ErrorContains(t, err, "private IP address blocked")
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/td_api.json"))
	assert.True(t, IsRemote("git::https://example.com/repo.git//td_api.json"))
	assert.False(t, IsRemote("td_api.json"))
}

func TestDefinitionNames(t *testing.T) {
	d := Definition{Name: "auth.sendCode"}
	assert.Equal(t, []string{"auth"}, d.Namespace())
	assert.Equal(t, "sendCode", d.ShortName())

	d = Definition{Name: "getMe"}
	assert.Empty(t, d.Namespace())
	assert.Equal(t, "getMe", d.ShortName())
}
