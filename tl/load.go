package tl

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/logger"
)

// Format is a serialization format for schema documents
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat normalizes a format name; "yml" is accepted for YAML
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.NewInvalidSchemaError("unknown schema format %q", s)
	}
}

// FormatFromPath detects the format from a file name or URL extension
func FormatFromPath(source string) (Format, error) {
	p := source
	if i := strings.Index(p, "::"); i >= 0 {
		p = p[i+2:]
	}
	if u, err := url.Parse(p); err == nil && u.Scheme != "" && u.Path != "" {
		p = u.Path
	}
	ext := path.Ext(p)
	if ext == "" {
		return "", errors.WithHint(
			errors.NewInvalidSchemaError("cannot detect schema format of %q", source),
			"set schema.format or use a .json, .yaml or .toml extension")
	}
	return ParseFormat(ext)
}

// Load decodes and validates a schema document.
//
// JSON and YAML documents may be a bare list of definitions or a Schema
// object; TOML documents are always a Schema table with [[definitions]].
func Load(r io.Reader, format Format) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read schema")
	}

	var schema *Schema
	switch format {
	case FormatJSON:
		schema, err = decodeJSON(data)
	case FormatYAML:
		schema, err = decodeYAML(data)
	case FormatTOML:
		schema, err = decodeTOML(data)
	default:
		return nil, errors.NewInvalidSchemaError("unknown schema format %q", string(format))
	}
	if err != nil {
		return nil, errors.WrapInvalidSchema(err, "decode "+string(format)+" schema")
	}

	if err := Validate(schema.Definitions); err != nil {
		return nil, err
	}
	return schema, nil
}

// LoadFile reads a schema from a local file. An empty format is detected
// from the file extension.
func LoadFile(filePath string, format Format) (*Schema, error) {
	if format == "" {
		f, err := FormatFromPath(filePath)
		if err != nil {
			return nil, err
		}
		format = f
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "open schema")
	}
	defer f.Close()

	schema, err := Load(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filePath)
	}
	logger.Debugw("Loaded schema",
		"path", filePath,
		"format", format,
		"definitions", len(schema.Definitions),
		"tdlib_version", schema.TDLibVersion)
	return schema, nil
}

func decodeJSON(data []byte) (*Schema, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var defs []Definition
		if err := json.Unmarshal(trimmed, &defs); err != nil {
			return nil, err
		}
		return &Schema{Definitions: defs}, nil
	}
	var schema Schema
	if err := json.Unmarshal(trimmed, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

func decodeYAML(data []byte) (*Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		// Empty document
		return &Schema{}, nil
	}
	root := &doc
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root = doc.Content[0]
	}

	if root.Kind == yaml.SequenceNode {
		var defs []Definition
		if err := root.Decode(&defs); err != nil {
			return nil, err
		}
		return &Schema{Definitions: defs}, nil
	}
	var schema Schema
	if err := root.Decode(&schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

func decodeTOML(data []byte) (*Schema, error) {
	var schema Schema
	md, err := toml.Decode(string(data), &schema)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warnw("Ignoring unknown schema keys", "keys", keys)
	}
	return &schema, nil
}
