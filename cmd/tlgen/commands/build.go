package commands

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/teranos/tlgen/config"
	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/logger"
	"github.com/teranos/tlgen/tl"
	"github.com/teranos/tlgen/tlgen"
	"github.com/teranos/tlgen/tlgen/golang"
	"github.com/teranos/tlgen/tlgen/rust"
)

// stdout as generate.output
const stdoutPath = "-"

// output is one generated file and its destination; an empty path is stdout
type output struct {
	path    string
	content []byte
}

// generateFlagKeys maps config keys to the flags shared by generate and check
var generateFlagKeys = map[string]string{
	"schema.source":           "schema",
	"schema.format":           "format",
	"generate.lang":           "lang",
	"generate.output":         "output",
	"generate.split":          "split",
	"generate.package":        "package",
	"generate.runtime_import": "runtime",
	"generate.header_file":    "header-file",
	"generate.opaque_results": "opaque-results",
	"tdlib.version":           "tdlib-version",
	"tdlib.constraint":        "tdlib-constraint",
}

// newBackend creates the backend for generate.lang
func newBackend(cfg config.GenerateConfig) (tlgen.Backend, error) {
	switch cfg.Lang {
	case config.LangGo:
		return golang.New(golang.Options{Package: cfg.Package, RuntimeImport: cfg.RuntimeImport}), nil
	case config.LangRust:
		rt := cfg.RuntimeImport
		if rt == config.DefaultRuntimeImport {
			// The default names the Go runtime
			rt = config.DefaultRustRuntime
		}
		return rust.New(rust.Options{Runtime: rt}), nil
	default:
		return nil, errors.Mark(errors.Newf("no backend for %q", cfg.Lang), errors.ErrUnsupportedLanguage)
	}
}

// loadSchema reads schema.source and settles the TDLib version: the
// configured one, else the one recorded in the schema
func loadSchema(ctx context.Context, cfg *config.Config) (*tl.Schema, config.TDLibConfig, error) {
	var format tl.Format
	if cfg.Schema.Format != "" {
		f, err := tl.ParseFormat(cfg.Schema.Format)
		if err != nil {
			return nil, cfg.TDLib, err
		}
		format = f
	}

	schema, err := tl.LoadSource(ctx, cfg.Schema.Source, format, tl.FetchOptions{
		Timeout:        time.Duration(cfg.Schema.FetchTimeoutSeconds * float64(time.Second)),
		BlockPrivateIP: cfg.Schema.BlockPrivateIP,
	})
	if err != nil {
		return nil, cfg.TDLib, err
	}

	tdlib := cfg.TDLib
	if tdlib.Version == "" {
		tdlib.Version = schema.TDLibVersion
	}
	if err := tdlib.Check(); err != nil {
		return nil, tdlib, err
	}
	return schema, tdlib, nil
}

// buildOutputs runs the generator for cfg entirely in memory
func buildOutputs(ctx context.Context, cfg *config.Config) ([]output, error) {
	schema, tdlib, err := loadSchema(ctx, cfg)
	if err != nil {
		return nil, err
	}

	backend, err := newBackend(cfg.Generate)
	if err != nil {
		return nil, err
	}

	header := ""
	if cfg.Generate.HeaderFile != "" {
		data, err := os.ReadFile(cfg.Generate.HeaderFile)
		if err != nil {
			return nil, errors.Wrap(err, "read header file")
		}
		header = string(data)
		if header == "" {
			header = tlgen.NoHeader
		}
	}

	opts := tlgen.Options{
		Backend:       backend,
		Header:        header,
		TDLibVersion:  tdlib.CanonicalVersion(),
		OpaqueResults: tlgen.OpaquePolicy(cfg.Generate.OpaqueResults),
	}

	logger.Debugw("Generating",
		"source", cfg.Schema.Source,
		"lang", backend.Language(),
		"definitions", len(schema.Definitions),
		"tdlib_version", opts.TDLibVersion,
		"split", cfg.Generate.Split)

	out := cfg.Generate.Output
	if !cfg.Generate.Split {
		var buf bytes.Buffer
		if err := tlgen.Generate(&buf, schema.Definitions, opts); err != nil {
			return nil, err
		}
		path := out
		if path == stdoutPath {
			path = ""
		}
		return []output{{path: path, content: buf.Bytes()}}, nil
	}

	if out == stdoutPath || out == "" {
		return nil, errors.WithHint(
			errors.New("generate.split writes one file per unit and needs an output directory"),
			"pass --output <dir>")
	}
	files, err := tlgen.GenerateUnits(schema.Definitions, opts)
	if err != nil {
		return nil, err
	}
	outputs := make([]output, len(files))
	for i, f := range files {
		outputs[i] = output{path: filepath.Join(out, f.Name), content: f.Content}
	}
	return outputs, nil
}

// writeOutputs writes every file, or to stdout for an empty path
func writeOutputs(stdout io.Writer, outputs []output) error {
	for _, o := range outputs {
		if o.path == "" {
			if _, err := stdout.Write(o.content); err != nil {
				return errors.Wrap(err, "write to stdout")
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(o.path), config.DefaultDirPermissions); err != nil {
			return errors.Wrapf(err, "create directory for %s", o.path)
		}
		if err := os.WriteFile(o.path, o.content, config.DefaultFilePermissions); err != nil {
			return errors.Wrapf(err, "write %s", o.path)
		}
	}
	return nil
}
