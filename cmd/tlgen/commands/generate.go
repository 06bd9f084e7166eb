package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/tlgen/config"
	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/logger"
	"github.com/teranos/tlgen/tl"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate bindings from the schema",
		Long: `Generate records, unions and requests from the schema.

The whole run happens in memory: if the schema is inconsistent or two names
collide, every problem is reported and nothing is written.

Examples:
  tlgen generate -s td_api.json                    # Go to stdout
  tlgen generate -s td_api.json -o tdapi/tdapi.go  # Go to a file
  tlgen generate --lang rust --split -o src/gen    # types.rs, enums.rs, functions.rs
  tlgen generate -s "git::https://github.com/tdlib/td//td/generate/scheme/td_api.json?ref=v1.8.0"
  tlgen generate --watch                           # Regenerate when the schema changes`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd, generateFlagKeys)
		},
		RunE: runGenerate,
	}
	addGenerateFlags(cmd)
	cmd.Flags().BoolP("watch", "w", false, "Regenerate whenever the schema or config file changes")
	return cmd
}

// addGenerateFlags defines the flags shared by generate and check
func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("schema", "s", "", "Schema source: path or go-getter URL (default: td_api.json)")
	f.String("format", "", "Schema format: json, yaml or toml (default: from extension)")
	f.StringP("lang", "l", "", "Target language: go or rust (default: go)")
	f.StringP("output", "o", "", "Output file, directory with --split, or - for stdout")
	f.Bool("split", false, "Write types, enums and functions to separate files")
	f.String("package", "", "Go package name (default: tdapi)")
	f.String("runtime", "", "Import path of the Go wire runtime, or Rust module path of the runtime")
	f.String("header-file", "", "File holding the license header (empty file: no header)")
	f.String("opaque-results", "", "Results without constructors: empty or error")
	f.String("tdlib-version", "", "TDLib version recorded in the output (default: from the schema)")
	f.String("tdlib-constraint", "", "Semver constraint the TDLib version must satisfy")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if err := generateOnce(contextOf(cmd), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg); err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return nil
	}
	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchAndGenerate(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// generateOnce builds and writes all outputs, reporting written files on status
func generateOnce(ctx context.Context, stdout, status io.Writer, cfg *config.Config) error {
	outputs, err := buildOutputs(ctx, cfg)
	if err != nil {
		return err
	}
	if err := writeOutputs(stdout, outputs); err != nil {
		return err
	}
	for _, o := range outputs {
		if o.path != "" {
			fmt.Fprintf(status, "%s Generated %s\n", pterm.LightGreen("✓"), o.path)
		}
	}
	return nil
}

// watchAndGenerate regenerates on every schema or config change until ctx
// is done. Failed runs are reported and watching continues.
func watchAndGenerate(ctx context.Context, stdout, status io.Writer, cfg *config.Config) error {
	if tl.IsRemote(cfg.Schema.Source) {
		return errors.WithHint(
			errors.Newf("cannot watch remote schema %s", cfg.Schema.Source),
			"download the schema and point schema.source at the local file")
	}

	paths := []string{cfg.Schema.Source}
	configFile := config.ConfigFileUsed()
	if configFile != "" {
		abs, err := filepath.Abs(configFile)
		if err != nil {
			return errors.Wrapf(err, "resolve %s", configFile)
		}
		configFile = abs
		paths = append(paths, configFile)
	}
	w, err := config.NewWatcher(paths...)
	if err != nil {
		return err
	}

	w.OnChange(func(changed []string) error {
		fmt.Fprintf(status, "%s %d file(s) changed, regenerating\n", pterm.Gray("→"), len(changed))
		current := cfg
		for _, path := range changed {
			if path != configFile {
				continue
			}
			if err := config.MergeFile(configFile); err != nil {
				return err
			}
			reloaded, err := config.Load()
			if err != nil {
				return err
			}
			current = reloaded
		}
		if err := generateOnce(ctx, stdout, status, current); err != nil {
			fmt.Fprintf(status, "%s %v\n", pterm.Red("✗"), err)
			return err
		}
		return nil
	})

	w.Start()
	logger.Infow("Watching for changes", "paths", paths)
	fmt.Fprintf(status, "%s Watching %d file(s), press Ctrl+C to stop\n", pterm.LightCyan("●"), len(paths))

	<-ctx.Done()
	return w.Stop()
}
