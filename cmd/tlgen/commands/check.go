package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/tlgen/config"
	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/tlgen"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check if generated files are up to date",
		Long: `Check if the generated files match a fresh generation from the schema.

Nothing is written. Differences are shown as unified diffs.

Exit codes:
  0 - Generated files are up to date
  1 - Generated files are out of date (diff shown)
  2 - Error during check

Examples:
  tlgen check                                 # Uses tlgen.toml
  tlgen check -s td_api.json -o tdapi/tdapi.go`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd, generateFlagKeys)
		},
		RunE: runCheck,
	}
	addGenerateFlags(cmd)
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if cfg.Generate.Output == stdoutPath || cfg.Generate.Output == "" {
		return errors.WithHint(
			errors.New("check needs the generated files: generate.output is stdout"),
			"pass --output or set generate.output in tlgen.toml")
	}

	outputs, err := buildOutputs(contextOf(cmd), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var stale []string
	for _, o := range outputs {
		existing, err := os.ReadFile(o.path)
		if err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "read %s", o.path)
		}
		if err != nil {
			fmt.Fprintf(out, "%s %s is missing\n", pterm.Red("✗"), o.path)
			stale = append(stale, o.path)
			continue
		}
		if diff := tlgen.Compare(existing, o.content, o.path); diff != "" {
			fmt.Fprintf(out, "%s %s differs:\n", pterm.Red("✗"), o.path)
			printDiff(out, diff)
			stale = append(stale, o.path)
		}
	}

	if len(stale) == 0 {
		fmt.Fprintf(out, "%s Generated files are up to date\n", pterm.LightGreen("✓"))
		return nil
	}
	return errors.WithHint(
		errors.Mark(errors.Newf("%d generated file(s) out of date: %s", len(stale), strings.Join(stale, ", ")),
			errors.ErrOutOfDate),
		"run 'tlgen generate' to update")
}

// printDiff colors a unified diff line by line
func printDiff(w io.Writer, diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case line == "":
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Fprint(w, pterm.Bold.Sprint(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprint(w, pterm.Cyan(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprint(w, pterm.Green(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprint(w, pterm.Red(line))
		default:
			fmt.Fprint(w, line)
		}
	}
}
