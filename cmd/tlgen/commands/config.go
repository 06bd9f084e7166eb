package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/tlgen/config"
	"github.com/teranos/tlgen/display"
	"github.com/teranos/tlgen/errors"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tlgen configuration",
		Long: `Display and manage tlgen configuration.

Examples:
  tlgen config show                # Effective configuration as TOML
  tlgen config show --format json  # Same, as JSON
  tlgen config init                # Write tlgen.toml with the defaults
  tlgen config validate            # Validate the effective configuration`,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE:  runConfigShow,
	}
	show.Flags().String("format", "toml", "Output format: toml or json")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file holding the effective configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigInit,
	}
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file (the old one is kept as a backup)")

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		RunE:  runConfigValidate,
	}

	cmd.AddCommand(show, initCmd, validate)
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		return display.WriteJSON(out, cfg)
	case "toml":
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "# tlgen configuration")
		if used := config.ConfigFileUsed(); used != "" {
			fmt.Fprintf(out, "# from %s\n", used)
		}
		fmt.Fprint(out, string(data))
	default:
		return errors.Newf("unsupported format: %s (supported: toml, json)", format)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.ProjectConfigName
	if len(args) == 1 {
		path = args[0]
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return errors.WithHint(errors.Newf("%s already exists", path), "pass --force to overwrite it")
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", pterm.LightGreen("✓"), path)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if _, err := config.Load(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration is valid\n", pterm.LightGreen("✓"))
	return nil
}
