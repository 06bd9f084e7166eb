// Package commands implements the tlgen command line
package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/tlgen/config"
	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/logger"
	"github.com/teranos/tlgen/version"
)

// NewRootCmd builds the tlgen command tree. Every call returns fresh
// commands and flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tlgen",
		Short: "Generate TDLib API bindings from a TL schema",
		Long: `tlgen - Generate TDLib API bindings from a TL schema.

tlgen reads the definitions of td_api.tl (serialized as JSON, YAML or TOML)
and emits one record per constructor, one union per abstract type and one
request per function, encoding to and from TDLib's "@type"-tagged JSON.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (TLGEN_* prefix, e.g. TLGEN_GENERATE_LANG)
3. --config file, then the nearest tlgen.toml up from the working directory
4. Default values

Examples:
  tlgen generate -s td_api.json -o tdapi/tdapi.go
  tlgen generate --lang rust --split -o src/generated
  tlgen generate --watch
  tlgen check
  tlgen config show`,
		Version:       version.Get().Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				if err := config.MergeFile(path); err != nil {
					return err
				}
			}
			v := config.GetViper()
			if err := bindFlags(cmd, map[string]string{
				"log.verbosity": "verbose",
				"log.json":      "log-json",
			}); err != nil {
				return err
			}
			if err := logger.Initialize(v.GetBool("log.json"), v.GetInt("log.verbosity")); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			return nil
		},
	}

	root.SetVersionTemplate(version.Get().String() + "\n")
	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	root.PersistentFlags().String("config", "", "Config file merged over the project tlgen.toml")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// bindFlags binds flags to config keys of the shared viper instance, so a
// flag given on the command line wins over environment and files
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	v := config.GetViper()
	for key, name := range keys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			return errors.AssertionFailedf("flag --%s is not defined on %s", name, cmd.Name())
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "bind --%s", name)
		}
	}
	return nil
}
