package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Schema defaults
	v.SetDefault("schema.source", "td_api.json")
	v.SetDefault("schema.format", "")
	v.SetDefault("schema.fetch_timeout_seconds", 60.0)
	v.SetDefault("schema.block_private_ip", false)

	// Generation defaults
	v.SetDefault("generate.lang", LangGo)
	v.SetDefault("generate.output", "-")
	v.SetDefault("generate.split", false)
	v.SetDefault("generate.package", "tdapi")
	v.SetDefault("generate.runtime_import", DefaultRuntimeImport)
	v.SetDefault("generate.header_file", "")
	v.SetDefault("generate.opaque_results", OpaqueEmpty)

	// TDLib defaults
	v.SetDefault("tdlib.version", "")
	v.SetDefault("tdlib.constraint", "")

	// Client defaults
	v.SetDefault("client.receive_timeout_seconds", 1.0)
	v.SetDefault("client.log_verbosity", 1)

	// Logging defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}
