// Package config loads tlgen settings from defaults, tlgen.toml files,
// TLGEN_* environment variables and command-line flags (via viper).
package config

// Config represents the tlgen configuration
type Config struct {
	Schema   SchemaConfig   `mapstructure:"schema" toml:"schema"`
	Generate GenerateConfig `mapstructure:"generate" toml:"generate"`
	TDLib    TDLibConfig    `mapstructure:"tdlib" toml:"tdlib"`
	Client   ClientConfig   `mapstructure:"client" toml:"client"`
	Log      LogConfig      `mapstructure:"log" toml:"log"`
}

// SchemaConfig locates the serialized schema definitions
type SchemaConfig struct {
	// Source is a local path or any go-getter source (https://, git::, s3::, ...)
	Source string `mapstructure:"source" toml:"source"`
	// Format overrides extension-based detection: json, yaml or toml
	Format string `mapstructure:"format" toml:"format"`
	// FetchTimeoutSeconds bounds HTTP downloads of remote sources
	FetchTimeoutSeconds float64 `mapstructure:"fetch_timeout_seconds" toml:"fetch_timeout_seconds"`
	// BlockPrivateIP refuses HTTP sources on loopback and private networks
	BlockPrivateIP bool `mapstructure:"block_private_ip" toml:"block_private_ip"`
}

// GenerateConfig controls code generation
type GenerateConfig struct {
	Lang          string `mapstructure:"lang" toml:"lang"`                     // go or rust
	Output        string `mapstructure:"output" toml:"output"`                 // file, directory with Split, or "-" for stdout
	Split         bool   `mapstructure:"split" toml:"split"`                   // one file per unit instead of a single file
	Package       string `mapstructure:"package" toml:"package"`               // Go package name
	RuntimeImport string `mapstructure:"runtime_import" toml:"runtime_import"` // import path (Go) or crate path (Rust) of the wire runtime
	HeaderFile    string `mapstructure:"header_file" toml:"header_file"`       // empty = built-in license header
	OpaqueResults string `mapstructure:"opaque_results" toml:"opaque_results"` // empty or error
}

// TDLibConfig records which TDLib release the schema belongs to
type TDLibConfig struct {
	Version    string `mapstructure:"version" toml:"version"`       // e.g. "1.8.29"; empty = unknown
	Constraint string `mapstructure:"constraint" toml:"constraint"` // e.g. ">= 1.8.0"; empty = any
}

// ClientConfig configures tdclient
type ClientConfig struct {
	ReceiveTimeoutSeconds float64 `mapstructure:"receive_timeout_seconds" toml:"receive_timeout_seconds"`
	LogVerbosity          int     `mapstructure:"log_verbosity" toml:"log_verbosity"` // TDLib's own log verbosity forwarded to the log registry
}

// LogConfig configures tlgen's own logging
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json"`
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity"`
}

// Supported values
const (
	LangGo   = "go"
	LangRust = "rust"

	OpaqueEmpty = "empty"
	OpaqueError = "error"

	ProjectConfigName = "tlgen.toml"

	DefaultRuntimeImport = "github.com/teranos/tlgen/tljson"
	DefaultRustRuntime   = "crate"
)

// File permissions
const (
	DefaultDirPermissions  = 0o750
	DefaultFilePermissions = 0o644
)
