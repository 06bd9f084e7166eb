package config

import (
	"go/token"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/tlgen/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Generate.Lang {
	case LangGo, LangRust:
	default:
		return errors.Mark(
			errors.Newf("generate.lang must be %q or %q, got %q", LangGo, LangRust, c.Generate.Lang),
			errors.ErrUnsupportedLanguage)
	}

	if c.Generate.Lang == LangGo && !token.IsIdentifier(c.Generate.Package) {
		return errors.Newf("generate.package must be a Go identifier, got %q", c.Generate.Package)
	}

	switch c.Generate.OpaqueResults {
	case "", OpaqueEmpty, OpaqueError:
	default:
		return errors.Newf("generate.opaque_results must be %q or %q, got %q", OpaqueEmpty, OpaqueError, c.Generate.OpaqueResults)
	}

	if c.Schema.Source == "" {
		return errors.New("schema.source cannot be empty")
	}
	switch c.Schema.Format {
	case "", "json", "yaml", "yml", "toml":
	default:
		return errors.Newf("schema.format must be json, yaml or toml, got %q", c.Schema.Format)
	}

	if c.Schema.FetchTimeoutSeconds < 0 {
		return errors.Newf("schema.fetch_timeout_seconds must be >= 0, got %f", c.Schema.FetchTimeoutSeconds)
	}

	// Zero selects the dispatcher default
	if c.Client.ReceiveTimeoutSeconds < 0 {
		return errors.Newf("client.receive_timeout_seconds must be >= 0, got %f", c.Client.ReceiveTimeoutSeconds)
	}
	if c.Client.LogVerbosity < 0 {
		return errors.Newf("client.log_verbosity must be >= 0, got %d", c.Client.LogVerbosity)
	}

	return c.TDLib.Check()
}

// Check validates the TDLib version and constraint, and that the version
// satisfies the constraint when both are set
func (t TDLibConfig) Check() error {
	var version *semver.Version
	if t.Version != "" {
		v, err := semver.NewVersion(t.Version)
		if err != nil {
			return errors.Wrapf(err, "tdlib.version %q", t.Version)
		}
		version = v
	}

	if t.Constraint == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(t.Constraint)
	if err != nil {
		return errors.Wrapf(err, "tdlib.constraint %q", t.Constraint)
	}
	if version != nil && !constraint.Check(version) {
		return errors.WithHint(
			errors.Newf("tdlib.version %s does not satisfy constraint %q", version, t.Constraint),
			"regenerate from a schema of a supported TDLib release or relax tdlib.constraint")
	}
	return nil
}

// CanonicalVersion returns the normalized TDLib version, or "" when unset
func (t TDLibConfig) CanonicalVersion() string {
	if t.Version == "" {
		return ""
	}
	v, err := semver.NewVersion(t.Version)
	if err != nil {
		return t.Version
	}
	return v.String()
}
