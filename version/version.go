// Package version reports how the tlgen binary was built.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/Masterminds/semver/v3"
)

// Set at build time via ldflags:
//
//	-X github.com/teranos/tlgen/version.Version=v0.3.0
var (
	CommitHash = "dev"
	BuildTime  = "unknown"
	Version    = "dev"
)

const unset = "dev"

// Info describes the running binary
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
	Modified   bool   `json:"modified,omitempty"`
}

// Get returns the build information. Values not set by ldflags are taken
// from the module and VCS data embedded by `go install` / `go build`.
func Get() Info {
	info := Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = info.withBuildInfo(bi)
	}
	return info
}

func (i Info) withBuildInfo(bi *debug.BuildInfo) Info {
	if i.Version == unset && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.CommitHash == unset {
				i.CommitHash = s.Value
			}
		case "vcs.time":
			if i.BuildTime == "unknown" {
				i.BuildTime = s.Value
			}
		case "vcs.modified":
			i.Modified = s.Value == "true"
		}
	}
	return i
}

// Semver returns the release version, or nil for development builds
func (i Info) Semver() *semver.Version {
	if i.Version == unset {
		return nil
	}
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return nil
	}
	return v
}

// Short is the release version, or the abbreviated commit for development builds
func (i Info) Short() string {
	if v := i.Semver(); v != nil {
		return "v" + v.String()
	}
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}

// String returns a human-readable version line
func (i Info) String() string {
	name := "tlgen dev"
	if v := i.Semver(); v != nil {
		name = "tlgen v" + v.String()
	}
	commit := i.CommitHash
	if i.Modified {
		commit += "+dirty"
	}
	return fmt.Sprintf("%s (commit %s, built %s)", name, commit, i.BuildTime)
}
