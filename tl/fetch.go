package tl

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	getter "github.com/hashicorp/go-getter"

	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/internal/httpclient"
	"github.com/teranos/tlgen/logger"
)

// FetchOptions tunes downloads of remote schemas
type FetchOptions struct {
	// Timeout bounds each HTTP download; zero selects the client default
	Timeout time.Duration
	// BlockPrivateIP refuses HTTP sources on loopback and private networks
	BlockPrivateIP bool
}

// getters returns go-getter's default getters with HTTP downloads routed
// through the validating client
func (o FetchOptions) getters() map[string]getter.Getter {
	client := httpclient.New(httpclient.Options{
		Timeout:        o.Timeout,
		BlockPrivateIP: o.BlockPrivateIP,
	})
	httpGetter := &getter.HttpGetter{Client: client.Client, Netrc: true}

	getters := make(map[string]getter.Getter, len(getter.Getters))
	for scheme, g := range getter.Getters {
		getters[scheme] = g
	}
	getters["http"] = httpGetter
	getters["https"] = httpGetter
	return getters
}

// IsRemote reports whether source must be fetched rather than opened.
// Existing local paths are never remote.
func IsRemote(source string) bool {
	if _, err := os.Stat(source); err == nil {
		return false
	}
	return strings.Contains(source, "::") || strings.Contains(source, "://")
}

// Fetch downloads a remote schema file into dir and returns the local path.
// Any go-getter source works, e.g. "https://host/td_api.json" or
// "git::https://host/repo.git//td_api.json?ref=v1.8.29".
func Fetch(ctx context.Context, source, dir string, opts FetchOptions) (string, error) {
	name := filepath.Base(strings.SplitN(source, "?", 2)[0])
	if name == "" || name == "." || name == "/" {
		name = "schema"
	}
	dst := filepath.Join(dir, name)

	pwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "resolve working directory")
	}

	client := &getter.Client{
		Ctx:  ctx,
		Src:  source,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
		// git, s3, gcs and friends keep their defaults
		Getters: opts.getters(),
	}
	logger.Infow("Fetching schema", "source", source, "dst", dst)
	if err := client.Get(); err != nil {
		return "", errors.Wrapf(err, "fetch schema from %s", source)
	}
	return dst, nil
}

// LoadSource loads a schema from a local path or a remote go-getter source.
// Remote schemas are downloaded to a temporary directory that is removed
// before returning.
func LoadSource(ctx context.Context, source string, format Format, opts FetchOptions) (*Schema, error) {
	if format == "" {
		f, err := FormatFromPath(source)
		if err != nil {
			return nil, err
		}
		format = f
	}

	if !IsRemote(source) {
		return LoadFile(source, format)
	}

	dir, err := os.MkdirTemp("", "tlgen-schema-*")
	if err != nil {
		return nil, errors.Wrap(err, "create download directory")
	}
	defer os.RemoveAll(dir)

	local, err := Fetch(ctx, source, dir, opts)
	if err != nil {
		return nil, err
	}
	return LoadFile(local, format)
}
