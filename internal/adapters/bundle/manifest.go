package bundle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/bnema/appversion/internal/ports"
	"github.com/spf13/viper"
)

const (
	manifestVersionKey = "short_version"
	manifestBuildKey   = "build_number"
	bundleVersionKey   = "CFBundleShortVersionString"
	bundleBuildKey     = "CFBundleVersion"
)

// Manifest reads version identifiers from a packaged manifest file. Any
// format viper understands works; toml and yaml are the expected ones.
type Manifest struct {
	path    string
	version *string
	build   *string
}

var _ ports.BundleMetadata = (*Manifest)(nil)

// LoadManifest reads the manifest at path. A missing file yields a manifest
// with both values absent.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, errors.New("manifest path is empty")
	}

	cfg := viper.New()
	cfg.SetConfigFile(path)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if errors.As(err, &configNotFound) || errors.Is(err, fs.ErrNotExist) {
			return &Manifest{path: path}, nil
		}
		return nil, fmt.Errorf("read manifest %q: %w", path, err)
	}

	return &Manifest{
		path:    path,
		version: lookup(cfg, manifestVersionKey, bundleVersionKey),
		build:   lookup(cfg, manifestBuildKey, bundleBuildKey),
	}, nil
}

func (m *Manifest) ShortVersion(ctx context.Context) (*string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return m.version, nil
}

func (m *Manifest) BuildNumber(ctx context.Context) (*string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return m.build, nil
}

func lookup(cfg *viper.Viper, keys ...string) *string {
	for _, key := range keys {
		if cfg.IsSet(key) {
			return stringPtr(cfg.GetString(key))
		}
	}

	return nil
}
