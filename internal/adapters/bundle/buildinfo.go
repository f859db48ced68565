package bundle

import (
	"context"
	"runtime/debug"

	"github.com/bnema/appversion/internal/ports"
	"github.com/bnema/appversion/internal/version"
)

const (
	develVersion    = "(devel)"
	vcsRevisionKey  = "vcs.revision"
	shortRevisionSz = 12
)

// BuildInfo reports the link-time version variables. When they are unset it
// falls back to the module version and VCS revision embedded by the Go
// toolchain.
type BuildInfo struct {
	version string
	build   string
	read    func() (*debug.BuildInfo, bool)
}

var _ ports.BundleMetadata = (*BuildInfo)(nil)

func NewBuildInfo() *BuildInfo {
	return &BuildInfo{
		version: version.Version,
		build:   version.Build,
		read:    debug.ReadBuildInfo,
	}
}

func (b *BuildInfo) ShortVersion(ctx context.Context) (*string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.version != "" {
		return stringPtr(b.version), nil
	}

	info, ok := b.read()
	if !ok || info.Main.Version == "" || info.Main.Version == develVersion {
		return nil, nil
	}

	return stringPtr(info.Main.Version), nil
}

func (b *BuildInfo) BuildNumber(ctx context.Context) (*string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.build != "" {
		return stringPtr(b.build), nil
	}

	info, ok := b.read()
	if !ok {
		return nil, nil
	}

	for _, setting := range info.Settings {
		if setting.Key != vcsRevisionKey || setting.Value == "" {
			continue
		}
		revision := setting.Value
		if len(revision) > shortRevisionSz {
			revision = revision[:shortRevisionSz]
		}
		return stringPtr(revision), nil
	}

	return nil, nil
}

func stringPtr(value string) *string {
	return &value
}
