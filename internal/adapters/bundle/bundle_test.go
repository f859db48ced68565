package bundle

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime/debug"
	"testing"

	"github.com/bnema/appversion/internal/ports"
	"github.com/bnema/appversion/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func readBoth(t *testing.T, source ports.BundleMetadata) (*string, *string) {
	t.Helper()

	version, err := source.ShortVersion(context.Background())
	require.NoError(t, err)
	build, err := source.BuildNumber(context.Background())
	require.NoError(t, err)
	return version, build
}

func TestStatic(t *testing.T) {
	t.Parallel()

	version, build := readBoth(t, Static{Version: stringPtr("1.7"), Build: stringPtr("47")})
	require.NotNil(t, version)
	require.NotNil(t, build)
	assert.Equal(t, "1.7", *version)
	assert.Equal(t, "47", *build)

	version, build = readBoth(t, Static{})
	assert.Nil(t, version)
	assert.Nil(t, build)
}

func TestBuildInfoPrefersLinkTimeValues(t *testing.T) {
	t.Parallel()

	info := &BuildInfo{
		version: "2.1",
		build:   "210",
		read: func() (*debug.BuildInfo, bool) {
			t.Fatal("build info must not be read when link-time values are set")
			return nil, false
		},
	}

	version, build := readBoth(t, info)
	assert.Equal(t, "2.1", *version)
	assert.Equal(t, "210", *build)
}

func TestBuildInfoFallsBackToModuleInfo(t *testing.T) {
	t.Parallel()

	info := &BuildInfo{
		read: func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{
				Main: debug.Module{Version: "v1.4.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs", Value: "git"},
					{Key: "vcs.revision", Value: "0123456789abcdef0123"},
				},
			}, true
		},
	}

	version, build := readBoth(t, info)
	require.NotNil(t, version)
	require.NotNil(t, build)
	assert.Equal(t, "v1.4.0", *version)
	assert.Equal(t, "0123456789ab", *build)
}

func TestBuildInfoTreatsDevelAsAbsent(t *testing.T) {
	t.Parallel()

	info := &BuildInfo{
		read: func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
		},
	}

	version, build := readBoth(t, info)
	assert.Nil(t, version)
	assert.Nil(t, build)

	unavailable := &BuildInfo{read: func() (*debug.BuildInfo, bool) { return nil, false }}
	version, build = readBoth(t, unavailable)
	assert.Nil(t, version)
	assert.Nil(t, build)
}

func TestLoadManifestTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.toml")
	require.NoError(t, os.WriteFile(path, []byte("short_version = \"1.7\"\nbuild_number = 47\n"), 0o600))

	manifest, err := LoadManifest(path)
	require.NoError(t, err)

	version, build := readBoth(t, manifest)
	require.NotNil(t, version)
	require.NotNil(t, build)
	assert.Equal(t, "1.7", *version)
	assert.Equal(t, "47", *build)
}

func TestLoadManifestYAMLWithBundleKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Info.yaml")
	require.NoError(t, os.WriteFile(path, []byte("CFBundleShortVersionString: \"3.2\"\nCFBundleVersion: \"320\"\n"), 0o600))

	manifest, err := LoadManifest(path)
	require.NoError(t, err)

	version, build := readBoth(t, manifest)
	require.NotNil(t, version)
	require.NotNil(t, build)
	assert.Equal(t, "3.2", *version)
	assert.Equal(t, "320", *build)
}

func TestLoadManifestMissingFieldsAndFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	partial := filepath.Join(dir, "app.toml")
	require.NoError(t, os.WriteFile(partial, []byte("short_version = \"1.0\"\n"), 0o600))

	manifest, err := LoadManifest(partial)
	require.NoError(t, err)
	version, build := readBoth(t, manifest)
	require.NotNil(t, version)
	assert.Equal(t, "1.0", *version)
	assert.Nil(t, build)

	missing, err := LoadManifest(filepath.Join(dir, "absent.toml"))
	require.NoError(t, err)
	version, build = readBoth(t, missing)
	assert.Nil(t, version)
	assert.Nil(t, build)

	_, err = LoadManifest("")
	assert.EqualError(t, err, "manifest path is empty")
}

func TestChainPicksFirstPresentValuePerField(t *testing.T) {
	t.Parallel()

	chain, err := NewChain(
		Static{Build: stringPtr("99")},
		nil,
		Static{Version: stringPtr("1.0"), Build: stringPtr("10")},
	)
	require.NoError(t, err)

	version, build := readBoth(t, chain)
	assert.Equal(t, "1.0", *version)
	assert.Equal(t, "99", *build)
}

func TestChainSkipsFailingSource(t *testing.T) {
	failing := mocks.NewMockBundleMetadata(t)
	failing.EXPECT().ShortVersion(mock.Anything).Return(nil, errors.New("unreadable")).Once()

	chain, err := NewChain(failing, Static{Version: stringPtr("1.0")})
	require.NoError(t, err)

	version, err := chain.ShortVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.0", *version)
}

func TestChainReportsErrorsWhenNothingPresent(t *testing.T) {
	failing := mocks.NewMockBundleMetadata(t)
	failing.EXPECT().BuildNumber(mock.Anything).Return(nil, errors.New("unreadable")).Once()

	chain, err := NewChain(failing, Static{})
	require.NoError(t, err)

	_, err = chain.BuildNumber(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "bundle source 0 build number: unreadable")
}

func TestChainStopsOnCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chain, err := NewChain(Static{}, Static{Version: stringPtr("1.0")})
	require.NoError(t, err)

	_, err = chain.ShortVersion(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewChainRequiresSources(t *testing.T) {
	t.Parallel()

	_, err := NewChain(nil)
	assert.ErrorIs(t, err, errNoSources)
}
