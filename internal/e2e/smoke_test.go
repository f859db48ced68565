package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const versionPackage = "github.com/bnema/appversion/internal/version"

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	firstRelease := buildBinary(t, "1.0", "10")
	secondRelease := buildBinary(t, "1.1", "11")

	stdout, stderr, err := runAppVersion(t, firstRelease, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "1.0 (10)\n", stdout)

	stdout, stderr, err = runAppVersion(t, firstRelease, home, "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Current App Version: 1.0(10)")
	assert.Contains(t, stdout, "App is fresh installed")

	stdout, stderr, err = runAppVersion(t, firstRelease, home, "check")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "nothing_changed\n", stdout)

	stdout, stderr, err = runAppVersion(t, secondRelease, home, "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Last App Version: 1.0(10)")
	assert.Contains(t, stdout, "App was updated")
}

func buildBinary(t *testing.T, version, build string) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "appversion-e2e")
	ldflags := "-X " + versionPackage + ".Version=" + version + " -X " + versionPackage + ".Build=" + build
	cmd := exec.Command("go", "build", "-ldflags", ldflags, "-o", binaryPath, "./cmd/appversion")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build appversion binary: %s", string(output))
	return binaryPath
}

func runAppVersion(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
