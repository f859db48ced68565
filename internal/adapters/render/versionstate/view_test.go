package versionstate

import (
	"testing"

	"github.com/bnema/appversion/internal/application"
	"github.com/bnema/appversion/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptor(version, build string) domain.VersionDescriptor {
	return domain.NewVersionDescriptor(domain.StringPtr(version), domain.StringPtr(build))
}

func TestRenderFreshInstall(t *testing.T) {
	output, err := Render(application.Snapshot{
		State:        domain.Installed,
		Current:      descriptor("1.7", "47"),
		FreshInstall: true,
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "App Version")
	assert.Contains(t, output, "Current App Version: 1.7(47)")
	assert.Contains(t, output, "App is fresh installed")
	assert.NotContains(t, output, "Last App Version")
}

func TestRenderUpdate(t *testing.T) {
	last := descriptor("1.0", "10")
	output, err := Render(application.Snapshot{
		State:   domain.Updated,
		Current: descriptor("1.1", "11"),
		Last:    &last,
		Updated: true,
	}, RenderOptions{Title: "Demo"})

	require.NoError(t, err)
	assert.Contains(t, output, "Demo")
	assert.Contains(t, output, "Current App Version: 1.1(11)")
	assert.Contains(t, output, "Last App Version: 1.0(10)")
	assert.Contains(t, output, "App was updated")
}

func TestRenderUnchangedWithUnknownCurrent(t *testing.T) {
	last := domain.NewVersionDescriptor(domain.StringPtr("1.0"), nil)
	output, err := Render(application.Snapshot{
		State: domain.NothingChanged,
		Last:  &last,
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Current App Version: unknown")
	assert.Contains(t, output, "Last App Version: unknown")
	assert.Contains(t, output, "Nothing changed since last launch")
}

func TestModelRevealsOneLinePerMessage(t *testing.T) {
	last := descriptor("1.0", "10")
	var m tea.Model = newModel(application.Snapshot{
		State:   domain.Updated,
		Current: descriptor("1.1", "11"),
		Last:    &last,
	}, RenderOptions{})

	assert.Empty(t, m.View())
	require.NotNil(t, m.Init())

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		m, cmd = m.Update(revealMsg{})
		require.NotNil(t, cmd)
		assert.IsType(t, revealMsg{}, cmd())
	}
	assert.Contains(t, m.View(), "Last App Version: 1.0(10)")
	assert.NotContains(t, m.View(), "App was updated")

	m, cmd = m.Update(revealMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, m.View(), "App was updated")
}
