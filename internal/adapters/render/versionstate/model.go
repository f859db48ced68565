package versionstate

import (
	"errors"
	"io"

	"github.com/bnema/appversion/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrUnexpectedModel = errors.New("render finished with a foreign model")

// revealMsg asks the model to show the next line of the snapshot.
type revealMsg struct{}

func reveal() tea.Msg {
	return revealMsg{}
}

// model reveals the snapshot one line at a time: the title, the current
// descriptor, the last descriptor or fresh install notice, then the state.
type model struct {
	lines []string
	shown int
}

func newModel(snapshot application.Snapshot, opts RenderOptions) model {
	return model{lines: viewLines(snapshot, opts, newStyles())}
}

func (m model) Init() tea.Cmd {
	if len(m.lines) == 0 {
		return tea.Quit
	}

	return reveal
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(revealMsg); !ok {
		return m, nil
	}

	if m.shown < len(m.lines) {
		m.shown++
	}
	if m.done() {
		return m, tea.Quit
	}

	return m, reveal
}

func (m model) done() bool {
	return m.shown >= len(m.lines)
}

func (m model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.lines[:m.shown]...)
}

func Render(snapshot application.Snapshot, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(snapshot, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := final.(model)
	if !ok {
		return "", ErrUnexpectedModel
	}

	return rendered.View(), nil
}
