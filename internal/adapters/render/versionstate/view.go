package versionstate

import (
	"github.com/bnema/appversion/internal/application"
	"github.com/bnema/appversion/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const defaultTitle = "App Version"

type RenderOptions struct {
	Title string
}

func viewLines(snapshot application.Snapshot, opts RenderOptions, s styles) []string {
	title := opts.Title
	if title == "" {
		title = defaultTitle
	}

	lines := []string{
		s.title.Render(title),
		labeled("Current App Version: ", snapshot.Current, s),
	}

	if snapshot.Last == nil {
		return append(lines, s.fresh.Render("App is fresh installed"))
	}

	return append(lines,
		labeled("Last App Version: ", *snapshot.Last, s),
		stateLine(snapshot.State, s),
	)
}

func labeled(label string, descriptor domain.VersionDescriptor, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label), s.value.Render(descriptor.String()))
}

func stateLine(state domain.ResolutionState, s styles) string {
	switch state {
	case domain.Installed:
		return s.fresh.Render("App is fresh installed")
	case domain.Updated:
		return s.updated.Render("App was updated")
	default:
		return s.steady.Render("Nothing changed since last launch")
	}
}
