package versionstate

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	fresh   lipgloss.Style
	updated lipgloss.Style
	steady  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		value:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		fresh:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		updated: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		steady:  lipgloss.NewStyle().Faint(true),
	}
}
