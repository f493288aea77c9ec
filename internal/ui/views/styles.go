package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Section     lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	Match       lipgloss.Style
	Tag         lipgloss.Style
	ClipMarker  lipgloss.Style
	Dim         lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
	Prompt      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Section: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true),
		Row:         lipgloss.NewStyle(),
		SelectedRow: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Match: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
		Tag:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		ClipMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Dim:        lipgloss.NewStyle().Faint(true),
		Help:       lipgloss.NewStyle().Faint(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	}
}
