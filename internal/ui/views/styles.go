package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Prompt        lipgloss.Style
	Section       lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Cursor        lipgloss.Style
	ResultTitle   lipgloss.Style
	Subtitle      lipgloss.Style
	Thumbnail     lipgloss.Style
	HighlightBg   lipgloss.Style
	Selected      lipgloss.Style
	HistoryEntry  lipgloss.Style
	ErrorBanner   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusWarning lipgloss.Style
	HelpBox       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Help:    lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ResultTitle: lipgloss.NewStyle().Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Thumbnail:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Underline(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("78")).
			PaddingLeft(1),
		HistoryEntry:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ErrorBanner:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),            // gray
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),            // yellow
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
	}
}
