package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Panel         lipgloss.Style
	PanelTitle    lipgloss.Style
	Popup         lipgloss.Style
	Chip          lipgloss.Style
	ChipFocused   lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	NavItem       lipgloss.Style
	Badge         lipgloss.Style
	Price         lipgloss.Style
	Seller        lipgloss.Style
	Finished      lipgloss.Style
	Tag           lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:  lipgloss.NewStyle().Faint(true),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237")).
			Padding(0, 1),
		ChipFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("214")).
			Padding(0, 1),
		Tab:           lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		TabActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 1),
		NavItem:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Badge:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Price:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Seller:        lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		Finished:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Tag:           lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
