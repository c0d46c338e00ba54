package ui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the host and the built-in views.
var (
	Primary      = lipgloss.Color("212")
	Error        = lipgloss.Color("196")
	Muted        = lipgloss.Color("241")
	BgSecondary  = lipgloss.Color("235")
	BorderNormal = lipgloss.Color("240")
)

// Button styles
var (
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	ButtonDangerFocused = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(Error).
				Bold(true).
				Padding(0, 2)
)

// Text styles
var (
	Title     = lipgloss.NewStyle().Bold(true)
	MutedText = lipgloss.NewStyle().Foreground(Muted)
)

// List styles
var (
	ListItemNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	ListItemFocused = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	ListCursor = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	ListMatch = lipgloss.NewStyle().
			Foreground(Primary).
			Underline(true)
)

// Styles are the host's styling hooks. They change how the backdrop and
// the dialog frame look and nothing else.
type Styles struct {
	// Backdrop is applied to every line behind the dialog.
	Backdrop lipgloss.Style
	// Root frames the mounted view.
	Root lipgloss.Style
	// Dim keeps the app visible (colors stripped, Backdrop applied). When
	// false the backdrop is a blank fill.
	Dim bool
}

// DefaultStyles returns a dimmed backdrop and a rounded dialog frame.
func DefaultStyles() Styles {
	return Styles{
		Backdrop: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Root: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2),
		Dim: true,
	}
}
