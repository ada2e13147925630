package components

import (
	constants "github.com/ImGajeed76/growgroove/internal"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/theme"
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant picks how a button is filled.
type ButtonVariant int

const (
	// ButtonSolid is filled with the theme background.
	ButtonSolid ButtonVariant = iota
	// ButtonLight is a white button with dark text, used inside coloured cards.
	ButtonLight
	// ButtonGhost is a translucent button, rendered dimmed on the card colour.
	ButtonGhost
)

var (
	lightButton = lipgloss.NewStyle().
			Background(lipgloss.Color("#FFFFFF")).
			Foreground(lipgloss.Color("#1F2937")).
			Bold(true)
)

// BadgePill renders the small "emoji LABEL" chip above a heading.
func BadgePill(t theme.Theme, emoji, label string) string {
	return t.Pill().Render(emoji + " " + label)
}

// Button renders a full-width button of width columns. A width below the
// label length falls back to the label size.
func Button(t theme.Theme, label string, variant ButtonVariant, width int) string {
	var s lipgloss.Style
	switch variant {
	case ButtonLight:
		s = lightButton
	case ButtonGhost:
		// Same text colour as the card it sits on, without the fill.
		s = t.Background().UnsetBackground().Bold(true).Faint(true).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(constants.Theme.SecondaryColor))
		width -= 2
	default:
		s = t.Background().Bold(true)
	}
	s = s.Align(lipgloss.Center).Padding(0, 1)
	if width > lipgloss.Width(label)+2 {
		s = s.Width(width)
	}
	return s.Render(label)
}
