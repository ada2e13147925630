// Package sections renders the page sections of the Growgroove site.
//
// Every section is a pure function of its Props and, for the accordion
// sections, the caller's selection. Nothing here keeps state.
package sections

import (
	"strings"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/components"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/content"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/theme"
	"github.com/charmbracelet/lipgloss"
)

const (
	// MaxWidth caps how wide a section grows on large terminals.
	MaxWidth = 110
	// MinWidth is the narrowest layout sections are designed for.
	MinWidth = 24

	cardGap = 2
	// Horizontal padding inside colour cards and package cards.
	colorPad   = 4
	packagePad = 4
)

// Props is what every section receives from the page.
type Props struct {
	Theme theme.Theme
	// Width is the number of columns available.
	Width int
	// Focus is the keyboard-focused header, if any.
	Focus components.Target
}

func (p Props) width() int {
	w := p.Width
	if w > MaxWidth {
		w = MaxWidth
	}
	if w < MinWidth {
		w = MinWidth
	}
	return w
}

func (p Props) focused(t components.Target) bool {
	return !p.Focus.IsZero() && p.Focus == t
}

var (
	headlineStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	bodyStyle     = lipgloss.NewStyle().Align(lipgloss.Center)

	paperStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FFFFFF")).
			Foreground(lipgloss.Color("#374151"))
	paperTitle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FFFFFF")).
			Foreground(lipgloss.Color("#1F2937")).
			Bold(true)
)

// heading renders a badge pill followed by the title lines and optional body.
func heading(p Props, h content.Heading) components.Block {
	w := p.width()
	parts := []components.Block{
		components.Center(w, components.Text(components.BadgePill(p.Theme, h.Emoji, h.Badge))),
		components.Spacer(1),
		components.Center(w, components.Text(
			p.Theme.Foreground().Inherit(headlineStyle).Render(strings.Join(h.Lines, "\n")))),
	}
	if h.Body != "" {
		parts = append(parts,
			components.Spacer(1),
			components.Center(w, components.Text(
				p.Theme.Foreground().Inherit(bodyStyle).Width(textWidth(w)).Render(h.Body))),
		)
	}
	return components.Stack(parts...)
}

// wordFit is the inner width that keeps the longest word of texts on one
// line with pad columns of padding around it.
func wordFit(pad int, texts ...string) int {
	longest := 0
	for _, t := range texts {
		for _, word := range strings.Fields(t) {
			longest = max(longest, lipgloss.Width(word))
		}
	}
	return longest + pad
}

func cardsFit(cards []content.Card) int {
	var words []string
	for _, c := range cards {
		words = append(words, c.Title, c.Body)
	}
	return wordFit(colorPad, words...)
}

// textWidth is the measure for running copy inside w columns.
func textWidth(w int) int {
	if w > 72 {
		return 72
	}
	return w
}

// cardLayout picks the inner width for n cards across width columns and
// whether they fit side by side. Inner width excludes the 2 border columns.
// Cards stay in a row only while each is at least minInner wide, so no word
// of their copy has to be split.
func cardLayout(width, n, maxInner, minInner int) (inner int, row bool) {
	inner = (width-cardGap*(n-1))/n - 2
	if inner >= max(20, minInner) {
		if inner > maxInner {
			inner = maxInner
		}
		return inner, true
	}
	inner = width - 2
	if inner > maxInner {
		inner = maxInner
	}
	return inner, false
}

// grid lays cards out in a row when they fit, otherwise stacks them.
func grid(width int, row bool, cards []components.Block) components.Block {
	if row {
		return components.Center(width, components.Row(cardGap, cards...))
	}
	stacked := make([]components.Block, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			stacked = append(stacked, components.Spacer(1))
		}
		stacked = append(stacked, components.Center(width, c))
	}
	return components.Stack(stacked...)
}

// pairs lays cards out two per row when they fit.
func pairs(width, maxInner, minInner int, cards []components.Block) components.Block {
	_, row := cardLayout(width, 2, maxInner, minInner)
	if !row {
		return grid(width, false, cards)
	}
	var rows []components.Block
	for i := 0; i < len(cards); i += 2 {
		if i > 0 {
			rows = append(rows, components.Spacer(1))
		}
		end := i + 2
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, grid(width, true, cards[i:end]))
	}
	return components.Stack(rows...)
}

// colorCard is a theme-filled card outlined in the shadow colour.
func colorCard(p Props, inner int, border lipgloss.Border, body string) string {
	filled := p.Theme.Background().
		Padding(1, 2).
		Width(inner).
		Align(lipgloss.Center).
		Render(body)
	return p.Theme.Border(border).Render(filled)
}

// emojiCard renders an emoji, a title and a blurb on the theme colour.
func emojiCard(p Props, inner int, c content.Card) components.Block {
	body := strings.Join([]string{
		c.Emoji,
		"",
		p.Theme.Background().Bold(true).Render(c.Title),
		"",
		c.Body,
	}, "\n")
	return components.Text(colorCard(p, inner, lipgloss.RoundedBorder(), body))
}

// photoStack draws the stacked polaroid captions under a hero headline.
func photoStack(p Props, captions []string) components.Block {
	w := p.width()
	frames := make([]components.Block, 0, len(captions))
	for i, caption := range captions {
		frame := paperStyle.
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#E5E7EB")).
			Render("🖼  " + caption)
		// Stagger the frames so they read as a pile.
		frames = append(frames, components.Stack(components.Spacer(i), components.Text(frame)))
	}
	row := components.Row(1, frames...)
	if row.Width() > w {
		return grid(w, false, frames)
	}
	return components.Center(w, row)
}
