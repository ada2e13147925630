package sections

import (
	"strings"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/components"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/content"
	"github.com/charmbracelet/lipgloss"
)

// Pricing is the contact page body: the two offer cards and the direct
// contact panel.
func Pricing(p Props) components.Block {
	w := p.width()
	offers := content.Offers()
	var words []string
	for _, o := range offers {
		words = append(words, o.Title, o.Price, o.CTA, o.Featured)
		words = append(words, o.Items...)
	}
	fit := wordFit(offerPad, words...)
	inner, _ := cardLayout(w, len(offers), 44, fit)
	cards := make([]components.Block, len(offers))
	for i, o := range offers {
		cards[i] = offerCard(p, o, inner)
	}
	return components.Stack(
		heading(p, content.PricingHeading()),
		components.Spacer(1),
		pairs(w, 44, fit, cards),
		components.Spacer(2),
		DirectContact(p),
		components.Spacer(1),
	)
}

// offerPad is the horizontal padding inside an offer card.
const offerPad = 6

func offerCard(p Props, o content.Offer, inner int) components.Block {
	bodyWidth := inner - offerPad
	lines := []string{}
	if o.Featured != "" {
		lines = append(lines, paperStyle.Width(bodyWidth).Align(lipgloss.Right).Render(
			p.Theme.Background().Bold(true).Padding(0, 1).Render(o.Featured)))
	}
	lines = append(lines,
		paperTitle.Render(o.Title),
		"",
		p.Theme.Foreground().Background(lipgloss.Color("#FFFFFF")).Bold(true).Render(o.Price),
		"",
		paperStyle.Width(bodyWidth).Render(strings.Join(o.Items, "\n")),
		"",
		components.Button(p.Theme, o.CTA, components.ButtonSolid, bodyWidth),
	)

	body := paperStyle.Padding(1, 3).Width(inner).Render(strings.Join(lines, "\n"))
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#F3F4F6")).
		Render(body)
	return components.Text(card)
}

// DirectContact is the gradient panel listing the contact channels.
func DirectContact(p Props) components.Block {
	w := p.width()
	channels := content.Channels()
	n := len(channels)
	band := p.Theme.Band(n)
	colWidth := w / n

	title := lipgloss.NewStyle().Bold(true).Width(w).Align(lipgloss.Center)
	if c, ok := p.Theme.Sample(0.5); ok {
		title = title.Background(c).Foreground(lipgloss.Color("#FFFFFF"))
	}

	if colWidth < 20 {
		rows := make([]string, n)
		for i, ch := range channels {
			rows[i] = channel(band[i], w, ch)
		}
		return components.Text(lipgloss.JoinVertical(lipgloss.Left,
			append([]string{title.Padding(1, 0).Render(content.DirectContactTitle)}, rows...)...))
	}

	cells := make([]string, n)
	for i, ch := range channels {
		width := colWidth
		if i == n-1 {
			width = w - colWidth*(n-1)
		}
		cells[i] = channel(band[i], width, ch)
	}
	return components.Text(lipgloss.JoinVertical(lipgloss.Left,
		title.Padding(1, 0).Render(content.DirectContactTitle),
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
	))
}

func channel(s lipgloss.Style, width int, ch content.Channel) string {
	return s.Width(width).Padding(1, 1).Align(lipgloss.Center).Render(strings.Join([]string{
		ch.Emoji,
		s.Bold(true).Render(ch.Label),
		s.Render(ch.Value),
	}, "\n"))
}
