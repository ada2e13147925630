package sections

import (
	"github.com/ImGajeed76/growgroove/pkg/growgroove/accordion"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/components"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/content"
	"github.com/charmbracelet/lipgloss"
)

const (
	iconClosed = "+"
	iconOpen   = "×"
	faqMax     = 90
)

// FAQ is the "KNOW BEFORE YOU GROW" accordion. Only the open entry shows its
// answer, and every question header is a click target.
func FAQ(p Props, open accordion.Selection) components.Block {
	w := p.width()
	itemWidth := w
	if itemWidth > faqMax {
		itemWidth = faqMax
	}

	items := []components.Block{heading(p, content.FAQHeading()), components.Spacer(1)}
	for i, entry := range content.FAQs() {
		if i > 0 {
			items = append(items, components.Spacer(1))
		}
		items = append(items, components.Center(w, faqItem(p, entry, open.IsOpen(entry.ID), itemWidth)))
	}
	items = append(items, components.Spacer(1))
	return components.Stack(items...)
}

func faqItem(p Props, entry content.FAQEntry, isOpen bool, width int) components.Block {
	target := components.Target{Kind: components.KindFAQ, ID: entry.ID}

	marker := " "
	if p.focused(target) {
		marker = p.Theme.Highlight().Render("▌")
	}

	icon := iconClosed
	if isOpen {
		icon = iconOpen
	}

	// marker column + header padding (2 each side) + gap + icon
	questionWidth := width - 1 - 4 - 2 - lipgloss.Width(icon)
	bar := p.Theme.Background().Bold(true)
	question := bar.Width(questionWidth).Render(entry.Question)
	header := bar.Padding(1, 2).Width(width - 1).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, question, bar.Render("  "), bar.Render(icon)))

	headerBlock := components.Clickable(
		lipgloss.JoinHorizontal(lipgloss.Top, markerColumn(marker, lipgloss.Height(header)), header),
		target,
	)
	if !isOpen {
		return headerBlock
	}

	answer := paperStyle.Padding(1, 2).Width(width - 1).Render(entry.Answer)
	return components.Stack(headerBlock, components.Row(0, components.Text(markerColumn(" ", 1)), components.Text(answer)))
}

// markerColumn repeats marker down h lines.
func markerColumn(marker string, h int) string {
	lines := make([]string, h)
	for i := range lines {
		lines[i] = marker
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
