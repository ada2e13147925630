package sections

import (
	"strings"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/components"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/content"
	"github.com/charmbracelet/lipgloss"
)

// AboutHero is the services page banner.
func AboutHero(p Props) components.Block {
	return hero(p, content.AboutHero())
}

// ContactHero is the contact page banner.
func ContactHero(p Props) components.Block {
	return hero(p, content.ContactHero())
}

func hero(p Props, h content.Hero) components.Block {
	return components.Stack(
		components.Spacer(1),
		heading(p, content.Heading{Emoji: h.Emoji, Badge: h.Badge, Lines: h.Headline, Body: h.Tagline}),
		components.Spacer(1),
		photoStack(p, h.Photos),
		components.Spacer(1),
	)
}

// Experience is the three service cards under the "SOCIAL MEDIA, CONTENT, AND STRATEGY" heading.
func Experience(p Props) components.Block {
	w := p.width()
	services := content.Services()
	inner, row := cardLayout(w, len(services), 30, cardsFit(services))
	cards := make([]components.Block, len(services))
	for i, c := range services {
		cards[i] = emojiCard(p, inner, c)
	}
	return components.Stack(
		heading(p, content.ServicesHeading()),
		components.Spacer(1),
		grid(w, row, cards),
		components.Spacer(1),
	)
}

// Schedule is the statistic strip drawn across the theme gradient.
func Schedule(p Props) components.Block {
	w := p.width()
	stats := content.Stats()

	// stat, separator, stat, separator, stat
	columns := len(stats)*2 - 1
	colWidth := w / columns
	if colWidth < 12 {
		return scheduleStacked(p, w, stats)
	}

	band := p.Theme.Band(columns)
	cells := make([]string, columns)
	for i := range cells {
		s := band[i].Width(colWidth).Height(2).Padding(1, 0).Align(lipgloss.Center)
		if i%2 == 1 {
			cells[i] = s.Render(band[i].Faint(true).Render(strings.Repeat("─", colWidth/2)))
			continue
		}
		stat := stats[i/2]
		cells[i] = s.Render(band[i].Render(stat.Label) + "\n" + band[i].Bold(true).Render(stat.Value))
	}
	return components.Center(w, components.Text(lipgloss.JoinHorizontal(lipgloss.Top, cells...)))
}

func scheduleStacked(p Props, w int, stats []content.Stat) components.Block {
	band := p.Theme.Band(len(stats))
	rows := make([]string, len(stats))
	for i, stat := range stats {
		rows[i] = band[i].Width(w).Padding(0, 1).Align(lipgloss.Center).
			Render(band[i].Render(stat.Label) + "\n" + band[i].Bold(true).Render(stat.Value))
	}
	return components.Text(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
