package sections

import (
	"strings"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/accordion"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/components"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/content"
	"github.com/charmbracelet/lipgloss"
)

// Agenda is the packages page: the package picker followed by the
// "WHAT SETS US APART" highlights.
func Agenda(p Props, selected accordion.Selection) components.Block {
	w := p.width()
	return components.Stack(
		components.Spacer(1),
		heading(p, content.PackagesHeading()),
		components.Spacer(1),
		Packages(p, selected),
		components.Spacer(2),
		heading(p, content.WhyHeading()),
		components.Spacer(1),
		highlights(p, w),
		components.Spacer(1),
	)
}

// Packages renders one card per service package. The selected card lists its
// features and a GET STARTED button; the others offer LEARN MORE.
func Packages(p Props, selected accordion.Selection) components.Block {
	w := p.width()
	pkgs := content.Packages()
	var words []string
	for _, pkg := range pkgs {
		words = append(words, pkg.Name, pkg.Description, pkg.Price, content.GetStarted, content.LearnMore)
		for _, f := range pkg.Features {
			words = append(words, "✓ "+f)
		}
	}
	inner, row := cardLayout(w, len(pkgs), 32, wordFit(packagePad, words...))
	cards := make([]components.Block, len(pkgs))
	for i, pkg := range pkgs {
		cards[i] = PackageCard(p, pkg, selected.IsOpen(pkg.ID), inner)
	}
	return grid(w, row, cards)
}

// PackageCard renders a single card of inner columns. The whole card is the
// click target.
func PackageCard(p Props, pkg content.ServicePackage, isSelected bool, inner int) components.Block {
	target := components.Target{Kind: components.KindPackage, ID: pkg.ID}
	fill := p.Theme.Background()
	bodyWidth := inner - packagePad

	lines := []string{
		fill.Bold(true).Render(pkg.Name),
		fill.Faint(true).Width(bodyWidth).Align(lipgloss.Center).Render(pkg.Description),
		"",
		fill.Bold(true).Render(pkg.Price),
		"",
	}
	if isSelected {
		features := make([]string, len(pkg.Features))
		for i, f := range pkg.Features {
			features[i] = "✓ " + f
		}
		lines = append(lines,
			fill.Width(bodyWidth).Align(lipgloss.Left).Render(strings.Join(features, "\n")),
			"",
			components.Button(p.Theme, content.GetStarted, components.ButtonLight, bodyWidth),
		)
	} else {
		lines = append(lines, components.Button(p.Theme, content.LearnMore, components.ButtonGhost, bodyWidth))
	}

	focused := p.focused(target)
	border := lipgloss.RoundedBorder()
	switch {
	case isSelected:
		border = lipgloss.ThickBorder()
	case focused:
		border = lipgloss.DoubleBorder()
	}
	card := p.Theme.Border(border)
	if focused {
		card = card.BorderForeground(p.Theme.Highlight().GetForeground())
	}

	filled := fill.Padding(1, 2).Width(inner).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
	return components.Clickable(card.Render(filled), target)
}

func highlights(p Props, w int) components.Block {
	items := content.Highlights()
	fit := cardsFit(items)
	inner, _ := cardLayout(w, 2, 40, fit)
	cards := make([]components.Block, len(items))
	for i, c := range items {
		cards[i] = emojiCard(p, inner, c)
	}
	return pairs(w, 40, fit, cards)
}
