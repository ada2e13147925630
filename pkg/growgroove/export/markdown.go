// Package export turns the site pages into Markdown documents and renders
// them for the terminal.
package export

import (
	"fmt"
	"strings"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/content"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/tabs"
	"github.com/charmbracelet/glamour"
)

// Markdown returns the copy of a page as a Markdown document. A document has
// no collapsed state, so every FAQ answer and package feature is included.
func Markdown(tabID string) (string, error) {
	tab, err := tabs.Lookup(tabID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", tab.Number, tab.Label)

	switch tab.ID {
	case tabs.About:
		writeHero(&b, content.AboutHero())
		writeStats(&b)
		writeHeading(&b, content.ServicesHeading())
		writeCards(&b, content.Services())
		writeFAQ(&b)
	case tabs.Agenda:
		writeHeading(&b, content.PackagesHeading())
		writePackages(&b)
		writeHeading(&b, content.WhyHeading())
		writeCards(&b, content.Highlights())
	case tabs.Tickets:
		writeHero(&b, content.ContactHero())
		writeHeading(&b, content.PricingHeading())
		writeOffers(&b)
		writeChannels(&b)
	}
	return b.String(), nil
}

// Index is the landing document linking every page.
func Index() string {
	var b strings.Builder
	b.WriteString("# Growgroove\n\n")
	for _, tab := range tabs.All() {
		fmt.Fprintf(&b, "- [%s %s](%s)\n", tab.Number, tab.Label, FileName(tab.ID))
	}
	return b.String()
}

// FileName is the document name a page is published under.
func FileName(tabID string) string {
	return tabID + ".md"
}

// Render renders Markdown for a terminal. style is a glamour standard style
// name ("dark", "light", "notty", ...) or "auto" to detect the terminal.
func Render(markdown, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

func writeHero(b *strings.Builder, h content.Hero) {
	writeHeading(b, content.Heading{Emoji: h.Emoji, Badge: h.Badge, Lines: h.Headline, Body: h.Tagline})
	if len(h.Photos) > 0 {
		for _, p := range h.Photos {
			fmt.Fprintf(b, "- 🖼 %s\n", p)
		}
		b.WriteString("\n")
	}
}

func writeHeading(b *strings.Builder, h content.Heading) {
	fmt.Fprintf(b, "`%s %s`\n\n", h.Emoji, h.Badge)
	fmt.Fprintf(b, "## %s\n\n", strings.Join(h.Lines, " "))
	if h.Body != "" {
		fmt.Fprintf(b, "%s\n\n", h.Body)
	}
}

func writeStats(b *strings.Builder) {
	b.WriteString("| ")
	stats := content.Stats()
	labels := make([]string, len(stats))
	values := make([]string, len(stats))
	sep := make([]string, len(stats))
	for i, s := range stats {
		labels[i] = s.Label
		values[i] = "**" + s.Value + "**"
		sep[i] = "---"
	}
	b.WriteString(strings.Join(labels, " | "))
	b.WriteString(" |\n| ")
	b.WriteString(strings.Join(sep, " | "))
	b.WriteString(" |\n| ")
	b.WriteString(strings.Join(values, " | "))
	b.WriteString(" |\n\n")
}

func writeCards(b *strings.Builder, cards []content.Card) {
	for _, c := range cards {
		fmt.Fprintf(b, "### %s %s\n\n%s\n\n", c.Emoji, c.Title, c.Body)
	}
}

func writeFAQ(b *strings.Builder) {
	writeHeading(b, content.FAQHeading())
	for _, e := range content.FAQs() {
		fmt.Fprintf(b, "### %s\n\n%s\n\n", e.Question, e.Answer)
	}
}

func writePackages(b *strings.Builder) {
	for _, p := range content.Packages() {
		fmt.Fprintf(b, "### %s · %s\n\n_%s_\n\n", p.Name, p.Price, p.Description)
		for _, f := range p.Features {
			fmt.Fprintf(b, "- ✓ %s\n", f)
		}
		b.WriteString("\n")
	}
}

func writeOffers(b *strings.Builder) {
	for _, o := range content.Offers() {
		title := o.Title
		if o.Featured != "" {
			title += " (" + o.Featured + ")"
		}
		fmt.Fprintf(b, "### %s\n\n**%s**\n\n", title, o.Price)
		for _, item := range o.Items {
			fmt.Fprintf(b, "- %s\n", item)
		}
		fmt.Fprintf(b, "\n%s\n\n", o.CTA)
	}
}

func writeChannels(b *strings.Builder) {
	fmt.Fprintf(b, "## %s\n\n", content.DirectContactTitle)
	for _, c := range content.Channels() {
		fmt.Fprintf(b, "- %s **%s**: %s\n", c.Emoji, c.Label, c.Value)
	}
	b.WriteString("\n")
}
