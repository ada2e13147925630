package export

import (
	"strings"
	"testing"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/content"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/tabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownAbout(t *testing.T) {
	md, err := Markdown(tabs.About)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(md, "# 01 SERVICES\n"))
	for _, e := range content.FAQs() {
		assert.Contains(t, md, "### "+e.Question+"\n\n"+e.Answer+"\n")
	}
	for _, s := range content.Stats() {
		assert.Contains(t, md, s.Label)
		assert.Contains(t, md, "**"+s.Value+"**")
	}
	assert.Contains(t, md, "## GROW YOUR BRAND WITH GROWGROOVE'S DIGITAL MARKETING EXPERTISE")
}

func TestMarkdownAgenda(t *testing.T) {
	md, err := Markdown(tabs.Agenda)
	require.NoError(t, err)

	for _, p := range content.Packages() {
		assert.Contains(t, md, "### "+p.Name+" · "+p.Price)
		for _, f := range p.Features {
			assert.Contains(t, md, "- ✓ "+f+"\n")
		}
	}
	for _, h := range content.Highlights() {
		assert.Contains(t, md, h.Title)
		assert.Contains(t, md, h.Body)
	}
}

func TestMarkdownTickets(t *testing.T) {
	md, err := Markdown(tabs.Tickets)
	require.NoError(t, err)

	assert.Contains(t, md, "🔥 POPULAR")
	assert.Contains(t, md, "📅 Book Now")
	for _, c := range content.Channels() {
		assert.Contains(t, md, c.Value)
	}
}

func TestMarkdownUnknownTab(t *testing.T) {
	_, err := Markdown("blog")
	assert.ErrorIs(t, err, tabs.ErrUnknownTab)
}

func TestIndex(t *testing.T) {
	idx := Index()
	assert.Contains(t, idx, "[01 SERVICES](about.md)")
	assert.Contains(t, idx, "[02 PACKAGES](agenda.md)")
	assert.Contains(t, idx, "[03 CONTACT](tickets.md)")
}

func TestRender(t *testing.T) {
	md, err := Markdown(tabs.Agenda)
	require.NoError(t, err)

	out, err := Render(md, "notty", 80)
	require.NoError(t, err)
	assert.Contains(t, out, "STARTER")
	assert.Contains(t, out, "Quarterly Strategy Reviews")
}
