package growgroove

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/content"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/tabs"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out, err := Render(tabs.About, nil, 90, Selection{FAQ: 3})
	require.NoError(t, err)

	text := strings.Join(strings.Fields(ansi.Strip(out)), " ")
	third, err := content.FAQByID(3)
	require.NoError(t, err)
	assert.Contains(t, text, third.Question)
	assert.Contains(t, text, "×")
}

func TestRenderPackage(t *testing.T) {
	out, err := Render(tabs.Agenda, nil, 40, Selection{Package: 1})
	require.NoError(t, err)
	text := ansi.Strip(out)
	assert.Contains(t, text, content.GetStarted)
	assert.Equal(t, 2, strings.Count(text, content.LearnMore))
}

func TestRenderUnknownTab(t *testing.T) {
	_, err := Render("blog", nil, 80, Selection{})
	assert.ErrorIs(t, err, tabs.ErrUnknownTab)
}

func TestRunQuits(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Options{
		ProgramOptions: []tea.ProgramOption{
			tea.WithInput(strings.NewReader("q")),
			tea.WithOutput(&out),
		},
	})
	assert.NoError(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	err := Run(ctx, Options{
		ProgramOptions: []tea.ProgramOption{
			tea.WithInput(nil),
			tea.WithOutput(&out),
		},
	})
	assert.NoError(t, err)
}
