package console

import (
	"testing"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/theme"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name          string
		defaultYes    bool
		keys          []tea.KeyMsg
		wantYes       bool
		wantCancelled bool
	}{
		{name: "enter keeps default yes", defaultYes: true, keys: []tea.KeyMsg{{Type: tea.KeyEnter}}, wantYes: true},
		{name: "enter keeps default no", keys: []tea.KeyMsg{{Type: tea.KeyEnter}}},
		{name: "arrow flips", defaultYes: true, keys: []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyEnter}}},
		{name: "y answers", keys: []tea.KeyMsg{runes("y")}, wantYes: true},
		{name: "n answers", defaultYes: true, keys: []tea.KeyMsg{runes("n")}},
		{name: "esc cancels", defaultYes: true, keys: []tea.KeyMsg{{Type: tea.KeyEsc}}, wantYes: true, wantCancelled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = confirmModel{prompt: "Overwrite?", yes: tt.defaultYes}
			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = m.Update(k)
			}
			got := m.(confirmModel)
			if got.yes != tt.wantYes {
				t.Errorf("yes = %v, want %v", got.yes, tt.wantYes)
			}
			if got.cancelled != tt.wantCancelled {
				t.Errorf("cancelled = %v, want %v", got.cancelled, tt.wantCancelled)
			}
			if cmd == nil {
				t.Fatal("expected the last key to quit")
			}
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestConfirmModelIgnoresOtherMessages(t *testing.T) {
	m, cmd := confirmModel{prompt: "Overwrite?", yes: true}.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, confirmModel{prompt: "Overwrite?", yes: true}, m)
}

func TestConfirmView(t *testing.T) {
	view := ansi.Strip(confirmModel{prompt: "Overwrite site?"}.View())
	assert.Contains(t, view, "Overwrite site?")
	assert.Contains(t, view, "Yes  No")
}

func TestPasswordModel(t *testing.T) {
	var m tea.Model = newPasswordModel("Password for deploy@example.com")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.(passwordModel).empty, "empty password is refused")
	assert.Contains(t, ansi.Strip(m.View()), "A password is required")

	m, _ = m.Update(runes("s3cret"))
	assert.False(t, m.(passwordModel).empty)
	assert.NotContains(t, ansi.Strip(m.View()), "s3cret")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "s3cret", m.(passwordModel).input.Value())
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPasswordModelCancel(t *testing.T) {
	var m tea.Model = newPasswordModel("Password")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.(passwordModel).cancelled)
}

func TestProgressModel(t *testing.T) {
	th, err := theme.Lookup("blue")
	assert.NoError(t, err)

	var m tea.Model = newProgressModel(th)
	m, cmd := m.Update(ProgressStep{Name: "agenda.md", Done: 3, Total: 4})
	assert.NotNil(t, cmd)

	got := m.(progressModel)
	assert.Equal(t, 0.75, got.bar.Percent())
	assert.Contains(t, ansi.Strip(got.View()), "3/4 agenda.md")

	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Equal(t, 30-progressPadding*2-4, m.(progressModel).bar.Width)
}

func TestProgressModelWithoutGradient(t *testing.T) {
	m := newProgressModel(theme.Theme{})
	assert.IsType(t, progress.Model{}, m.bar)
	assert.NotEmpty(t, m.View())
}
