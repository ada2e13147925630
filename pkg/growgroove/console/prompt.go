package console

import (
	"errors"
	"strings"

	constants "github.com/ImGajeed76/growgroove/internal"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user leaves a prompt with esc or ctrl+c.
var ErrCancelled = errors.New("input cancelled")

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.Theme.PrimaryColor)).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.Theme.PrimaryColor)).
			Bold(true).
			Underline(true)

	unselectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.Theme.TertiaryColor))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.Theme.ErrorColor)).
			Italic(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.Theme.TertiaryColor)).
			Italic(true)
)

// Confirm asks a yes/no question. defaultYes decides what enter picks
// before the user moves.
func Confirm(prompt string, defaultYes bool, opts ...tea.ProgramOption) (bool, error) {
	final, err := tea.NewProgram(confirmModel{prompt: prompt, yes: defaultYes}, opts...).Run()
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.cancelled {
		return false, ErrCancelled
	}
	return m.yes, nil
}

type confirmModel struct {
	prompt    string
	yes       bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "right", "h", "l", "tab":
		m.yes = !m.yes
	case "y":
		m.yes = true
		return m, tea.Quit
	case "n":
		m.yes = false
		return m, tea.Quit
	case "enter":
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	yes, no := unselectedStyle, unselectedStyle
	if m.yes {
		yes = selectedStyle
	} else {
		no = selectedStyle
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(m.prompt))
	b.WriteString("\n\n")
	b.WriteString(yes.Render("Yes"))
	b.WriteString("  ")
	b.WriteString(no.Render("No"))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("(←/→ to move, y/n or enter to answer, esc to cancel)"))
	b.WriteString("\n")
	return b.String()
}

// Password reads a secret without echoing it. An empty answer is refused.
func Password(prompt string, opts ...tea.ProgramOption) (string, error) {
	final, err := tea.NewProgram(newPasswordModel(prompt), opts...).Run()
	if err != nil {
		return "", err
	}
	m := final.(passwordModel)
	if m.cancelled {
		return "", ErrCancelled
	}
	return m.input.Value(), nil
}

type passwordModel struct {
	prompt    string
	input     textinput.Model
	cancelled bool
	empty     bool
}

func newPasswordModel(prompt string) passwordModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 256
	ti.Width = 32
	ti.Focus()
	return passwordModel{prompt: prompt, input: ti}
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			if m.input.Value() == "" {
				m.empty = true
				return m, nil
			}
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	m.empty = false
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m passwordModel) View() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render(m.prompt))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.empty {
		b.WriteString(errorStyle.Render("A password is required"))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("(esc to cancel)"))
	b.WriteString("\n")
	return b.String()
}
