package console

import (
	"fmt"
	"strings"

	"github.com/ImGajeed76/growgroove/pkg/growgroove/theme"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	progressPadding  = 2
	progressMaxWidth = 60
)

// ProgressStep reports that done of total files are written, the last one
// being name.
type ProgressStep struct {
	Name  string
	Done  int
	Total int
}

// ProgressBar shows publishing progress until Finish is called.
type ProgressBar struct {
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewProgressBar starts a bar coloured with the theme's gradient.
func NewProgressBar(t theme.Theme, opts ...tea.ProgramOption) *ProgressBar {
	b := &ProgressBar{
		program: tea.NewProgram(newProgressModel(t), opts...),
		done:    make(chan struct{}),
	}
	go func() {
		defer close(b.done)
		_, b.err = b.program.Run()
	}()
	return b
}

// Step forwards one progress update to the bar.
func (b *ProgressBar) Step(name string, done, total int) {
	b.program.Send(ProgressStep{Name: name, Done: done, Total: total})
}

// Finish stops the bar and waits for it to leave the terminal.
func (b *ProgressBar) Finish() error {
	b.program.Quit()
	<-b.done
	return b.err
}

type progressModel struct {
	bar  progress.Model
	last ProgressStep
}

func newProgressModel(t theme.Theme) progressModel {
	opts := []progress.Option{progress.WithWidth(progressMaxWidth)}
	if stops := t.Stops(); len(stops) >= 2 {
		opts = append(opts, progress.WithGradient(stops[0].Hex(), stops[len(stops)-1].Hex()))
	} else {
		opts = append(opts, progress.WithDefaultGradient())
	}
	return progressModel{bar: progress.New(opts...)}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-progressPadding*2-4, progressMaxWidth)
		return m, nil

	case ProgressStep:
		m.last = msg
		percent := 0.0
		if msg.Total > 0 {
			percent = float64(msg.Done) / float64(msg.Total)
		}
		return m, m.bar.SetPercent(percent)

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	pad := strings.Repeat(" ", progressPadding)
	status := ""
	if m.last.Total > 0 {
		status = hintStyle.Render(fmt.Sprintf("%d/%d %s", m.last.Done, m.last.Total, m.last.Name))
	}
	return "\n" + pad + m.bar.View() + "\n" + pad + status + "\n"
}
