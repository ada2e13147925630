package console

import (
	"fmt"

	"github.com/76creates/stickers/flexbox"
	constants "github.com/ImGajeed76/growgroove/internal"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/components"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/prefs"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/sections"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/tabs"
	"github.com/ImGajeed76/growgroove/pkg/growgroove/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	wheelStep     = 3
)

var styles = struct {
	topBar      lipgloss.Style
	body        lipgloss.Style
	footer      lipgloss.Style
	title       lipgloss.Style
	inactiveTab lipgloss.Style
}{
	topBar: lipgloss.NewStyle(),
	body:   lipgloss.NewStyle(),
	footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color(constants.Theme.TertiaryColor)),
	title: lipgloss.NewStyle().
		Foreground(lipgloss.Color(constants.Theme.SecondaryColor)).
		Bold(true),
	inactiveTab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(constants.Theme.TertiaryColor)).
		Padding(0, 2),
}

// SiteOptions configure a SiteModel.
type SiteOptions struct {
	// Tab is the page shown first. Unknown ids fall back to the first tab.
	Tab      string
	Registry *theme.Registry
	// Prefs, when set, records every tab the user switches to.
	Prefs  *prefs.Store
	Logger *zap.Logger
}

// SiteModel is the interactive site: a tab bar, the scrolling page and a
// key help footer.
type SiteModel struct {
	tab    int
	state  sections.State
	focus  components.Target
	page   components.Block
	tabBar components.Block

	registry *theme.Registry
	prefs    *prefs.Store
	logger   *zap.Logger
	warned   map[string]bool

	keys     keyMap
	help     help.Model
	viewport viewport.Model

	// UI components
	flexbox *flexbox.FlexBox
	topBar  *flexbox.Cell
	body    *flexbox.Cell
	footer  *flexbox.Cell
	width   int
}

// NewSiteModel creates a SiteModel laid out for an 80x24 terminal until the
// first window size message arrives.
func NewSiteModel(opts SiteOptions) *SiteModel {
	if opts.Registry == nil {
		opts.Registry = theme.NewRegistry(nil)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	topBar := flexbox.NewCell(1, 1).SetStyle(styles.topBar)
	body := flexbox.NewCell(1, 10).SetStyle(styles.body)
	footer := flexbox.NewCell(1, 1).SetStyle(styles.footer)

	fb := flexbox.New(0, 0)
	rows := []*flexbox.Row{
		fb.NewRow().AddCells(topBar),
		fb.NewRow().AddCells(body),
		fb.NewRow().AddCells(footer),
	}
	fb.AddRows(rows)

	tab := tabs.Index(opts.Tab)
	if tab < 0 {
		if opts.Tab != "" {
			opts.Logger.Warn("unknown tab, showing the first page", zap.String("tab", opts.Tab))
		}
		tab = 0
	}

	m := &SiteModel{
		tab:      tab,
		registry: opts.Registry,
		prefs:    opts.Prefs,
		logger:   opts.Logger,
		warned:   make(map[string]bool),
		keys:     defaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(0, 0),
		flexbox:  fb,
		topBar:   topBar,
		body:     body,
		footer:   footer,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

func (m *SiteModel) Init() tea.Cmd {
	return nil
}

// Update handles one event at a time. Every event sees the state left by
// the previous one.
func (m *SiteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}
	return m, nil
}

func (m *SiteModel) View() string {
	m.body.SetContent(m.viewport.View())
	return m.flexbox.Render()
}

// Tab is the id of the page being shown.
func (m *SiteModel) Tab() string {
	return tabs.All()[m.tab].ID
}

// State is the selection of the page being shown.
func (m *SiteModel) State() sections.State {
	return m.state
}

// Focus is the keyboard-focused header, zero when nothing is focused.
func (m *SiteModel) Focus() components.Target {
	return m.focus
}

func (m *SiteModel) resize(width, height int) {
	m.width = width
	m.flexbox.SetWidth(width)
	m.flexbox.SetHeight(height)
	m.flexbox.ForceRecalculate()

	m.viewport.Width = m.body.GetWidth()
	m.viewport.Height = m.body.GetHeight()
	m.help.Width = width
	m.render()
}

func (m *SiteModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(tabs.Next(m.tab))
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(tabs.Prev(m.tab))
	case key.Matches(msg, m.keys.JumpTab):
		m.switchTab(int(msg.Runes[0] - '1'))
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Toggle):
		if !m.focus.IsZero() {
			m.toggle(m.focus)
		}
	case key.Matches(msg, m.keys.Blur):
		m.focus = components.Target{}
		m.render()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	}
	return m, nil
}

func (m *SiteModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.SetYOffset(m.viewport.YOffset - wheelStep)
	case tea.MouseButtonWheelDown:
		m.viewport.SetYOffset(m.viewport.YOffset + wheelStep)
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress {
			m.click(msg.X, msg.Y)
		}
	}
	return m, nil
}

// click maps screen coordinates to the tab bar or the page and activates
// what is under them.
func (m *SiteModel) click(x, y int) {
	top := m.topBar.GetHeight()
	if y < top {
		if t, ok := m.tabBar.Hit(x, y); ok {
			m.switchTab(t.ID)
		}
		return
	}

	rel := y - top
	if rel >= m.viewport.Height {
		return
	}
	t, ok := m.page.Hit(x, rel+m.viewport.YOffset)
	if !ok {
		return
	}
	m.focus = t
	m.toggle(t)
}

func (m *SiteModel) toggle(t components.Target) {
	switch t.Kind {
	case components.KindFAQ:
		m.state.FAQ.Toggle(t.ID)
	case components.KindPackage:
		m.state.Package.Toggle(t.ID)
	default:
		return
	}
	m.logger.Debug("toggled",
		zap.String("tab", m.Tab()),
		zap.Stringer("kind", t.Kind),
		zap.Int("id", t.ID),
	)
	m.render()
	m.scrollTo(t)
}

// switchTab shows tab i. The page left behind loses its selection.
func (m *SiteModel) switchTab(i int) {
	if i < 0 || i >= len(tabs.All()) || i == m.tab {
		return
	}
	m.tab = i
	m.state = sections.State{}
	m.focus = components.Target{}
	m.viewport.GotoTop()
	m.render()

	if m.prefs != nil {
		if err := m.prefs.SaveLastTab(m.Tab()); err != nil {
			m.logger.Warn("could not remember tab", zap.Error(err))
		}
	}
}

// moveFocus steps through the page's clickable headers, stopping at either
// end. With nothing focused, down starts at the first and up at the last.
func (m *SiteModel) moveFocus(delta int) {
	targets := m.page.Targets()
	if len(targets) == 0 {
		return
	}

	idx := -1
	for i, t := range targets {
		if t == m.focus {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(targets) - 1
	default:
		idx = max(0, min(len(targets)-1, idx+delta))
	}

	m.focus = targets[idx]
	m.render()
	m.scrollTo(m.focus)
}

// scrollTo moves the viewport the least amount that shows the top of t.
func (m *SiteModel) scrollTo(t components.Target) {
	r, ok := m.page.Region(t)
	if !ok {
		return
	}
	switch {
	case r.Y < m.viewport.YOffset:
		m.viewport.SetYOffset(r.Y)
	case r.Y+r.Height > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(min(r.Y, r.Y+r.Height-m.viewport.Height))
	}
}

func (m *SiteModel) render() {
	tab := tabs.All()[m.tab]
	th := m.registry.MustGet(tab.Theme)
	m.warnMissing(tab.Theme, th)

	m.tabBar = m.renderTabBar(th)
	m.topBar.SetContent(m.tabBar.View)

	props := sections.Props{Theme: th, Width: m.viewport.Width, Focus: m.focus}
	m.page = components.Center(m.viewport.Width, sections.Page(tab.ID, props, m.state))
	m.viewport.SetContent(m.page.View)

	m.footer.SetContent(m.help.View(m.keys))
}

func (m *SiteModel) renderTabBar(th theme.Theme) components.Block {
	title := components.Text(styles.title.Render(fmt.Sprintf("%s v%s", constants.AppName, constants.Version)))

	build := func(short, withTitle bool) components.Block {
		var cells []components.Block
		if withTitle {
			cells = append(cells, title)
		}
		for i, tab := range tabs.All() {
			label := tab.Number + " " + tab.Label
			if short {
				label = tab.Number
			}
			style := styles.inactiveTab
			if i == m.tab {
				style = th.Pill()
			}
			cells = append(cells, components.Clickable(style.Render(label),
				components.Target{Kind: components.KindTab, ID: i}))
		}
		return components.Row(1, cells...)
	}

	bar := build(false, true)
	if bar.Width() > m.width {
		bar = build(true, true)
	}
	if bar.Width() > m.width {
		bar = build(true, false)
	}
	return components.Center(m.width, bar)
}

func (m *SiteModel) warnMissing(name string, th theme.Theme) {
	if m.warned[name] {
		return
	}
	m.warned[name] = true
	if missing := th.Missing(); len(missing) > 0 {
		m.logger.Warn("theme has missing fields, rendering them unstyled",
			zap.String("theme", name),
			zap.Strings("fields", missing),
		)
	}
}
