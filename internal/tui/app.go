// Package tui provides the terminal dashboard.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/wispmon/internal/model"
	"github.com/user/wispmon/internal/source"
	"github.com/user/wispmon/internal/util"
	"github.com/user/wispmon/internal/view"
)

const noticeTTL = 5 * time.Second

// App is the main TUI application.
type App struct {
	src     source.Source
	actions source.ActionSender
	config  *util.Config
}

// NewApp creates a new TUI application over the given snapshot source.
func NewApp(src source.Source, actions source.ActionSender, cfg *util.Config) *App {
	return &App{
		src:     src,
		actions: actions,
		config:  cfg,
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(newAppModel(a.src, a.actions, a.config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// pendingAction is an action awaiting y/n confirmation.
type pendingAction struct {
	action   string
	routerID string
	name     string
}

// appModel is the main bubbletea model.
type appModel struct {
	src     source.Source
	actions source.ActionSender
	config  *util.Config

	vw       *view.View
	spinner  spinner.Model
	location textinput.Model

	ready       bool
	busy        bool
	searching   bool
	showDetail  bool
	cursor      int
	confirm     *pendingAction
	notice      string
	noticeErr   bool
	noticeSeq   int
	lastUpdated time.Time
	width       int
	height      int
}

func newAppModel(src source.Source, actions source.ActionSender, cfg *util.Config) appModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Placeholder = "location"
	ti.CharLimit = 40
	ti.Width = 20

	pageSize := view.DefaultPageSize
	if cfg != nil && cfg.PageSize > 0 {
		pageSize = cfg.PageSize
	}

	return appModel{
		src:      src,
		actions:  actions,
		config:   cfg,
		vw:       view.New(pageSize),
		spinner:  s,
		location: ti,
	}
}

// Init initializes the model.
func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadSnapshot(m.src),
	)
}

// Update handles messages.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case snapshotMsg:
		m.ready = true
		m.busy = false
		m.vw.Replace(msg.records)
		m.lastUpdated = time.Now()
		m.clampCursor()
		return m.withNotice("Data refreshed successfully", false)

	case snapshotErrMsg:
		m.busy = false
		if !m.ready {
			// First load failed: keep showing the spinner error state.
			return m.withNotice("Load failed: "+msg.err.Error(), true)
		}
		// A failed refresh keeps the previous snapshot on screen.
		return m.withNotice("Refresh failed: "+msg.err.Error(), true)

	case actionMsg:
		if msg.err != nil {
			return m.withNotice("Failed to "+msg.action+" "+msg.name+": "+msg.err.Error(), true)
		}
		return m.withNotice(actionVerb(msg.action)+" command sent to "+msg.name, false)

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}

	case spinner.TickMsg:
		if m.busy || !m.ready {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Confirmation prompt swallows every key.
	if m.confirm != nil {
		switch msg.String() {
		case "y", "Y":
			p := *m.confirm
			m.confirm = nil
			return m, sendAction(m.actions, p)
		case "n", "N", "esc":
			m.confirm = nil
		}
		return m, nil
	}

	// Location search input mode.
	if m.searching {
		switch msg.String() {
		case "enter", "esc":
			m.searching = false
			m.location.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.location, cmd = m.location.Update(msg)
			m.applyCriteria()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "r":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, loadSnapshot(m.src))

	case "/":
		m.searching = true
		m.location.Focus()
		return m, textinput.Blink

	case "f":
		c := m.vw.Criteria()
		c.Status = nextStatus(c.Status)
		m.vw.SetCriteria(c)
		m.cursor = 0

	case "b":
		c := m.vw.Criteria()
		c.Band = nextBand(c.Band)
		m.vw.SetCriteria(c)
		m.cursor = 0

	case "c":
		m.location.SetValue("")
		m.vw.SetCriteria(view.Criteria{})
		m.cursor = 0

	case "1":
		m.vw.SetSort(view.FieldName)
	case "2":
		m.vw.SetSort(view.FieldStatus)
	case "3":
		m.vw.SetSort(view.FieldBandwidth)
	case "4":
		m.vw.SetSort(view.FieldUptime)
	case "5":
		m.vw.SetSort(view.FieldLocation)

	case "left", "h":
		m.vw.GoToPage(m.vw.Page().Current - 1)
		m.clampCursor()
	case "right", "l":
		m.vw.GoToPage(m.vw.Page().Current + 1)
		m.clampCursor()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.vw.Rows())-1 {
			m.cursor++
		}

	case "enter", "i":
		m.showDetail = !m.showDetail

	case "R":
		if r, ok := m.selected(); ok {
			m.confirm = &pendingAction{action: "restart", routerID: r.ID, name: r.Name}
		}
	case "x":
		if r, ok := m.selected(); ok {
			m.confirm = &pendingAction{action: "disconnect", routerID: r.ID, name: r.Name}
		}
	}

	return m, nil
}

func (m appModel) selected() (model.RouterRecord, bool) {
	rows := m.vw.Rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return model.RouterRecord{}, false
	}
	return rows[m.cursor], true
}

func (m *appModel) clampCursor() {
	if n := len(m.vw.Rows()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *appModel) applyCriteria() {
	c := m.vw.Criteria()
	c.Location = m.location.Value()
	m.vw.SetCriteria(c)
	m.cursor = 0
}

func (m appModel) withNotice(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.notice = text
	m.noticeErr = isErr
	m.noticeSeq++
	seq := m.noticeSeq
	return m, tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// View renders the UI.
func (m appModel) View() string {
	if !m.ready {
		if m.notice != "" && m.noticeErr {
			return LoadingStyle.Render(ErrorStyle.Render(m.notice) + "\n\nPress 'r' to retry, 'q' to quit")
		}
		return LoadingStyle.Render(m.spinner.View() + " Loading router data...")
	}
	return m.renderDashboard()
}

// Messages

type snapshotMsg struct {
	records []model.RouterRecord
}

type snapshotErrMsg struct {
	err error
}

type actionMsg struct {
	action string
	name   string
	err    error
}

type noticeExpiredMsg struct {
	seq int
}

func loadSnapshot(src source.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		records, err := src.Fetch(ctx)
		if err != nil {
			return snapshotErrMsg{err}
		}
		return snapshotMsg{records: records}
	}
}

func sendAction(actions source.ActionSender, p pendingAction) tea.Cmd {
	return func() tea.Msg {
		if actions == nil {
			return actionMsg{action: p.action, name: p.name}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		err := actions.SendAction(ctx, p.routerID, p.action)
		return actionMsg{action: p.action, name: p.name, err: err}
	}
}

func nextStatus(s model.Status) model.Status {
	switch s {
	case "":
		return model.StatusOnline
	case model.StatusOnline:
		return model.StatusWarning
	case model.StatusWarning:
		return model.StatusOffline
	}
	return ""
}

func nextBand(b view.Band) view.Band {
	switch b {
	case view.BandAny:
		return view.BandHigh
	case view.BandHigh:
		return view.BandMedium
	case view.BandMedium:
		return view.BandLow
	}
	return view.BandAny
}

func actionVerb(action string) string {
	if action == "disconnect" {
		return "Disconnect"
	}
	return "Restart"
}
