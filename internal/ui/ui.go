package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kmies/bestiary/internal/browse"
	"github.com/kmies/bestiary/internal/logtail"
	"github.com/kmies/bestiary/internal/prefs"
	"github.com/kmies/bestiary/internal/state"
)

// View represents the current active screen.
type View int

const (
	ViewList View = iota
	ViewDetail
	ViewLogs
)

const (
	// searchDebounce is the quiet period before an edited search term
	// reaches the store.
	searchDebounce = 250 * time.Millisecond

	// loadMoreThreshold is how close to the end of the list the
	// selection may get before the next page is requested.
	loadMoreThreshold = 5

	logFetchLimit = 500
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Lister    *browse.Lister
	Detailer  *browse.Detailer
	ThemeName string
	PrefsPath string
	LogPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	lister    *browse.Lister
	detailer  *browse.Detailer
	prefsPath string
	logPath   string

	keys  keyMap
	theme Theme

	view   View
	width  int
	height int
	ready  bool

	snapshot state.Snapshot
	updates  <-chan struct{}

	// List state
	selectedRow int
	scrollTop   int

	// Search state
	searchInput textinput.Model
	searching   bool
	searchSeq   int

	spin spinner.Model

	// Detail state
	detailViewport viewport.Model
	statBars       []progress.Model
	statBarsFor    int // entry id the bars were built for

	showHelp bool
	logLines []string
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "name..."
	input.Prompt = "/ "
	input.CharLimit = 40

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		lister:      opts.Lister,
		detailer:    opts.Detailer,
		prefsPath:   prefsPath,
		logPath:     opts.LogPath,
		keys:        defaultKeyMap(),
		theme:       GetTheme(themeName),
		view:        ViewList,
		searchInput: input,
		spin:        spin,
		updates:     opts.Store.Subscribe(),
	}
}

// Messages

type storeUpdateMsg struct{}

type searchDebounceMsg struct{ seq int }

type logLinesMsg struct{ lines []string }

// Commands

func waitForUpdateCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return storeUpdateMsg{}
	}
}

func (m Model) loadInitialCmd() tea.Cmd {
	return func() tea.Msg {
		m.lister.LoadInitial(m.ctx)
		return nil
	}
}

func (m Model) loadMoreCmd() tea.Cmd {
	return func() tea.Msg {
		m.lister.LoadMore(m.ctx)
		return nil
	}
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		m.lister.Refresh(m.ctx)
		return nil
	}
}

func (m Model) retryListCmd() tea.Cmd {
	return func() tea.Msg {
		m.lister.Retry(m.ctx)
		return nil
	}
}

func (m Model) fetchDetailCmd(id int) tea.Cmd {
	return func() tea.Msg {
		m.detailer.Fetch(m.ctx, id)
		return nil
	}
}

func (m Model) retryDetailCmd() tea.Cmd {
	return func() tea.Msg {
		m.detailer.Retry(m.ctx)
		return nil
	}
}

func (m Model) readLogCmd() tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(m.logPath, logFetchLimit)
		if err != nil {
			return logLinesMsg{lines: []string{"cannot read log: " + err.Error()}}
		}
		return logLinesMsg{lines: lines}
	}
}

func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		waitForUpdateCmd(m.updates),
		m.loadInitialCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(msg.Width, m.contentHeight())
			m.ready = true
		} else {
			m.detailViewport.Width = msg.Width
			m.detailViewport.Height = m.contentHeight()
		}
		m.refreshDetailViewport()
		return m, nil

	case storeUpdateMsg:
		return m.handleStoreUpdate()

	case searchDebounceMsg:
		// Only the latest quiet-period edit reaches the store.
		if msg.seq == m.searchSeq {
			m.store.SetSearch(m.searchInput.Value())
		}
		return m, nil

	case logLinesMsg:
		m.logLines = msg.lines
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		var cmds []tea.Cmd
		for i := range m.statBars {
			updated, cmd := m.statBars[i].Update(msg)
			m.statBars[i] = updated.(progress.Model)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.refreshDetailViewport()
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// handleStoreUpdate pulls a fresh snapshot and re-arms the
// subscription wait.
func (m Model) handleStoreUpdate() (tea.Model, tea.Cmd) {
	var selectedID int
	if prev := m.snapshot.Filtered; m.selectedRow >= 0 && m.selectedRow < len(prev) {
		selectedID = prev[m.selectedRow].ID
	}

	m.snapshot = m.store.Snapshot()

	// Keep the same entry selected when rows move under the cursor,
	// for example when the filtered view changes.
	if selectedID != 0 {
		for i, entry := range m.snapshot.Filtered {
			if entry.ID == selectedID {
				m.selectedRow = i
				break
			}
		}
	}
	m.clampSelection()

	cmds := []tea.Cmd{waitForUpdateCmd(m.updates)}

	// A newly arrived detail record gets fresh animated stat bars.
	if detail := m.snapshot.Detail; detail != nil && m.statBarsFor != detail.ID {
		cmds = append(cmds, m.initStatBars()...)
	}
	m.refreshDetailViewport()

	return m, tea.Batch(cmds...)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewLogs):
		if m.view != ViewLogs {
			m.view = ViewLogs
			return m, m.readLogCmd()
		}
		return m, nil
	}

	switch m.view {
	case ViewList:
		return m.handleListKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewLogs:
		return m.handleLogsKey(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.view {
	case ViewList:
		content = m.renderList()
	case ViewDetail:
		content = m.renderDetail()
	case ViewLogs:
		content = m.renderLogs()
	}

	return m.renderHeader() + "\n" +
		content + "\n" +
		m.renderFooter()
}

// contentHeight is the rows available between header and footer.
func (m Model) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		return 1
	}
	return h
}

// placeCenter centers a message in the content area.
func (m Model) placeCenter(content string) string {
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		// Context cancellation is a normal shutdown.
		return nil
	}
	return err
}
