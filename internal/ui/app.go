package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/memscope/internal/memreport"
	"github.com/five82/memscope/internal/prefs"
	"github.com/five82/memscope/internal/state"
	"github.com/five82/memscope/internal/tables"
)

// LoadFunc reads and parses the report at path. progress, when non-nil, receives
// the bytes read so far and the file size.
type LoadFunc func(ctx context.Context, path string, progress func(read, total int64)) (memreport.Result, state.Stamp, error)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Load      LoadFunc
	Path      string
	ThemeName string
	PrefsPath string

	// Watch, when set, is started with the program's lifetime and calls changed
	// whenever the loaded report is modified on disk.
	Watch func(ctx context.Context, changed func(path string))
}

// Tab is a top-level page of the UI.
type Tab int

const (
	TabSummary Tab = iota
	TabTextures
	TabStaticMeshes
)

var tabTitles = []string{"Summary", "Textures", "Static Meshes"}

type promptMode int

const (
	promptNone promptMode = iota
	promptFilter
	promptOpen
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	load      LoadFunc
	prefsPath string
	path      string

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	// Panes in focus order. paneTabs maps each pane to the tab that shows it.
	platform *pane[memreport.PlatformEntry]
	groups   *pane[memreport.TextureGroupTotal]
	textures *pane[memreport.TextureRecord]
	meshes   *pane[memreport.StaticMeshRecord]
	panes    []grid
	paneTabs []Tab
	focus    int

	overview []memreport.PlatformEntry

	spinner spinner.Model
	help    help.Model

	// Help overlay
	showHelp bool
	helpView viewport.Model

	// Filter and open prompts
	prompt        promptMode
	input         textinput.Model
	promptRestore string

	notice string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	keys := DefaultKeyMap()
	tableKeys := keys.tableKeyMap()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	input := textinput.New()
	input.CharLimit = promptCharLimit

	m := Model{
		ctx:       ctx,
		store:     store,
		load:      opts.Load,
		prefsPath: prefsPath,
		path:      opts.Path,
		theme:     GetTheme(themeName),
		keys:      keys,
		platform:  newPane(tables.Platform, tableKeys),
		groups:    newPane(tables.TextureGroups, tableKeys),
		textures:  newPane(tables.Textures, tableKeys),
		meshes:    newPane(tables.StaticMeshes, tableKeys),
		paneTabs:  []Tab{TabSummary, TabTextures, TabTextures, TabStaticMeshes},
		overview:  tables.PlatformOverview(memreport.PlatformSummary{}),
		spinner:   spin,
		help:      help.New(),
		input:     input,
	}
	m.panes = []grid{m.platform, m.groups, m.textures, m.meshes}
	m.applyStyles()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.path == "" {
		return nil
	}
	return m.startLoad(m.path)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case loadDoneMsg:
		return m.handleLoaded(msg)

	case fileChangedMsg:
		snap := m.store.Snapshot()
		if snap.Loading || snap.Path != msg.path {
			return m, nil
		}
		m.notice = "Reloading after change on disk"
		return m, m.startLoad(msg.path)

	case spinner.TickMsg:
		if !m.store.Snapshot().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.prompt != promptNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
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
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown,
			m.keys.HalfPageUp, m.keys.HalfPageDown):
			var cmd tea.Cmd
			m.helpView, cmd = m.helpView.Update(msg)
			return m, cmd
		}
		m.showHelp = false
		return m, nil
	}

	if m.prompt != promptNone {
		return m.handlePromptKey(msg)
	}

	current := m.panes[m.focus]

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.helpView = m.newHelpViewport()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyStyles()
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				log.Printf("save prefs: %v", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPane):
		m.focusPane(m.focus + 1)
		return m, nil

	case key.Matches(msg, m.keys.PrevPane):
		m.focusPane(m.focus - 1)
		return m, nil

	case key.Matches(msg, m.keys.ColumnLeft):
		current.moveColumn(-1)
		return m, nil

	case key.Matches(msg, m.keys.ColumnRight):
		current.moveColumn(1)
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		current.sortSelected(false)
		return m, nil

	case key.Matches(msg, m.keys.AddSort):
		current.sortSelected(true)
		return m, nil

	case key.Matches(msg, m.keys.ClearSort):
		current.resetSort()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		title, kind := current.selected()
		prompt, placeholder := title+" ~ ", "substring"
		switch kind {
		case tables.FilterTriState:
			prompt, placeholder = title+" = ", "yes / no"
		case tables.FilterNone:
			m.notice = fmt.Sprintf("%s has no text filter", title)
			return m, nil
		}
		m.promptRestore = current.textFilter()
		cmd := m.openPrompt(promptFilter, prompt, placeholder, m.promptRestore)
		return m, cmd

	case key.Matches(msg, m.keys.CycleFilter):
		title, kind := current.selected()
		if kind != tables.FilterTriState {
			m.notice = fmt.Sprintf("%s has no YES/NO filter", title)
			return m, nil
		}
		m.notice = fmt.Sprintf("%s: %s", title, current.cycleTriState())
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		current.clearFilters()
		m.notice = "Filters cleared"
		return m, nil

	case key.Matches(msg, m.keys.Open):
		cmd := m.openPrompt(promptOpen, "open: ", "path/to/report.memreport", m.reportPath())
		return m, cmd

	case key.Matches(msg, m.keys.Reload):
		path := m.reportPath()
		if path == "" {
			return m, nil
		}
		return m, m.startLoad(path)
	}

	return m, current.update(msg)
}

// handlePromptKey routes input to the active prompt. Filters apply as they are
// typed; esc restores the filter that was active when the prompt opened.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.prompt == promptFilter {
			m.panes[m.focus].setTextFilter(m.promptRestore)
		}
		m.closePrompt()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		mode := m.prompt
		value := strings.TrimSpace(m.input.Value())
		m.closePrompt()
		if mode == promptOpen && value != "" {
			m.path = value
			return m, m.startLoad(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.prompt == promptFilter {
		m.panes[m.focus].setTextFilter(m.input.Value())
	}
	return m, cmd
}

func (m *Model) openPrompt(mode promptMode, prompt, placeholder, value string) tea.Cmd {
	m.prompt = mode
	m.input.Prompt = prompt
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.promptRestore = ""
	m.input.Blur()
	m.input.Reset()
}

// focusPane moves focus to pane i, wrapping around.
func (m *Model) focusPane(i int) {
	n := len(m.panes)
	m.focus = ((i % n) + n) % n
	m.applyStyles()
}

// currentTab is the tab that shows the focused pane.
func (m Model) currentTab() Tab {
	return m.paneTabs[m.focus]
}

// applyStyles pushes the theme into every component.
func (m *Model) applyStyles() {
	for i, p := range m.panes {
		p.setStyles(m.theme, i == m.focus)
	}
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	m.spinner.Style = styles.AccentText
	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
}

// layout sizes every pane for the current window.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	inner := max(m.width-2, 1)
	content := max(m.height-chromeLines, 2*boxBorderLines+2)

	m.platform.setSize(inner, max(content-overviewBoxHeight-boxBorderLines, 1))

	groupsBox := max(minGroupsBoxHeight, content/3)
	m.groups.setSize(inner, groupsBox-boxBorderLines)
	m.textures.setSize(inner, max(content-groupsBox-boxBorderLines, 1))

	m.meshes.setSize(inner, content-boxBorderLines)
}

// reportPath is the committed report, or the one requested at startup.
func (m Model) reportPath() string {
	snap := m.store.Snapshot()
	if snap.Path != "" {
		return snap.Path
	}
	if snap.LoadingPath != "" {
		return snap.LoadingPath
	}
	return m.path
}

func (m *Model) setResult(res memreport.Result) {
	m.overview = tables.PlatformOverview(res.Platform)
	m.platform.setItems(res.Platform.Entries, nil)
	m.groups.setItems(res.TextureGroups, nil)
	m.textures.setItems(res.Textures, tables.TextureSummaryRow(len(res.Textures)))
	m.meshes.setItems(res.StaticMeshes, tables.StaticMeshSummaryRow(res.StaticMeshSummary))
}

// startLoad begins a load of path. Any load still in flight is cancelled and its
// result will be dropped.
func (m Model) startLoad(path string) tea.Cmd {
	if m.load == nil {
		return nil
	}
	gen, ctx := m.store.Begin(m.ctx, path)
	return tea.Batch(loadCmd(ctx, m.store, m.load, gen, path), m.spinner.Tick)
}

func (m Model) handleLoaded(msg loadDoneMsg) (tea.Model, tea.Cmd) {
	if !m.store.Commit(msg.gen, msg.result, msg.stamp, msg.err) {
		return m, nil
	}
	if msg.err != nil {
		log.Printf("%v", msg.err)
		m.notice = ""
		return m, nil
	}
	m.setResult(msg.result)
	if msg.result.Empty() {
		m.notice = "No memreport sections found"
	} else {
		m.notice = fmt.Sprintf("Loaded %d lines", msg.result.LineCount)
	}
	return m, nil
}

// Messages

type loadDoneMsg struct {
	gen    uint64
	path   string
	result memreport.Result
	stamp  state.Stamp
	err    error
}

type fileChangedMsg struct {
	path string
}

// Commands

func loadCmd(ctx context.Context, store *state.Store, load LoadFunc, gen uint64, path string) tea.Cmd {
	return func() tea.Msg {
		res, stamp, err := load(ctx, path, func(read, total int64) {
			store.Progress(gen, read, total)
		})
		return loadDoneMsg{gen: gen, path: path, result: res, stamp: stamp, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Store == nil {
		opts.Store = &state.Store{}
	}

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.Watch != nil {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		opts.Watch(watchCtx, func(path string) {
			p.Send(fileChangedMsg{path: path})
		})
	}

	_, err := p.Run()
	opts.Store.Cancel()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
