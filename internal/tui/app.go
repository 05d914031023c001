package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"devdash/internal/layout"
	"devdash/internal/model"
	"devdash/internal/pomodoro"
	"devdash/internal/store"
)

// railLinks is the quick-links side rail. It is focusable but lives outside
// the reorderable module set.
const railLinks model.ModuleID = "quick-links"

const linksRailWidth = 38

type tickMsg time.Time

// Panel height bounds, in rows of body content.
const (
	panelMinHeight = 4
	panelMaxHeight = 24
)

func defaultPanelHeight(id model.ModuleID) int {
	switch id {
	case model.ModuleTasks:
		return 8
	case model.ModuleNotes:
		return 10
	case model.ModulePomodoro:
		return 6
	case model.ModulePrompts, model.ModuleSnippets:
		return 12
	default:
		return 10
	}
}

type appModel struct {
	store store.Store

	width  int
	height int

	order   *layout.Order
	heights map[model.ModuleID]*layout.Resize
	engine  *pomodoro.Engine

	tasks    tasksPanel
	notes    notesPanel
	pomo     pomodoroPanel
	prompts  promptsPanel
	snippets snippetsPanel
	logp     logPanel
	links    linksPanel
	ai       assistantPanel

	focusIdx int
	grabbing bool
	confirm  *confirmState

	status   string
	statusAt time.Time

	// events carries messages produced outside the bubbletea loop (debounce
	// timers, the demo responder) back into Update.
	events chan tea.Msg

	lastMod time.Time
	now     time.Time
}

func newAppModel(s store.Store) appModel {
	events := make(chan tea.Msg, 16)
	settings := s.Settings()

	m := appModel{
		store:   s,
		order:   layout.NewOrder(s, model.DefaultModuleOrder()),
		heights: map[model.ModuleID]*layout.Resize{},
		engine: pomodoro.Load(s, pomodoro.ConfigFromSettings(settings),
			&pomodoro.DesktopNotifier{Log: s.Log}, time.Now()),
		events:  events,
		now:     time.Now(),
		lastMod: s.ModTime(),
	}

	for _, id := range model.DefaultModuleOrder() {
		m.heights[id] = layout.NewResize(s, id, defaultPanelHeight(id), panelMinHeight, panelMaxHeight)
	}

	m.tasks = newTasksPanel(s)
	m.notes = newNotesPanel(s, events)
	m.pomo = pomodoroPanel{store: s, engine: m.engine}
	m.prompts = newPromptsPanel(s, settings.PageSize, events)
	m.snippets = newSnippetsPanel(s, settings.PageSize, events)
	m.logp = newLogPanel(s, settings.PageSize)
	m.links = newLinksPanel(s)
	m.ai = newAssistantPanel(s, events)
	return m
}

// focusables is the module order plus the links rail at the end.
func (m *appModel) focusables() []model.ModuleID {
	out := append([]model.ModuleID{}, m.order.Modules()...)
	return append(out, railLinks)
}

func (m *appModel) focused() model.ModuleID {
	f := m.focusables()
	if m.focusIdx < 0 || m.focusIdx >= len(f) {
		return f[0]
	}
	return f[m.focusIdx]
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(tickEverySecond(), waitEvent(m.events))
}

func tickEverySecond() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitEvent(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg { return <-ch }
}

func (m *appModel) editing() bool {
	return m.tasks.editing() || m.notes.editing() || m.prompts.editing() ||
		m.snippets.editing() || m.ai.editing()
}

// refreshAll re-reads every panel's slot. Runs when another process (the CLI,
// typically) touched the store.
func (m *appModel) refreshAll() {
	m.tasks.refresh()
	m.notes.refresh()
	m.prompts.refresh()
	m.snippets.refresh()
	m.logp.refresh()
	m.links.refresh()
}

func (m *appModel) shutdown() {
	m.notes.stop()
	m.prompts.stop()
	m.snippets.stop()
	m.ai.stop()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		m.engine.Tick()
		if mod := m.store.ModTime(); mod.After(m.lastMod) {
			m.lastMod = mod
			m.refreshAll()
		}
		if m.status != "" && m.now.Sub(m.statusAt) > 4*time.Second {
			m.status = ""
		}
		return m, tickEverySecond()

	case draftSavedMsg:
		m.notes.saved = true
		m.lastMod = m.store.ModTime()
		return m, waitEvent(m.events)

	case searchSettledMsg:
		switch msg.module {
		case model.ModulePrompts:
			m.prompts.query = msg.query
			m.prompts.cursor = 0
		case model.ModuleSnippets:
			m.snippets.query = msg.query
			m.snippets.cursor = 0
		}
		return m, waitEvent(m.events)

	case assistantReplyMsg:
		m.ai.onReply(msg.reply)
		return m, waitEvent(m.events)

	case spinner.TickMsg:
		if !m.ai.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.ai.spin, cmd = m.ai.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.shutdown()
		return m, tea.Quit
	}

	if m.confirm != nil {
		switch msg.String() {
		case "y", "enter":
			apply := m.confirm.apply
			m.confirm = nil
			apply(&m)
		case "n", "esc":
			m.confirm = nil
		}
		return m, nil
	}

	if m.grabbing {
		return m.updateGrab(msg)
	}

	if m.editing() {
		cmd := m.dispatchFocused(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.shutdown()
		return m, tea.Quit
	case "tab":
		m.focusIdx = (m.focusIdx + 1) % len(m.focusables())
		return m, nil
	case "shift+tab":
		m.focusIdx = (m.focusIdx - 1 + len(m.focusables())) % len(m.focusables())
		return m, nil
	case "g":
		// Only dashboard modules reorder; the links rail stays put.
		if m.focusIdx < len(m.order.Modules()) {
			m.grabbing = true
			m.order.DragStart(m.focusIdx)
		}
		return m, nil
	case "+", "=":
		if id := m.focused(); id != railLinks {
			m.heights[id].Adjust(1)
		}
		return m, nil
	case "-":
		if id := m.focused(); id != railLinks {
			m.heights[id].Adjust(-1)
		}
		return m, nil
	case "R":
		m.confirm = &confirmState{
			prompt: "Reset the module order to the default?",
			apply:  func(m *appModel) { m.order.Reset(); m.focusIdx = 0 },
		}
		return m, nil
	}

	cmd := m.dispatchFocused(msg)
	return m, cmd
}

// dispatchFocused routes a key to the focused panel and timestamps any
// status it set so the footer message can expire.
func (m *appModel) dispatchFocused(msg tea.KeyMsg) tea.Cmd {
	prev := m.status
	cmd := m.updateFocused(msg)
	if m.status != prev {
		m.statusAt = time.Now()
	}
	return cmd
}

// updateGrab handles the lifted-module reorder gesture: j/k slide the module
// through the list, any drop key settles wherever it is.
func (m appModel) updateGrab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.focusIdx < len(m.order.Modules())-1 {
			m.order.DragOver(m.focusIdx + 1)
			m.focusIdx++
		}
	case "k", "up":
		if m.focusIdx > 0 {
			m.order.DragOver(m.focusIdx - 1)
			m.focusIdx--
		}
	case "enter", "esc", "g":
		m.order.DragEnd()
		m.grabbing = false
	}
	return m, nil
}

func (m *appModel) updateFocused(msg tea.KeyMsg) tea.Cmd {
	switch m.focused() {
	case model.ModuleTasks:
		return m.tasks.update(msg, m)
	case model.ModuleNotes:
		return m.notes.update(msg, m)
	case model.ModulePomodoro:
		return m.pomo.update(msg, m)
	case model.ModulePrompts:
		return m.prompts.update(msg, m)
	case model.ModuleSnippets:
		return m.snippets.update(msg, m)
	case model.ModuleAssistant:
		return m.ai.update(msg, m)
	case model.ModuleLearningLog:
		return m.logp.update(msg, m)
	case railLinks:
		return m.links.update(msg, m)
	}
	return nil
}

func moduleTitle(id model.ModuleID) string {
	switch id {
	case model.ModuleTasks:
		return "Today's Focus"
	case model.ModuleNotes:
		return "Quick Notes"
	case model.ModulePomodoro:
		return "Pomodoro"
	case model.ModulePrompts:
		return "Prompt Library"
	case model.ModuleSnippets:
		return "Code Snippets"
	case model.ModuleAssistant:
		return "AI Assistant"
	case model.ModuleLearningLog:
		return "Learning Log"
	case railLinks:
		return "Quick Links"
	}
	return string(id)
}

func (m *appModel) panelBody(id model.ModuleID, width int, focused bool) string {
	switch id {
	case model.ModuleTasks:
		return m.tasks.view(width, focused, m.now)
	case model.ModuleNotes:
		return m.notes.view(width, focused, m.now)
	case model.ModulePomodoro:
		return m.pomo.view(width, focused)
	case model.ModulePrompts:
		return m.prompts.view(width, focused, m.now)
	case model.ModuleSnippets:
		return m.snippets.view(width, focused, m.now)
	case model.ModuleAssistant:
		return m.ai.view(width, focused, m.now)
	case model.ModuleLearningLog:
		return m.logp.view(width, focused, m.now)
	}
	return ""
}

func (m appModel) View() string {
	width := m.width
	if width <= 0 {
		width = 100
	}
	mainW := width - linksRailWidth - 1
	if mainW < 40 {
		mainW = width
	}

	var panels []string
	for i, id := range m.order.Modules() {
		focused := m.focusIdx == i
		body := m.panelBody(id, mainW-2, focused)
		panels = append(panels, renderPanel(
			moduleTitle(id), body, mainW, m.heights[id].Height(),
			focused, m.grabbing && focused))
	}
	main := lipgloss.JoinVertical(lipgloss.Left, panels...)

	out := main
	if mainW < width {
		linksFocused := m.focused() == railLinks
		rail := renderPanel(
			moduleTitle(railLinks),
			m.links.view(linksRailWidth-4, linksFocused),
			linksRailWidth, lipgloss.Height(main)-2,
			linksFocused, false)
		out = lipgloss.JoinHorizontal(lipgloss.Top, main, " ", rail)
	}

	footer := styleMuted().Render("tab: focus   g: move module   +/-: resize   R: reset layout   q: quit")
	if m.grabbing {
		footer = styleAccent().Render("moving " + moduleTitle(m.focused()) + "  (j/k to slide, enter to drop)")
	}
	if m.status != "" {
		footer = m.status + "   " + footer
	}

	bottom := footer
	if m.confirm != nil {
		bottom = renderConfirmBar(width, m.confirm.prompt)
	}
	return out + "\n" + bottom
}
