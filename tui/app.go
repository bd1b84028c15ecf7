// ABOUTME: Top-level Bubble Tea AppModel that composes the score line, arena, event log, status bar, and help.
// ABOUTME: Translates mouse and keyboard input into driver inputs and renders each published snapshot.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/pong/driver"
	"github.com/2389-research/pong/engine"
)

// arenaTop is the screen row of the first arena interior cell: one line of
// score plus the arena's top border.
const arenaTop = 2

// logHeight is the number of rows the event log occupies when shown.
const logHeight = 8

// keySteps is how many keyboard presses move the paddle across the arena.
const keySteps = 20

// AppModel is the top-level Bubble Tea model. It never touches the Match
// directly; inputs go through the sink and state arrives as snapshots.
type AppModel struct {
	arena     ArenaModel
	log       LogPanelModel
	statusBar StatusBarModel
	help      help.Model
	keys      keyMap

	sink InputSink
	run  tea.Cmd

	snap     engine.Snapshot
	pointerY float64
	showLog  bool
	err      error
	width    int
	height   int
}

// NewAppModel creates an AppModel showing the initial snapshot. Inputs are
// submitted to sink; run is started by Init and is normally RunDriverCmd.
func NewAppModel(initial engine.Snapshot, sink InputSink, run tea.Cmd) AppModel {
	arena := NewArenaModel()
	arena.SetSnapshot(initial)
	status := NewStatusBarModel(initial.MatchID)
	status.Update(initial)

	return AppModel{
		arena:     arena,
		log:       NewLogPanelModel(200),
		statusBar: status,
		help:      help.New(),
		keys:      defaultKeyMap(),
		sink:      sink,
		run:       run,
		snap:      initial,
		pointerY:  initial.ArenaHeight / 2,
		showLog:   true,
	}
}

// Init implements tea.Model. Starts the driver.
func (m AppModel) Init() tea.Cmd {
	return m.run
}

// Err returns the error the driver stopped with, if any.
func (m AppModel) Err() error {
	return m.err
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case SnapshotMsg:
		m.snap = msg.Snapshot
		m.arena.SetSnapshot(msg.Snapshot)
		m.statusBar.Update(msg.Snapshot)
		return m, nil

	case MatchEventMsg:
		return m.handleMatchEvent(msg)

	case DriverStoppedMsg:
		m.err = msg.Err
		return m, tea.Quit

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: 20x10.", m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(ScoreLine(m.snap, m.width))
	b.WriteString("\n")
	b.WriteString(m.arena.View())
	b.WriteString("\n")
	if m.showLog {
		b.WriteString(m.log.View())
		b.WriteString("\n")
	}
	b.WriteString(m.statusBar.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(OverStyle.Render(fmt.Sprintf("driver stopped: %v", m.err)))
	}
	return b.String()
}

// layout distributes the terminal between the panels.
func (m *AppModel) layout() {
	reserved := 1 + 2 + 1 + m.helpHeight()
	if m.showLog {
		reserved += logHeight
	}
	m.arena.SetSize(m.width-2, m.height-reserved)
	m.log.SetSize(m.width, logHeight)
	m.statusBar.SetWidth(m.width)
	m.help.Width = m.width
}

func (m AppModel) helpHeight() int {
	if m.help.ShowAll {
		return len(m.keys.FullHelp()[0])
	}
	return 1
}

// handleMatchEvent appends the event to the log and drives the rally timer.
func (m AppModel) handleMatchEvent(msg MatchEventMsg) (tea.Model, tea.Cmd) {
	m.log.Append(msg.Event)

	switch msg.Event.Type {
	case engine.EventRallyStarted:
		m.statusBar.Start()
	case engine.EventPointScored, engine.EventMatchReset:
		m.statusBar.Stop()
	}
	return m, nil
}

// handleMouse turns pointer motion into paddle moves and a left press into
// the primary activation.
func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.movePointerToRow(msg.Y - arenaTop)
	case tea.MouseActionPress:
		m.movePointerToRow(msg.Y - arenaTop)
		if msg.Button == tea.MouseButtonLeft {
			m.sink.Submit(driver.Activate{})
		}
	}
	return m, nil
}

// movePointerToRow submits a pointer move for an arena interior row.
func (m *AppModel) movePointerToRow(row int) {
	y, ok := m.arena.RowToArenaY(row)
	if !ok {
		return
	}
	m.submitPointer(y)
}

// submitPointer records and submits a pointer position, clamped to the arena
// so keyboard steps cannot wander off.
func (m *AppModel) submitPointer(y float64) {
	y = max(0, min(m.snap.ArenaHeight, y))
	m.pointerY = y
	m.sink.Submit(driver.PointerMove{Y: y})
}

// handleKey processes keyboard shortcuts.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.snap.ArenaHeight / keySteps

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.submitPointer(m.pointerY - step)
	case key.Matches(msg, m.keys.Down):
		m.submitPointer(m.pointerY + step)
	case key.Matches(msg, m.keys.Serve):
		m.sink.Submit(driver.Activate{})
	case key.Matches(msg, m.keys.Log):
		m.showLog = !m.showLog
		m.layout()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}
	return m, nil
}
