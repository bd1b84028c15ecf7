// ABOUTME: Tests for the top-level AppModel that composes the arena, log, status bar, and help.
// ABOUTME: Covers message routing, mouse and keyboard translation into driver inputs, and view rendering.
package tui

import (
	"errors"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/pong/driver"
	"github.com/2389-research/pong/engine"
)

// fakeSink records every submitted input.
type fakeSink struct {
	inputs []driver.Input
}

func (f *fakeSink) Submit(in driver.Input) bool {
	f.inputs = append(f.inputs, in)
	return true
}

func testAppModel(t *testing.T) (AppModel, *fakeSink) {
	t.Helper()
	sink := &fakeSink{}
	m := NewAppModel(testSnapshot(t), sink, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return updated.(AppModel), sink
}

func TestNewAppModel(t *testing.T) {
	snap := testSnapshot(t)
	m := NewAppModel(snap, &fakeSink{}, nil)

	if m.snap != snap {
		t.Error("initial snapshot not stored")
	}
	if m.pointerY != snap.ArenaHeight/2 {
		t.Errorf("pointerY = %v, want %v", m.pointerY, snap.ArenaHeight/2)
	}
	if !m.showLog {
		t.Error("log should be shown by default")
	}
	if m.View() != "Initializing..." {
		t.Errorf("View() before sizing = %q", m.View())
	}
}

func TestAppInitReturnsRunCmd(t *testing.T) {
	called := false
	run := func() tea.Msg {
		called = true
		return nil
	}
	m := NewAppModel(testSnapshot(t), &fakeSink{}, run)
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init() returned nil")
	}
	cmd()
	if !called {
		t.Error("Init() did not return the run command")
	}
}

func TestAppWindowSizeLaysOutArena(t *testing.T) {
	m, _ := testAppModel(t)
	// score(1) + border(2) + status(1) + help(1) + log(8)
	if m.arena.rows != 40-13 {
		t.Errorf("arena rows = %d, want %d", m.arena.rows, 40-13)
	}
	if m.arena.cols != 78 {
		t.Errorf("arena cols = %d, want 78", m.arena.cols)
	}
}

func TestAppSnapshotMsgUpdatesPanels(t *testing.T) {
	m, _ := testAppModel(t)
	snap := m.snap
	snap.Tick = 55
	snap.State = engine.StatePlaying

	updated, cmd := m.Update(SnapshotMsg{Snapshot: snap})
	m = updated.(AppModel)
	if cmd != nil {
		t.Error("SnapshotMsg should not return a command")
	}
	if m.snap.Tick != 55 || m.arena.snap.Tick != 55 || m.statusBar.tick != 55 {
		t.Error("snapshot not propagated to every panel")
	}
}

func TestAppMatchEventDrivesRallyTimer(t *testing.T) {
	m, _ := testAppModel(t)

	updated, _ := m.Update(MatchEventMsg{Event: engine.Event{Type: engine.EventRallyStarted}})
	m = updated.(AppModel)
	if m.statusBar.startTime.IsZero() {
		t.Error("rally.started should start the rally timer")
	}
	if m.log.Len() != 1 {
		t.Errorf("log Len() = %d, want 1", m.log.Len())
	}

	updated, _ = m.Update(MatchEventMsg{Event: engine.Event{Type: engine.EventPointScored}})
	m = updated.(AppModel)
	if !m.statusBar.startTime.IsZero() {
		t.Error("point.scored should stop the rally timer")
	}
	if m.log.Len() != 2 {
		t.Errorf("log Len() = %d, want 2", m.log.Len())
	}
}

func TestAppDriverStoppedQuits(t *testing.T) {
	m, _ := testAppModel(t)
	boom := errors.New("boom")

	updated, cmd := m.Update(DriverStoppedMsg{Err: boom})
	m = updated.(AppModel)
	if cmd == nil {
		t.Fatal("DriverStoppedMsg should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if !errors.Is(m.Err(), boom) {
		t.Errorf("Err() = %v, want boom", m.Err())
	}
	if !strings.Contains(m.View(), "driver stopped: boom") {
		t.Error("View() should report the driver error")
	}
}

func TestAppMouseMotionMovesPaddle(t *testing.T) {
	m, sink := testAppModel(t)

	row := 10
	m.Update(tea.MouseMsg{X: 5, Y: arenaTop + row, Action: tea.MouseActionMotion})

	if len(sink.inputs) != 1 {
		t.Fatalf("submitted %d inputs, want 1", len(sink.inputs))
	}
	move, ok := sink.inputs[0].(driver.PointerMove)
	if !ok {
		t.Fatalf("input = %T, want PointerMove", sink.inputs[0])
	}
	want, _ := m.arena.RowToArenaY(row)
	if math.Abs(move.Y-want) > 1e-9 {
		t.Errorf("PointerMove.Y = %v, want %v", move.Y, want)
	}
}

func TestAppMouseAboveArenaClampsToTop(t *testing.T) {
	m, sink := testAppModel(t)
	m.Update(tea.MouseMsg{Y: 0, Action: tea.MouseActionMotion})

	move := sink.inputs[0].(driver.PointerMove)
	if move.Y != 0 {
		t.Errorf("PointerMove.Y = %v, want 0", move.Y)
	}
}

func TestAppLeftClickActivates(t *testing.T) {
	m, sink := testAppModel(t)
	m.Update(tea.MouseMsg{Y: arenaTop + 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if len(sink.inputs) != 2 {
		t.Fatalf("submitted %d inputs, want 2", len(sink.inputs))
	}
	if _, ok := sink.inputs[0].(driver.PointerMove); !ok {
		t.Errorf("first input = %T, want PointerMove", sink.inputs[0])
	}
	if _, ok := sink.inputs[1].(driver.Activate); !ok {
		t.Errorf("second input = %T, want Activate", sink.inputs[1])
	}
}

func TestAppRightClickDoesNotActivate(t *testing.T) {
	m, sink := testAppModel(t)
	m.Update(tea.MouseMsg{Y: arenaTop + 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	for _, in := range sink.inputs {
		if _, ok := in.(driver.Activate); ok {
			t.Error("right click should not activate")
		}
	}
}

func TestAppKeys(t *testing.T) {
	tests := []struct {
		name  string
		key   tea.KeyMsg
		wantY float64 // -1 when no PointerMove is expected
		serve bool
	}{
		{name: "up", key: tea.KeyMsg{Type: tea.KeyUp}, wantY: 270},
		{name: "down", key: tea.KeyMsg{Type: tea.KeyDown}, wantY: 330},
		{name: "space serves", key: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, wantY: -1, serve: true},
		{name: "enter serves", key: tea.KeyMsg{Type: tea.KeyEnter}, wantY: -1, serve: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, sink := testAppModel(t)
			m.Update(tt.key)

			if len(sink.inputs) != 1 {
				t.Fatalf("submitted %d inputs, want 1", len(sink.inputs))
			}
			switch in := sink.inputs[0].(type) {
			case driver.PointerMove:
				if tt.wantY < 0 || in.Y != tt.wantY {
					t.Errorf("PointerMove.Y = %v, want %v", in.Y, tt.wantY)
				}
			case driver.Activate:
				if !tt.serve {
					t.Error("unexpected Activate")
				}
			}
		})
	}
}

func TestAppKeyStepsClampAtWalls(t *testing.T) {
	m, sink := testAppModel(t)
	var model tea.Model = m
	for i := 0; i < 30; i++ {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	last := sink.inputs[len(sink.inputs)-1].(driver.PointerMove)
	if last.Y != 0 {
		t.Errorf("final PointerMove.Y = %v, want 0", last.Y)
	}
}

func TestAppQuitKey(t *testing.T) {
	m, _ := testAppModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
}

func TestAppToggleLogResizesArena(t *testing.T) {
	m, _ := testAppModel(t)
	rows := m.arena.rows

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(AppModel)
	if m.showLog {
		t.Fatal("tab should hide the log")
	}
	if m.arena.rows != rows+logHeight {
		t.Errorf("arena rows = %d, want %d", m.arena.rows, rows+logHeight)
	}
	if strings.Contains(m.View(), "MATCH LOG") {
		t.Error("hidden log still rendered")
	}
}

func TestAppToggleHelp(t *testing.T) {
	m, _ := testAppModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = updated.(AppModel)
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
	if !strings.Contains(m.View(), "toggle log") {
		t.Error("full help should list the log binding")
	}
}

func TestAppViewLayout(t *testing.T) {
	m, _ := testAppModel(t)
	v := m.View()
	for _, want := range []string{"Player 0", "0 Computer", "MATCH LOG", "ready"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestAppViewTooSmall(t *testing.T) {
	m, _ := testAppModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	if v := updated.(AppModel).View(); !strings.Contains(v, "Terminal too small") {
		t.Errorf("View() = %q, want size warning", v)
	}
}
