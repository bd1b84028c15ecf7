// ABOUTME: Bubble Tea message types used in the TUI message loop.
// ABOUTME: Each type wraps driver output (snapshots, match events, shutdown) for the tea.Msg interface.
package tui

import "github.com/2389-research/pong/engine"

// SnapshotMsg carries the state published after a driver tick.
type SnapshotMsg struct {
	Snapshot engine.Snapshot
}

// MatchEventMsg wraps an engine.Event for the Bubble Tea message loop.
type MatchEventMsg struct {
	Event engine.Event
}

// DriverStoppedMsg signals that the tick driver has returned.
type DriverStoppedMsg struct {
	Err error
}
