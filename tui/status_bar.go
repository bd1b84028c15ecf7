// ABOUTME: Implements a single-line status bar for the bottom of the TUI showing match progress.
// ABOUTME: Displays match ID, lifecycle state, tick count, ball speed, rally elapsed time, and a state hint.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/pong/engine"
)

// StatusBarModel displays match status in a single line.
type StatusBarModel struct {
	matchID   string
	state     engine.State
	tick      uint64
	speed     float64
	startTime time.Time
	width     int
}

// NewStatusBarModel creates a StatusBarModel for the given match.
func NewStatusBarModel(matchID string) StatusBarModel {
	return StatusBarModel{matchID: matchID}
}

// Start records the rally start time.
func (m *StatusBarModel) Start() {
	m.startTime = time.Now()
}

// Stop clears the rally timer.
func (m *StatusBarModel) Stop() {
	m.startTime = time.Time{}
}

// Update copies the displayed fields from a snapshot.
func (m *StatusBarModel) Update(s engine.Snapshot) {
	m.matchID = s.MatchID
	m.state = s.State
	m.tick = s.Tick
	m.speed = s.BallSpeed
}

// SetWidth sets the bar width for rendering.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// Elapsed returns the time since Start() was called, or zero if not started.
func (m StatusBarModel) Elapsed() time.Duration {
	if m.startTime.IsZero() {
		return 0
	}
	return time.Since(m.startTime)
}

// formatElapsed formats a duration as a human-readable string.
// Durations under a minute show as seconds (e.g. "12s").
// Durations of a minute or more show as minutes and seconds (e.g. "2m30s").
func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) - minutes*60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}

// shortID trims an identifier for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// hint tells the player what the primary activation will do next.
func hint(s engine.State) string {
	switch s {
	case engine.StateReady:
		return "click or space to serve"
	case engine.StateOver:
		return "click or space for a new match"
	default:
		return "rally in progress"
	}
}

// View renders the status bar as a single styled line.
func (m StatusBarModel) View() string {
	state := StyleForState(m.state).Render(m.state.String())

	content := fmt.Sprintf("Match: %s | %s | Tick: %d | Speed: %.0f | Rally: %s | %s",
		shortID(m.matchID), state, m.tick, m.speed, formatElapsed(m.Elapsed()), hint(m.state))

	style := StatusBarStyle.Width(m.width)

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, style.Render(content))
}
