// ABOUTME: Bridge connecting the tick driver and match events to the Bubble Tea message loop.
// ABOUTME: Provides Bridge for snapshot/event injection and a tea.Cmd factory that runs the driver.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/pong/driver"
	"github.com/2389-research/pong/engine"
)

// InputSink accepts inputs for the next tick. *driver.Driver satisfies it.
type InputSink interface {
	Submit(in driver.Input) bool
}

// Bridge wraps a tea.Program's Send method for injecting driver output into
// the Bubble Tea message loop.
type Bridge struct {
	send func(msg tea.Msg)
}

// NewBridge creates a Bridge that sends messages via the given function.
// Typically called with program.Send as the argument.
func NewBridge(send func(msg tea.Msg)) *Bridge {
	return &Bridge{send: send}
}

// HandleSnapshot implements driver.SnapshotHandler.
func (b *Bridge) HandleSnapshot(s engine.Snapshot) {
	b.send(SnapshotMsg{Snapshot: s})
}

// HandleEvent implements engine.EventHandler.
func (b *Bridge) HandleEvent(evt engine.Event) {
	b.send(MatchEventMsg{Event: evt})
}

// RunDriverCmd returns a tea.Cmd that runs the driver until ctx is cancelled
// and then reports a DriverStoppedMsg. Cancellation is not reported as an error.
func RunDriverCmd(ctx context.Context, d *driver.Driver) tea.Cmd {
	return func() tea.Msg {
		err := d.Run(ctx)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
		return DriverStoppedMsg{Err: err}
	}
}
