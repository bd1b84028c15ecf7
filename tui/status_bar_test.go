// ABOUTME: Tests for StatusBarModel which renders a single-line match status bar.
// ABOUTME: Covers snapshot updates, rally timing, elapsed formatting, hints, and View() rendering.
package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/2389-research/pong/engine"
)

func TestStatusBarUpdate(t *testing.T) {
	snap := testSnapshot(t)
	snap.Tick = 12
	snap.State = engine.StatePlaying

	m := NewStatusBarModel("")
	m.Update(snap)

	if m.matchID != snap.MatchID {
		t.Errorf("matchID = %q, want %q", m.matchID, snap.MatchID)
	}
	if m.state != engine.StatePlaying || m.tick != 12 || m.speed != snap.BallSpeed {
		t.Errorf("status = %+v, want playing at tick 12", m)
	}
}

func TestStatusBarStartStop(t *testing.T) {
	m := NewStatusBarModel("abc")
	if m.Elapsed() != 0 {
		t.Fatal("Elapsed() should be zero before Start()")
	}
	before := time.Now()
	m.Start()
	after := time.Now()
	if m.startTime.Before(before) || m.startTime.After(after) {
		t.Errorf("startTime %v not between %v and %v", m.startTime, before, after)
	}
	m.Stop()
	if m.Elapsed() != 0 {
		t.Error("Elapsed() should be zero after Stop()")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{12*time.Second + 400*time.Millisecond, "12s"},
		{time.Minute, "1m0s"},
		{2*time.Minute + 30*time.Second, "2m30s"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortID() = %q, want 01234567", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID() = %q, want abc", got)
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		state engine.State
		want  string
	}{
		{engine.StateReady, "serve"},
		{engine.StatePlaying, "rally in progress"},
		{engine.StateOver, "new match"},
	}
	for _, tt := range tests {
		if got := hint(tt.state); !strings.Contains(got, tt.want) {
			t.Errorf("hint(%v) = %q, want it to mention %q", tt.state, got, tt.want)
		}
	}
}

func TestStatusBarView(t *testing.T) {
	snap := testSnapshot(t)
	snap.Tick = 7
	m := NewStatusBarModel(snap.MatchID)
	m.Update(snap)
	m.SetWidth(120)

	v := m.View()
	for _, want := range []string{shortID(snap.MatchID), "ready", "Tick: 7", "Speed: 10"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() = %q, missing %q", v, want)
		}
	}
}
