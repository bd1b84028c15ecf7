// ABOUTME: Tests for the tick driver: input queuing and ordering, step semantics, and the timed run loop.
// ABOUTME: Uses seeded matches so snapshots are reproducible.
package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/2389-research/pong/engine"
)

func newTestMatch(t *testing.T) *engine.Match {
	t.Helper()
	m, err := engine.NewMatch(engine.DefaultConfig(), engine.WithSeed(3))
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	return m
}

func TestNewUsesMatchTickRate(t *testing.T) {
	d := New(newTestMatch(t))
	if got, want := d.Interval(), time.Second/60; got != want {
		t.Errorf("Interval() = %v, want %v", got, want)
	}

	d = New(newTestMatch(t), WithInterval(5*time.Millisecond))
	if got := d.Interval(); got != 5*time.Millisecond {
		t.Errorf("Interval() with override = %v, want 5ms", got)
	}
}

func TestStepWithoutInputsInReadyIsIdle(t *testing.T) {
	m := newTestMatch(t)
	d := New(m)
	before := m.Snapshot()
	after := d.Step()
	if after != before {
		t.Errorf("Step() in ready changed state:\n before %+v\n after  %+v", before, after)
	}
}

func TestStepAppliesInputsBeforeTick(t *testing.T) {
	m := newTestMatch(t)
	d := New(m)

	d.Submit(PointerMove{Y: 120})
	d.Submit(Activate{})
	snap := d.Step()

	if snap.State != engine.StatePlaying {
		t.Fatalf("state = %v, want playing", snap.State)
	}
	if snap.Tick != 1 {
		t.Errorf("tick = %d, want 1 (activation applied before the tick)", snap.Tick)
	}
	if snap.Player.Y != 70 {
		t.Errorf("player y = %v, want 70", snap.Player.Y)
	}
}

func TestStepAppliesInputsInOrder(t *testing.T) {
	m := newTestMatch(t)
	d := New(m)

	d.Submit(PointerMove{Y: 100})
	d.Submit(PointerMove{Y: 400})
	snap := d.Step()

	if snap.Player.Y != 350 {
		t.Errorf("player y = %v, want 350 (last pointer move wins)", snap.Player.Y)
	}
}

func TestSubmitDropsWhenFull(t *testing.T) {
	d := New(newTestMatch(t), WithQueueSize(2))
	if !d.Submit(Activate{}) || !d.Submit(Activate{}) {
		t.Fatal("Submit() rejected input below capacity")
	}
	if d.Submit(Activate{}) {
		t.Error("Submit() accepted input beyond capacity")
	}

	d.Step()
	if !d.Submit(Activate{}) {
		t.Error("Submit() rejected input after queue drained")
	}
}

func TestStepPublishesSnapshot(t *testing.T) {
	var got []engine.Snapshot
	d := New(newTestMatch(t), WithSnapshotHandler(func(s engine.Snapshot) {
		got = append(got, s)
	}))

	d.Submit(Activate{})
	d.Step()
	d.Step()

	if len(got) != 2 {
		t.Fatalf("published %d snapshots, want 2", len(got))
	}
	if got[0].Tick != 1 || got[1].Tick != 2 {
		t.Errorf("ticks = %d,%d, want 1,2", got[0].Tick, got[1].Tick)
	}
}

func TestRunTicksUntilCancelled(t *testing.T) {
	m := newTestMatch(t)
	ticks := make(chan engine.Snapshot, 256)
	d := New(m,
		WithInterval(time.Millisecond),
		WithSnapshotHandler(func(s engine.Snapshot) {
			select {
			case ticks <- s:
			default:
			}
		}),
	)
	d.Submit(Activate{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-ticks:
			if s.Tick < 3 {
				continue
			}
			cancel()
			select {
			case err := <-done:
				if !errors.Is(err, context.Canceled) {
					t.Errorf("Run() = %v, want context.Canceled", err)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("Run() did not return after cancel")
			}
			return
		case <-deadline:
			cancel()
			t.Fatal("driver did not reach tick 3")
		}
	}
}
