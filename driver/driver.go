// ABOUTME: Fixed-rate tick driver that owns a Match, applies queued inputs between ticks, and publishes snapshots.
// ABOUTME: Step is exposed so headless runs and tests can advance the simulation without timers.
package driver

import (
	"context"
	"log"
	"time"

	"github.com/2389-research/pong/engine"
)

// Input is an event from the input source. Inputs are queued by Submit and
// applied whole at the start of the next Step.
type Input interface {
	apply(m *engine.Match)
}

// PointerMove places the human paddle's vertical center at Y (arena units).
type PointerMove struct {
	Y float64
}

func (p PointerMove) apply(m *engine.Match) { m.MovePointer(p.Y) }

// Activate is the primary activation: start from Ready, restart from Over.
type Activate struct{}

func (Activate) apply(m *engine.Match) { m.Activate() }

// SnapshotHandler receives the state published after every Step.
type SnapshotHandler func(engine.Snapshot)

// Driver serializes inputs and ticks for a single Match. Only the goroutine
// running Run (or calling Step) touches the Match; Submit is safe from any
// goroutine.
type Driver struct {
	match      *engine.Match
	interval   time.Duration
	inputs     chan Input
	onSnapshot SnapshotHandler
}

// Option configures a Driver.
type Option func(*Driver)

// WithInterval overrides the tick spacing derived from the match's TickRate.
func WithInterval(d time.Duration) Option {
	return func(dr *Driver) {
		if d > 0 {
			dr.interval = d
		}
	}
}

// WithSnapshotHandler registers a callback invoked after every Step.
func WithSnapshotHandler(h SnapshotHandler) Option {
	return func(dr *Driver) {
		dr.onSnapshot = h
	}
}

// WithQueueSize sets how many inputs may wait between ticks. Defaults to 64.
func WithQueueSize(n int) Option {
	return func(dr *Driver) {
		if n > 0 {
			dr.inputs = make(chan Input, n)
		}
	}
}

// New creates a driver for m ticking at the match's configured rate.
func New(m *engine.Match, opts ...Option) *Driver {
	d := &Driver{
		match:    m,
		interval: m.Config().TickInterval(),
		inputs:   make(chan Input, 64),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Interval returns the spacing between ticks.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Submit queues an input for the next tick without blocking. It returns
// false and drops the input when the queue is full.
func (d *Driver) Submit(in Input) bool {
	select {
	case d.inputs <- in:
		return true
	default:
		return false
	}
}

// Step applies every queued input in arrival order, advances the match by one
// tick, and publishes the resulting snapshot.
func (d *Driver) Step() engine.Snapshot {
	for _, in := range d.drain() {
		in.apply(d.match)
	}
	d.match.Tick()

	snap := d.match.Snapshot()
	if d.onSnapshot != nil {
		d.onSnapshot(snap)
	}
	return snap
}

// Run calls Step once per interval until ctx is done, then returns ctx.Err().
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	log.Printf("component=driver action=started match_id=%s interval=%s", d.match.ID(), d.interval)
	defer log.Printf("component=driver action=stopped match_id=%s", d.match.ID())

	// Publish once up front so presentation has a frame before the first tick.
	if d.onSnapshot != nil {
		d.onSnapshot(d.match.Snapshot())
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.Step()
		}
	}
}

// drain returns all currently queued inputs.
func (d *Driver) drain() []Input {
	var inputs []Input
	for {
		select {
		case in := <-d.inputs:
			inputs = append(inputs, in)
		default:
			return inputs
		}
	}
}
