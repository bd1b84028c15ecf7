// ABOUTME: Match aggregate and its Ready/Playing/Over state machine driven by inputs and ticks.
// ABOUTME: Owns both paddles, the ball, the score, the RNG, and the tick counter for a single match.
package engine

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Match is the single mutable aggregate the engine owns. It is not safe for
// concurrent use: inputs and ticks must be serialized by the caller (see the
// driver package).
type Match struct {
	id  string
	cfg Config

	player   Paddle
	computer Paddle
	ball     Ball
	score    Score
	state    State
	tick     uint64

	rng     *rand.Rand
	onEvent EventHandler
	now     func() time.Time
}

// Option configures a Match at construction.
type Option func(*Match)

// WithSeed makes direction and jitter draws reproducible.
func WithSeed(seed uint64) Option {
	return func(m *Match) {
		m.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand supplies the random source used for directions and jitter.
func WithRand(r *rand.Rand) Option {
	return func(m *Match) {
		m.rng = r
	}
}

// WithEventHandler registers a callback for lifecycle events.
func WithEventHandler(h EventHandler) Option {
	return func(m *Match) {
		m.onEvent = h
	}
}

// WithClock overrides the clock used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Match) {
		m.now = now
	}
}

// NewMatch validates cfg and returns a match in the Ready state with both
// paddles vertically centered and the ball idle at the arena midpoint.
func NewMatch(cfg Config, opts ...Option) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Match{
		id:  uuid.NewString(),
		cfg: cfg,
		player: Paddle{
			Label: cfg.PlayerName,
			Pos:   mgl64.Vec2{cfg.PaddleInset, cfg.ArenaHeight/2 - cfg.PaddleHeight/2},
			W:     cfg.PaddleWidth,
			H:     cfg.PaddleHeight,
		},
		computer: Paddle{
			Label: cfg.ComputerName,
			Pos:   mgl64.Vec2{cfg.ArenaWidth - cfg.PaddleInset - cfg.PaddleWidth, cfg.ArenaHeight/2 - cfg.PaddleHeight/2},
			W:     cfg.PaddleWidth,
			H:     cfg.PaddleHeight,
		},
		ball: Ball{
			Radius: cfg.BallRadius,
		},
		state: StateReady,
		now:   time.Now,
	}
	m.recenterBall()

	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return m, nil
}

// ID returns the match's unique identifier.
func (m *Match) ID() string { return m.id }

// Config returns the constants the match was built with.
func (m *Match) Config() Config { return m.cfg }

// State returns the current lifecycle state.
func (m *Match) State() State { return m.state }

// MovePointer binds the human paddle's vertical center to a pointer position.
// Non-finite values are ignored and y is clamped to the arena's height. The
// paddle itself may still extend past the walls. Accepted in every state.
func (m *Match) MovePointer(y float64) {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return
	}
	y = math.Max(0, math.Min(m.cfg.ArenaHeight, y))
	m.player.centerOn(y)
}

// Activate interprets the primary activation input: it starts a rally from
// Ready and clears a finished match from Over. Returns the state after the
// input. A match in Over needs two activations to get the ball moving again.
func (m *Match) Activate() State {
	switch m.state {
	case StateReady:
		m.Start()
	case StateOver:
		m.Restart()
	}
	return m.state
}

// Start launches a rally from Ready with a uniformly random direction in
// [0, 2π). The score is untouched. Returns false in any other state.
func (m *Match) Start() bool {
	if m.state != StateReady {
		return false
	}
	m.state = StatePlaying
	m.ball.Dir = m.rng.Float64() * 2 * math.Pi
	m.emit(EventRallyStarted, map[string]any{"dir": m.ball.Dir})
	return true
}

// Restart clears a finished match back to Ready with a zeroed score. It does
// not launch the ball. Returns false unless the match is Over.
func (m *Match) Restart() bool {
	if m.state != StateOver {
		return false
	}
	m.score = Score{}
	m.state = StateReady
	m.emit(EventMatchReset, nil)
	return true
}

// Tick advances the simulation by one logical tick. Outside Playing it does
// nothing, so it may be called at any rate from any driver.
func (m *Match) Tick() {
	if m.state != StatePlaying {
		return
	}
	m.tick++
	m.integrate()
	m.trackBall()
	m.resolveCollisions()
}

// recenterBall puts the ball back at the arena midpoint at default speed.
func (m *Match) recenterBall() {
	m.ball.Pos = mgl64.Vec2{m.cfg.ArenaWidth / 2, m.cfg.ArenaHeight / 2}
	m.ball.Speed = m.cfg.DefaultSpeed
}

// award credits a point to side, resets the rally, and ends the match when
// the side reaches the victory score.
func (m *Match) award(side Side) {
	var label string
	if side == SidePlayer {
		m.score.Player++
		label = m.player.Label
	} else {
		m.score.Computer++
		label = m.computer.Label
	}
	m.recenterBall()
	m.state = StateReady

	m.emit(EventPointScored, map[string]any{
		"side":     side.String(),
		"player":   m.score.Player,
		"computer": m.score.Computer,
	})

	if m.score.For(side) >= m.cfg.VictoryScore {
		m.score.Winner = label
		m.state = StateOver
		m.emit(EventMatchOver, map[string]any{"winner": label})
	}
}
