// ABOUTME: Ball integration and per-tick collision resolution: side exits, wall reflection, paddle contact.
// ABOUTME: Steps run in a fixed order so a re-centered ball never collides against its pre-score position.
package engine

import (
	"math"

	"github.com/2389-research/pong/geom"
)

// integrate applies one Euler step: speed is already in units per tick.
func (m *Match) integrate() {
	m.ball.Pos = m.ball.Pos.Add(m.ball.Velocity())
}

// resolveCollisions runs, in order: side-exit scoring (with the win check),
// top/bottom wall reflection, then paddle contact. The wall and paddle checks
// run even on a scoring tick, against the re-centered ball.
func (m *Match) resolveCollisions() {
	b := m.ball
	switch {
	case b.Pos.X()+b.Radius < 0:
		m.award(SideComputer)
	case b.Pos.X()-b.Radius > m.cfg.ArenaWidth:
		m.award(SidePlayer)
	}

	if m.ball.Pos.Y()-m.ball.Radius < 0 || m.ball.Pos.Y()+m.ball.Radius > m.cfg.ArenaHeight {
		m.reflectOffWall()
	}

	c := m.ball.Circle()
	if geom.RectOverlapsCircle(m.player.Rect(), c) || geom.RectOverlapsCircle(m.computer.Rect(), c) {
		m.reflectOffPaddle()
	}
}

// reflectOffWall mirrors the direction across the horizontal axis, flipping
// vertical velocity and keeping horizontal velocity.
func (m *Match) reflectOffWall() {
	m.ball.Dir = normalizeAngle(2*math.Pi - m.ball.Dir)
}

// reflectOffPaddle sends the ball back across the arena with a jittered
// angle and bumps the speed by one, capped at MaxSpeed.
func (m *Match) reflectOffPaddle() {
	m.ball.Dir = normalizeAngle(math.Pi*m.jitter() - m.ball.Dir)
	m.ball.Speed = math.Min(m.ball.Speed+1, m.cfg.MaxSpeed)
	m.emit(EventPaddleHit, map[string]any{"speed": m.ball.Speed})
}

// jitter draws a multiplier uniformly from [JitterMin, JitterMax].
func (m *Match) jitter() float64 {
	return m.cfg.JitterMin + m.rng.Float64()*(m.cfg.JitterMax-m.cfg.JitterMin)
}
