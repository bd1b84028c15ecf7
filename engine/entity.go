// ABOUTME: Entity state owned by a Match: paddles, the ball, and the score record.
// ABOUTME: Paddle sizes and ball radius are fixed at construction; positions, direction and speed mutate per tick.
package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/2389-research/pong/geom"
)

// Paddle is one actor's paddle. Pos is the top-left corner.
type Paddle struct {
	Label string
	Pos   mgl64.Vec2
	W, H  float64
}

// Rect returns the paddle's extent.
func (p Paddle) Rect() geom.Rect {
	return geom.Rect{X: p.Pos.X(), Y: p.Pos.Y(), W: p.W, H: p.H}
}

// centerOn places the paddle's vertical center at y. No wall clamping: a
// paddle may hang partly or wholly outside the arena.
func (p *Paddle) centerOn(y float64) {
	p.Pos[1] = y - p.H/2
}

// Ball is the ball. Dir is an angle in radians kept in [0, 2π); Speed is in
// arena units per tick.
type Ball struct {
	Pos    mgl64.Vec2
	Radius float64
	Dir    float64
	Speed  float64
}

// Circle returns the ball's extent.
func (b Ball) Circle() geom.Circle {
	return geom.Circle{Center: b.Pos, R: b.Radius}
}

// Velocity returns the per-tick displacement.
func (b Ball) Velocity() mgl64.Vec2 {
	return mgl64.Vec2{math.Cos(b.Dir), math.Sin(b.Dir)}.Mul(b.Speed)
}

// Score is the per-side point tally. Winner is only set while the match is Over.
type Score struct {
	Player   int
	Computer int
	Winner   string
}

// For returns the counter for the given side.
func (s Score) For(side Side) int {
	if side == SidePlayer {
		return s.Player
	}
	return s.Computer
}

// normalizeAngle maps an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
