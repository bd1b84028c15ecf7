// ABOUTME: Axis-aligned rectangle and circle primitives used by the simulation engine.
// ABOUTME: Provides the coarse bounding-square overlap test that decides paddle contact.
package geom

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Y grows downward, matching screen coordinates.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Circle is a circle given by its center and radius.
type Circle struct {
	Center mgl64.Vec2
	R      float64
}

// Bounds returns the circle's bounding square.
func (c Circle) Bounds() Rect {
	return Rect{
		X: c.Center.X() - c.R,
		Y: c.Center.Y() - c.R,
		W: 2 * c.R,
		H: 2 * c.R,
	}
}

// Intersects reports whether two rectangles overlap. Rectangles that only
// share an edge do not overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// RectOverlapsCircle reports whether the circle's bounding square
// [cx-r, cx+r] x [cy-r, cy+r] intersects the rectangle. This is deliberately
// coarser than a true circle/rectangle distance test: a ball near a paddle
// corner counts as touching.
func RectOverlapsCircle(r Rect, c Circle) bool {
	return r.Intersects(c.Bounds())
}
