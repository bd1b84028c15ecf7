// ABOUTME: Computer opponent policy: the paddle's vertical center snaps to the ball every tick.
// ABOUTME: No reaction delay, speed limit, or wall clamp, so the opponent cannot miss.
package engine

// trackBall centers the computer paddle on the ball's current height. The
// opponent is intentionally unbeatable; there is no difficulty setting.
func (m *Match) trackBall() {
	m.computer.centerOn(m.ball.Pos.Y())
}
