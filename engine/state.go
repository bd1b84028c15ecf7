// ABOUTME: Match lifecycle states: Ready (ball idle), Playing (ticks apply physics), Over (terminal).
// ABOUTME: Side identifies which actor scored or won.
package engine

// State is the lifecycle state of a match.
type State int

const (
	// StateReady means the ball is idle at center awaiting a start input.
	StateReady State = iota
	// StatePlaying means ticks advance the ball.
	StatePlaying
	// StateOver means a side reached the victory score. Only a restart input leaves it.
	StateOver
)

// String returns a human-readable label for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Side identifies one of the two actors.
type Side int

const (
	SidePlayer Side = iota
	SideComputer
)

// String returns a human-readable label for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideComputer:
		return "computer"
	default:
		return "unknown"
	}
}
