// ABOUTME: Read-only copy of match state handed to presentation layers each tick.
// ABOUTME: Digest fingerprints the simulated state with xxh3 so seeded runs can be compared.
package engine

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"

	"github.com/2389-research/pong/geom"
)

// Snapshot is everything a renderer needs. It shares no memory with the Match.
type Snapshot struct {
	MatchID string
	Tick    uint64
	State   State

	ArenaWidth  float64
	ArenaHeight float64

	Player   geom.Rect
	Computer geom.Rect
	Ball     geom.Circle

	BallDir   float64
	BallSpeed float64

	PlayerName    string
	ComputerName  string
	PlayerScore   int
	ComputerScore int
	Winner        string // empty unless State is StateOver
}

// Snapshot returns a copy of the current state.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		MatchID:       m.id,
		Tick:          m.tick,
		State:         m.state,
		ArenaWidth:    m.cfg.ArenaWidth,
		ArenaHeight:   m.cfg.ArenaHeight,
		Player:        m.player.Rect(),
		Computer:      m.computer.Rect(),
		Ball:          m.ball.Circle(),
		BallDir:       m.ball.Dir,
		BallSpeed:     m.ball.Speed,
		PlayerName:    m.player.Label,
		ComputerName:  m.computer.Label,
		PlayerScore:   m.score.Player,
		ComputerScore: m.score.Computer,
		Winner:        m.score.Winner,
	}
}

// Digest hashes the simulated fields of the snapshot. The match ID is left
// out so two matches built from the same config and seed, fed the same
// inputs, produce equal digests.
func (s Snapshot) Digest() uint64 {
	h := xxh3.New()
	var buf [8]byte

	putU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putF64 := func(v float64) { putU64(math.Float64bits(v)) }

	putU64(s.Tick)
	putU64(uint64(s.State))
	for _, v := range []float64{
		s.Player.X, s.Player.Y, s.Player.W, s.Player.H,
		s.Computer.X, s.Computer.Y, s.Computer.W, s.Computer.H,
		s.Ball.Center.X(), s.Ball.Center.Y(), s.Ball.R,
		s.BallDir, s.BallSpeed,
	} {
		putF64(v)
	}
	putU64(uint64(s.PlayerScore))
	putU64(uint64(s.ComputerScore))
	_, _ = h.Write([]byte(s.Winner))

	return h.Sum64()
}
