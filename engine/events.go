// ABOUTME: Lifecycle events emitted by a Match as rallies start, points are scored and matches end.
// ABOUTME: Each event carries a ULID so a presentation log can sort and dedupe entries.
package engine

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// EventType names a match lifecycle event.
type EventType string

const (
	EventRallyStarted EventType = "rally.started"
	EventPaddleHit    EventType = "paddle.hit"
	EventPointScored  EventType = "point.scored"
	EventMatchOver    EventType = "match.over"
	EventMatchReset   EventType = "match.reset"
)

// Event is emitted synchronously from the Match operation that caused it.
type Event struct {
	ID        ulid.ULID
	Type      EventType
	MatchID   string
	Tick      uint64
	Data      map[string]any
	Timestamp time.Time
}

// EventHandler receives events. It runs on the goroutine that drives the
// Match and must not call back into it.
type EventHandler func(Event)

// emit delivers an event to the configured handler, if any.
func (m *Match) emit(typ EventType, data map[string]any) {
	if m.onEvent == nil {
		return
	}
	now := m.now()
	m.onEvent(Event{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()),
		Type:      typ,
		MatchID:   m.id,
		Tick:      m.tick,
		Data:      data,
		Timestamp: now,
	})
}
