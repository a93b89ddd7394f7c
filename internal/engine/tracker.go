package engine

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// Action is an engagement event kind reported by the client.
type Action string

const (
	ActionView     Action = "VIEW"
	ActionBookmark Action = "BOOKMARK"
	ActionLike     Action = "LIKE"
	ActionShare    Action = "SHARE"
)

// defaultWeight applies to action kinds the table does not know, so new
// client actions degrade gracefully instead of erroring.
const defaultWeight = 1

var actionWeights = map[Action]int{
	ActionView:     1,
	ActionBookmark: 3,
	ActionLike:     3,
	ActionShare:    5,
}

// Weight returns the score weight for an action.
func (a Action) Weight() int {
	if w, ok := actionWeights[a]; ok {
		return w
	}
	return defaultWeight
}

type activityEvent struct {
	category string
	weight   int
	ack      chan struct{} // non-nil only for Flush sentinels
}

// Tracker turns UI engagement events into weighted score updates. Events
// go onto a buffered channel drained by a single consumer goroutine, so
// the store's read-modify-write sequences never interleave and no
// increment is lost to a concurrent writer. Callers fire and forget.
type Tracker struct {
	store  *ActivityStore
	events chan activityEvent
	done   chan struct{}
}

// NewTracker starts a tracker draining into the given store.
func NewTracker(store *ActivityStore, queueSize int) *Tracker {
	if queueSize <= 0 {
		queueSize = 256
	}
	t := &Tracker{
		store:  store,
		events: make(chan activityEvent, queueSize),
		done:   make(chan struct{}),
	}
	go t.drain()
	return t
}

func (t *Tracker) drain() {
	for ev := range t.events {
		if ev.ack != nil {
			close(ev.ack)
			continue
		}
		if err := t.store.RecordDelta(ev.category, ev.weight); err != nil {
			// Best-effort counter: the increment is lost, nothing retries.
			log.WithError(err).WithField("category", ev.category).Warn("activity increment lost")
		}
	}
	close(t.done)
}

// Track enqueues an event without blocking. The category is lowercased
// here so every caller can pass raw category strings. If the queue is
// full the event is dropped and logged.
func (t *Tracker) Track(category string, action Action) {
	ev := activityEvent{category: strings.ToLower(category), weight: action.Weight()}
	select {
	case t.events <- ev:
	default:
		log.WithField("category", ev.category).Warn("activity queue full, event dropped")
	}
}

// Record applies an event synchronously, bypassing the queue. Used by
// the CLI, where the process exits right after the call.
func (t *Tracker) Record(category string, action Action) error {
	return t.store.RecordDelta(strings.ToLower(category), action.Weight())
}

// Flush blocks until every event enqueued before the call has been
// applied.
func (t *Tracker) Flush() {
	ack := make(chan struct{})
	t.events <- activityEvent{ack: ack}
	<-ack
}

// Close drains pending events and stops the consumer. Track must not be
// called after Close.
func (t *Tracker) Close() {
	close(t.events)
	<-t.done
}
