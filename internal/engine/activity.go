package engine

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/heritagepulse/pulse/internal/store"
)

// Fixed kv keys for personalization state.
const (
	interestsKey     = "interests"
	activityKey      = "activity"
	sessionSyncedKey = "sessionSynced"
)

// ActivityStore owns all persisted personalization state: the selected
// interest labels, the per-category activity scores, and the per-session
// sync flag. Reads fail soft: a broken or missing record degrades to
// "no personalization" rather than an error the UI would have to handle.
type ActivityStore struct {
	db *store.DB
}

// NewActivityStore wraps the given database.
func NewActivityStore(db *store.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

// Interests returns the selected interest labels, or an empty set when
// nothing is stored or the record cannot be read.
func (s *ActivityStore) Interests() []string {
	raw, ok, err := s.db.GetValue(interestsKey)
	if err != nil {
		log.WithError(err).Warn("read interests failed, returning empty set")
		return []string{}
	}
	if !ok {
		return []string{}
	}
	var interests []string
	if err := json.Unmarshal([]byte(raw), &interests); err != nil {
		log.WithError(err).Warn("malformed interests record, returning empty set")
		return []string{}
	}
	if interests == nil {
		return []string{}
	}
	return interests
}

// SetInterests overwrites the interest set wholesale. Returns false on
// persistence failure instead of an error.
func (s *ActivityStore) SetInterests(labels []string) bool {
	if labels == nil {
		labels = []string{}
	}
	raw, err := json.Marshal(labels)
	if err != nil {
		log.WithError(err).Warn("encode interests failed")
		return false
	}
	if err := s.db.SetValue(interestsKey, string(raw)); err != nil {
		log.WithError(err).Warn("write interests failed")
		return false
	}
	return true
}

// Scores returns the per-category activity scores, or an empty map when
// nothing is stored or the record cannot be read. Category keys are
// lowercase.
func (s *ActivityStore) Scores() map[string]int {
	raw, ok, err := s.db.GetValue(activityKey)
	if err != nil {
		log.WithError(err).Warn("read activity failed, returning empty map")
		return map[string]int{}
	}
	if !ok {
		return map[string]int{}
	}
	var scores map[string]int
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		log.WithError(err).Warn("malformed activity record, returning empty map")
		return map[string]int{}
	}
	if scores == nil {
		return map[string]int{}
	}
	return scores
}

// RecordDelta adds weight to a category's score: read the current map,
// add, write back. Callers that need the read-modify-write serialized
// go through the Tracker's queue.
func (s *ActivityStore) RecordDelta(category string, weight int) error {
	scores := s.Scores()
	scores[category] += weight
	raw, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	return s.db.SetValue(activityKey, string(raw))
}

// SessionSynced reports whether the login merge has already run this
// session.
func (s *ActivityStore) SessionSynced() bool {
	raw, ok, err := s.db.GetValue(sessionSyncedKey)
	if err != nil {
		log.WithError(err).Warn("read session sync flag failed")
		return false
	}
	return ok && raw == "true"
}

// MarkSessionSynced sets the per-session sync flag.
func (s *ActivityStore) MarkSessionSynced() error {
	return s.db.SetValue(sessionSyncedKey, "true")
}

// ClearSessionSynced resets the flag so the next login merges again.
// Called on logout.
func (s *ActivityStore) ClearSessionSynced() error {
	return s.db.DeleteValue(sessionSyncedKey)
}

// commitMerge writes merged interests, merged activity, and the synced
// flag in a single transaction. The flag can never be set while the data
// writes are only partially applied.
func (s *ActivityStore) commitMerge(interests []string, scores map[string]int) error {
	rawInterests, err := json.Marshal(interests)
	if err != nil {
		return err
	}
	rawScores, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	return s.db.SetValues(map[string]string{
		interestsKey:     string(rawInterests),
		activityKey:      string(rawScores),
		sessionSyncedKey: "true",
	})
}
