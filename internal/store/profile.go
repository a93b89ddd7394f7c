package store

import (
	"encoding/json"
	"fmt"
	"time"
)

const profileKey = "profile"

// Profile is the account owner's display profile. It lives in the kv
// table as a single JSON record rather than as hidden mutable state in
// the UI layer.
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Bio      string `json:"bio,omitempty"`
	JoinedAt int64  `json:"joined_at"`
}

// GetProfile returns the stored profile, or a zero-value profile if none
// has been saved yet.
func (db *DB) GetProfile() (*Profile, error) {
	raw, ok, err := db.GetValue(profileKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Profile{}, nil
	}
	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// SetProfile persists the profile, stamping JoinedAt on first save.
func (db *DB) SetProfile(p *Profile) error {
	if p.JoinedAt == 0 {
		p.JoinedAt = time.Now().UnixMilli()
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return db.SetValue(profileKey, string(raw))
}
