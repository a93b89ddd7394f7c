package store

import (
	"database/sql"
	"fmt"
)

// GetValue returns the value stored under key. ok is false when the key
// has never been written.
func (db *DB) GetValue(key string) (value string, ok bool, err error) {
	err = db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get value %q: %w", key, err)
	}
	return value, true, nil
}

// SetValue stores value under key, replacing any previous value.
func (db *DB) SetValue(key, value string) error {
	_, err := db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set value %q: %w", key, err)
	}
	return nil
}

// SetValues stores every pair in a single transaction. Either all pairs
// are written or none are.
func (db *DB) SetValues(pairs map[string]string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin set values: %w", err)
	}

	for key, value := range pairs {
		if _, err := tx.Exec(`
			INSERT INTO kv (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value); err != nil {
			tx.Rollback()
			return fmt.Errorf("set value %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set values: %w", err)
	}
	return nil
}

// DeleteValue removes key. Deleting a missing key is not an error.
func (db *DB) DeleteValue(key string) error {
	if _, err := db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete value %q: %w", key, err)
	}
	return nil
}
