package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// Setting keys.
const (
	SettingControlMode = "control_mode"
)

// Setting returns a stored preference, or "" when unset.
func (s *Store) Setting(key string) (string, error) {
	var v string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return v, nil
}

// SetSetting stores a preference, replacing any previous value.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %s: %w", key, err)
	}
	return nil
}
