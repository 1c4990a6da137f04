package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/iamraziq/glitch-memory/internal/core"
)

var _ core.KeyValueStore = (*Store)(nil)

// Has reports whether key is set.
func (s *Store) Has(key string) (bool, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM settings WHERE key = ?", key).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query setting %q: %w", key, err)
	}
	return n > 0, nil
}

// Get returns the value of key. ok is false if the key is not set.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes key, replacing any previous value in a single statement.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete setting %q: %w", key, err)
	}
	return nil
}

// Keys returns all setting keys with the given prefix, sorted.
func (s *Store) Keys(prefix string) ([]string, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if prefix == "" {
		rows, err = s.db.Query("SELECT key FROM settings ORDER BY key")
	} else {
		// Keys compare bytewise and 0xff never occurs in UTF-8, so this
		// range holds exactly the keys starting with prefix.
		rows, err = s.db.Query(
			"SELECT key FROM settings WHERE key >= ? AND key < ? ORDER BY key",
			prefix, prefix+"\xff",
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list settings: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return keys, nil
}
