// Package mapstore persists rename maps in SQLite so repeated runs and
// multiple files share one numbering space, and exports them for
// inspection or reversal.
package mapstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/colmask/colmask-go/internal/anonymizer"
)

// Store wraps a SQLite-backed rename map.
type Store struct {
	db   *sql.DB
	Path string
}

const schema = `
CREATE TABLE IF NOT EXISTS renames (
	seq         INTEGER PRIMARY KEY AUTOINCREMENT,
	token       TEXT NOT NULL UNIQUE,
	placeholder TEXT NOT NULL UNIQUE
)`

// Open opens or creates a mapping store at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mapping store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize mapping store: %w", err)
	}

	return &Store{db: db, Path: path}, nil
}

// Load returns all stored mappings in assignment order.
func (s *Store) Load() ([]anonymizer.Mapping, error) {
	rows, err := s.db.Query("SELECT token, placeholder FROM renames ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to load mappings: %w", err)
	}
	defer rows.Close()

	var mappings []anonymizer.Mapping
	for rows.Next() {
		var m anonymizer.Mapping
		if err := rows.Scan(&m.Token, &m.Placeholder); err != nil {
			return nil, fmt.Errorf("failed to scan mapping: %w", err)
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mappings: %w", err)
	}

	return mappings, nil
}

// Save inserts mappings not yet present. Tokens already stored keep
// their placeholder.
func (s *Store) Save(mappings []anonymizer.Mapping) error {
	if len(mappings) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO renames (token, placeholder) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, m := range mappings {
		if _, err := stmt.Exec(m.Token, m.Placeholder); err != nil {
			return fmt.Errorf("failed to save mapping %s: %w", m.Placeholder, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
