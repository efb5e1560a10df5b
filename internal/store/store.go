// Package store holds the SQLite pass-through used by the health endpoint.
//
// receiptd does not persist anything itself - discovery results live for a
// single pass and printing is fire-and-forget. The database belongs to the
// surrounding deployment; receiptd only opens it so that /health can report
// whether it is reachable.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// probeTimeout bounds the liveness query so a wedged database cannot hang a
// health check.
const probeTimeout = 2 * time.Second

// Store is a thin handle on the deployment's SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at path. The connection is lazy; Probe is
// what actually touches the file.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Store{db: db}, nil
}

// Probe runs a trivial query to confirm the database is reachable.
func (s *Store) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var one int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("database probe failed: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
