package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestStore_ProbeSucceedsOnFreshDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receiptd.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	if err := s.Probe(context.Background()); err != nil {
		t.Errorf("Probe() error = %v", err)
	}
}

func TestStore_ProbeFailsOnUnreachableDatabase(t *testing.T) {
	// A directory path is not a valid database file
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	if err := s.Probe(context.Background()); err == nil {
		t.Error("Probe() should fail when the path is not a database")
	}
}
