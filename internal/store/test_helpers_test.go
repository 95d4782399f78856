package store

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/roach88/orbitr/internal/rso"
)

// createTestStore opens a store in a fresh temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	return openTestStore(t, filepath.Join(t.TempDir(), "rso_store.json"), CorruptRecover)
}

func openTestStore(t *testing.T, path string, policy CorruptPolicy) *Store {
	t.Helper()
	s, err := Open(path, Options{
		OnCorrupt: policy,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return s
}

// createTestRecord creates a complete record with the given key and name.
func createTestRecord(satcat, name string) rso.Record {
	return rso.Record{
		DisplayName:             name,
		SatcatNumber:            satcat,
		InternationalDesignator: "2024-001A",
		TLE:                     "1 " + satcat + "\n2 " + satcat,
		Aliases:                 []string{},
		Tags:                    []string{},
	}
}
