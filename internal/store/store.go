package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/facebookgo/atomicfile"

	"github.com/roach88/orbitr/internal/rso"
)

// CorruptPolicy selects what happens when the backing file cannot be decoded.
type CorruptPolicy string

const (
	// CorruptRecover treats an undecodable file as an empty collection.
	// The next successful write replaces it.
	CorruptRecover CorruptPolicy = "recover"

	// CorruptFail returns a CORRUPT_STATE error from every operation until
	// the file is repaired.
	CorruptFail CorruptPolicy = "fail"
)

// Options configures a Store.
type Options struct {
	// OnCorrupt defaults to CorruptRecover.
	OnCorrupt CorruptPolicy

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Store is a JSON-file-backed collection of RSO records keyed by SatCat number.
// Safe for concurrent use.
type Store struct {
	path      string
	onCorrupt CorruptPolicy
	logger    *slog.Logger

	mu sync.Mutex
}

// Open returns a Store backed by the file at path. The parent directory is
// created if needed, and a missing file is initialized to an empty array.
// An existing file is not read until the first operation.
func Open(path string, opts Options) (*Store, error) {
	if path == "" {
		return nil, errors.New("store path is required")
	}

	policy := opts.OnCorrupt
	switch policy {
	case "":
		policy = CorruptRecover
	case CorruptRecover, CorruptFail:
	default:
		return nil, fmt.Errorf("unknown corrupt policy %q", policy)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	s := &Store{
		path:      path,
		onCorrupt: policy,
		logger:    logger,
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.write([]rso.Record{}); err != nil {
			return nil, fmt.Errorf("failed to initialize store file: %w", err)
		}
		logger.Debug("store file created", "path", path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat store file: %w", err)
	}

	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Seed writes records as the initial collection if the store is empty.
// It returns true if the records were written. Records without a key and
// repeated keys are skipped so the uniqueness invariant holds.
func (s *Store) Seed(records []rso.Record) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		return false, err
	}
	if len(current) > 0 {
		return false, nil
	}

	seeded := make([]rso.Record, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		r = r.Normalized()
		if r.SatcatNumber == "" {
			s.logger.Warn("skipping seed record without satcat number", "display_name", r.DisplayName)
			continue
		}
		if _, dup := seen[r.SatcatNumber]; dup {
			s.logger.Warn("skipping duplicate seed record", "satcat", r.SatcatNumber)
			continue
		}
		seen[r.SatcatNumber] = struct{}{}
		seeded = append(seeded, r)
	}

	if err := s.write(seeded); err != nil {
		return false, err
	}
	s.logger.Info("store seeded", "path", s.path, "records", len(seeded))
	return true, nil
}

// List returns every record sorted by display name, case-insensitively.
func (s *Store) List() ([]rso.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return nil, err
	}
	rso.SortByDisplayName(records)
	return records, nil
}

// Len returns the number of stored records.
func (s *Store) Len() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// Get looks up a record by SatCat number. Surrounding whitespace in satcat
// is ignored. The bool is false when no record has that key.
func (s *Store) Get(satcat string) (rso.Record, bool, error) {
	satcat = strings.TrimSpace(satcat)

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return rso.Record{}, false, err
	}
	if i := indexOf(records, satcat); i >= 0 {
		return records[i], true, nil
	}
	return rso.Record{}, false, nil
}

// Create appends a record. It fails with DUPLICATE_KEY if the key exists
// and INVALID_INPUT if the record has no key.
func (s *Store) Create(r rso.Record) (rso.Record, error) {
	stored := r.Normalized()
	if stored.SatcatNumber == "" {
		return rso.Record{}, errInvalidInput("satcat_number is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return rso.Record{}, err
	}
	if indexOf(records, stored.SatcatNumber) >= 0 {
		return rso.Record{}, errDuplicateKey(stored.SatcatNumber)
	}

	records = append(records, stored)
	if err := s.write(records); err != nil {
		return rso.Record{}, err
	}
	s.logger.Debug("record created", "satcat", stored.SatcatNumber)
	return stored.Clone(), nil
}

// Replace overwrites the record stored under satcat, keeping its position.
// The replacement must carry the same key.
func (s *Store) Replace(satcat string, r rso.Record) (rso.Record, error) {
	satcat = strings.TrimSpace(satcat)
	stored := r.Normalized()
	if stored.SatcatNumber != satcat {
		return rso.Record{}, errInvalidInput("SatCat number cannot be reassigned.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return rso.Record{}, err
	}
	i := indexOf(records, satcat)
	if i < 0 {
		return rso.Record{}, errNotFound(satcat)
	}

	records[i] = stored
	if err := s.write(records); err != nil {
		return rso.Record{}, err
	}
	s.logger.Debug("record replaced", "satcat", satcat)
	return stored.Clone(), nil
}

// Delete removes the record stored under satcat.
func (s *Store) Delete(satcat string) error {
	satcat = strings.TrimSpace(satcat)

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}
	i := indexOf(records, satcat)
	if i < 0 {
		return errNotFound(satcat)
	}

	remaining := append(records[:i:i], records[i+1:]...)
	if err := s.write(remaining); err != nil {
		return err
	}
	s.logger.Debug("record deleted", "satcat", satcat)
	return nil
}

func indexOf(records []rso.Record, satcat string) int {
	for i, r := range records {
		if r.SatcatNumber == satcat {
			return i
		}
	}
	return -1
}

// read loads and normalizes the whole collection. Must hold s.mu.
// The returned records are freshly decoded and owned by the caller.
func (s *Store) read() ([]rso.Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []rso.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	records, dropped, err := decode(data)
	if err != nil {
		if s.onCorrupt == CorruptFail {
			return nil, &Error{
				Code:    CodeCorruptState,
				Message: fmt.Sprintf("store file %s is not a valid record array", s.path),
				Err:     err,
			}
		}
		s.logger.Warn("store file is corrupt, treating as empty", "path", s.path, "error", err)
		return []rso.Record{}, nil
	}
	if dropped > 0 {
		s.logger.Warn("ignoring keyless or repeated records in store file", "path", s.path, "dropped", dropped)
	}
	return records, nil
}

// decode parses and normalizes a record array. Entries without a key
// (including null) and repeats of an earlier key are dropped; the count of
// dropped entries is returned.
func decode(data []byte) ([]rso.Record, int, error) {
	var records []rso.Record
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&records); err != nil {
		return nil, 0, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, 0, errors.New("trailing data after record array")
	}

	out := make([]rso.Record, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		r = r.Normalized()
		if r.SatcatNumber == "" {
			continue
		}
		if _, dup := seen[r.SatcatNumber]; dup {
			continue
		}
		seen[r.SatcatNumber] = struct{}{}
		out = append(out, r)
	}
	return out, len(records) - len(out), nil
}

// write replaces the backing file with the encoded collection. Must hold s.mu.
func (s *Store) write(records []rso.Record) error {
	if records == nil {
		records = []rso.Record{}
	}

	f, err := atomicfile.New(s.path, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open store file for writing: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		_ = f.Abort()
		return fmt.Errorf("failed to encode records: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to commit store file: %w", err)
	}
	return nil
}
