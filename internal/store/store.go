// Package store persists reference data as JSON files in the data directory:
// receivers keyed by customer code, staff keyed by email, and the append-only
// invoice history used for invoice numbering.
//
// Every write replaces the whole file through a temporary file and rename.
// A missing file is created empty; a file that cannot be parsed is read as
// empty and logged. The store assumes a single writer.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/bonhokoo-eng/ci-generator/internal/logger"
)

// File names inside the data directory.
const (
	ReceiversFile = "receivers.json"
	StaffFile     = "staff.json"
	HistoryFile   = "invoice_history.json"
)

// MaxHistory is the number of history entries kept.
const MaxHistory = 500

// ErrMissingKey is returned when a record lacks its key field.
var ErrMissingKey = errors.New("record key is required")

// Store is the reference data store.
type Store struct {
	dir string
	now func() time.Time
	log zerolog.Logger
}

// New opens the store in dir, creating the directory and empty files as needed.
func New(dir string) (*Store, error) {
	const op = "New"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: failed to create data dir %s: %w", op, dir, err)
	}
	s := &Store{
		dir: dir,
		now: time.Now,
		log: logger.WithComponent("store"),
	}
	for _, name := range []string{ReceiversFile, StaffFile, HistoryFile} {
		path := s.path(name)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := writeJSON(path, []struct{}{}); err != nil {
				return nil, fmt.Errorf("%s: failed to initialize %s: %w", op, path, err)
			}
		}
	}
	return s, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// load reads a JSON array; a missing or malformed file yields an empty slice.
func load[T any](s *Store, name string) []T {
	path := s.path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Err(err).Str("file", path).Msg("Failed to read data file")
		}
		return nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		s.log.Warn().Err(err).Str("file", path).Msg("Ignoring unreadable data file")
		return nil
	}
	return out
}

func save[T any](s *Store, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	if err := writeJSON(s.path(name), records); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// writeJSON writes v indented to a temporary file and renames it over path.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
