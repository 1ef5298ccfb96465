package aimconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotConfigured is returned by callers that need a Record when none
// has been saved yet.
var ErrNotConfigured = errors.New("not configured")

// Store reads and writes a Record as indented JSON at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Save overwrites the file with rec. The parent directory is created if
// needed.
func (s *Store) Save(rec Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Load reads the saved Record. It returns nil and no error when the file
// does not exist.
func (s *Store) Load() (*Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", s.path, err)
	}
	return &rec, nil
}

// MustLoad is Load, but reports a missing file as ErrNotConfigured.
func (s *Store) MustLoad() (*Record, error) {
	rec, err := s.Load()
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotConfigured
	}
	return rec, nil
}
