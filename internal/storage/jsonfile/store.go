// Package jsonfile persists character records as human-editable JSON
// files. The file is the storage contract: campaign scripts and players
// read and hand-edit it between sessions, so writes keep stable field
// order and two-space indentation, and saves are atomic so a crash never
// leaves a half-written record behind.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gmkit/gcssync/internal/game/character"
)

// ErrRecordNotFound is returned when the record file does not exist.
var ErrRecordNotFound = errors.New("character record not found")

// Store reads and writes character record files.
type Store struct{}

// NewStore creates a Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and decodes the record at path.
//
// Postcondition: Returns ErrRecordNotFound when the file is absent, a
// decode error when the file is present but not a valid record; on
// success the returned record's items are normalized.
func (s *Store) Load(path string) (*character.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, path)
		}
		return nil, fmt.Errorf("reading record %s: %w", path, err)
	}
	rec := character.New()
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("decoding record %s: %w", path, err)
	}
	for _, item := range rec.Stuff {
		item.Normalize()
	}
	return rec, nil
}

// Save writes the record to path atomically: the JSON is written to a
// temporary file in the same directory and renamed over the target.
//
// Precondition: rec must be non-nil.
func (s *Store) Save(path string, rec *character.Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary record file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing record %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing record %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing record %s: %w", path, err)
	}
	return nil
}
