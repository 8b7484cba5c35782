package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a keyed record has no file on disk. Read
// paths that treat absence as an empty default use the (value, found bool)
// accessors instead and never see this error.
var ErrNotFound = errors.New("record not found")

// Store is the file-backed repository: one JSON file per keyed entity under
// a single data directory. There is no in-memory cache and no locking; the
// file system is the source of truth and concurrent writers to the same key
// are last-write-wins, as the billing totals downstream assume.
type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the data directory this store operates on.
func (s *Store) Root() string {
	return s.root
}

// EnsureLayout creates the data directory tree.
func (s *Store) EnsureLayout() error {
	dirs := []string{
		s.root,
		filepath.Join(s.root, "tables"),
		filepath.Join(s.root, "bills"),
		filepath.Join(s.root, "revenue"),
		filepath.Join(s.root, "archive", "orders"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

func (s *Store) readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (s *Store) writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
