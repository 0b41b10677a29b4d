package jsonstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// JSON files on disk, one file per key, human-readable and portable.
// No locking; fine for a local single-user tool.

// Store keeps each key in <dir>/<key>.json.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. An empty dir means the working directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) dataPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	dir := s.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = wd
	}
	return filepath.Join(dir, key+".json"), nil
}

// Path returns the file backing key.
func (s *Store) Path(key string) (string, error) {
	return s.dataPath(key)
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	p, err := s.dataPath(key)
	if err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read file: %w", err)
	}
	return b, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	p, err := s.dataPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(p, value, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
