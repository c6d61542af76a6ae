// Package store keeps generated document packages on disk until they are
// downloaded or expire.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotFound reports a download request for a file that does not exist or
// has already been cleaned up.
var ErrNotFound = errors.New("file not found")

// Store is an on-disk output directory with retention cleanup.
type Store struct {
	dir string
}

// New creates the output directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the output directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes a generated package and returns its full path.
func (s *Store) Save(filename string, data []byte) (string, error) {
	path := filepath.Join(s.dir, SanitizeFilename(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return path, nil
}

// Read returns the bytes of a stored file. The filename is reduced to its
// base name so a request can never traverse outside the output directory.
func (s *Store) Read(filename string) ([]byte, error) {
	path := filepath.Join(s.dir, SanitizeFilename(filename))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return data, nil
}

// Cleanup deletes stored files older than maxAge and returns how many were
// removed.
func (s *Store) Cleanup(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("list output dir: %w", err)
	}
	deleted := 0
	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > maxAge {
			if err := os.Remove(filepath.Join(s.dir, entry.Name())); err == nil {
				deleted++
			}
		}
	}
	return deleted, nil
}

// SanitizeFilename strips path components, keeping only a safe base name.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
