package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Removal describes one purge attempt.
type Removal struct {
	Path string
	Err  error
}

// Create makes a new empty config file and returns its path. The
// extension is appended when the name does not already contain it; an
// existing file is an error.
func (s *Store) Create(name string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}
	if err := s.ensureDir(); err != nil {
		return "", err
	}
	filename := name
	if !strings.Contains(filename, Extension) {
		filename += Extension
	}
	path := filepath.Join(s.dir, filename)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("file %q already exists.", filename)
		}
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	f.Close()
	return path, nil
}

// Delete removes one config, preferring the .cfg variant for bare
// names, and returns the removed path.
func (s *Store) Delete(name string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}
	if err := s.ensureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, s.candidate(name))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{Name: name, Suggestion: s.suggest(name)}
		}
		return "", fmt.Errorf("removing %s: %w", path, err)
	}
	return path, nil
}

// Purge removes every regular file in the directory, hidden ones
// included, and reports each attempt. A failed removal does not stop
// the sweep.
func (s *Store) Purge() ([]Removal, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &DirError{Path: s.dir, Err: err}
	}
	removals := make([]Removal, 0, len(dirents))
	for _, entry := range dirents {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		removals = append(removals, Removal{Path: path, Err: os.Remove(path)})
	}
	return removals, nil
}
