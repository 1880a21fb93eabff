// Package store owns the config directory: scanning it for entries and
// creating, deleting, and resolving the files the menu lists.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rilysh/emubox/internal/menu"
)

// Extension marks the canonical config files. Matching is by
// containment, not suffix, so names that embed the extension are left
// alone when one is appended.
const Extension = ".cfg"

// Store performs all file operations inside one config directory.
type Store struct {
	dir string
}

// New returns a store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// Scan lists the regular-file entries the menu can offer. Hidden names
// and non-regular entries (directories, symlinks, devices) are skipped.
// No ordering is guaranteed.
func (s *Store) Scan() ([]string, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &DirError{Path: s.dir, Err: err}
	}
	names := make([]string, 0, len(dirents))
	for _, entry := range dirents {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Init creates the config directory.
func (s *Store) Init() error {
	if err := os.Mkdir(s.dir, 0o700); err != nil {
		if os.IsExist(err) {
			return errors.New("emubox config directory already exists.")
		}
		return fmt.Errorf("creating %s: %w", s.dir, err)
	}
	return nil
}

// Resolve maps a scanned entry name back to its absolute path and
// re-checks that the file still exists. The directory may have changed
// between the scan and the menu's confirmation.
func (s *Store) Resolve(name string) (string, error) {
	if err := s.ensureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", &VanishedError{Name: name}
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	return path, nil
}

// Find resolves a user-supplied name to an existing config path,
// preferring the .cfg variant the way delete does. Unknown names carry
// a fuzzy suggestion when a scan turns up something close.
func (s *Store) Find(name string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}
	if err := s.ensureDir(); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, s.candidate(name))
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{Name: name, Suggestion: s.suggest(name)}
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	return path, nil
}

// candidate applies the extension preference: a name without .cfg
// refers to name.cfg when that file exists, otherwise to the bare name.
func (s *Store) candidate(name string) string {
	if strings.Contains(name, Extension) {
		return name
	}
	withExt := name + Extension
	if _, err := os.Stat(filepath.Join(s.dir, withExt)); err == nil {
		return withExt
	}
	return name
}

func (s *Store) suggest(name string) string {
	names, err := s.Scan()
	if err != nil {
		return ""
	}
	return menu.Suggest(name, names)
}

func (s *Store) ensureDir() error {
	info, err := os.Stat(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &DirError{Path: s.dir, Missing: true, Err: err}
		}
		return &DirError{Path: s.dir, Err: err}
	}
	if !info.IsDir() {
		return &DirError{Path: s.dir, Err: fmt.Errorf("not a directory")}
	}
	return nil
}

func validName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("config name is empty")
	}
	if strings.ContainsRune(name, '/') {
		return fmt.Errorf("config name %q contains a path separator", name)
	}
	return nil
}
