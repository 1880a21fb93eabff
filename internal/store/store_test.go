package store

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestScanListsRegularFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.cfg")
	writeFile(t, dir, "a.cfg")
	writeFile(t, dir, "notes.txt")

	names, err := New(dir).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sort.Strings(names)
	want := []string{"a.cfg", "b.cfg", "notes.txt"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("unexpected name at %d: got %s want %s", i, names[i], want[i])
		}
	}
}

func TestScanSkipsHiddenAndNonRegular(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "real.cfg")
	writeFile(t, dir, ".hidden.cfg")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Symlink(target, filepath.Join(dir, "link.cfg")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	names, err := New(dir).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "real.cfg" {
		t.Fatalf("expected only real.cfg, got %v", names)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "absent"))
	_, err := s.Scan()
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
	var dirErr *DirError
	if !errors.As(err, &dirErr) {
		t.Fatalf("expected DirError, got %T", err)
	}
	if !dirErr.Missing {
		t.Fatalf("expected missing flag on %v", dirErr)
	}
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "boxdir")
	s := New(dir)
	if err := s.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected directory at %s", dir)
	}
	if info.Mode().Perm() != 0o700 {
		t.Fatalf("expected mode 0700, got %v", info.Mode().Perm())
	}
	if err := s.Init(); err == nil {
		t.Fatalf("expected error when directory already exists")
	}
}

func TestCreateAppendsExtension(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	path, err := s.Create("dos622")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "dos622.cfg" {
		t.Fatalf("expected dos622.cfg, got %s", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file created: %v", err)
	}

	path, err = s.Create("win95.cfg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "win95.cfg" {
		t.Fatalf("expected win95.cfg untouched, got %s", filepath.Base(path))
	}

	// Containment is enough: no second extension is appended.
	path, err = s.Create("archive.cfg.bak")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "archive.cfg.bak" {
		t.Fatalf("expected archive.cfg.bak untouched, got %s", filepath.Base(path))
	}
}

func TestCreateRejectsExistingAndBadNames(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if _, err := s.Create("dupe"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Create("dupe"); err == nil {
		t.Fatalf("expected error for existing file")
	}
	if _, err := s.Create(""); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := s.Create("a/b"); err == nil {
		t.Fatalf("expected error for path separator")
	}
}

func TestDeletePrefersExtensionVariant(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dos")
	writeFile(t, dir, "dos.cfg")
	s := New(dir)

	path, err := s.Delete("dos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "dos.cfg" {
		t.Fatalf("expected dos.cfg removed, got %s", filepath.Base(path))
	}
	if _, err := os.Stat(filepath.Join(dir, "dos")); err != nil {
		t.Fatalf("bare file should remain: %v", err)
	}

	path, err = s.Delete("dos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "dos" {
		t.Fatalf("expected bare fallback removed, got %s", filepath.Base(path))
	}
}

func TestDeleteUnknownSuggests(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "win95.cfg")
	s := New(dir)

	_, err := s.Delete("win9")
	if err == nil {
		t.Fatalf("expected error for unknown name")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if notFound.Suggestion != "win95.cfg" {
		t.Fatalf("expected win95.cfg suggestion, got %q", notFound.Suggestion)
	}
}

func TestPurgeRemovesEverythingRegular(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.cfg")
	writeFile(t, dir, "b.cfg")
	writeFile(t, dir, ".hidden")
	if err := os.Mkdir(filepath.Join(dir, "keep"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	removals, err := New(dir).Purge()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(removals) != 3 {
		t.Fatalf("expected 3 removals, got %d", len(removals))
	}
	for _, r := range removals {
		if r.Err != nil {
			t.Fatalf("unexpected removal error for %s: %v", r.Path, r.Err)
		}
	}
	dirents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(dirents) != 1 || !dirents[0].IsDir() {
		t.Fatalf("expected only subdirectory left, got %v", dirents)
	}
}

func TestPurgeEmptyDirectory(t *testing.T) {
	removals, err := New(t.TempDir()).Purge()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(removals) != 0 {
		t.Fatalf("expected no removals, got %d", len(removals))
	}
}

func TestResolveDetectsVanishedEntry(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "gone.cfg")
	s := New(dir)

	resolved, err := s.Resolve("gone.cfg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved != path {
		t.Fatalf("expected %s, got %s", path, resolved)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	_, err = s.Resolve("gone.cfg")
	if err == nil {
		t.Fatalf("expected error after removal")
	}
	var vanished *VanishedError
	if !errors.As(err, &vanished) {
		t.Fatalf("expected VanishedError, got %T", err)
	}
	if vanished.Name != "gone.cfg" {
		t.Fatalf("unexpected name: %s", vanished.Name)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dos622.cfg")
	s := New(dir)

	path, err := s.Find("dos622")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "dos622.cfg" {
		t.Fatalf("expected dos622.cfg, got %s", filepath.Base(path))
	}

	_, err = s.Find("os2warp")
	if err == nil {
		t.Fatalf("expected error for unknown name")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
}
