package store

import "fmt"

// DirError reports a config directory that could not be used.
type DirError struct {
	Path    string
	Missing bool
	Err     error
}

func (e *DirError) Error() string {
	if e.Missing {
		return "config directory wasn't found."
	}
	return fmt.Sprintf("config directory %s: %v", e.Path, e.Err)
}

func (e *DirError) Unwrap() error { return e.Err }

// NotFoundError reports an unknown config name, carrying a close match
// when one exists.
type NotFoundError struct {
	Name       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown config file: %s (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown config file: %s", e.Name)
}

// VanishedError reports an entry that disappeared between the directory
// scan and the confirmation.
type VanishedError struct {
	Name string
}

func (e *VanishedError) Error() string {
	return fmt.Sprintf("config %q does not exists.", e.Name)
}
