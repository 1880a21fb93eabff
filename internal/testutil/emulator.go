package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FakeEmulator writes a stand-in emulator script that records the
// arguments it was invoked with, one per line, and exits with the given
// status. It returns the script path and the capture file path.
func FakeEmulator(t *testing.T, status int) (string, string) {
	t.Helper()
	dir := t.TempDir()
	capture := filepath.Join(dir, "args")
	script := filepath.Join(dir, "86box")
	body := fmt.Sprintf("#!/bin/sh\nprintf '%%s\\n' \"$@\" >> \"%s\"\nexit %d\n", capture, status)
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("failed to write fake emulator: %v", err)
	}
	return script, capture
}

// RecordedArgs returns the arguments the fake emulator captured across
// all of its invocations, in order.
func RecordedArgs(t *testing.T, capture string) []string {
	t.Helper()
	data, err := os.ReadFile(capture)
	if err != nil {
		t.Fatalf("failed to read capture file %s: %v", capture, err)
	}
	trimmed := strings.TrimRight(string(data), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
