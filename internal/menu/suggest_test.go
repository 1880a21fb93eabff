package menu

import "testing"

func TestSuggestFindsClosest(t *testing.T) {
	candidates := []string{"dos622.cfg", "win95.cfg", "winnt.cfg"}
	if got := Suggest("dos", candidates); got != "dos622.cfg" {
		t.Fatalf("expected dos622.cfg, got %q", got)
	}
	if got := Suggest("WIN95", candidates); got != "win95.cfg" {
		t.Fatalf("expected case-folded match win95.cfg, got %q", got)
	}
}

func TestSuggestPrefersEarlierOnTie(t *testing.T) {
	candidates := []string{"dos1.cfg", "dos2.cfg"}
	if got := Suggest("dos", candidates); got != "dos1.cfg" {
		t.Fatalf("expected first candidate on tie, got %q", got)
	}
}

func TestSuggestNoMatch(t *testing.T) {
	candidates := []string{"alpha.cfg"}
	if got := Suggest("zzz", candidates); got != "" {
		t.Fatalf("expected no suggestion, got %q", got)
	}
}

func TestSuggestEmptyInputs(t *testing.T) {
	if got := Suggest("", []string{"a.cfg"}); got != "" {
		t.Fatalf("expected no suggestion for blank name, got %q", got)
	}
	if got := Suggest("a", nil); got != "" {
		t.Fatalf("expected no suggestion without candidates, got %q", got)
	}
}
