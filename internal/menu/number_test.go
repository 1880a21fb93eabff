package menu

import "testing"

func TestNumberWidthBoundaries(t *testing.T) {
	cases := []struct {
		ordinal int
		width   int
	}{
		{1, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{999, 3},
		{1000, 4},
		{9999, 4},
	}
	for _, c := range cases {
		if w := NumberWidth(c.ordinal); w != c.width {
			t.Fatalf("ordinal %d: expected width %d, got %d", c.ordinal, c.width, w)
		}
	}
}

func TestOverflows(t *testing.T) {
	if Overflows(0) {
		t.Fatalf("empty set must not overflow")
	}
	if Overflows(MaxOrdinal) {
		t.Fatalf("%d entries must not overflow", MaxOrdinal)
	}
	if !Overflows(MaxOrdinal + 1) {
		t.Fatalf("%d entries must overflow", MaxOrdinal+1)
	}
}
