package menu

import "errors"

// MaxOrdinal is the largest entry number the gutter can display. The
// numbering column holds four digits at most; a set that would need a
// fifth digit is refused outright.
const MaxOrdinal = 9999

// ErrOverflow reports a directory whose entry count exceeds MaxOrdinal.
var ErrOverflow = errors.New("out of range.")

// NumberWidth returns how many gutter columns the 1-based ordinal's
// digits take: one per decade, up to the four-digit ceiling.
func NumberWidth(ordinal int) int {
	switch {
	case ordinal > 999:
		return 4
	case ordinal > 99:
		return 3
	case ordinal > 9:
		return 2
	default:
		return 1
	}
}

// Overflows reports whether count entries would exhaust the numbering
// gutter.
func Overflows(count int) bool {
	return count > MaxOrdinal
}
