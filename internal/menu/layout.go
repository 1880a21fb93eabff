package menu

// PageSize is the number of entry rows one page can show.
const PageSize = 10

// Metrics describes the viewport geometry derived from a scan.
type Metrics struct {
	// ColumnCapacity is the viewport height in rows: border pair, title,
	// rule, up to PageSize entry rows, and one trailing blank row.
	ColumnCapacity int
	// RowWidth is the viewport width in columns: the widest name plus
	// room for the border and the numbering gutter.
	RowWidth int
}

// Measure derives viewport metrics from the entry count and the widest
// name's display width.
func Measure(count, maxNameWidth int) Metrics {
	rows := count
	if rows > PageSize {
		rows = PageSize
	}
	return Metrics{
		ColumnCapacity: rows + 5,
		RowWidth:       maxNameWidth + 13,
	}
}

// MeasureSet is shorthand for measuring an entry set.
func MeasureSet(set EntrySet) Metrics {
	return Measure(set.Len(), set.MaxWidth())
}
