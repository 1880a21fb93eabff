package ui

import (
	"fmt"
	"strings"

	"github.com/rilysh/emubox/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	tlc = "┌"
	trc = "┐"
	blc = "└"
	brc = "┘"
	hz  = "─"
	vt  = "│"
)

// styledLine defers styling so the frame can be inspected as plain text.
// When to > from the style covers the rune span [from, to); otherwise a
// non-nil style covers the whole line.
type styledLine struct {
	text  string
	style *lipgloss.Style
	from  int
	to    int
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := m.frameLines()
	if m.height > 0 {
		lines = limitHeight(lines, m.height, m.width)
	}
	out := renderLines(lines)
	if m.width > 0 && m.width < m.metrics.RowWidth {
		rows := strings.Split(out, "\n")
		for i, row := range rows {
			if lipgloss.Width(row) > m.width {
				rows[i] = truncate.StringWithTail(row, uint(m.width-1), "…")
			}
		}
		out = strings.Join(rows, "\n")
	}
	return out
}

// frameLines builds the menu frame row by row: border, title, rule, the
// current page of entries, blank filler, border. The dimensions come
// from Metrics alone; the terminal size never changes the frame.
func (m *Model) frameLines() []styledLine {
	interior := m.metrics.RowWidth - 2
	lines := make([]styledLine, 0, m.metrics.ColumnCapacity)
	lines = append(lines, borderLine(tlc, trc, interior))
	// The style span stops at the right border when the title clips.
	titleTo := 2 + len([]rune(menuTitle))
	if edge := 1 + interior; titleTo > edge {
		titleTo = edge
	}
	lines = append(lines, styledLine{
		text:  vt + pad(" "+menuTitle, interior) + vt,
		style: styles.Title,
		from:  2,
		to:    titleTo,
	})
	lines = append(lines, styledLine{text: vt + strings.Repeat(hz, interior) + vt, style: styles.Border})
	visible := m.session.Visible()
	for i := 0; i < visible; i++ {
		lines = append(lines, m.entryLine(m.session.PageStart+i, interior))
	}
	for fill := m.metrics.ColumnCapacity - 4 - visible; fill > 0; fill-- {
		lines = append(lines, styledLine{text: vt + strings.Repeat(" ", interior) + vt})
	}
	lines = append(lines, borderLine(blc, brc, interior))
	return lines
}

// entryLine renders one numbered entry. Ordinals are right-aligned so
// the dot sits in a fixed column, and the highlight covers the number
// through the name, nothing wider.
func (m *Model) entryLine(idx, interior int) styledLine {
	entry := m.entries.At(idx)
	ordinal := idx + 1
	indent := 4 - menu.NumberWidth(ordinal)
	segment := fmt.Sprintf("%d. %s", ordinal, entry.Name)
	line := styledLine{
		text:  vt + pad(strings.Repeat(" ", indent)+segment, interior) + vt,
		style: styles.Item,
		from:  1 + indent,
		to:    1 + indent + len([]rune(segment)),
	}
	if idx == m.session.Selection {
		line.style = styles.SelectedItem
	}
	return line
}

func borderLine(left, right string, interior int) styledLine {
	return styledLine{text: left + strings.Repeat(hz, interior) + right, style: styles.Border}
}

// pad brings text to exactly width cells, extending with spaces or
// clipping. The title can be wider than a short entry set's interior.
func pad(text string, width int) string {
	if w := runewidth.StringWidth(text); w < width {
		return text + strings.Repeat(" ", width-w)
	}
	return truncate.String(text, uint(width))
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	return nil
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.style != nil {
			if line.to > line.from {
				runes := []rune(text)
				from, to := line.from, line.to
				if from < 0 {
					from = 0
				}
				if to > len(runes) {
					to = len(runes)
				}
				if from < to {
					text = string(runes[:from]) + line.style.Render(string(runes[from:to])) + string(runes[to:])
				}
			} else {
				text = line.style.Render(text)
			}
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
