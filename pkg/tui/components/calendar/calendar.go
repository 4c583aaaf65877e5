// Package calendar renders the month grid of day cells and records where
// each cell landed on screen.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/note"
	"tableflip.dev/stickycal/pkg/tui/theme"
	"tableflip.dev/stickycal/pkg/tui/ui"
)

const (
	MinCellWidth = 10
	MaxCellWidth = 20
)

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Options controls what the grid highlights.
type Options struct {
	Theme     theme.Theme
	CellWidth int
	// Cursor is the focused day, 0 for none. CursorSlot marks a note row.
	Cursor     int
	CursorSlot int
	// Hover is the day under a dragged note, 0 for none.
	Hover        int
	HoverAllowed bool
	Dragging     note.ID
}

// CellWidth picks a column width that fits seven cells in width.
func CellWidth(width int) int {
	w := width / 7
	if w < MinCellWidth {
		return MinCellWidth
	}
	if w > MaxCellWidth {
		return MaxCellWidth
	}
	return w
}

// CellHeight is the rendered height of a day cell: border, day number and
// one row per slot.
func CellHeight(capacity int) int { return 2 + 1 + capacity }

// Render draws the weekday header and one row of cells per week.
func Render(snap board.Snapshot, opts Options) (string, ui.Layout) {
	if opts.CellWidth < MinCellWidth {
		opts.CellWidth = MinCellWidth
	}
	inner := opts.CellWidth - 2
	height := CellHeight(snap.Capacity)

	var layout ui.Layout
	var header []string
	for _, w := range weekdays {
		header = append(header, pad(opts.Theme.Board.Weekday.Render(" "+w), opts.CellWidth))
	}
	lines := []string{strings.Join(header, "")}
	headerRows := 1

	total := snap.Offset + len(snap.Days)
	rows := (total + 6) / 7
	for r := 0; r < rows; r++ {
		cells := make([]string, 0, 7)
		for c := 0; c < 7; c++ {
			idx := r*7 + c
			rect := ui.Rect{X: c * opts.CellWidth, Y: headerRows + r*height, W: opts.CellWidth, H: height}
			day := idx - snap.Offset + 1
			d := snap.Day(day)
			if d == nil {
				cells = append(cells, renderBlank(opts, inner, snap.Capacity))
				layout.Add(rect, ui.Hit{Zone: ui.ZoneBlank, Slot: -1})
				continue
			}
			cells = append(cells, renderDay(*d, snap.Capacity, opts, inner))
			layout.Add(rect, ui.Hit{Zone: ui.ZoneDay, Day: day, Slot: -1})
			for i := range d.Notes {
				slot := ui.Rect{X: rect.X + 1, Y: rect.Y + 2 + i, W: inner, H: 1}
				layout.Add(slot, ui.Hit{Zone: ui.ZoneDay, Day: day, Slot: i})
			}
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n"), layout
}

func renderBlank(opts Options, inner, capacity int) string {
	body := make([]string, 1+capacity)
	for i := range body {
		body[i] = strings.Repeat(" ", inner)
	}
	return opts.Theme.Board.Blank.Render(strings.Join(body, "\n"))
}

func renderDay(d board.DaySnapshot, capacity int, opts Options, inner int) string {
	th := opts.Theme.Board
	num := th.DayNumber
	if !d.Open {
		num = th.FullDay
	}
	body := []string{pad(num.Render(fmt.Sprintf("%2d", d.Day)), inner)}
	for i := 0; i < capacity; i++ {
		if i >= len(d.Notes) {
			body = append(body, pad(th.Empty.Render(" ·"), inner))
			continue
		}
		n := d.Notes[i]
		marker := " "
		if opts.Cursor == d.Day && opts.CursorSlot == i {
			marker = "›"
		}
		label := truncate.StringWithTail(fmt.Sprintf("● %s", n.Title()), uint(inner-1), "…")
		style := opts.Theme.NoteText(n.Color, true)
		if n.ID == opts.Dragging {
			style = style.Faint(true).Italic(true)
		}
		body = append(body, pad(marker+style.Render(label), inner))
	}

	frame := th.Cell
	switch {
	case opts.Hover == d.Day && opts.HoverAllowed:
		frame = th.HoverOK
	case opts.Hover == d.Day:
		frame = th.HoverBad
	case opts.Cursor == d.Day:
		frame = th.Cursor
	}
	return frame.Render(strings.Join(body, "\n"))
}

// pad right-fills s with spaces to width cells.
func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
