// Package calendar models the month grid that notes are placed on.
package calendar

import (
	"time"

	"tableflip.dev/stickycal/pkg/note"
)

// DefaultCapacity is the number of notes a day cell holds.
const DefaultCapacity = 3

// Cell is a single slot in the month grid. Day is 0 for the padding cells
// before the first of the month.
type Cell struct {
	Day   int         `json:"day" yaml:"day"`
	Notes []note.Note `json:"notes" yaml:"notes"`
}

// Blank reports whether c is a padding cell.
func (c Cell) Blank() bool { return c.Day == 0 }

// Grid is the set of cells for one month.
type Grid struct {
	Year     int
	Month    time.Month
	Capacity int
	Cells    []Cell
	offset   int
}

// New renders the grid for the month containing t. A capacity below 1 falls
// back to DefaultCapacity.
func New(t time.Time, capacity int) Grid {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	offset := StartOffset(t)
	days := DaysIn(t)
	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d, Notes: []note.Note{}})
	}
	return Grid{
		Year:     t.Year(),
		Month:    t.Month(),
		Capacity: capacity,
		Cells:    cells,
		offset:   offset,
	}
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}

// StartOffset is the weekday index (Sunday = 0) of the first of the month,
// i.e. the number of padding cells.
func StartOffset(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return int(first.Weekday())
}

// First returns midnight UTC on the first of the grid's month.
func (g Grid) First() time.Time {
	return time.Date(g.Year, g.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Title renders e.g. "October 2026".
func (g Grid) Title() string {
	return g.First().Format("January 2006")
}

// Offset returns the number of leading blank cells.
func (g Grid) Offset() int { return g.offset }

// DayCount returns the number of real day cells.
func (g Grid) DayCount() int { return len(g.Cells) - g.offset }

// Cell returns the cell for day, or nil when day is outside the month.
func (g *Grid) Cell(day int) *Cell {
	if day < 1 || day > g.DayCount() {
		return nil
	}
	return &g.Cells[g.offset+day-1]
}

// Days returns the real day cells in order.
func (g Grid) Days() []Cell {
	return g.Cells[g.offset:]
}

// Open reports whether day exists and has room for another note.
func (g Grid) Open(day int) bool {
	c := g.Cell(day)
	return c != nil && len(c.Notes) < g.Capacity
}

// Full reports whether every day cell holds Capacity notes.
func (g Grid) Full() bool {
	for _, c := range g.Days() {
		if len(c.Notes) < g.Capacity {
			return false
		}
	}
	return true
}

// Count returns the number of placed notes.
func (g Grid) Count() int {
	n := 0
	for _, c := range g.Days() {
		n += len(c.Notes)
	}
	return n
}

// Clear empties every day cell.
func (g *Grid) Clear() {
	for i := range g.Cells {
		if g.Cells[i].Blank() {
			continue
		}
		g.Cells[i].Notes = []note.Note{}
	}
}

// Find locates a placed note, returning its day and slot index.
func (g Grid) Find(id note.ID) (day, slot int, ok bool) {
	for _, c := range g.Days() {
		for i, n := range c.Notes {
			if n.ID == id {
				return c.Day, i, true
			}
		}
	}
	return 0, 0, false
}

// Weeks splits the cells into rows of seven, padding the last row with
// blank cells.
func (g Grid) Weeks() [][]Cell {
	rows := (len(g.Cells) + 6) / 7
	weeks := make([][]Cell, 0, rows)
	for r := 0; r < rows; r++ {
		week := make([]Cell, 7)
		for col := 0; col < 7; col++ {
			idx := r*7 + col
			if idx < len(g.Cells) {
				week[col] = g.Cells[idx]
			}
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	out := g
	out.Cells = make([]Cell, len(g.Cells))
	for i, c := range g.Cells {
		out.Cells[i] = c
		if c.Notes != nil {
			out.Cells[i].Notes = make([]note.Note, len(c.Notes))
			copy(out.Cells[i].Notes, c.Notes)
		}
	}
	return out
}
