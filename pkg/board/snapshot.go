package board

import (
	"tableflip.dev/stickycal/pkg/note"
)

// DaySnapshot is one day cell in a Snapshot.
type DaySnapshot struct {
	Day   int         `json:"day" yaml:"day"`
	Open  bool        `json:"open" yaml:"open"`
	Notes []note.Note `json:"notes" yaml:"notes"`
}

// Snapshot is the serializable view of a State.
type Snapshot struct {
	Title     string        `json:"title" yaml:"title"`
	Year      int           `json:"year" yaml:"year"`
	Month     int           `json:"month" yaml:"month"`
	Capacity  int           `json:"capacity" yaml:"capacity"`
	Full      bool          `json:"full" yaml:"full"`
	Placed    int           `json:"placed" yaml:"placed"`
	Offset    int           `json:"offset" yaml:"offset"`
	Workspace []note.Note   `json:"workspace" yaml:"workspace"`
	Days      []DaySnapshot `json:"days" yaml:"days"`
	// Weeks holds the day numbers row by row, Sunday first; 0 pads.
	Weeks   [][]int `json:"weeks" yaml:"weeks"`
	Gesture Gesture `json:"gesture" yaml:"gesture"`
}

// Snapshot copies s into its serializable form.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Title:     s.Grid.Title(),
		Year:      s.Grid.Year,
		Month:     int(s.Grid.Month),
		Capacity:  s.Grid.Capacity,
		Full:      s.Grid.Full(),
		Placed:    s.Grid.Count(),
		Offset:    s.Grid.Offset(),
		Workspace: append([]note.Note{}, s.Tray.Notes...),
		Gesture:   s.Gesture,
	}
	for _, cell := range s.Grid.Days() {
		snap.Days = append(snap.Days, DaySnapshot{
			Day:   cell.Day,
			Open:  len(cell.Notes) < s.Grid.Capacity,
			Notes: append([]note.Note{}, cell.Notes...),
		})
	}
	for _, week := range s.Grid.Weeks() {
		row := make([]int, len(week))
		for i, c := range week {
			row[i] = c.Day
		}
		snap.Weeks = append(snap.Weeks, row)
	}
	return snap
}

// Day returns the snapshot of day, or nil.
func (s Snapshot) Day(day int) *DaySnapshot {
	if day < 1 || day > len(s.Days) {
		return nil
	}
	return &s.Days[day-1]
}
