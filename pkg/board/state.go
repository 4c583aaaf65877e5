// Package board is the placement engine: a pure reducer over the calendar
// grid and workspace tray, driven by typed drag events.
package board

import (
	"time"

	"tableflip.dev/stickycal/pkg/calendar"
	"tableflip.dev/stickycal/pkg/note"
	"tableflip.dev/stickycal/pkg/workspace"
)

// State is the whole session: grid, tray, id sequence and current gesture.
type State struct {
	Grid    calendar.Grid
	Tray    workspace.Tray
	Seq     note.Sequence
	Gesture Gesture
}

// New renders the month containing t and builds the initial workspace.
func New(t time.Time, capacity int) State {
	s := State{Grid: calendar.New(t, capacity)}
	s.rebuild()
	return s
}

func (s *State) rebuild() {
	s.Grid.Clear()
	s.Tray = workspace.Build(&s.Seq)
	s.Tray.Refresh(s.Grid.Full())
	s.Gesture = Gesture{Phase: Idle}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.Grid = s.Grid.Clone()
	out.Tray = s.Tray.Clone()
	return out
}

// Full reports the derived grid-full flag.
func (s State) Full() bool { return s.Grid.Full() }

// Location says which container holds a note. Day is 0 for the workspace.
type Location struct {
	Workspace bool
	Day       int
	Slot      int
}

// Locate finds the container currently owning id.
func (s State) Locate(id note.ID) (Location, bool) {
	if i, ok := s.Tray.Index(id); ok {
		return Location{Workspace: true, Slot: i}, true
	}
	if day, slot, ok := s.Grid.Find(id); ok {
		return Location{Day: day, Slot: slot}, true
	}
	return Location{}, false
}

// Note returns the note with id wherever it lives.
func (s State) Note(id note.ID) (note.Note, bool) {
	loc, ok := s.Locate(id)
	if !ok {
		return note.Note{}, false
	}
	if loc.Workspace {
		return s.Tray.Notes[loc.Slot], true
	}
	return s.Grid.Cell(loc.Day).Notes[loc.Slot], true
}

// detach removes id from its container.
func (s *State) detach(id note.ID) (note.Note, bool) {
	loc, ok := s.Locate(id)
	if !ok {
		return note.Note{}, false
	}
	if loc.Workspace {
		return s.Tray.Remove(id)
	}
	cell := s.Grid.Cell(loc.Day)
	n := cell.Notes[loc.Slot]
	cell.Notes = append(cell.Notes[:loc.Slot:loc.Slot], cell.Notes[loc.Slot+1:]...)
	return n, true
}
