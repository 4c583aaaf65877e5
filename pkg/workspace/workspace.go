// Package workspace manages the tray of note templates that is replenished
// whenever a note is dragged out of it.
package workspace

import (
	"tableflip.dev/stickycal/pkg/note"
)

// Tray holds the workspace notes in Blue, Yellow, Pink order.
type Tray struct {
	Notes []note.Note `json:"notes" yaml:"notes"`
}

// Build resets seq and returns a tray with one note per color.
func Build(seq *note.Sequence) Tray {
	seq.Reset()
	t := Tray{Notes: make([]note.Note, 0, len(note.Colors()))}
	for _, c := range note.Colors() {
		t.Notes = append(t.Notes, seq.New(c))
	}
	return t
}

// Index returns the position of id in the tray.
func (t Tray) Index(id note.ID) (int, bool) {
	for i, n := range t.Notes {
		if n.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Remove detaches id from the tray.
func (t *Tray) Remove(id note.ID) (note.Note, bool) {
	i, ok := t.Index(id)
	if !ok {
		return note.Note{}, false
	}
	n := t.Notes[i]
	t.Notes = append(t.Notes[:i:i], t.Notes[i+1:]...)
	return n, true
}

// Replenish mints a note of color c and inserts it before the first note of a
// later color, or at the end.
func (t *Tray) Replenish(seq *note.Sequence, c note.Color) note.Note {
	n := seq.New(c)
	at := len(t.Notes)
	for i, existing := range t.Notes {
		if existing.Color.Later(c) {
			at = i
			break
		}
	}
	t.Notes = append(t.Notes, note.Note{})
	copy(t.Notes[at+1:], t.Notes[at:])
	t.Notes[at] = n
	return n
}

// Refresh enables or disables every tray note depending on whether the grid
// is full.
func (t *Tray) Refresh(gridFull bool) {
	for i := range t.Notes {
		t.Notes[i].Draggable = !gridFull
	}
}

// Colors lists the tray colors in order.
func (t Tray) Colors() []note.Color {
	out := make([]note.Color, len(t.Notes))
	for i, n := range t.Notes {
		out[i] = n.Color
	}
	return out
}

// Clone returns a deep copy of t.
func (t Tray) Clone() Tray {
	notes := make([]note.Note, len(t.Notes))
	copy(notes, t.Notes)
	return Tray{Notes: notes}
}
