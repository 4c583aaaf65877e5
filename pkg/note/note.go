// Package note defines sticky note tokens and the sequence that mints them.
package note

import (
	"fmt"
	"strconv"
	"strings"
)

// ID identifies a note within a session. IDs start at 1 and are never
// reused until the sequence is reset.
type ID int

const idPrefix = "note-"

// String renders the id in its external form, e.g. "note-3".
func (id ID) String() string {
	return idPrefix + strconv.Itoa(int(id))
}

// ParseID accepts "note-3" or a bare "3".
func ParseID(s string) (ID, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), idPrefix)
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("note: invalid id %q", s)
	}
	return ID(n), nil
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Note is a colored token owned by exactly one container.
type Note struct {
	ID        ID    `json:"id" yaml:"id"`
	Color     Color `json:"color" yaml:"color"`
	Draggable bool  `json:"draggable" yaml:"draggable"`
}

// Title returns the text printed on the note.
func (n Note) Title() string { return n.Color.Title() }

func (n Note) String() string {
	return fmt.Sprintf("%s(%s)", n.ID, n.Color)
}

// Sequence mints notes with monotonically increasing ids. The zero value
// starts at 1.
type Sequence struct {
	last ID
}

// New returns a draggable note of color c with the next id.
func (s *Sequence) New(c Color) Note {
	s.last++
	return Note{ID: s.last, Color: c, Draggable: true}
}

// Reset restarts the sequence so the next note gets id 1.
func (s *Sequence) Reset() {
	s.last = 0
}
