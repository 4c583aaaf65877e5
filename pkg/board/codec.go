package board

import (
	"fmt"

	"tableflip.dev/stickycal/pkg/note"
)

// EventRecord is the flat, serializable form of an Event.
type EventRecord struct {
	Kind EventKind `json:"kind" yaml:"kind"`
	Note note.ID   `json:"note,omitempty" yaml:"note,omitempty"`
	Day  int       `json:"day,omitempty" yaml:"day,omitempty"`
}

// Encode flattens ev.
func Encode(ev Event) EventRecord {
	r := EventRecord{Kind: ev.Kind()}
	switch e := ev.(type) {
	case DragStart:
		r.Note = e.Note
	case DragOverCell:
		r.Day = e.Day
	case DropOnCell:
		r.Day = e.Day
	}
	return r
}

// Decode rebuilds the typed event.
func (r EventRecord) Decode() (Event, error) {
	switch r.Kind {
	case KindDragStart:
		return DragStart{Note: r.Note}, nil
	case KindDragOverCell:
		return DragOverCell{Day: r.Day}, nil
	case KindDropOnCell:
		return DropOnCell{Day: r.Day}, nil
	case KindDropOnTrash:
		return DropOnTrash{}, nil
	case KindDragCancel:
		return DragCancel{}, nil
	case KindReset:
		return Reset{}, nil
	}
	return nil, fmt.Errorf("board: unknown event kind %q", r.Kind)
}
