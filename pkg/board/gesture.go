package board

import (
	"errors"
	"fmt"

	"tableflip.dev/stickycal/pkg/note"
)

// Phase is the state of the current drag gesture.
type Phase string

const (
	Idle     Phase = "idle"
	Dragging Phase = "dragging"
)

// Payload is captured at drag start and consumed by the drop.
type Payload struct {
	NoteID        note.ID `json:"noteId" yaml:"noteId"`
	FromWorkspace bool    `json:"fromWorkspace" yaml:"fromWorkspace"`
}

// Gesture is the transient drag state. Hover and HoverAllowed reflect the
// most recent DragOverCell.
type Gesture struct {
	Phase        Phase   `json:"phase" yaml:"phase"`
	Payload      Payload `json:"payload" yaml:"payload"`
	Hover        int     `json:"hover,omitempty" yaml:"hover,omitempty"`
	HoverAllowed bool    `json:"hoverAllowed" yaml:"hoverAllowed"`
}

// Active reports whether a note is being dragged.
func (g Gesture) Active() bool { return g.Phase == Dragging }

// ErrBadPayload is returned for wire payloads that cannot be decoded.
var ErrBadPayload = errors.New("board: malformed drag payload")

// Wire is the two-string payload carried by a browser drag gesture.
type Wire struct {
	NoteID        string `json:"noteId"`
	FromWorkspace string `json:"fromWorkspace"`
}

// Wire encodes p in the browser transfer format.
func (p Payload) Wire() Wire {
	from := "false"
	if p.FromWorkspace {
		from = "true"
	}
	return Wire{NoteID: p.NoteID.String(), FromWorkspace: from}
}

// Payload decodes w. FromWorkspace must be exactly "true" or "false".
func (w Wire) Payload() (Payload, error) {
	id, err := note.ParseID(w.NoteID)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	var from bool
	switch w.FromWorkspace {
	case "true":
		from = true
	case "false":
	default:
		return Payload{}, fmt.Errorf("%w: fromWorkspace %q", ErrBadPayload, w.FromWorkspace)
	}
	return Payload{NoteID: id, FromWorkspace: from}, nil
}
