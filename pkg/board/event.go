package board

import (
	"fmt"

	"tableflip.dev/stickycal/pkg/note"
)

// EventKind names an event in logs, transcripts and metrics.
type EventKind string

const (
	KindDragStart    EventKind = "drag_start"
	KindDragOverCell EventKind = "drag_over_cell"
	KindDropOnCell   EventKind = "drop_on_cell"
	KindDropOnTrash  EventKind = "drop_on_trash"
	KindDragCancel   EventKind = "drag_cancel"
	KindReset        EventKind = "reset"
)

// Event is a user gesture fed to Reduce.
type Event interface {
	Kind() EventKind
	Describe() string
}

// DragStart picks up a note.
type DragStart struct {
	Note note.ID
}

func (DragStart) Kind() EventKind { return KindDragStart }

func (e DragStart) Describe() string { return fmt.Sprintf(`note:%q`, e.Note) }

// DragOverCell hovers the dragged note over a day cell.
type DragOverCell struct {
	Day int
}

func (DragOverCell) Kind() EventKind { return KindDragOverCell }

func (e DragOverCell) Describe() string { return fmt.Sprintf(`day:%d`, e.Day) }

// DropOnCell releases the dragged note over a day cell.
type DropOnCell struct {
	Day int
}

func (DropOnCell) Kind() EventKind { return KindDropOnCell }

func (e DropOnCell) Describe() string { return fmt.Sprintf(`day:%d`, e.Day) }

// DropOnTrash releases the dragged note over the trash target.
type DropOnTrash struct{}

func (DropOnTrash) Kind() EventKind { return KindDropOnTrash }

func (DropOnTrash) Describe() string { return "trash" }

// DragCancel ends the gesture without a valid drop target.
type DragCancel struct{}

func (DragCancel) Kind() EventKind { return KindDragCancel }

func (DragCancel) Describe() string { return "cancel" }

// Reset clears the calendar and rebuilds the workspace.
type Reset struct{}

func (Reset) Kind() EventKind { return KindReset }

func (Reset) Describe() string { return "reset" }
