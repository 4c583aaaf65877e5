package board

import "tableflip.dev/stickycal/pkg/note"

// Result classifies what an event did.
type Result string

const (
	// Ignored means the event does not apply in the current phase, or names
	// an unknown or disabled note.
	Ignored   Result = "ignored"
	Started   Result = "started"
	Hovered   Result = "hovered"
	Placed    Result = "placed"
	Moved     Result = "moved"
	Trashed   Result = "trashed"
	Cancelled Result = "cancelled"
	// Rejected means a drop ended the gesture but a guard failed, so the
	// note stayed where it was.
	Rejected Result = "rejected"
	Cleared  Result = "reset"
)

// Outcome reports the effect of one event. Full is set when a
// workspace-origin placement filled the last open slot; adapters surface it
// as a blocking notification.
type Outcome struct {
	Result      Result     `json:"result" yaml:"result"`
	Note        *note.Note `json:"note,omitempty" yaml:"note,omitempty"`
	Replenished *note.Note `json:"replenished,omitempty" yaml:"replenished,omitempty"`
	Payload     *Payload   `json:"payload,omitempty" yaml:"payload,omitempty"`
	Day         int        `json:"day,omitempty" yaml:"day,omitempty"`
	Allowed     bool       `json:"allowed" yaml:"allowed"`
	Full        bool       `json:"full" yaml:"full"`
	Reason      string     `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Changed reports whether the event altered the grid or the tray.
func (o Outcome) Changed() bool {
	switch o.Result {
	case Placed, Moved, Trashed, Cleared:
		return true
	}
	return false
}

// Reasons attached to ignored and rejected outcomes.
const (
	ReasonGestureActive = "gesture already in progress"
	ReasonNoGesture     = "no gesture in progress"
	ReasonUnknownNote   = "unknown note"
	ReasonDisabled      = "workspace is disabled while the calendar is full"
	ReasonNotADay       = "not a day cell"
	ReasonCellFull      = "day is full"
	ReasonWorkspaceNote = "workspace notes cannot be trashed"
	ReasonUnknownEvent  = "unknown event"
)

// Reduce applies ev to s and returns the next state. s is not modified.
func Reduce(s State, ev Event) (State, Outcome) {
	next := s.Clone()
	out := next.apply(ev)
	return next, out
}

func (s *State) apply(ev Event) Outcome {
	switch e := ev.(type) {
	case DragStart:
		return s.dragStart(e.Note)
	case DragOverCell:
		return s.dragOver(e.Day)
	case DropOnCell:
		return s.dropOnCell(e.Day)
	case DropOnTrash:
		return s.dropOnTrash()
	case DragCancel:
		return s.cancel()
	case Reset:
		s.rebuild()
		return Outcome{Result: Cleared}
	}
	return Outcome{Result: Ignored, Reason: ReasonUnknownEvent}
}

func (s *State) dragStart(id note.ID) Outcome {
	if s.Gesture.Active() {
		return Outcome{Result: Ignored, Reason: ReasonGestureActive}
	}
	loc, ok := s.Locate(id)
	if !ok {
		return Outcome{Result: Ignored, Reason: ReasonUnknownNote}
	}
	n, _ := s.Note(id)
	if loc.Workspace && !n.Draggable {
		return Outcome{Result: Ignored, Note: &n, Reason: ReasonDisabled}
	}
	p := Payload{NoteID: id, FromWorkspace: loc.Workspace}
	s.Gesture = Gesture{Phase: Dragging, Payload: p}
	return Outcome{Result: Started, Note: &n, Payload: &p, Day: loc.Day}
}

func (s *State) dragOver(day int) Outcome {
	if !s.Gesture.Active() {
		return Outcome{Result: Ignored, Day: day, Reason: ReasonNoGesture}
	}
	allowed := s.Grid.Open(day)
	s.Gesture.Hover = day
	s.Gesture.HoverAllowed = allowed
	out := Outcome{Result: Hovered, Day: day, Allowed: allowed}
	if !allowed {
		out.Reason = s.closedReason(day)
	}
	return out
}

// end finishes the gesture and returns its payload.
func (s *State) end() Payload {
	p := s.Gesture.Payload
	s.Gesture = Gesture{Phase: Idle}
	return p
}

func (s *State) closedReason(day int) string {
	if s.Grid.Cell(day) == nil {
		return ReasonNotADay
	}
	return ReasonCellFull
}

func (s *State) dropOnCell(day int) Outcome {
	if !s.Gesture.Active() {
		return Outcome{Result: Ignored, Day: day, Reason: ReasonNoGesture}
	}
	p := s.end()
	// Capacity is checked again here; hover feedback may be stale.
	if !s.Grid.Open(day) {
		return Outcome{Result: Rejected, Payload: &p, Day: day, Reason: s.closedReason(day)}
	}
	n, ok := s.detach(p.NoteID)
	if !ok {
		return Outcome{Result: Rejected, Payload: &p, Day: day, Reason: ReasonUnknownNote}
	}
	cell := s.Grid.Cell(day)
	cell.Notes = append(cell.Notes, n)
	out := Outcome{Result: Moved, Note: &n, Payload: &p, Day: day, Allowed: true}
	if !p.FromWorkspace {
		return out
	}
	out.Result = Placed
	fresh := s.Tray.Replenish(&s.Seq, n.Color)
	out.Replenished = &fresh
	out.Full = s.Grid.Full()
	s.Tray.Refresh(out.Full)
	return out
}

func (s *State) dropOnTrash() Outcome {
	if !s.Gesture.Active() {
		return Outcome{Result: Ignored, Reason: ReasonNoGesture}
	}
	p := s.end()
	if p.FromWorkspace {
		return Outcome{Result: Rejected, Payload: &p, Reason: ReasonWorkspaceNote}
	}
	loc, ok := s.Locate(p.NoteID)
	if !ok || loc.Workspace {
		return Outcome{Result: Rejected, Payload: &p, Reason: ReasonUnknownNote}
	}
	n, _ := s.detach(p.NoteID)
	s.Tray.Refresh(s.Grid.Full())
	return Outcome{Result: Trashed, Note: &n, Payload: &p, Day: loc.Day}
}

func (s *State) cancel() Outcome {
	if !s.Gesture.Active() {
		return Outcome{Result: Ignored, Reason: ReasonNoGesture}
	}
	p := s.end()
	return Outcome{Result: Cancelled, Payload: &p}
}
