package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/note"
)

// Service serializes access to one board so that adapters running on their
// own goroutines (HTTP handlers, MCP tools) share a single session.
type Service struct {
	mu       sync.Mutex
	machine  *board.Machine
	log      *slog.Logger
	recorder Recorder

	notifier  board.Notifier
	observers []board.Observer
}

// Recorder receives every applied event with its outcome.
type Recorder interface {
	Record(ev board.Event, out board.Outcome) error
}

var (
	ErrUnknownNote  = errors.New("app: note not found")
	ErrNotDraggable = errors.New("app: note is not draggable")
)

// ReasonStale is reported when a wire payload's origin no longer matches the
// note's container.
const ReasonStale = "stale payload"

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithRecorder forwards every event and outcome to r.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithNotifier sets the full-calendar notifier.
func WithNotifier(n board.Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithObserver adds a board observer, e.g. for metrics.
func WithObserver(o board.Observer) Option {
	return func(s *Service) { s.observers = append(s.observers, o) }
}

// New wraps st in a Service.
func New(st board.State, opts ...Option) *Service {
	s := &Service{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(s)
	}
	mopts := []board.Option{}
	if s.notifier != nil {
		mopts = append(mopts, board.WithNotifier(s.notifier))
	}
	for _, o := range s.observers {
		mopts = append(mopts, board.WithObserver(o))
	}
	s.machine = board.NewMachine(st, mopts...)
	return s
}

// Dispatch applies ev.
func (s *Service) Dispatch(ctx context.Context, ev board.Event) (board.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatch(ctx, ev)
}

func (s *Service) dispatch(ctx context.Context, ev board.Event) (board.Outcome, error) {
	out := s.machine.Dispatch(ev)
	s.logOutcome(ctx, ev, out)
	if s.recorder != nil {
		if err := s.recorder.Record(ev, out); err != nil {
			return out, fmt.Errorf("app: record %s: %w", ev.Kind(), err)
		}
	}
	return out, nil
}

func (s *Service) logOutcome(ctx context.Context, ev board.Event, out board.Outcome) {
	level := slog.LevelInfo
	switch out.Result {
	case board.Hovered, board.Started, board.Ignored:
		level = slog.LevelDebug
	}
	attrs := []any{"event", ev.Kind(), "target", ev.Describe(), "result", out.Result}
	if out.Note != nil {
		attrs = append(attrs, "note", out.Note.ID)
	}
	if out.Reason != "" {
		attrs = append(attrs, "reason", out.Reason)
	}
	if out.Full {
		attrs = append(attrs, "full", true)
	}
	s.log.Log(ctx, level, "gesture", attrs...)
}

// Snapshot returns the current board.
func (s *Service) Snapshot() board.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Snapshot()
}

// State returns a copy of the current board state.
func (s *Service) State() board.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.State()
}

// Drag returns the wire payload a client should carry for id without
// starting a gesture.
func (s *Service) Drag(id note.ID) (board.Wire, error) {
	st := s.State()
	loc, ok := st.Locate(id)
	if !ok {
		return board.Wire{}, ErrUnknownNote
	}
	if loc.Workspace {
		if n, _ := st.Note(id); !n.Draggable {
			return board.Wire{}, ErrNotDraggable
		}
	}
	return board.Payload{NoteID: id, FromWorkspace: loc.Workspace}.Wire(), nil
}

// Hover reports whether day would accept a drop right now.
func (s *Service) Hover(day int) bool {
	st := s.State()
	return st.Grid.Open(day)
}

// Applied is an outcome with the board it left behind, both read in the
// same critical section.
type Applied struct {
	board.Outcome `json:"outcome" yaml:"outcome"`
	Board         board.Snapshot `json:"board" yaml:"board"`
}

// Target is where a stateless gesture ends.
type Target struct {
	Day   int
	Trash bool
}

// DayTarget drops on day.
func DayTarget(day int) Target { return Target{Day: day} }

// TrashTarget drops on the trash.
func TrashTarget() Target { return Target{Trash: true} }

// Gesture runs a full drag in one critical section from a wire payload. The
// origin is re-derived from the board; a payload claiming a different origin
// is cancelled and reported as rejected.
func (s *Service) Gesture(ctx context.Context, w board.Wire, to Target) (Applied, error) {
	p, err := w.Payload()
	if err != nil {
		return Applied{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied(s.gesture(ctx, p.NoteID, &p.FromWorkspace, to))
}

// Place moves id onto day.
func (s *Service) Place(ctx context.Context, id note.ID, day int) (Applied, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied(s.gesture(ctx, id, nil, DayTarget(day)))
}

// Trash disposes of a placed note.
func (s *Service) Trash(ctx context.Context, id note.ID) (Applied, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied(s.gesture(ctx, id, nil, TrashTarget()))
}

// Reset clears the board.
func (s *Service) Reset(ctx context.Context) (Applied, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied(s.dispatch(ctx, board.Reset{}))
}

// applied pairs out with the current board. The caller holds s.mu.
func (s *Service) applied(out board.Outcome, err error) (Applied, error) {
	if err != nil {
		return Applied{Outcome: out}, err
	}
	return Applied{Outcome: out, Board: s.machine.Snapshot()}, nil
}

func (s *Service) gesture(ctx context.Context, id note.ID, from *bool, to Target) (board.Outcome, error) {
	if s.machine.Gesture().Active() {
		if _, err := s.dispatch(ctx, board.DragCancel{}); err != nil {
			return board.Outcome{}, err
		}
	}
	start, err := s.dispatch(ctx, board.DragStart{Note: id})
	if err != nil || start.Result != board.Started {
		return start, err
	}
	if from != nil && start.Payload.FromWorkspace != *from {
		if _, err := s.dispatch(ctx, board.DragCancel{}); err != nil {
			return board.Outcome{}, err
		}
		return board.Outcome{
			Result:  board.Rejected,
			Note:    start.Note,
			Payload: start.Payload,
			Reason:  ReasonStale,
		}, nil
	}
	if to.Trash {
		return s.dispatch(ctx, board.DropOnTrash{})
	}
	if _, err := s.dispatch(ctx, board.DragOverCell{Day: to.Day}); err != nil {
		return board.Outcome{}, err
	}
	return s.dispatch(ctx, board.DropOnCell{Day: to.Day})
}
