package app

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/note"
)

var october = time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

type memoryRecorder struct {
	mu     sync.Mutex
	events []board.EventKind
	err    error
}

func (r *memoryRecorder) Record(ev board.Event, _ board.Outcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev.Kind())
	return r.err
}

func TestGestureFromWire(t *testing.T) {
	ctx := context.Background()
	rec := &memoryRecorder{}
	svc := New(board.New(october, 3), WithRecorder(rec))

	w, err := svc.Drag(1)
	require.NoError(t, err)
	assert.Equal(t, board.Wire{NoteID: "note-1", FromWorkspace: "true"}, w)

	out, err := svc.Gesture(ctx, w, DayTarget(12))
	require.NoError(t, err)
	assert.Equal(t, board.Placed, out.Result)
	assert.Equal(t, []board.EventKind{board.KindDragStart, board.KindDragOverCell, board.KindDropOnCell}, rec.events)

	snap := svc.Snapshot()
	assert.Equal(t, 1, snap.Placed)
	assert.Equal(t, board.Idle, snap.Gesture.Phase)
}

func TestGestureRejectsStalePayload(t *testing.T) {
	ctx := context.Background()
	svc := New(board.New(october, 3))

	w, err := svc.Drag(2)
	require.NoError(t, err)
	_, err = svc.Gesture(ctx, w, DayTarget(3))
	require.NoError(t, err)

	// note-2 now lives on day 3 but the client still claims the tray.
	out, err := svc.Gesture(ctx, w, DayTarget(4))
	require.NoError(t, err)
	assert.Equal(t, board.Rejected, out.Result)
	assert.Equal(t, ReasonStale, out.Reason)

	st := svc.State()
	loc, ok := st.Locate(2)
	require.True(t, ok)
	assert.Equal(t, 3, loc.Day)
	assert.Equal(t, board.Idle, st.Gesture.Phase)
}

func TestGestureBadWire(t *testing.T) {
	svc := New(board.New(october, 3))
	_, err := svc.Gesture(context.Background(), board.Wire{NoteID: "note-1", FromWorkspace: "yes"}, TrashTarget())
	assert.ErrorIs(t, err, board.ErrBadPayload)
}

func TestPlaceAndTrash(t *testing.T) {
	ctx := context.Background()
	svc := New(board.New(october, 3))

	out, err := svc.Place(ctx, 3, 31)
	require.NoError(t, err)
	require.Equal(t, board.Placed, out.Result)

	out, err = svc.Trash(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, board.Rejected, out.Result)

	out, err = svc.Trash(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, board.Trashed, out.Result)
	assert.Equal(t, 0, svc.Snapshot().Placed)

	out, err = svc.Place(ctx, 99, 1)
	require.NoError(t, err)
	assert.Equal(t, board.Ignored, out.Result)
}

func TestDragErrors(t *testing.T) {
	ctx := context.Background()
	svc := New(board.New(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), 1))

	_, err := svc.Drag(42)
	assert.ErrorIs(t, err, ErrUnknownNote)

	for day := 1; day <= 28; day++ {
		id := svc.Snapshot().Workspace[0].ID
		_, err := svc.Place(ctx, id, day)
		require.NoError(t, err)
	}
	_, err = svc.Drag(svc.Snapshot().Workspace[0].ID)
	assert.ErrorIs(t, err, ErrNotDraggable)

	w, err := svc.Drag(1)
	require.NoError(t, err)
	assert.Equal(t, "false", w.FromWorkspace)
	assert.False(t, svc.Hover(5))
}

func TestNotifierFiresOnce(t *testing.T) {
	ctx := context.Background()
	count := 0
	svc := New(board.New(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), 1),
		WithNotifier(board.NotifierFunc(func() { count++ })))

	for day := 1; day <= 28; day++ {
		_, err := svc.Place(ctx, svc.Snapshot().Workspace[0].ID, day)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, count)
	assert.True(t, svc.Snapshot().Full)

	_, err := svc.Place(ctx, svc.Snapshot().Workspace[1].ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorderError(t *testing.T) {
	boom := errors.New("disk gone")
	svc := New(board.New(october, 3), WithRecorder(&memoryRecorder{err: boom}))

	out, err := svc.Reset(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, board.Cleared, out.Result)
}

func TestConcurrentPlacements(t *testing.T) {
	ctx := context.Background()
	svc := New(board.New(october, 3))

	var wg sync.WaitGroup
	for day := 1; day <= 31; day++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			for {
				w, err := svc.Drag(svc.Snapshot().Workspace[0].ID)
				if err != nil {
					continue
				}
				out, err := svc.Gesture(ctx, w, DayTarget(day))
				if err != nil {
					t.Error(err)
					return
				}
				if out.Result == board.Placed {
					return
				}
			}
		}(day)
	}
	wg.Wait()

	snap := svc.Snapshot()
	assert.Equal(t, 31, snap.Placed)
	for _, d := range snap.Days {
		assert.Len(t, d.Notes, 1)
	}
	assert.Equal(t, []note.Color{note.Blue, note.Yellow, note.Pink}, colors(snap.Workspace))
}

func TestAppliedBoardMatchesOutcome(t *testing.T) {
	ctx := context.Background()
	svc := New(board.New(october, 3))

	var (
		mu     sync.Mutex
		counts []int
	)
	var wg sync.WaitGroup
	for day := 1; day <= 31; day++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			for {
				w, err := svc.Drag(svc.Snapshot().Workspace[0].ID)
				if err != nil {
					continue
				}
				res, err := svc.Gesture(ctx, w, DayTarget(day))
				if err != nil {
					t.Error(err)
					return
				}
				if res.Result != board.Placed {
					continue
				}
				d := res.Board.Day(day)
				if assert.NotNil(t, d) {
					assert.Contains(t, d.Notes, *res.Note)
				}
				mu.Lock()
				counts = append(counts, res.Board.Placed)
				mu.Unlock()
				return
			}
		}(day)
	}
	wg.Wait()

	// Each board was read together with its own placement, so every count
	// from 1 to 31 shows up exactly once.
	sort.Ints(counts)
	want := make([]int, 31)
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, counts)

	res, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, board.Cleared, res.Result)
	assert.Equal(t, 0, res.Board.Placed)
}

func colors(notes []note.Note) []note.Color {
	out := make([]note.Color, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Color)
	}
	return out
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	svc := New(board.New(october, 2))
	_, _ = svc.Place(ctx, 3, 20)
	_, _ = svc.Place(ctx, 1, 20)
	_, _ = svc.Place(ctx, 4, 2)

	res := svc.Report()
	assert.Equal(t, "October 2026", res.Title)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 31*2-3, res.Free)
	require.Len(t, res.Sections, 2)

	blue := res.Sections[0]
	assert.Equal(t, note.Blue, blue.Color)
	require.Len(t, blue.Items, 1)
	assert.Equal(t, note.ID(1), blue.Items[0].Note.ID)
	assert.Equal(t, 1, blue.Items[0].Slot)

	// note-4 is the pink replenished after note-3 was placed.
	pink := res.Sections[1]
	assert.Equal(t, note.Pink, pink.Color)
	require.Len(t, pink.Items, 2)
	assert.Equal(t, note.ID(4), pink.Items[0].Note.ID)
	assert.Equal(t, 2, pink.Items[0].Date.Day())
	assert.Equal(t, note.ID(3), pink.Items[1].Note.ID)
}
