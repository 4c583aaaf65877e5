package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/stickycal/pkg/note"
)

var october = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

// february 2026 starts on a Sunday and has 28 days.
var february = time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

func trayIDs(s State) []note.ID {
	ids := make([]note.ID, 0, len(s.Tray.Notes))
	for _, n := range s.Tray.Notes {
		ids = append(ids, n.ID)
	}
	return ids
}

func cellIDs(s State, day int) []note.ID {
	ids := []note.ID{}
	for _, n := range s.Grid.Cell(day).Notes {
		ids = append(ids, n.ID)
	}
	return ids
}

func drop(m *Machine, id note.ID, day int) Outcome {
	m.Dispatch(DragStart{Note: id})
	m.Dispatch(DragOverCell{Day: day})
	return m.Dispatch(DropOnCell{Day: day})
}

func TestNewBoard(t *testing.T) {
	s := New(october, 3)

	assert.Equal(t, []note.ID{1, 2, 3}, trayIDs(s))
	assert.Equal(t, []note.Color{note.Blue, note.Yellow, note.Pink}, s.Tray.Colors())
	assert.Equal(t, Idle, s.Gesture.Phase)
	assert.False(t, s.Full())
	for _, n := range s.Tray.Notes {
		assert.True(t, n.Draggable)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := New(october, 3)
	before := s.Snapshot()

	next, out := Reduce(s, DragStart{Note: 1})
	require.Equal(t, Started, out.Result)
	next, out = Reduce(next, DropOnCell{Day: 4})
	require.Equal(t, Placed, out.Result)

	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, []note.ID{1}, cellIDs(next, 4))
	assert.Empty(t, cellIDs(s, 4))
}

func TestPlaceReplenishesSameColor(t *testing.T) {
	m := NewMachine(New(october, 3))

	out := drop(m, 1, 19)
	require.Equal(t, Placed, out.Result)
	require.NotNil(t, out.Replenished)
	assert.Equal(t, note.ID(4), out.Replenished.ID)
	assert.Equal(t, note.Blue, out.Replenished.Color)

	s := m.State()
	assert.Equal(t, []note.ID{1}, cellIDs(s, 19), "dragged note keeps its id")
	assert.Equal(t, []note.ID{4, 2, 3}, trayIDs(s), "new blue goes before yellow")
	assert.Equal(t, Idle, s.Gesture.Phase)

	drop(m, 3, 19)
	drop(m, 2, 20)
	s = m.State()
	assert.Equal(t, []note.ID{1, 3}, cellIDs(s, 19))
	assert.Equal(t, []note.Color{note.Blue, note.Yellow, note.Pink}, s.Tray.Colors())
	assert.Equal(t, []note.ID{4, 6, 5}, trayIDs(s))
}

func TestCapacity(t *testing.T) {
	m := NewMachine(New(october, 2))
	drop(m, 1, 7)
	drop(m, 2, 7)

	m.Dispatch(DragStart{Note: 3})
	hover := m.Dispatch(DragOverCell{Day: 7})
	assert.Equal(t, Hovered, hover.Result)
	assert.False(t, hover.Allowed)
	assert.Equal(t, ReasonCellFull, hover.Reason)

	out := m.Dispatch(DropOnCell{Day: 7})
	assert.Equal(t, Rejected, out.Result)
	assert.Equal(t, ReasonCellFull, out.Reason)

	s := m.State()
	assert.Equal(t, []note.ID{1, 2}, cellIDs(s, 7))
	assert.Contains(t, trayIDs(s), note.ID(3))
	assert.Equal(t, Idle, s.Gesture.Phase, "a rejected drop still ends the gesture")
}

func TestHoverIsAdvisory(t *testing.T) {
	m := NewMachine(New(october, 3))

	out := m.Dispatch(DragOverCell{Day: 3})
	assert.Equal(t, Ignored, out.Result)

	m.Dispatch(DragStart{Note: 1})
	out = m.Dispatch(DragOverCell{Day: 40})
	assert.False(t, out.Allowed)
	assert.Equal(t, ReasonNotADay, out.Reason)

	out = m.Dispatch(DragOverCell{Day: 3})
	assert.True(t, out.Allowed)
	g := m.Gesture()
	assert.Equal(t, 3, g.Hover)
	assert.True(t, g.HoverAllowed)

	out = m.Dispatch(DropOnCell{Day: 0})
	assert.Equal(t, Rejected, out.Result)
	assert.Equal(t, ReasonNotADay, out.Reason)
	assert.Equal(t, []note.ID{1, 2, 3}, trayIDs(m.State()))
}

func TestDragStartGuards(t *testing.T) {
	m := NewMachine(New(october, 3))

	assert.Equal(t, Ignored, m.Dispatch(DragStart{Note: 42}).Result)
	assert.Equal(t, Idle, m.Gesture().Phase)

	require.Equal(t, Started, m.Dispatch(DragStart{Note: 2}).Result)
	out := m.Dispatch(DragStart{Note: 3})
	assert.Equal(t, Ignored, out.Result)
	assert.Equal(t, ReasonGestureActive, out.Reason)
	assert.Equal(t, note.ID(2), m.Gesture().Payload.NoteID)

	assert.Equal(t, Cancelled, m.Dispatch(DragCancel{}).Result)
	assert.Equal(t, Ignored, m.Dispatch(DragCancel{}).Result)
	assert.Equal(t, Ignored, m.Dispatch(DropOnTrash{}).Result)
	assert.Equal(t, Ignored, m.Dispatch(DropOnCell{Day: 1}).Result)
}

func TestMoveBetweenCells(t *testing.T) {
	m := NewMachine(New(october, 3))
	drop(m, 1, 1)
	drop(m, 2, 1)

	start := m.Dispatch(DragStart{Note: 1})
	require.Equal(t, Started, start.Result)
	assert.False(t, start.Payload.FromWorkspace)
	assert.Equal(t, 1, start.Day)

	out := m.Dispatch(DropOnCell{Day: 2})
	assert.Equal(t, Moved, out.Result)
	assert.Nil(t, out.Replenished)

	s := m.State()
	assert.Equal(t, []note.ID{2}, cellIDs(s, 1))
	assert.Equal(t, []note.ID{1}, cellIDs(s, 2))
	assert.Equal(t, []note.ID{4, 5, 3}, trayIDs(s), "moves do not replenish")
}

func TestDropOnOwnCellReappends(t *testing.T) {
	m := NewMachine(New(october, 3))
	drop(m, 1, 9)
	drop(m, 2, 9)

	out := drop(m, 1, 9)
	assert.Equal(t, Moved, out.Result)
	assert.Equal(t, []note.ID{2, 1}, cellIDs(m.State(), 9))
}

func TestTrash(t *testing.T) {
	m := NewMachine(New(october, 3))

	m.Dispatch(DragStart{Note: 2})
	out := m.Dispatch(DropOnTrash{})
	assert.Equal(t, Rejected, out.Result)
	assert.Equal(t, ReasonWorkspaceNote, out.Reason)
	assert.Equal(t, []note.ID{1, 2, 3}, trayIDs(m.State()))
	assert.Equal(t, Idle, m.Gesture().Phase)

	drop(m, 2, 11)
	m.Dispatch(DragStart{Note: 2})
	out = m.Dispatch(DropOnTrash{})
	assert.Equal(t, Trashed, out.Result)
	assert.Equal(t, 11, out.Day)

	s := m.State()
	assert.Empty(t, cellIDs(s, 11))
	_, ok := s.Locate(2)
	assert.False(t, ok, "trashed ids are gone")
	assert.Equal(t, 0, s.Grid.Count())
	assert.Equal(t, []note.ID{1, 4, 3}, trayIDs(s))
}

func fill(t *testing.T, m *Machine, days int) {
	t.Helper()
	for day := 1; day <= days; day++ {
		first := m.State().Tray.Notes[0]
		out := drop(m, first.ID, day)
		require.Equal(t, Placed, out.Result, "day %d", day)
	}
}

func TestCalendarFull(t *testing.T) {
	notified := 0
	m := NewMachine(New(february, 1), WithNotifier(NotifierFunc(func() { notified++ })))

	fill(t, m, 27)
	assert.Equal(t, 0, notified)
	assert.False(t, m.State().Full())

	last := m.State().Tray.Notes[0]
	out := drop(m, last.ID, 28)
	assert.True(t, out.Full)
	assert.Equal(t, 1, notified)

	s := m.State()
	assert.True(t, s.Full())
	assert.Equal(t, []note.Color{note.Blue, note.Yellow, note.Pink}, s.Tray.Colors(), "tray persists while full")
	for _, n := range s.Tray.Notes {
		assert.False(t, n.Draggable)
	}

	out = m.Dispatch(DragStart{Note: s.Tray.Notes[1].ID})
	assert.Equal(t, Ignored, out.Result)
	assert.Equal(t, ReasonDisabled, out.Reason)

	placed := s.Grid.Cell(1).Notes[0]
	m.Dispatch(DragStart{Note: placed.ID})
	require.Equal(t, Trashed, m.Dispatch(DropOnTrash{}).Result)
	s = m.State()
	assert.False(t, s.Full())
	for _, n := range s.Tray.Notes {
		assert.True(t, n.Draggable)
	}

	out = drop(m, s.Tray.Notes[2].ID, 1)
	assert.True(t, out.Full)
	assert.Equal(t, 2, notified, "one notification per transition")
}

func TestMoveIntoFullGridIsRejected(t *testing.T) {
	m := NewMachine(New(february, 1))
	fill(t, m, 28)

	s := m.State()
	placed := s.Grid.Cell(3).Notes[0]
	out := drop(m, placed.ID, 4)
	assert.Equal(t, Rejected, out.Result)
	assert.False(t, out.Full)
	assert.Equal(t, []note.ID{placed.ID}, cellIDs(m.State(), 3))
}

func TestReset(t *testing.T) {
	fresh := New(october, 3).Snapshot()
	m := NewMachine(New(october, 3))
	drop(m, 1, 1)
	drop(m, 2, 5)
	m.Dispatch(DragStart{Note: 3})

	out := m.Dispatch(Reset{})
	assert.Equal(t, Cleared, out.Result)
	assert.True(t, out.Changed())
	first := m.Snapshot()
	assert.Equal(t, fresh, first)

	m.Dispatch(Reset{})
	assert.Equal(t, first, m.Snapshot())
	assert.Equal(t, []note.ID{1, 2, 3}, trayIDs(m.State()))
}

func TestResetWhileFull(t *testing.T) {
	m := NewMachine(New(february, 1))
	fill(t, m, 28)
	require.True(t, m.State().Full())

	m.Dispatch(Reset{})
	s := m.State()
	assert.False(t, s.Full())
	assert.Equal(t, 0, s.Grid.Count())
	for _, n := range s.Tray.Notes {
		assert.True(t, n.Draggable)
	}
}

func TestObserverSeesEveryEvent(t *testing.T) {
	var kinds []EventKind
	var results []Result
	m := NewMachine(New(october, 3), WithObserver(func(ev Event, out Outcome) {
		kinds = append(kinds, ev.Kind())
		results = append(results, out.Result)
	}))
	drop(m, 1, 2)
	m.Dispatch(Reset{})

	assert.Equal(t, []EventKind{KindDragStart, KindDragOverCell, KindDropOnCell, KindReset}, kinds)
	assert.Equal(t, []Result{Started, Hovered, Placed, Cleared}, results)
}

func TestWirePayload(t *testing.T) {
	tests := map[string]struct {
		wire    Wire
		want    Payload
		wantErr bool
	}{
		"workspace": {
			wire: Wire{NoteID: "note-3", FromWorkspace: "true"},
			want: Payload{NoteID: 3, FromWorkspace: true},
		},
		"cell": {
			wire: Wire{NoteID: "note-12", FromWorkspace: "false"},
			want: Payload{NoteID: 12},
		},
		"bare id": {
			wire: Wire{NoteID: "7", FromWorkspace: "false"},
			want: Payload{NoteID: 7},
		},
		"capitalized flag": {
			wire:    Wire{NoteID: "note-3", FromWorkspace: "True"},
			wantErr: true,
		},
		"empty flag": {
			wire:    Wire{NoteID: "note-3"},
			wantErr: true,
		},
		"numeric flag": {
			wire:    Wire{NoteID: "note-3", FromWorkspace: "1"},
			wantErr: true,
		},
		"bad id": {
			wire:    Wire{NoteID: "sticky", FromWorkspace: "true"},
			wantErr: true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tc.wire.Payload()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrBadPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wire.FromWorkspace, got.Wire().FromWorkspace)
		})
	}
}

func TestEventRecord(t *testing.T) {
	events := []Event{DragStart{Note: 5}, DragOverCell{Day: 2}, DropOnCell{Day: 2}, DropOnTrash{}, DragCancel{}, Reset{}}
	for _, ev := range events {
		got, err := Encode(ev).Decode()
		require.NoError(t, err)
		assert.Equal(t, ev, got)
	}

	_, err := EventRecord{Kind: "teleport"}.Decode()
	assert.Error(t, err)
}

func TestSnapshot(t *testing.T) {
	m := NewMachine(New(october, 3))
	drop(m, 3, 31)

	snap := m.Snapshot()
	assert.Equal(t, "October 2026", snap.Title)
	assert.Equal(t, 4, snap.Offset)
	assert.Equal(t, 1, snap.Placed)
	assert.Len(t, snap.Days, 31)
	require.NotNil(t, snap.Day(31))
	assert.Equal(t, note.Pink, snap.Day(31).Notes[0].Color)
	assert.Nil(t, snap.Day(32))

	require.Len(t, snap.Weeks, 5)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 2, 3}, snap.Weeks[0])
	assert.Equal(t, []int{25, 26, 27, 28, 29, 30, 31}, snap.Weeks[4])
}
