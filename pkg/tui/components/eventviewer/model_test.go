package eventviewer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/note"
	"tableflip.dev/stickycal/pkg/tui/theme"
)

func TestFromOutcome(t *testing.T) {
	n := note.Note{ID: 7, Color: note.Pink}

	e := FromOutcome("board", board.DropOnCell{Day: 4}, board.Outcome{Result: board.Placed, Note: &n, Full: true})
	assert.Equal(t, "drop_on_cell placed", e.Summary)
	assert.Equal(t, LevelError, e.Level)
	assert.True(t, strings.HasPrefix(e.Detail, "note-7 "))
	assert.True(t, strings.HasSuffix(e.Detail, "calendar full"))

	e = FromOutcome("board", board.DropOnCell{Day: 4}, board.Outcome{Result: board.Rejected, Reason: board.ReasonCellFull})
	assert.Equal(t, LevelWarn, e.Level)
	assert.Contains(t, e.Detail, "(day is full)")
}

func TestAppendNewestFirst(t *testing.T) {
	m := NewModel(2, StylesFor(theme.Default(true)))
	m.SetSize(60, 5)
	m.Append(Entry{Summary: "one"})
	m.Append(Entry{Summary: "two"})
	m.Append(Entry{Summary: "three"})

	entries := m.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "three", entries[0].Summary)
	assert.Equal(t, "ui", entries[0].Source)
	assert.False(t, entries[0].Timestamp.IsZero())
	assert.Contains(t, m.View(), "Gestures (2)")
}

func TestHeaderCountsWarnings(t *testing.T) {
	m := NewModel(10, StylesFor(theme.Default(false)))
	m.SetSize(80, 6)
	m.Append(Entry{Summary: "drag_start started"})
	m.Append(Entry{Summary: "drop_on_cell rejected", Level: LevelWarn})

	assert.Contains(t, m.View(), "Gestures (2), 1 need attention")
	assert.Contains(t, m.View(), "drop_on_cell rejected")
}
