package tray

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/tui/theme"
	"tableflip.dev/stickycal/pkg/tui/ui"
)

func TestRenderCardsAndTrash(t *testing.T) {
	st := board.New(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), 3)
	view, layout := Render(st.Snapshot().Workspace, Options{Theme: theme.Default(true), Focus: Focus{Note: 1}})

	assert.Contains(t, view, "note-1")
	assert.Contains(t, view, "Trash")

	var prev ui.Rect
	for i := 0; i < 3; i++ {
		r, ok := layout.Find(ui.ZoneTray, i, 0)
		require.True(t, ok, "card %d", i)
		assert.Equal(t, 0, r.Y)
		if i > 0 {
			assert.Greater(t, r.X, prev.X+prev.W-1, "cards overlap")
		}
		prev = r
	}
	trash, ok := layout.Find(ui.ZoneTrash, 0, 0)
	require.True(t, ok)
	assert.Equal(t, prev.X+prev.W+1+3, trash.X)
	assert.Equal(t, ui.ZoneTrash, layout.At(trash.X+1, trash.Y+1).Zone)
}

func TestRenderLockedNotes(t *testing.T) {
	st := board.New(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), 1)
	for day := 1; day <= 28; day++ {
		st, _ = board.Reduce(st, board.DragStart{Note: st.Tray.Notes[0].ID})
		st, _ = board.Reduce(st, board.DropOnCell{Day: day})
	}
	require.True(t, st.Full())

	view, _ := Render(st.Snapshot().Workspace, Options{Theme: theme.Default(true), Focus: Focus{Note: -1}})
	assert.Equal(t, 3, strings.Count(view, "(locked)"))
}
