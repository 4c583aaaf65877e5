package calendar

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/tui/theme"
	"tableflip.dev/stickycal/pkg/tui/ui"
)

func TestCellWidth(t *testing.T) {
	assert.Equal(t, MinCellWidth, CellWidth(20))
	assert.Equal(t, 14, CellWidth(100))
	assert.Equal(t, MaxCellWidth, CellWidth(400))
}

func TestRenderLayout(t *testing.T) {
	st := board.New(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), 2)
	st, _ = board.Reduce(st, board.DragStart{Note: st.Tray.Notes[0].ID})
	st, _ = board.Reduce(st, board.DropOnCell{Day: 1})
	snap := st.Snapshot()

	view, layout := Render(snap, Options{Theme: theme.Default(true), CellWidth: 12, CursorSlot: -1})
	height := CellHeight(2)
	assert.Equal(t, 5, height)
	// header plus five weeks
	assert.Equal(t, 1+5*height, lipgloss.Height(view))

	// October 2026 starts on a Thursday
	day1, ok := layout.Find(ui.ZoneDay, 0, 1)
	require.True(t, ok)
	assert.Equal(t, ui.Rect{X: 4 * 12, Y: 1, W: 12, H: height}, day1)

	slot := layout.At(day1.X+3, day1.Y+2)
	assert.Equal(t, ui.ZoneDay, slot.Zone)
	assert.Equal(t, 1, slot.Day)
	assert.Equal(t, 0, slot.Slot)

	empty := layout.At(day1.X+3, day1.Y+3)
	assert.Equal(t, 1, empty.Day)
	assert.Equal(t, -1, empty.Slot)

	assert.Equal(t, ui.ZoneBlank, layout.At(0, 1).Zone)
	assert.Equal(t, ui.ZoneNone, layout.At(0, 0).Zone)

	day31, ok := layout.Find(ui.ZoneDay, 0, 31)
	require.True(t, ok)
	assert.Equal(t, 6*12, day31.X)
	assert.Equal(t, 1+4*height, day31.Y)
}
