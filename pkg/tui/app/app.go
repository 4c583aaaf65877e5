// Package teaui hosts the Bubble Tea program for the sticky note calendar.
package teaui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/note"
	"tableflip.dev/stickycal/pkg/printers"
	"tableflip.dev/stickycal/pkg/tui/components/eventviewer"
	"tableflip.dev/stickycal/pkg/tui/components/panel"
	"tableflip.dev/stickycal/pkg/tui/events"
	"tableflip.dev/stickycal/pkg/tui/theme"
	"tableflip.dev/stickycal/pkg/tui/ui"
)

type focusArea int

const (
	focusTray focusArea = iota
	focusTrash
	focusGrid
)

const componentID events.ComponentID = "board"

// Model is the root Bubble Tea model. It owns the board machine; Bubble Tea
// delivers messages on one goroutine so no locking is needed.
type Model struct {
	machine *board.Machine
	th      theme.Theme
	keys    keyMap
	help    help.Model

	modal     panel.Model
	modalOpen bool

	width  int
	height int

	focus   focusArea
	trayIdx int
	day     int
	slot    int
	pointer bool

	status     string
	statusWarn bool

	debug  bool
	viewer *eventviewer.Model

	layout ui.Layout
}

type config struct {
	observers []board.Observer
	theme     *theme.Theme
	debug     bool
}

// Option configures the model.
type Option func(*config)

// WithObserver receives every applied event, e.g. a transcript recorder.
func WithObserver(o board.Observer) Option {
	return func(c *config) { c.observers = append(c.observers, o) }
}

// WithTheme overrides the default dark theme.
func WithTheme(th theme.Theme) Option {
	return func(c *config) { c.theme = &th }
}

// WithDebug opens the event log at startup.
func WithDebug() Option {
	return func(c *config) { c.debug = true }
}

// New builds a model over st.
func New(st board.State, opts ...Option) *Model {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	th := theme.Default(true)
	if cfg.theme != nil {
		th = *cfg.theme
	}
	m := &Model{
		th:    th,
		keys:  defaultKeys(),
		help:  help.New(),
		modal: panel.New(th.Modal),
		day:   1,
	}
	mopts := []board.Option{board.WithNotifier(board.NotifierFunc(m.openModal))}
	for _, o := range cfg.observers {
		mopts = append(mopts, board.WithObserver(o))
	}
	m.machine = board.NewMachine(st, mopts...)
	if cfg.debug {
		m.toggleDebug()
	}
	return m
}

// Run launches the program in the alternate screen with mouse motion
// reporting so notes can be dragged. It returns when the user quits or ctx
// is cancelled.
func Run(ctx context.Context, st board.State, opts ...Option) error {
	p := tea.NewProgram(New(st, opts...),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.layoutViewer()
	case tea.KeyPressMsg:
		return m, m.handleKey(v)
	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		if m.modalOpen {
			return m, nil
		}
		return m, m.handleMouse(v)
	case events.GestureMsg:
		m.noteEvent(eventviewer.FromOutcome(string(v.Component), v.Event, v.Outcome))
	case events.CalendarFullMsg:
		m.noteEvent(eventviewer.Entry{Source: string(v.Component), Summary: "notify", Detail: v.Describe(), Level: eventviewer.LevelError})
	case events.ModalDismissMsg:
		m.noteEvent(eventviewer.Entry{Source: string(v.Component), Summary: "modal", Detail: v.Describe()})
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.Msg) tea.Cmd {
	switch v := msg.(type) {
	case tea.MouseClickMsg:
		if v.Mouse().Button == tea.MouseLeft {
			return m.handleClick(v.Mouse())
		}
	case tea.MouseMotionMsg:
		return m.handleMotion(v.Mouse())
	case tea.MouseReleaseMsg:
		return m.handleRelease(v.Mouse())
	case tea.MouseWheelMsg:
		if m.viewer != nil {
			_, cmd := m.viewer.Update(v)
			return cmd
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.modalOpen {
		if key.Matches(msg, m.keys.Dismiss) {
			return m.closeModal()
		}
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		return m.move(0, -1)
	case key.Matches(msg, m.keys.Down):
		return m.move(0, 1)
	case key.Matches(msg, m.keys.Left):
		return m.move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		return m.move(1, 0)
	case key.Matches(msg, m.keys.Slot):
		m.cycleSlot()
	case key.Matches(msg, m.keys.Pick):
		return m.activate()
	case key.Matches(msg, m.keys.Cancel):
		if m.machine.Gesture().Active() {
			return m.dispatch(board.DragCancel{})
		}
	case key.Matches(msg, m.keys.Reset):
		m.pointer = false
		return m.dispatch(board.Reset{})
	case key.Matches(msg, m.keys.Debug):
		m.toggleDebug()
	}
	return nil
}

func (m *Model) snapshot() board.Snapshot { return m.machine.Snapshot() }

func (m *Model) move(dx, dy int) tea.Cmd {
	snap := m.snapshot()
	trayLen := len(snap.Workspace)
	switch m.focus {
	case focusTray:
		switch {
		case dx < 0:
			m.trayIdx = max(0, m.trayIdx-1)
		case dx > 0 && m.trayIdx < trayLen-1:
			m.trayIdx++
		case dx > 0:
			m.focus = focusTrash
		case dy > 0:
			m.focus = focusGrid
		}
	case focusTrash:
		switch {
		case dx < 0:
			m.focus = focusTray
			m.trayIdx = max(0, trayLen-1)
		case dy > 0:
			m.focus = focusGrid
		}
	case focusGrid:
		next := m.day + dx + 7*dy
		switch {
		case next < 1 && dy < 0:
			m.focus = focusTray
		case next >= 1 && next <= len(snap.Days):
			m.day = next
			m.slot = 0
		}
	}
	if m.focus == focusGrid && m.machine.Gesture().Active() {
		return m.dispatch(board.DragOverCell{Day: m.day})
	}
	return nil
}

func (m *Model) cycleSlot() {
	if m.focus != focusGrid {
		return
	}
	d := m.snapshot().Day(m.day)
	if d == nil || len(d.Notes) == 0 {
		m.slot = 0
		return
	}
	m.slot = (m.slot + 1) % len(d.Notes)
}

// activate picks up the note under the cursor, or drops the dragged one.
func (m *Model) activate() tea.Cmd {
	snap := m.snapshot()
	if m.machine.Gesture().Active() {
		switch m.focus {
		case focusGrid:
			return m.dispatch(board.DropOnCell{Day: m.day})
		case focusTrash:
			return m.dispatch(board.DropOnTrash{})
		default:
			return m.dispatch(board.DragCancel{})
		}
	}
	switch m.focus {
	case focusTray:
		if m.trayIdx < len(snap.Workspace) {
			return m.dispatch(board.DragStart{Note: snap.Workspace[m.trayIdx].ID})
		}
	case focusGrid:
		if d := snap.Day(m.day); d != nil && m.slot < len(d.Notes) {
			return m.dispatch(board.DragStart{Note: d.Notes[m.slot].ID})
		}
		m.setStatus("Nothing to pick up here", true)
	case focusTrash:
		m.setStatus("The trash only accepts drops", true)
	}
	return nil
}

func (m *Model) handleClick(mouse tea.Mouse) tea.Cmd {
	hit := m.layout.At(mouse.X, mouse.Y)
	if m.machine.Gesture().Active() {
		// A click while a keyboard drag is active drops at the click.
		m.pointer = true
		return m.handleRelease(mouse)
	}
	m.follow(hit)
	snap := m.snapshot()
	var id note.ID
	switch hit.Zone {
	case ui.ZoneTray:
		if hit.Index < len(snap.Workspace) {
			id = snap.Workspace[hit.Index].ID
		}
	case ui.ZoneDay:
		if d := snap.Day(hit.Day); d != nil && hit.Slot >= 0 && hit.Slot < len(d.Notes) {
			id = d.Notes[hit.Slot].ID
		}
	}
	if id == 0 {
		return nil
	}
	cmd := m.dispatch(board.DragStart{Note: id})
	m.pointer = m.machine.Gesture().Active()
	return cmd
}

func (m *Model) handleMotion(mouse tea.Mouse) tea.Cmd {
	if !m.pointer {
		return nil
	}
	hit := m.layout.At(mouse.X, mouse.Y)
	m.follow(hit)
	if hit.Zone == ui.ZoneDay && m.machine.Gesture().Hover != hit.Day {
		return m.dispatch(board.DragOverCell{Day: hit.Day})
	}
	return nil
}

func (m *Model) handleRelease(mouse tea.Mouse) tea.Cmd {
	if !m.pointer {
		return nil
	}
	m.pointer = false
	hit := m.layout.At(mouse.X, mouse.Y)
	m.follow(hit)
	switch hit.Zone {
	case ui.ZoneDay:
		return m.dispatch(board.DropOnCell{Day: hit.Day})
	case ui.ZoneTrash:
		return m.dispatch(board.DropOnTrash{})
	}
	return m.dispatch(board.DragCancel{})
}

// follow moves the keyboard cursor to whatever the pointer is over.
func (m *Model) follow(hit ui.Hit) {
	switch hit.Zone {
	case ui.ZoneTray:
		m.focus = focusTray
		m.trayIdx = hit.Index
	case ui.ZoneTrash:
		m.focus = focusTrash
	case ui.ZoneDay:
		m.focus = focusGrid
		m.day = hit.Day
		m.slot = max(0, hit.Slot)
	}
}

func (m *Model) dispatch(ev board.Event) tea.Cmd {
	out := m.machine.Dispatch(ev)
	m.describe(out)
	if !m.machine.Gesture().Active() {
		m.pointer = false
	}
	if out.Changed() {
		m.clampCursor()
	}
	cmds := []tea.Cmd{events.GestureCmd(componentID, ev, out)}
	if out.Full {
		cmds = append(cmds, func() tea.Msg { return events.CalendarFullMsg{Component: componentID} })
	}
	return tea.Batch(cmds...)
}

func (m *Model) clampCursor() {
	snap := m.snapshot()
	if m.trayIdx >= len(snap.Workspace) {
		m.trayIdx = max(0, len(snap.Workspace)-1)
	}
	if d := snap.Day(m.day); d != nil && m.slot >= len(d.Notes) {
		m.slot = max(0, len(d.Notes)-1)
	}
}

func (m *Model) describe(out board.Outcome) {
	snap := m.snapshot()
	dayName := func(day int) string {
		return time.Date(snap.Year, time.Month(snap.Month), day, 0, 0, 0, 0, time.UTC).Format("Jan 2")
	}
	switch out.Result {
	case board.Started:
		m.setStatus(fmt.Sprintf("Picked up %s %s", out.Note.ID, out.Note.Title()), false)
	case board.Hovered:
		if out.Allowed {
			m.setStatus("Drop on "+dayName(out.Day), false)
		} else {
			m.setStatus(fmt.Sprintf("Can't drop here: %s", out.Reason), true)
		}
	case board.Placed:
		m.setStatus(fmt.Sprintf("Placed %s on %s", out.Note.ID, dayName(out.Day)), false)
	case board.Moved:
		m.setStatus(fmt.Sprintf("Moved %s to %s", out.Note.ID, dayName(out.Day)), false)
	case board.Trashed:
		m.setStatus(fmt.Sprintf("Trashed %s", out.Note.ID), false)
	case board.Cancelled:
		m.setStatus("Drag cancelled", false)
	case board.Cleared:
		m.setStatus("Board reset", false)
	case board.Rejected:
		m.setStatus("Drop rejected: "+out.Reason, true)
	case board.Ignored:
		if out.Reason != "" {
			m.setStatus(out.Reason, true)
		}
	}
}

func (m *Model) setStatus(s string, warn bool) {
	m.status = s
	m.statusWarn = warn
}

func (m *Model) openModal() {
	m.modalOpen = true
	m.pointer = false
	m.layout = ui.Layout{}
	m.modal.SetContent("Calendar full", []string{printers.FullMessage}, "press enter to continue")
}

func (m *Model) closeModal() tea.Cmd {
	m.modalOpen = false
	m.modal.Reset()
	return func() tea.Msg { return events.ModalDismissMsg{Component: componentID} }
}

func (m *Model) toggleDebug() {
	if m.debug {
		m.debug = false
		m.viewer = nil
		m.setStatus("Event log hidden", false)
		return
	}
	m.debug = true
	m.viewer = eventviewer.NewModel(400, eventviewer.StylesFor(m.th))
	m.layoutViewer()
	m.noteEvent(eventviewer.Entry{Summary: "debug", Detail: "event log enabled"})
	m.setStatus("Event log visible", false)
}

func (m *Model) layoutViewer() {
	if m.viewer == nil {
		return
	}
	w := m.width
	if w <= 0 {
		w = 80
	}
	m.viewer.SetSize(w, 8)
}

func (m *Model) noteEvent(e eventviewer.Entry) {
	if m.viewer == nil {
		return
	}
	m.viewer.Append(e)
}
