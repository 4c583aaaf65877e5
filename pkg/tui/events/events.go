// Package events defines the messages exchanged between the TUI root model
// and its components.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/stickycal/pkg/board"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// GestureMsg reports an event applied to the board and its outcome.
type GestureMsg struct {
	Component ComponentID
	Event     board.Event
	Outcome   board.Outcome
}

// Describe renders the gesture for the event log.
func (m GestureMsg) Describe() string {
	s := fmt.Sprintf(`event:%q %s result:%q`, m.Event.Kind(), m.Event.Describe(), m.Outcome.Result)
	if m.Outcome.Reason != "" {
		s += fmt.Sprintf(` reason:%q`, m.Outcome.Reason)
	}
	return s
}

// GestureCmd wraps GestureMsg into a tea.Cmd.
func GestureCmd(component ComponentID, ev board.Event, out board.Outcome) tea.Cmd {
	return func() tea.Msg {
		return GestureMsg{Component: component, Event: ev, Outcome: out}
	}
}

// CalendarFullMsg is emitted when the last open slot is filled.
type CalendarFullMsg struct {
	Component ComponentID
}

func (m CalendarFullMsg) Describe() string { return "calendar full" }

// ModalDismissMsg closes the blocking full-calendar dialog.
type ModalDismissMsg struct {
	Component ComponentID
}

func (m ModalDismissMsg) Describe() string { return "modal dismissed" }
