// Package mcp provides the Model Context Protocol server integration for
// stickycal.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/stickycal/pkg/app"
	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/note"
)

// Service projects board operations into transport-friendly shapes for the
// MCP server.
type Service struct {
	App *app.Service
}

// ErrNoApp is returned when the service is not wired to a board.
var ErrNoApp = errors.New("mcp: board is not configured")

// NoteDTO is a transport-friendly projection of a note.
type NoteDTO struct {
	ID        string `json:"id"`
	Color     string `json:"color"`
	Label     string `json:"label"`
	Glyph     string `json:"glyph"`
	Draggable bool   `json:"draggable"`
}

// DayDTO describes one day cell.
type DayDTO struct {
	Day   int       `json:"day"`
	Date  string    `json:"date"`
	Open  bool      `json:"open"`
	Notes []NoteDTO `json:"notes"`
}

// BoardDTO summarizes the whole board.
type BoardDTO struct {
	Title     string    `json:"title"`
	Capacity  int       `json:"capacity"`
	Full      bool      `json:"full"`
	Placed    int       `json:"placed"`
	Free      int       `json:"free"`
	Workspace []NoteDTO `json:"workspace"`
	Days      []DayDTO  `json:"days"`
}

// GestureDTO reports what a tool call did.
type GestureDTO struct {
	Result string   `json:"result"`
	Reason string   `json:"reason,omitempty"`
	Note   *NoteDTO `json:"note,omitempty"`
	Day    int      `json:"day,omitempty"`
	Full   bool     `json:"full"`
	Board  BoardDTO `json:"board"`
}

// NewService builds a service wrapper around a.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

// Board returns the current board. When placedOnly is set, days without
// notes are omitted.
func (s *Service) Board(_ context.Context, placedOnly bool) (BoardDTO, error) {
	if s.App == nil {
		return BoardDTO{}, ErrNoApp
	}
	return toBoardDTO(s.App.Snapshot(), placedOnly), nil
}

// Day returns one day cell.
func (s *Service) Day(_ context.Context, day int) (DayDTO, error) {
	if s.App == nil {
		return DayDTO{}, ErrNoApp
	}
	snap := s.App.Snapshot()
	d := snap.Day(day)
	if d == nil {
		return DayDTO{}, fmt.Errorf("mcp: %s has no day %d", snap.Title, day)
	}
	return toDayDTO(snap, *d), nil
}

// PlaceNote moves a note from the workspace or another day onto day.
func (s *Service) PlaceNote(ctx context.Context, id string, day int) (GestureDTO, error) {
	if s.App == nil {
		return GestureDTO{}, ErrNoApp
	}
	nid, err := ParseNote(id)
	if err != nil {
		return GestureDTO{}, err
	}
	out, err := s.App.Place(ctx, nid, day)
	if err != nil {
		return GestureDTO{}, err
	}
	return s.gestureDTO(out), nil
}

// TrashNote disposes of a placed note.
func (s *Service) TrashNote(ctx context.Context, id string) (GestureDTO, error) {
	if s.App == nil {
		return GestureDTO{}, ErrNoApp
	}
	nid, err := ParseNote(id)
	if err != nil {
		return GestureDTO{}, err
	}
	out, err := s.App.Trash(ctx, nid)
	if err != nil {
		return GestureDTO{}, err
	}
	return s.gestureDTO(out), nil
}

// Reset clears the board.
func (s *Service) Reset(ctx context.Context) (GestureDTO, error) {
	if s.App == nil {
		return GestureDTO{}, ErrNoApp
	}
	out, err := s.App.Reset(ctx)
	if err != nil {
		return GestureDTO{}, err
	}
	return s.gestureDTO(out), nil
}

// Report groups placed notes by color.
func (s *Service) Report(_ context.Context) (app.ReportResult, error) {
	if s.App == nil {
		return app.ReportResult{}, ErrNoApp
	}
	return s.App.Report(), nil
}

func (s *Service) gestureDTO(out app.Applied) GestureDTO {
	dto := GestureDTO{
		Result: string(out.Result),
		Reason: out.Reason,
		Day:    out.Day,
		Full:   out.Full,
		Board:  toBoardDTO(out.Board, true),
	}
	if out.Note != nil {
		n := toNoteDTO(*out.Note)
		dto.Note = &n
	}
	return dto
}

// ParseNote accepts "note-3" or "3".
func ParseNote(input string) (note.ID, error) {
	if strings.TrimSpace(input) == "" {
		return 0, errors.New("mcp: note is required")
	}
	return note.ParseID(input)
}

func toBoardDTO(snap board.Snapshot, placedOnly bool) BoardDTO {
	dto := BoardDTO{
		Title:     snap.Title,
		Capacity:  snap.Capacity,
		Full:      snap.Full,
		Placed:    snap.Placed,
		Free:      snap.Capacity*len(snap.Days) - snap.Placed,
		Workspace: toNoteDTOs(snap.Workspace),
		Days:      make([]DayDTO, 0, len(snap.Days)),
	}
	for _, d := range snap.Days {
		if placedOnly && len(d.Notes) == 0 {
			continue
		}
		dto.Days = append(dto.Days, toDayDTO(snap, d))
	}
	return dto
}

func toDayDTO(snap board.Snapshot, d board.DaySnapshot) DayDTO {
	return DayDTO{
		Day:   d.Day,
		Date:  fmt.Sprintf("%04d-%02d-%02d", snap.Year, snap.Month, d.Day),
		Open:  d.Open,
		Notes: toNoteDTOs(d.Notes),
	}
}

func toNoteDTOs(notes []note.Note) []NoteDTO {
	out := make([]NoteDTO, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteDTO(n))
	}
	return out
}

func toNoteDTO(n note.Note) NoteDTO {
	return NoteDTO{
		ID:        n.ID.String(),
		Color:     n.Color.String(),
		Label:     n.Color.Label(),
		Glyph:     n.Color.Glyph(),
		Draggable: n.Draggable,
	}
}
