// Package show renders a board, optionally after scripted placements.
package show

import (
	"context"
	"fmt"
	"io"
	"time"

	"tableflip.dev/stickycal/pkg/app"
	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/note"
	"tableflip.dev/stickycal/pkg/printers"
)

// Placement drops a fresh workspace note of Color on Day.
type Placement struct {
	Color note.Color
	Day   int
}

// Encoder writes structured output.
type Encoder interface {
	Structured() bool
	Encode(w io.Writer, v any) error
}

// Show prints one month.
type Show struct {
	Month      time.Time
	Capacity   int
	Placements []Placement
	Report     bool
	ShowID     bool
	Output     Encoder
	Out        io.Writer
}

// Do applies the placements in order and prints the result.
func (s *Show) Do(ctx context.Context) error {
	svc := app.New(board.New(s.Month, s.Capacity))
	for _, p := range s.Placements {
		if err := place(ctx, svc, p); err != nil {
			return err
		}
	}

	if s.Output != nil && s.Output.Structured() {
		if s.Report {
			return s.Output.Encode(s.Out, svc.Report())
		}
		return s.Output.Encode(s.Out, svc.Snapshot())
	}

	pp := printers.PrettyPrint{Out: s.Out, ShowID: s.ShowID}
	pp.NewLine()
	pp.Board(svc.Snapshot())
	if s.Report {
		pp.Report(svc.Report())
	}
	return nil
}

func place(ctx context.Context, svc *app.Service, p Placement) error {
	var id note.ID
	for _, n := range svc.Snapshot().Workspace {
		if n.Color == p.Color {
			id = n.ID
		}
	}
	out, err := svc.Place(ctx, id, p.Day)
	if err != nil {
		return err
	}
	if out.Result != board.Placed {
		return fmt.Errorf("show: place %s on day %d: %s", p.Color, p.Day, out.Reason)
	}
	return nil
}
