// Package replay lists, replays, follows and deletes recorded sessions.
package replay

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/printers"
	"tableflip.dev/stickycal/pkg/store"
)

// Encoder writes structured output.
type Encoder interface {
	Structured() bool
	Encode(w io.Writer, v any) error
}

// Replay acts on the transcript store. With no Session it lists sessions.
type Replay struct {
	Transcripts *store.Transcripts
	Session     string
	Delete      bool
	Follow      bool
	Output      Encoder
	Out         io.Writer
}

// Result is the structured form of a replayed session.
type Result struct {
	Transcript store.Transcript `json:"transcript" yaml:"transcript"`
	Board      board.Snapshot   `json:"board" yaml:"board"`
}

func (r *Replay) structured() bool {
	return r.Output != nil && r.Output.Structured()
}

// Do runs the selected action.
func (r *Replay) Do(ctx context.Context) error {
	if r.Out == nil {
		r.Out = color.Output
	}
	pp := printers.PrettyPrint{Out: r.Out}
	if r.Session == "" {
		sessions, err := r.Transcripts.Sessions(ctx)
		if err != nil {
			return err
		}
		if r.structured() {
			return r.Output.Encode(r.Out, sessions)
		}
		pp.Title("Sessions")
		pp.Sessions(sessions)
		return nil
	}

	id, err := r.Transcripts.Resolve(ctx, r.Session)
	if err != nil {
		return err
	}

	switch {
	case r.Delete:
		if err := r.Transcripts.Delete(ctx, id); err != nil {
			return err
		}
		if r.structured() {
			return r.Output.Encode(r.Out, map[string]string{"deleted": id})
		}
		_, _ = fmt.Fprintf(r.Out, "deleted %s\n", id)
		return nil
	case r.Follow:
		return r.follow(ctx, id, pp)
	}

	tr, err := r.Transcripts.Load(ctx, id)
	if err != nil {
		return err
	}
	m, err := tr.Replay()
	if err != nil {
		return err
	}
	if r.structured() {
		return r.Output.Encode(r.Out, Result{Transcript: tr, Board: m.Snapshot()})
	}
	pp.Transcript(tr, m.Snapshot())
	return nil
}

// follow prints records as the live session writes them until ctx is done.
func (r *Replay) follow(ctx context.Context, id string, pp printers.PrettyPrint) error {
	entries, err := r.Transcripts.Follow(ctx, id, -1)
	if err != nil {
		return err
	}
	for e := range entries {
		if r.structured() {
			if err := r.Output.Encode(r.Out, e); err != nil {
				return err
			}
			continue
		}
		pp.Entry(e)
	}
	return nil
}
