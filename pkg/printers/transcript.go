package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/store"
)

const stampLayout = "2006-01-02 15:04:05"

// Sessions lists recorded transcripts.
func (pp *PrettyPrint) Sessions(sessions []store.SessionInfo) {
	if len(sessions) == 0 {
		c := color.New(color.Faint)
		_, _ = c.Fprintln(pp.out(), "no recorded sessions")
		return
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Session"), bold.Sprint("Started"), bold.Sprint("Month"), bold.Sprint("Events"))
	for _, s := range sessions {
		tbl.AddRow(s.ID, s.Started.Local().Format(stampLayout), s.Header.First().Format("January 2006"), s.Events)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Entry prints one transcript record on a line.
func (pp *PrettyPrint) Entry(e store.Entry) {
	faint := color.New(color.Faint)
	if e.Header != nil {
		_, _ = faint.Fprintf(pp.out(), "%04d ", e.Seq)
		_, _ = fmt.Fprintf(pp.out(), "begin %s, capacity %d\n", e.Header.First().Format("January 2006"), e.Header.Capacity)
		return
	}
	if e.Event == nil {
		return
	}
	_, _ = faint.Fprintf(pp.out(), "%04d ", e.Seq)
	_, _ = fmt.Fprintf(pp.out(), "%-15s", e.Event.Kind)
	if e.Event.Note != 0 {
		_, _ = fmt.Fprintf(pp.out(), " %s", e.Event.Note)
	}
	if e.Event.Day != 0 {
		_, _ = fmt.Fprintf(pp.out(), " day %d", e.Event.Day)
	}
	res := color.New(color.FgGreen)
	switch e.Result {
	case board.Rejected:
		res = color.New(color.FgYellow)
	case board.Ignored, board.Hovered:
		res = faint
	}
	_, _ = res.Fprintf(pp.out(), " %s", e.Result)
	if e.Full {
		_, _ = color.New(color.FgHiRed).Fprint(pp.out(), " full")
	}
	_, _ = fmt.Fprintln(pp.out())
}

// Transcript prints every record followed by the replayed board.
func (pp *PrettyPrint) Transcript(tr store.Transcript, snap board.Snapshot) {
	pp.TitleWithCount("Session "+tr.ID, len(tr.Entries))
	for _, e := range tr.Entries {
		pp.Entry(e)
	}
	pp.NewLine()
	pp.Board(snap)
}
