package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/stickycal/pkg/board"
)

const (
	dot   = "●"
	empty = "·"
)

// FullMessage is shown once the last open slot is taken.
const FullMessage = "Calendar is full! Remove notes or reset to add more."

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Board prints the month grid, the workspace and the full marker.
func (pp *PrettyPrint) Board(snap board.Snapshot) {
	pp.Month(snap)
	pp.TitleWithCount("Workspace", len(snap.Workspace))
	pp.Notes(snap.Workspace...)
	if pp.ShowID {
		pp.Placements(snap)
	}
	if snap.Full {
		r := color.New(color.FgHiRed, color.Bold)
		_, _ = r.Fprintln(pp.out(), FullMessage)
	}
}

// Month prints the grid, one row per week. Each day shows its number and one
// marker per slot.
func (pp *PrettyPrint) Month(snap board.Snapshot) {
	cell := 2 + 1 + snap.Capacity
	width := 7*cell + 6

	tf := color.New(color.FgWhite, color.Italic)
	mid := (width - len(snap.Title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), snap.Title)

	hdr := color.New(color.Faint)
	cols := make([]string, len(weekdays))
	for i, w := range weekdays {
		cols[i] = w + strings.Repeat(" ", cell-len(w))
	}
	_, _ = hdr.Fprintln(pp.out(), strings.TrimRight(strings.Join(cols, " "), " "))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	slot := color.New(color.Faint)

	for _, week := range snap.Weeks {
		last := len(week) - 1
		for last >= 0 && week[last] == 0 {
			last--
		}
		for col := 0; col <= last; col++ {
			if col > 0 {
				_, _ = fmt.Fprint(pp.out(), " ")
			}
			d := snap.Day(week[col])
			if d == nil {
				_, _ = fmt.Fprint(pp.out(), strings.Repeat(" ", cell))
				continue
			}
			day := l1
			if !d.Open {
				day = l2
			}
			_, _ = day.Fprintf(pp.out(), "%2d ", d.Day)
			for i := 0; i < snap.Capacity; i++ {
				if i < len(d.Notes) {
					_, _ = NoteColor(d.Notes[i].Color).Fprint(pp.out(), dot)
				} else {
					_, _ = slot.Fprint(pp.out(), empty)
				}
			}
		}
		_, _ = fmt.Fprint(pp.out(), "\n")
	}
	_, _ = fmt.Fprint(pp.out(), "\n")
}

// Placements lists each occupied day with its note ids in drop order.
func (pp *PrettyPrint) Placements(snap board.Snapshot) {
	pp.TitleWithCount("Placed", snap.Placed)
	if snap.Placed == 0 {
		pp.Notes()
		return
	}
	b := color.New(color.Bold)
	for _, d := range snap.Days {
		if len(d.Notes) == 0 {
			continue
		}
		_, _ = b.Fprintf(pp.out(), "%2d ", d.Day)
		for i, n := range d.Notes {
			if i > 0 {
				_, _ = fmt.Fprint(pp.out(), ", ")
			}
			_, _ = NoteColor(n.Color).Fprintf(pp.out(), "%s %s", n.ID, n.Title())
		}
		_, _ = fmt.Fprintln(pp.out(), "")
	}
	pp.NewLine()
}
