package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/stickycal/pkg/note"
)

type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " note")
	default:
		_, _ = c.Fprintln(pp.out(), " notes")
	}
}

// NoteColor maps a note color to the closest terminal color.
func NoteColor(c note.Color) *color.Color {
	switch c {
	case note.Blue:
		return color.New(color.FgHiBlue)
	case note.Yellow:
		return color.New(color.FgHiYellow)
	case note.Pink:
		return color.New(color.FgHiMagenta)
	}
	return color.New(color.FgWhite)
}

// Notes prints one note per line.
func (pp *PrettyPrint) Notes(notes ...note.Note) {
	if len(notes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	for _, n := range notes {
		c := NoteColor(n.Color)
		if !n.Draggable {
			c.Add(color.Faint)
		}
		_, _ = c.Fprintf(pp.out(), "%s %s", dot, n.Title())
		if pp.ShowID {
			y := color.New(color.FgHiYellow, color.Italic, color.Faint)
			_, _ = y.Fprintf(pp.out(), "%s%s", strings.Repeat(" ", 2), n.ID)
		}
		_, _ = fmt.Fprintln(pp.out(), "")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}
