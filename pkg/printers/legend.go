package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/stickycal/pkg/note"
)

// Legend renders the color key.
func (pp *PrettyPrint) Legend() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Note"), bold.Sprint("Color"), bold.Sprint("Meaning"))
	for _, c := range note.Colors() {
		tbl.AddRow(NoteColor(c).Sprint(dot), c.String(), c.Title())
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}
