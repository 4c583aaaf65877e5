package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/stickycal/pkg/app"
)

// Report prints placements grouped by color.
func (pp *PrettyPrint) Report(res app.ReportResult) {
	pp.TitleWithCount(res.Title, res.Total)
	if len(res.Sections) == 0 {
		pp.Notes()
		return
	}
	f := color.New(color.Faint)
	for _, sec := range res.Sections {
		c := NoteColor(sec.Color)
		_, _ = c.Fprintf(pp.out(), "%s %s\n", dot, sec.Items[0].Note.Title())

		tbl := uitable.New()
		tbl.Separator = "  "
		for _, item := range sec.Items {
			row := []interface{}{item.Date.Format("Mon Jan 2")}
			if pp.ShowID {
				row = append(row, f.Sprint(item.Note.ID))
			}
			tbl.AddRow(row...)
		}
		_, _ = fmt.Fprintln(pp.out(), tbl)
	}
	_, _ = f.Fprintf(pp.out(), "\n%d open slots\n", res.Free)
}
