package serve

import (
	"fmt"
	"io"
	"strings"
	"time"

	"tableflip.dev/stickycal/pkg/board"
)

const icsProductID = "-//tableflip.dev//stickycal//EN"

// writeICS renders every placed note as an all-day event.
func writeICS(w io.Writer, snap board.Snapshot, now time.Time) {
	fmt.Fprint(w, "BEGIN:VCALENDAR\r\n")
	fmt.Fprint(w, "VERSION:2.0\r\n")
	fmt.Fprintf(w, "PRODID:%s\r\n", icsProductID)
	fmt.Fprintf(w, "X-WR-CALNAME:%s\r\n", icsEscape(snap.Title))
	fmt.Fprint(w, "CALSCALE:GREGORIAN\r\n")

	stamp := now.UTC().Format("20060102T150405Z")
	for _, d := range snap.Days {
		date := time.Date(snap.Year, time.Month(snap.Month), d.Day, 0, 0, 0, 0, time.UTC)
		for slot, n := range d.Notes {
			fmt.Fprint(w, "BEGIN:VEVENT\r\n")
			fmt.Fprintf(w, "UID:%s-%s@stickycal\r\n", date.Format("20060102"), n.ID)
			fmt.Fprintf(w, "DTSTAMP:%s\r\n", stamp)
			fmt.Fprintf(w, "DTSTART;VALUE=DATE:%s\r\n", date.Format("20060102"))
			fmt.Fprintf(w, "DTEND;VALUE=DATE:%s\r\n", date.AddDate(0, 0, 1).Format("20060102"))
			fmt.Fprintf(w, "SUMMARY:%s\r\n", icsEscape(n.Title()))
			fmt.Fprintf(w, "DESCRIPTION:%s in slot %d\r\n", n.ID, slot+1)
			fmt.Fprintf(w, "CATEGORIES:%s\r\n", icsEscape(n.Color.String()))
			fmt.Fprint(w, "END:VEVENT\r\n")
		}
	}
	fmt.Fprint(w, "END:VCALENDAR\r\n")
}

var icsReplacer = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)

func icsEscape(s string) string {
	return icsReplacer.Replace(s)
}
