package app

import (
	"sort"
	"time"

	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/note"
)

// ReportItem is a placed note and the date it sits on.
type ReportItem struct {
	Note note.Note `json:"note" yaml:"note"`
	Date time.Time `json:"date" yaml:"date"`
	Slot int       `json:"slot" yaml:"slot"`
}

// ReportSection groups placed notes by color.
type ReportSection struct {
	Color note.Color   `json:"color" yaml:"color"`
	Label string       `json:"label" yaml:"label"`
	Items []ReportItem `json:"items" yaml:"items"`
}

// ReportResult summarizes the placements on a board.
type ReportResult struct {
	Title    string          `json:"title" yaml:"title"`
	Sections []ReportSection `json:"sections" yaml:"sections"`
	Total    int             `json:"total" yaml:"total"`
	Free     int             `json:"free" yaml:"free"`
}

// Report returns the current placements grouped by color.
func (s *Service) Report() ReportResult {
	return Report(s.State())
}

// Report groups the placed notes of st by color in Blue, Yellow, Pink
// order. Within a color, notes are ordered by day then slot.
func Report(st board.State) ReportResult {
	res := ReportResult{Title: st.Grid.Title()}
	grouped := make(map[note.Color][]ReportItem)
	first := st.Grid.First()
	for _, cell := range st.Grid.Days() {
		res.Free += st.Grid.Capacity - len(cell.Notes)
		for slot, n := range cell.Notes {
			grouped[n.Color] = append(grouped[n.Color], ReportItem{
				Note: n,
				Date: first.AddDate(0, 0, cell.Day-1),
				Slot: slot,
			})
			res.Total++
		}
	}
	for _, c := range note.Colors() {
		items, ok := grouped[c]
		if !ok {
			continue
		}
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Date.Equal(items[j].Date) {
				return items[i].Slot < items[j].Slot
			}
			return items[i].Date.Before(items[j].Date)
		})
		res.Sections = append(res.Sections, ReportSection{Color: c, Label: c.Label(), Items: items})
	}
	return res
}
