package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/stickycal/pkg/note"
)

// Placement drops a fresh workspace note of Color on Day.
type Placement struct {
	Color note.Color
	Day   int
}

// PlaceOptions collects scripted placements.
type PlaceOptions struct {
	Place []string
}

func AddPlaceArgs(cmd *cobra.Command, o *PlaceOptions) {
	cmd.Flags().StringArrayVarP(&o.Place, "place", "p", nil,
		`Place a workspace note before rendering, example: --place=blue:14. Repeatable.`)
}

// GetPlacements parses every --place value.
func (o *PlaceOptions) GetPlacements() ([]Placement, error) {
	out := make([]Placement, 0, len(o.Place))
	for _, p := range o.Place {
		c, d, ok := strings.Cut(p, ":")
		if !ok {
			return nil, fmt.Errorf("options: placement %q, want color:day", p)
		}
		col, err := note.ParseColor(c)
		if err != nil {
			return nil, err
		}
		day, err := strconv.Atoi(strings.TrimSpace(d))
		if err != nil {
			return nil, fmt.Errorf("options: placement %q has no day", p)
		}
		out = append(out, Placement{Color: col, Day: day})
	}
	return out, nil
}
