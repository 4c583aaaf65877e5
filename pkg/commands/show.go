package commands

import (
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/stickycal/pkg/commands/options"
	"tableflip.dev/stickycal/pkg/runner/show"
	"tableflip.dev/stickycal/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	po := &options.PlaceOptions{}
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}
	report := false

	cmd := &cobra.Command{
		Use:   "show",
		Short: base.Wrap80("Print a fresh board, optionally after placing notes."),
		Example: `
stickycal show
stickycal show --month 2026-02 --place blue:14 --place pink:14
stickycal show --place yellow:3 --report -o yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if err := oo.Validate(); err != nil {
				return err
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			month, err := mo.GetMonth(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			placements, err := po.GetPlacements()
			if err != nil {
				return oo.HandleError(err)
			}
			s := show.Show{
				Month:    month,
				Capacity: cfg.Capacity(),
				Report:   report,
				ShowID:   io.ShowID,
				Output:   oo,
				Out:      cmd.OutOrStdout(),
			}
			for _, p := range placements {
				s.Placements = append(s.Placements, show.Placement{Color: p.Color, Day: p.Day})
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddPlaceArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&report, "report", false, "Also list placements grouped by color.")

	topLevel.AddCommand(cmd)
}
