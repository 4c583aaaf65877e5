package commands

import (
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/stickycal/pkg/commands/options"
	"tableflip.dev/stickycal/pkg/runner/ui"
	"tableflip.dev/stickycal/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	debug := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: base.Wrap80("Open the terminal board for the current month."),
		Example: `
stickycal ui
stickycal ui --debug
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			month, err := mo.GetMonth(time.Now())
			if err != nil {
				return err
			}
			i := ui.UI{Config: cfg, Month: month, Debug: debug}
			return i.Do(cmd.Context())
		},
	}

	options.AddMonthArgs(cmd, mo)
	cmd.Flags().BoolVar(&debug, "debug", false, "Open the gesture event log at startup.")

	topLevel.AddCommand(cmd)
}
