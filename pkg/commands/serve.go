package commands

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/stickycal/pkg/commands/options"
	"tableflip.dev/stickycal/pkg/runner/serve"
	"tableflip.dev/stickycal/pkg/store"
)

func addServe(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	listen := ""

	cmd := &cobra.Command{
		Use:   "serve",
		Short: base.Wrap80("Serve the board over HTTP with a drag-and-drop page, a JSON API, an iCalendar export and metrics."),
		Example: `
stickycal serve
stickycal serve --listen 0.0.0.0:9000 --month 2026-02
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			month, err := mo.GetMonth(time.Now())
			if err != nil {
				return err
			}
			s := serve.Serve{
				Config: cfg,
				Month:  month,
				Addr:   listen,
				Log:    newLogger(cfg),
				OnListening: func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Board listening on http://%s/\n", a)
				},
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddMonthArgs(cmd, mo)
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address, defaults to the configured listen key.")

	topLevel.AddCommand(cmd)
}
