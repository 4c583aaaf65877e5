package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/stickycal/pkg/runner/info"
	"tableflip.dev/stickycal/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: base.Wrap80("Details about configuration and where transcripts are stored."),
		Example: `
stickycal info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			t, err := store.Open(cfg)
			if err != nil {
				return err
			}
			s := info.Info{
				Config:      cfg,
				Transcripts: t,
				Out:         cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
