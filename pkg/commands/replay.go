package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/stickycal/pkg/commands/options"
	"tableflip.dev/stickycal/pkg/runner/replay"
	"tableflip.dev/stickycal/pkg/store"
)

func addReplay(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	var del, follow bool

	cmd := &cobra.Command{
		Use:   "replay [session]",
		Short: base.Wrap80("List recorded sessions, or replay one onto a fresh board."),
		Long: `Sessions are recorded when the record key is enabled. A session can be
named by any unique prefix of its id.`,
		Example: `
stickycal replay
stickycal replay 3f2a
stickycal replay 3f2a --follow
stickycal replay 3f2a --delete
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: sessionCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := oo.Validate(); err != nil {
				return err
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return oo.HandleError(err)
			}
			t, err := store.Open(cfg)
			if err != nil {
				return oo.HandleError(err)
			}
			r := replay.Replay{
				Transcripts: t,
				Delete:      del,
				Follow:      follow,
				Output:      oo,
				Out:         cmd.OutOrStdout(),
			}
			if len(args) == 1 {
				r.Session = args[0]
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&del, "delete", false, "Delete the session instead of replaying it.")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Print records as a live session writes them.")

	topLevel.AddCommand(cmd)
}
