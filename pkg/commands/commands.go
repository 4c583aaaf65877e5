package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/stickycal/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "stickycal",
		Short: base.Wrap80("Drag colored sticky notes onto a month calendar, in the terminal or the browser."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addServe(topLevel)
	addMCP(topLevel)
	addReplay(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// newLogger writes structured logs to stderr at the configured level.
func newLogger(cfg store.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
}
