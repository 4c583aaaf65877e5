package commands

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/stickycal/pkg/commands/options"
	"tableflip.dev/stickycal/pkg/runner/mcp"
	"tableflip.dev/stickycal/pkg/store"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	co := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: base.Wrap80("Start the Model Context Protocol server."),
		Long: `Launch an MCP server that exposes the board as a resource and lets
agents place, trash and reset notes through tools.`,
		Example: `
stickycal mcp --transport stdio
stickycal mcp --http-port 0 --month 2026-02
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if err := co.Validate(); err != nil {
				return err
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			month, err := mo.GetMonth(time.Now())
			if err != nil {
				return err
			}

			r := mcp.Runner{
				Config:    cfg,
				Month:     month,
				Log:       newLogger(cfg),
				Name:      "stickycal",
				Version:   Version,
				Transport: mcp.Transport(co.Transport),
				Addr:      co.Addr(),
				Path:      co.Path,
				TLSCert:   co.TLSCert,
				TLSKey:    co.TLSKey,
				OnListening: func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on %s\n", co.URL(a))
				},
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddMCPArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
