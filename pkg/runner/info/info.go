// Package info reports where configuration and transcripts live.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/stickycal/pkg/store"
)

type Info struct {
	Config      store.Config
	Transcripts *store.Transcripts
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("STICKYCAL_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "STICKYCAL_CONFIG_PATH found on env, using", override)
	} else {
		fmt.Fprintln(out, "STICKYCAL_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Config.path:     ", n.Config.BasePath())
	fmt.Fprintln(out, "Config.capacity: ", n.Config.Capacity())
	fmt.Fprintln(out, "Config.record:   ", n.Config.Record())
	fmt.Fprintln(out, "Config.listen:   ", n.Config.Listen())
	fmt.Fprintln(out, "Config.log_level:", n.Config.LogLevel())

	if n.Transcripts == nil {
		return nil
	}
	sessions, err := n.Transcripts.Sessions(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Sessions: %d\n", len(sessions))
	return nil
}
