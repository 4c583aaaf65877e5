// Package key prints the note color legend.
package key

import (
	"context"
	"io"

	"tableflip.dev/stickycal/pkg/printers"
)

// Key prints which color means what.
type Key struct {
	Out io.Writer
}

// Do renders the legend.
func (k *Key) Do(_ context.Context) error {
	pp := printers.PrettyPrint{Out: k.Out}
	pp.NewLine()
	pp.Legend()
	return nil
}
