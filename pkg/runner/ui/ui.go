// Package ui starts the interactive terminal board.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/runner/internal/session"
	"tableflip.dev/stickycal/pkg/store"
	teaui "tableflip.dev/stickycal/pkg/tui/app"
	"tableflip.dev/stickycal/pkg/tui/theme"
)

// ErrNotTerminal is returned when stdout cannot host the interface.
var ErrNotTerminal = errors.New("ui: stdout is not a terminal")

const logFile = "stickycal-ui.log"

// UI runs the Bubble Tea board for one month.
type UI struct {
	Config store.Config
	Month  time.Time
	Debug  bool
}

// Do blocks until the user quits.
func (u *UI) Do(ctx context.Context) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotTerminal
	}
	month := u.Month
	if month.IsZero() {
		month = time.Now()
	}

	st, rec, err := session.Start(u.Config, month)
	if err != nil {
		return err
	}

	opts := []teaui.Option{teaui.WithTheme(theme.Default(termenv.HasDarkBackground()))}
	if u.Debug {
		opts = append(opts, teaui.WithDebug())
	}
	if rec != nil {
		opts = append(opts, teaui.WithObserver(func(ev board.Event, out board.Outcome) {
			if err := rec.Record(ev, out); err != nil {
				fmt.Fprintf(os.Stderr, "ui: record %s: %v\n", ev.Kind(), err)
			}
		}))
	}

	// Stderr belongs to the alternate screen; debug logs go to a file.
	if u.Config.LogLevel() <= slog.LevelDebug {
		f, err := openLog(u.Config.BasePath())
		if err != nil {
			return err
		}
		defer f.Close()
		log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, teaui.WithObserver(func(ev board.Event, out board.Outcome) {
			log.Debug("gesture", "event", ev.Kind(), "target", ev.Describe(), "result", out.Result, "reason", out.Reason)
		}))
	}

	return teaui.Run(ctx, st, opts...)
}

func openLog(base string) (*os.File, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("ui: ensure log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(base, logFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("ui: open log: %w", err)
	}
	return f, nil
}
