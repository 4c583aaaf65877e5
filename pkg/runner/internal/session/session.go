// Package session starts a board for a runner and, when configured, the
// transcript that records it.
package session

import (
	"time"

	"tableflip.dev/stickycal/pkg/board"
	"tableflip.dev/stickycal/pkg/store"
)

// Month returns the first day of the month containing t.
func Month(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

// Start builds a fresh board for month. The returned session is nil unless
// cfg asks for recording.
func Start(cfg store.Config, month time.Time) (board.State, *store.Session, error) {
	st := board.New(Month(month), cfg.Capacity())
	if !cfg.Record() {
		return st, nil, nil
	}
	t, err := store.Open(cfg)
	if err != nil {
		return board.State{}, nil, err
	}
	s, err := t.Begin(store.Header{Year: month.Year(), Month: month.Month(), Capacity: cfg.Capacity()})
	if err != nil {
		return board.State{}, nil, err
	}
	return st, s, nil
}
