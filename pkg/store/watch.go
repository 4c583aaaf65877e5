package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Follow streams the records of session id as they are written, starting
// after record from. The channel is closed once ctx is done or the watcher
// fails.
func (t *Transcripts) Follow(ctx context.Context, id string, from int) (<-chan Entry, error) {
	dir := filepath.Join(t.basePath, transcriptsDir, compactID(id))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure session directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	entries := make(chan Entry, 64)
	next := from + 1

	// scan emits every record at or after next, in order, stopping at the
	// first gap so that out-of-order writes are picked up on a later pass.
	var (
		mu     sync.Mutex
		closed bool
	)
	scan := func() {
		mu.Lock()
		defer mu.Unlock()
		for !closed {
			e, err := t.read(toKey(id, next))
			if err != nil {
				return
			}
			select {
			case entries <- e:
				next++
			case <-ctx.Done():
				return
			}
		}
	}

	go func() {
		defer func() {
			mu.Lock()
			closed = true
			close(entries)
			mu.Unlock()
		}()
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		throttle := newScanThrottle(50 * time.Millisecond)
		defer throttle.Stop()
		throttle.Trigger(scan)

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watch %s: %v\n", id, err)
				throttle.Trigger(scan)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				if _, ok := seqFromFile(filepath.Base(evt.Name)); !ok {
					continue
				}
				throttle.Trigger(scan)
			}
		}
	}()

	return entries, nil
}

// scanThrottle coalesces bursts of filesystem events into one scan.
type scanThrottle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newScanThrottle(delay time.Duration) *scanThrottle {
	return &scanThrottle{delay: delay}
}

func (t *scanThrottle) Trigger(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		t.timer = nil
		t.mu.Unlock()
		fn()
	})
}

func (t *scanThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
