package serve

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"tableflip.dev/stickycal/pkg/app"
	"tableflip.dev/stickycal/pkg/runner/internal/session"
	"tableflip.dev/stickycal/pkg/store"
)

// Serve runs the HTTP adapter until its context is cancelled.
type Serve struct {
	Config store.Config
	Month  time.Time
	Addr   string
	Log    *slog.Logger

	OnListening func(net.Addr)
}

// Do starts listening and blocks.
func (s *Serve) Do(ctx context.Context) error {
	log := s.Log
	if log == nil {
		log = slog.Default()
	}
	month := s.Month
	if month.IsZero() {
		month = time.Now()
	}
	addr := s.Addr
	if addr == "" {
		addr = s.Config.Listen()
	}

	st, rec, err := session.Start(s.Config, month)
	if err != nil {
		return err
	}
	metrics := NewMetrics()
	opts := []app.Option{
		app.WithLogger(log),
		app.WithObserver(metrics.Observe),
		app.WithNotifier(metrics),
	}
	if rec != nil {
		opts = append(opts, app.WithRecorder(rec))
		log.Info("recording transcript", "session", rec.ID)
	}
	srv := NewServer(app.New(st, opts...), metrics, WithLogger(log))

	httpSrv := &http.Server{
		Handler:      srv.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if s.OnListening != nil {
		s.OnListening(ln.Addr())
	}
	log.Info("serving board", "addr", ln.Addr().String())

	go srv.Sweep(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	err = httpSrv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
