package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/stickycal/pkg/app"
	"tableflip.dev/stickycal/pkg/runner/internal/session"
	"tableflip.dev/stickycal/pkg/store"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

// Runner coordinates MCP server startup.
type Runner struct {
	Config  store.Config
	Month   time.Time
	Log     *slog.Logger
	Name    string
	Version string

	Transport Transport
	// Addr and Path locate the streamable HTTP endpoint.
	Addr        string
	Path        string
	TLSCert     string
	TLSKey      string
	OnListening func(net.Addr)
}

// NewServer builds an MCP server over a.
func NewServer(name, version string, a *app.Service) *server.MCPServer {
	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Inspect the sticky note calendar and move notes between the workspace, days and the trash."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	svc := NewService(a)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Config == nil {
		return errors.New("mcp: runner requires config")
	}
	name := r.Name
	if name == "" {
		name = "stickycal"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}
	log := r.Log
	if log == nil {
		log = slog.Default()
	}
	month := r.Month
	if month.IsZero() {
		month = time.Now()
	}

	st, rec, err := session.Start(r.Config, month)
	if err != nil {
		return err
	}
	opts := []app.Option{app.WithLogger(log)}
	if rec != nil {
		opts = append(opts, app.WithRecorder(rec))
		log.Info("recording transcript", "session", rec.ID)
	}
	srv := NewServer(name, version, app.New(st, opts...))

	switch t := r.Transport; t {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv, log)
	case TransportStdio:
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("mcp: unknown transport %q", t)
	}
}

// Handler mounts the streamable HTTP transport at path next to a /health
// endpoint.
func Handler(srv *server.MCPServer, path string, log *slog.Logger) http.Handler {
	if path == "" {
		path = "/mcp"
	}
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)
	r.Handle(path, server.NewStreamableHTTPServer(srv))
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(log.Handler(), slog.LevelError)),
	)(r)
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer, log *slog.Logger) error {
	if (r.TLSCert == "") != (r.TLSKey == "") {
		return errors.New("mcp: both http tls cert and key must be provided")
	}
	addr := r.Addr
	if addr == "" {
		addr = r.Config.Listen()
	}

	httpSrv := &http.Server{
		Handler:           Handler(srv, r.Path, log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("mcp: listen %s: %w", addr, err)
	}
	if r.OnListening != nil {
		r.OnListening(ln.Addr())
	}
	log.Info("serving mcp", "addr", ln.Addr().String(), "path", r.Path)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if r.TLSCert != "" {
		err = httpSrv.ServeTLS(ln, r.TLSCert, r.TLSKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
