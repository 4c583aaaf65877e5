package options

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// MCPOptions picks the MCP transport and where the HTTP transport listens.
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", "http", "Transport to use: http or stdio.")
	cmd.Flags().StringVar(&o.Host, "http-host", "127.0.0.1", "Host/interface for the HTTP transport.")
	cmd.Flags().IntVar(&o.Port, "http-port", 8090, "Port for the HTTP transport, 0 picks a free one.")
	cmd.Flags().StringVar(&o.Path, "http-path", "/mcp", "HTTP endpoint path.")
	cmd.Flags().StringVar(&o.TLSCert, "http-tls-cert", "", "TLS certificate file for HTTPS.")
	cmd.Flags().StringVar(&o.TLSKey, "http-tls-key", "", "TLS private key file for HTTPS.")
}

// Validate normalizes the flags in place.
func (o *MCPOptions) Validate() error {
	o.Transport = strings.ToLower(strings.TrimSpace(o.Transport))
	switch o.Transport {
	case "":
		o.Transport = "http"
	case "http", "stdio":
	default:
		return fmt.Errorf("options: unsupported transport %q, want http or stdio", o.Transport)
	}
	if o.Port < 0 || o.Port > 65535 {
		return fmt.Errorf("options: invalid http-port %d", o.Port)
	}
	o.Host = strings.TrimSpace(o.Host)
	if o.Host == "" {
		o.Host = "127.0.0.1"
	}
	o.Path = "/" + strings.TrimLeft(strings.TrimSpace(o.Path), "/")
	if o.Path == "/" {
		o.Path = "/mcp"
	}
	o.TLSCert = strings.TrimSpace(o.TLSCert)
	o.TLSKey = strings.TrimSpace(o.TLSKey)
	if (o.TLSCert == "") != (o.TLSKey == "") {
		return fmt.Errorf("options: --http-tls-cert and --http-tls-key go together")
	}
	return nil
}

// Addr is host:port for the HTTP transport.
func (o *MCPOptions) Addr() string {
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

// URL is the endpoint a client should use once the listener is bound to a.
func (o *MCPOptions) URL(a net.Addr) string {
	scheme := "http"
	if o.TLSCert != "" {
		scheme = "https"
	}
	host := a.String()
	if tcp, ok := a.(*net.TCPAddr); ok && tcp.IP.IsUnspecified() {
		host = net.JoinHostPort("127.0.0.1", strconv.Itoa(tcp.Port))
	}
	return scheme + "://" + host + o.Path
}
