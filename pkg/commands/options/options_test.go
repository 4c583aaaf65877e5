package options

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/stickycal/pkg/note"
)

func TestGetMonth(t *testing.T) {
	now := time.Date(2026, time.October, 19, 15, 4, 0, 0, time.UTC)

	got, err := (&MonthOptions{}).GetMonth(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = (&MonthOptions{MonthString: "2026-02"}).GetMonth(now)
	require.NoError(t, err)
	assert.Equal(t, time.February, got.Month())

	_, err = (&MonthOptions{MonthString: "Feb"}).GetMonth(now)
	assert.Error(t, err)
}

func TestGetPlacements(t *testing.T) {
	got, err := (&PlaceOptions{Place: []string{"blue:3", "Pink: 14"}}).GetPlacements()
	require.NoError(t, err)
	assert.Equal(t, []Placement{{Color: note.Blue, Day: 3}, {Color: note.Pink, Day: 14}}, got)

	for _, bad := range []string{"blue", "green:3", "blue:x"} {
		_, err := (&PlaceOptions{Place: []string{bad}}).GetPlacements()
		assert.Error(t, err, bad)
	}
}

func TestEncode(t *testing.T) {
	v := map[string]int{"placed": 2}

	var buf bytes.Buffer
	require.NoError(t, (&OutputOptions{Output: OutputJSON}).Encode(&buf, v))
	assert.JSONEq(t, `{"placed":2}`, buf.String())

	buf.Reset()
	require.NoError(t, (&OutputOptions{Output: OutputYAML}).Encode(&buf, v))
	assert.Equal(t, "placed: 2\n", buf.String())

	assert.Error(t, (&OutputOptions{Output: "xml"}).Validate())
	assert.False(t, (&OutputOptions{Output: OutputText}).Structured())
}

func TestMCPOptions(t *testing.T) {
	o := &MCPOptions{Transport: " HTTP ", Port: 0, Path: "rpc/"}
	require.NoError(t, o.Validate())
	assert.Equal(t, "http", o.Transport)
	assert.Equal(t, "127.0.0.1:0", o.Addr())
	assert.Equal(t, "/rpc/", o.Path)

	bound := &net.TCPAddr{IP: net.IPv4zero, Port: 8123}
	assert.Equal(t, "http://127.0.0.1:8123/rpc/", o.URL(bound))

	o = &MCPOptions{Transport: "stdio", Path: ""}
	require.NoError(t, o.Validate())
	assert.Equal(t, "/mcp", o.Path)

	assert.Error(t, (&MCPOptions{Transport: "ws"}).Validate())
	assert.Error(t, (&MCPOptions{Port: 70000}).Validate())
	assert.Error(t, (&MCPOptions{TLSCert: "cert.pem"}).Validate())

	o = &MCPOptions{Host: "::1", Port: 9000, TLSCert: "c", TLSKey: "k"}
	require.NoError(t, o.Validate())
	assert.Equal(t, "https://[::1]:9000/mcp", o.URL(&net.TCPAddr{IP: net.IPv6loopback, Port: 9000}))
}
