// Package dial establishes the TCP connections used by tinyget.
package dial

import (
	"context"
	"fmt"
	"net"
	"time"

	"golang.org/x/net/proxy"
)

// DefaultPort is used when the location to connect to does not carry a port.
const DefaultPort = "80"

// Dialer opens connections to hosts. The zero value connects directly, with no
// timeout.
type Dialer struct {
	// Bounds the time spent establishing a connection. Zero means no limit.
	Timeout time.Duration
	// When true, the ALL_PROXY and NO_PROXY environment variables are honored
	// and connections may be made through a SOCKS5 proxy.
	Proxy bool
}

// Connect resolves hostname and establishes a TCP connection to it on port.
//
// On failure, the returned error is a *ConnectionError.
func (d *Dialer) Connect(ctx context.Context, hostname, port string) (net.Conn, error) {
	if port == "" {
		port = DefaultPort
	}
	address := net.JoinHostPort(hostname, port)

	conn, err := d.dial(ctx, address)
	if err != nil {
		return nil, &ConnectionError{Address: address, Err: err}
	}
	return conn, nil
}

func (d *Dialer) dial(ctx context.Context, address string) (net.Conn, error) {
	direct := &net.Dialer{Timeout: d.Timeout}
	if !d.Proxy {
		return direct.DialContext(ctx, "tcp", address)
	}
	switch p := proxy.FromEnvironmentUsing(direct).(type) {
	case proxy.ContextDialer:
		if d.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d.Timeout)
			defer cancel()
		}
		return p.DialContext(ctx, "tcp", address)
	default:
		return p.Dial("tcp", address)
	}
}

// Connect is a shorthand for connecting with a zero Dialer.
func Connect(ctx context.Context, hostname, port string) (net.Conn, error) {
	return new(Dialer).Connect(ctx, hostname, port)
}

// ConnectionError reports a failure to resolve or connect to an address.
type ConnectionError struct {
	Address string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to %s: %s", e.Address, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
