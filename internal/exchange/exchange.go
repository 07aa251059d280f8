// Package exchange implements the request/response sequence of tinyget: one
// HTTP/1.1 GET request written to a connection, followed by exactly one read
// of the reply.
//
// The request framing uses bare "\n" line terminators:
//
//	GET <path> HTTP/1.1
//	Host: <hostname>:<port>
//	Connection: close
//
// The response is not parsed. Only the bytes returned by a single call to Read
// are reported, so responses larger than the receive buffer, or which arrive
// in more than one segment, are truncated.
package exchange

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/slices"

	"github.com/stealthrocket/tinyget/internal/buffer"
)

const (
	// MaxRequestSize is the default limit on the length of requests.
	MaxRequestSize = 16384
	// DefaultResponseSize is the default size of the receive buffer.
	DefaultResponseSize = 4096
	// MaxResponseBufferSize is the largest receive buffer allocated.
	MaxResponseBufferSize = 64 << 20
)

// ErrRequestTooLarge is returned when a formatted request would be longer than
// the request size limit. Nothing is written to the connection in that case.
var ErrRequestTooLarge = errors.New("request too large")

// IOError reports a failure of the transport while sending or receiving.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

const (
	requestLine = "GET "
	protoLine   = " HTTP/1.1\n"
	hostLine    = "Host: "
	closeLine   = "\nConnection: close\n\n"
)

// RequestSize returns the length in bytes of the request formatted for the
// given hostname, port and path.
func RequestSize(hostname, port, path string) int {
	return len(requestLine) + len(path) + len(protoLine) +
		len(hostLine) + len(hostname) + 1 + len(port) +
		len(closeLine)
}

// AppendRequest appends the request for hostname, port and path to dst and
// returns the extended slice.
func AppendRequest(dst []byte, hostname, port, path string) []byte {
	dst = append(dst, requestLine...)
	dst = append(dst, path...)
	dst = append(dst, protoLine...)
	dst = append(dst, hostLine...)
	dst = append(dst, hostname...)
	dst = append(dst, ':')
	dst = append(dst, port...)
	dst = append(dst, closeLine...)
	return dst
}

// FormatRequest appends the request for hostname, port and path to dst. If the
// request would be longer than limit bytes, dst is returned unchanged with an
// error wrapping ErrRequestTooLarge.
func FormatRequest(dst []byte, limit int, hostname, port, path string) ([]byte, error) {
	size := RequestSize(hostname, port, path)
	if size > limit {
		return dst, fmt.Errorf("%w: %d bytes exceeds the limit of %d bytes", ErrRequestTooLarge, size, limit)
	}
	dst = slices.Grow(dst, size)
	return AppendRequest(dst, hostname, port, path), nil
}

// Exchanger carries the limits applied to a request/response exchange. The
// zero value is ready to use and applies the default limits.
type Exchanger struct {
	// Maximum length of requests. Defaults to MaxRequestSize.
	MaxRequestSize int
	// Number of bytes requested from the single read of the response.
	// Defaults to DefaultResponseSize, capped at MaxResponseBufferSize.
	ResponseBufferSize int
	// When set, called with the formatted request right before it is
	// written. The slice is only valid for the duration of the call.
	OnRequest func(request []byte)
}

var requestBuffers buffer.Pool

// SendRequest formats a GET request for hostname, port and path and writes it
// to w in a single call, returning the number of bytes written.
//
// The error wraps ErrRequestTooLarge if the request is longer than the limit,
// or is an *IOError if writing to w failed.
func (x *Exchanger) SendRequest(w io.Writer, hostname, port, path string) (int, error) {
	limit := x.MaxRequestSize
	if limit <= 0 {
		limit = MaxRequestSize
	}

	// The buffer is sized for the request, not for the limit.
	b := requestBuffers.Get(0)
	defer buffer.Release(&b, &requestBuffers)

	request, err := FormatRequest(b.Data, limit, hostname, port, path)
	if err != nil {
		return 0, err
	}
	b.Data = request

	if x.OnRequest != nil {
		x.OnRequest(request)
	}

	n, err := w.Write(request)
	if err != nil {
		return n, &IOError{Op: "send", Err: err}
	}
	return n, nil
}

// ReceiveOnce performs exactly one read from r and returns the bytes it
// produced, which may be none at all.
//
// Reaching the end of the stream is not an error; other failures are reported
// as an *IOError along with any bytes read before the failure.
func (x *Exchanger) ReceiveOnce(r io.Reader) ([]byte, error) {
	size := x.ResponseBufferSize
	switch {
	case size <= 0:
		size = DefaultResponseSize
	case size > MaxResponseBufferSize:
		size = MaxResponseBufferSize
	}
	b := make([]byte, size)
	n, err := r.Read(b)
	if err != nil && err != io.EOF {
		return b[:n], &IOError{Op: "receive", Err: err}
	}
	return b[:n], nil
}

// SendRequest is like (*Exchanger).SendRequest with the default limits.
func SendRequest(w io.Writer, hostname, port, path string) (int, error) {
	return new(Exchanger).SendRequest(w, hostname, port, path)
}

// ReceiveOnce is like (*Exchanger).ReceiveOnce, reading at most maxBytes.
func ReceiveOnce(r io.Reader, maxBytes int) ([]byte, error) {
	x := Exchanger{ResponseBufferSize: maxBytes}
	return x.ReceiveOnce(r)
}
