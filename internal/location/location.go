// Package location decomposes the command line argument of tinyget into the
// hostname, port and path of the resource to fetch.
//
// The accepted syntax is deliberately loose:
//
//	[anything//]hostname[:port][/path]
//
// Any occurrence of "//" is treated as the end of a protocol prefix, wherever
// it appears in the input. This is a lexical heuristic and not a URI scheme
// parser: "http://host", "ftp://host" and "garbage//host" all decompose to the
// same location. A path which itself contains "//" is cut at that point as
// well (e.g. "host/a//b" decomposes as "b").
package location

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned by Parse when no hostname can be identified in the
// input.
var ErrMalformed = errors.New("malformed url")

// Location is the decomposition of a URL into hostname, port and path.
//
// Values returned by Parse always have a non-empty hostname. The port is empty
// when the input did not specify one, and the path is either empty or begins
// with a "/".
type Location struct {
	Hostname string `json:"hostname"       yaml:"hostname"`
	Port     string `json:"port,omitempty" yaml:"port,omitempty"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Parse decomposes url into a Location.
//
// The input is split on the first ":" or "/" after the (optional) protocol
// prefix: the hostname is everything before it, the port runs from a ":" to
// the next "/", and the path is everything from that "/" to the end of the
// input.
func Parse(url string) (Location, error) {
	s := StripProtocol(url)

	i := strings.IndexAny(s, ":/")
	if i < 0 {
		i = len(s)
	}
	if i == 0 {
		return Location{}, &Error{URL: url}
	}

	loc := Location{Hostname: strings.Clone(s[:i])}
	s = s[i:]

	if strings.HasPrefix(s, ":") {
		port := s[1:]
		if j := strings.IndexByte(port, '/'); j >= 0 {
			port = port[:j]
		}
		loc.Port = strings.Clone(port)
		s = s[1+len(port):]
	}

	loc.Path = strings.Clone(s)
	return loc, nil
}

// StripProtocol removes everything up to and including the first "//" in s.
// The input is returned unchanged if it does not contain "//".
func StripProtocol(s string) string {
	if _, rest, ok := strings.Cut(s, "//"); ok {
		return rest
	}
	return s
}

// String reconstructs the protocol-stripped form of the URL that loc was
// parsed from. An empty port cannot be told apart from a missing one, so the
// colon of "host:" or "host:/path" is dropped.
func (loc Location) String() string {
	s := loc.Hostname
	if loc.Port != "" {
		s += ":" + loc.Port
	}
	return s + loc.Path
}

// Error is the error type returned by Parse. It matches ErrMalformed with
// errors.Is.
type Error struct {
	URL string
}

func (e *Error) Error() string {
	if e.URL == "" {
		return ErrMalformed.Error() + ": empty input"
	}
	return fmt.Sprintf("%s: no hostname found in %q", ErrMalformed, e.URL)
}

func (e *Error) Is(err error) bool {
	return err == ErrMalformed
}
