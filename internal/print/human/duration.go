package human

import (
	"encoding"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Duration is based on time.Duration, but also accepts values expressed in
// days (e.g. "1d12h") and bare numbers of seconds.
type Duration time.Duration

const Day = Duration(24 * time.Hour)

func ParseDuration(s string) (Duration, error) {
	input := s
	s = strings.TrimSpace(s)

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Duration(n * float64(time.Second)), nil
	}

	var d Duration
	if i := strings.IndexByte(s, 'd'); i > 0 {
		n, err := strconv.ParseFloat(s[:i], 64)
		if err != nil {
			return 0, fmt.Errorf("malformed duration: %s: %w", input, err)
		}
		d, s = Duration(n*float64(Day)), s[i+1:]
		if s == "" {
			return d, nil
		}
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("malformed duration: %s: %w", input, err)
	}
	return d + Duration(v), nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d *Duration) Set(s string) error {
	p, err := ParseDuration(s)
	if err != nil {
		return err
	}
	*d = p
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Duration) UnmarshalYAML(y *yaml.Node) error {
	var s string
	if err := y.Decode(&s); err != nil {
		return err
	}
	return d.Set(s)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	return d.Set(string(b))
}

var (
	_ yaml.Marshaler           = Duration(0)
	_ yaml.Unmarshaler         = (*Duration)(nil)
	_ encoding.TextMarshaler   = Duration(0)
	_ encoding.TextUnmarshaler = (*Duration)(nil)
	_ flag.Value               = (*Duration)(nil)
)
