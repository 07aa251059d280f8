// Package config loads the tinyget configuration file.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stealthrocket/tinyget/internal/dial"
	"github.com/stealthrocket/tinyget/internal/exchange"
	"github.com/stealthrocket/tinyget/internal/print/human"
)

const defaultConfigPath = "~/.tinyget/config.yaml"

// Path is the path to the tinyget configuration.
var Path human.Path = defaultConfigPath

// Load opens and reads the configuration file.
func Load() (*Config, error) {
	r, _, err := Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Read(r)
}

// Open opens the configuration file. When the file does not exist, the
// returned reader produces the default configuration.
func Open() (io.ReadCloser, string, error) {
	path, err := Path.Resolve()
	if err != nil {
		return nil, path, err
	}
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, path, err
		}
		b, _ := yaml.Marshal(Default())
		return io.NopCloser(bytes.NewReader(b)), path, nil
	}
	return f, path, nil
}

// Read reads and parses configuration.
func Read(r io.Reader) (*Config, error) {
	c := Default()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(c); err != nil {
		if err == io.EOF {
			return c, nil
		}
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// The receive buffer is allocated up front, so its size is bounded. The
// request size is only a limit and accepts any value.
func (c *Config) validate() error {
	if limit := human.Bytes(exchange.MaxResponseBufferSize); c.Response.BufferSize > limit {
		return fmt.Errorf("response.bufferSize: %s exceeds the maximum of %s", c.Response.BufferSize, limit)
	}
	return nil
}

// Default is the default configuration.
func Default() *Config {
	c := new(Config)
	c.Request.MaxSize = exchange.MaxRequestSize
	c.Response.BufferSize = exchange.DefaultResponseSize
	c.Dial.Timeout = Null[human.Duration]()
	c.Dial.Proxy = true
	return c
}

// Config is tinyget configuration.
type Config struct {
	Request struct {
		MaxSize human.Bytes `json:"maxSize" yaml:"maxSize"`
	} `json:"request" yaml:"request"`
	Response struct {
		BufferSize human.Bytes `json:"bufferSize" yaml:"bufferSize"`
	} `json:"response" yaml:"response"`
	Dial struct {
		Timeout Nullable[human.Duration] `json:"timeout" yaml:"timeout"`
		Proxy   bool                     `json:"proxy"   yaml:"proxy"`
	} `json:"dial" yaml:"dial"`
}

// Exchanger constructs an exchange.Exchanger applying the limits of c.
func (c *Config) Exchanger() *exchange.Exchanger {
	return &exchange.Exchanger{
		MaxRequestSize:     c.Request.MaxSize.Int(),
		ResponseBufferSize: c.Response.BufferSize.Int(),
	}
}

// Dialer constructs a dial.Dialer configured according to c.
func (c *Config) Dialer() *dial.Dialer {
	d := &dial.Dialer{Proxy: c.Dial.Proxy}
	if timeout, ok := c.Dial.Timeout.Value(); ok {
		d.Timeout = time.Duration(timeout)
	}
	return d
}

type Nullable[T any] struct {
	value T
	exist bool
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{exist: false}
}

func NullableValue[T any](v T) Nullable[T] {
	return Nullable[T]{value: v, exist: true}
}

func (v Nullable[T]) Value() (T, bool) {
	return v.value, v.exist
}

func (v Nullable[T]) MarshalJSON() ([]byte, error) {
	if !v.exist {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}

func (v Nullable[T]) MarshalYAML() (any, error) {
	if !v.exist {
		return nil, nil
	}
	return v.value, nil
}

func (v *Nullable[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		v.exist = false
		return nil
	} else if err := json.Unmarshal(b, &v.value); err != nil {
		v.exist = false
		return err
	} else {
		v.exist = true
		return nil
	}
}

func (v *Nullable[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == "" || node.Value == "~" || node.Value == "null" {
		v.exist = false
		return nil
	} else if err := node.Decode(&v.value); err != nil {
		v.exist = false
		return err
	} else {
		v.exist = true
		return nil
	}
}
