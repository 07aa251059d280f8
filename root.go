package main

// Notes on program structure
// --------------------------
//
// tinyget takes a single positional argument, the location to fetch. The
// root function parses the options, loads the configuration and hands off to
// the get function (in get.go) which performs the exchange.
//
// The usage message contains a "Usage:	tinyget" section presenting the
// structure of the command. Note the tabulation separating "Usage:" and
// "tinyget".
//
// Command functions return errors; the root function translates them to exit
// codes. Errors of type usage cause the program to exit with status 2, other
// errors exit with status 1.

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/stealthrocket/tinyget/internal/config"
	"github.com/stealthrocket/tinyget/internal/print/human"
)

const rootUsage = `
Usage:	tinyget [options] HOSTNAME:PORT/PATH

   tinyget sends a single HTTP/1.1 GET request to HOSTNAME on PORT (80 when
   omitted) and prints the bytes returned by the first read of the response.
   The location may be prefixed with a protocol marker such as http://.

Example:

   $ tinyget localhost:3490/d20
   HTTP/1.1 200 OK
   ...

Options:
   -c, --config path    Path to the tinyget configuration file (overrides TINYGETCONFIG)
   -h, --help           Show this usage information
   -o, --output format  Output format, one of: raw, text, json, yaml
   -t, --timeout dur    Bound the time spent establishing the connection
   -v, --verbose        Log the decomposed location and the request to stderr
       --version        Print the program version and exit
`

// root is the tinyget entrypoint.
func root(ctx context.Context, stdout, stderr io.Writer, args ...string) int {
	var (
		configPath = config.Path
		output     = outputFormat("raw")
		timeout    human.Duration
		verbose    bool
		version    bool
	)

	if path := os.Getenv("TINYGETCONFIG"); path != "" {
		configPath = human.Path(path)
	}

	flagSet := newFlagSet("tinyget")
	customVar(flagSet, &configPath, "c", "config")
	customVar(flagSet, &output, "o", "output")
	customVar(flagSet, &timeout, "t", "timeout")
	boolVar(flagSet, &verbose, "v", "verbose")
	boolVar(flagSet, &version, "version")

	args, err := parseFlags(flagSet, args)
	switch {
	case errors.Is(err, flag.ErrHelp):
		fmt.Fprintln(stdout, strings.TrimSpace(rootUsage))
		return 0
	case err != nil:
		// reported below
	case version:
		fmt.Fprintf(stdout, "tinyget %s\n", currentVersion())
		return 0
	case len(args) != 1:
		err = usageError("expected exactly one HOSTNAME:PORT/PATH argument, got %d", len(args))
	}

	if err == nil {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

		config.Path = configPath
		var c *config.Config
		if c, err = config.Load(); err == nil {
			if timeout != 0 {
				c.Dial.Timeout = config.NullableValue(timeout)
			}
			err = get(ctx, stdout, logger, c, output, args[0])
		}
	}

	switch e := err.(type) {
	case nil:
		return 0
	case exitCode:
		return int(e)
	case usage:
		fmt.Fprintf(stderr, "%s\n%s\n", e, strings.TrimSpace(rootUsage))
		return 2
	default:
		fmt.Fprintf(stderr, "ERR: tinyget: %s\n", err)
		return 1
	}
}

// exitCode is an error type returned from command functions to indicate the
// exit code that should be returned by the program.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit: %d", e)
}

// usage is an error type returned from command functions to indicate a usage
// error.
//
// Usage errors cause the program to exit with status code 2.
type usage string

func usageError(msg string, args ...any) error {
	return usage(fmt.Sprintf(msg, args...))
}

func (e usage) Error() string {
	return string(e)
}

func setEnum[T ~string](enum *T, typ string, value string, options ...string) error {
	for _, option := range options {
		if option == value {
			*enum = T(option)
			return nil
		}
	}
	return fmt.Errorf("unsupported %s: %q (not one of %s)", typ, value, strings.Join(options, ", "))
}

type outputFormat string

func (o outputFormat) String() string {
	return string(o)
}

func (o *outputFormat) Set(value string) error {
	return setEnum(o, "output format", value, "raw", "text", "json", "yaml")
}

func newFlagSet(cmd string) *flag.FlagSet {
	flagSet := flag.NewFlagSet(cmd, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}
	return flagSet
}

// parseFlags is a greedy parser which consumes all options known to f and
// returns the remaining arguments, so options may appear after the location.
// A lone "--" ends option parsing.
func parseFlags(f *flag.FlagSet, args []string) ([]string, error) {
	var unknownArgs []string
	for {
		if err := f.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, usage(err.Error())
		}
		rest := f.Args()
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			return append(unknownArgs, rest...), nil
		}
		if len(rest) == 0 {
			return unknownArgs, nil
		}
		i := slices.IndexFunc(rest, func(s string) bool {
			return strings.HasPrefix(s, "-") && s != "-"
		})
		if i < 0 {
			return append(unknownArgs, rest...), nil
		}
		unknownArgs = append(unknownArgs, rest[:i]...)
		args = rest[i:]
	}
}

func boolVar(f *flag.FlagSet, dst *bool, name string, alias ...string) {
	f.BoolVar(dst, name, *dst, "")
	for _, name := range alias {
		f.BoolVar(dst, name, *dst, "")
	}
}

func customVar(f *flag.FlagSet, dst flag.Value, name string, alias ...string) {
	f.Var(dst, name, "")
	for _, name := range alias {
		f.Var(dst, name, "")
	}
}
