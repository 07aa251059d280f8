package main

import (
	"testing"

	"github.com/stealthrocket/tinyget/internal/assert"
)

var rootTests = tests{
	"invoking tinyget without arguments is a usage error": func(t *testing.T) {
		stdout, stderr, exitCode := tinyget(t)
		assert.Equal(t, exitCode, 2)
		assert.Equal(t, stdout, "")
		assert.HasPrefix(t, stderr, "expected exactly one HOSTNAME:PORT/PATH argument, got 0\n")
		assert.Contains(t, stderr, "Usage:\ttinyget [options] HOSTNAME:PORT/PATH\n")
	},

	"invoking tinyget with two locations is a usage error": func(t *testing.T) {
		stdout, stderr, exitCode := tinyget(t, "localhost:80/a", "localhost:80/b")
		assert.Equal(t, exitCode, 2)
		assert.Equal(t, stdout, "")
		assert.HasPrefix(t, stderr, "expected exactly one HOSTNAME:PORT/PATH argument, got 2\n")
	},

	"show the tinyget help with the short option": func(t *testing.T) {
		stdout, stderr, exitCode := tinyget(t, "-h")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\ttinyget [options] HOSTNAME:PORT/PATH\n")
		assert.Equal(t, stderr, "")
	},

	"show the tinyget help with the long option": func(t *testing.T) {
		stdout, stderr, exitCode := tinyget(t, "--help")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\ttinyget [options] HOSTNAME:PORT/PATH\n")
		assert.Equal(t, stderr, "")
	},

	"the help option wins over a location": func(t *testing.T) {
		stdout, _, exitCode := tinyget(t, "localhost:1/x", "-h")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\ttinyget")
	},

	"the version starts with the prefix tinyget": func(t *testing.T) {
		stdout, stderr, exitCode := tinyget(t, "--version")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "tinyget ")
		assert.Equal(t, stderr, "")
	},

	"passing an unsupported flag causes an error": func(t *testing.T) {
		_, stderr, exitCode := tinyget(t, "-_", "localhost")
		assert.Equal(t, exitCode, 2)
		assert.HasPrefix(t, stderr, "flag provided but not defined: -_\n")
	},

	"passing an unsupported output format causes an error": func(t *testing.T) {
		_, stderr, exitCode := tinyget(t, "-o", "xml", "localhost")
		assert.Equal(t, exitCode, 2)
		assert.Contains(t, stderr, `unsupported output format: "xml"`)
	},

	"an empty location is malformed": func(t *testing.T) {
		stdout, stderr, exitCode := tinyget(t, "")
		assert.Equal(t, exitCode, 1)
		assert.Equal(t, stdout, "")
		assert.Equal(t, stderr, "ERR: tinyget: malformed url: empty input\n")
	},

	"a location without hostname is malformed": func(t *testing.T) {
		stdout, stderr, exitCode := tinyget(t, "--", "http://:80/")
		assert.Equal(t, exitCode, 1)
		assert.Equal(t, stdout, "")
		assert.Equal(t, stderr, "ERR: tinyget: malformed url: no hostname found in \"http://:80/\"\n")
	},

	"a malformed configuration file is reported": func(t *testing.T) {
		writeConfig(t, configuration{Request: &requestConfig{MaxSize: "lots"}})
		_, stderr, exitCode := tinyget(t, "localhost")
		assert.Equal(t, exitCode, 1)
		assert.HasPrefix(t, stderr, "ERR: tinyget: ")
		assert.Contains(t, stderr, "malformed bytes representation")
	},

	"a response buffer larger than the maximum is rejected": func(t *testing.T) {
		writeConfig(t, configuration{Response: &responseConfig{BufferSize: "1000 GiB"}})
		stdout, stderr, exitCode := tinyget(t, "localhost")
		assert.Equal(t, exitCode, 1)
		assert.Equal(t, stdout, "")
		assert.HasPrefix(t, stderr, "ERR: tinyget: ")
		assert.Contains(t, stderr, "response.bufferSize: 1000 GiB exceeds the maximum of 64 MiB")
	},
}
