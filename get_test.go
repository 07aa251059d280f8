package main

import (
	"strings"
	"testing"

	"golang.org/x/net/nettest"

	"github.com/stealthrocket/tinyget/internal/assert"
)

const helloResponse = "HTTP/1.1 200 OK\nContent-Length: 5\nConnection: close\n\nhello"

var getTests = tests{
	"the response is printed followed by a line break": func(t *testing.T) {
		s := serve(t, helloResponse)
		stdout, stderr, exitCode := tinyget(t, s.addr+"/d20")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stdout, helloResponse+"\n")
		assert.Equal(t, stderr, "")
	},

	"the request uses bare line feeds and the decomposed host": func(t *testing.T) {
		s := serve(t, helloResponse)
		host, port := s.hostPort(t)
		_, _, exitCode := tinyget(t, s.addr+"/d20")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, s.wait(t), "GET /d20 HTTP/1.1\nHost: "+host+":"+port+"\nConnection: close\n\n")
	},

	"the protocol prefix is ignored": func(t *testing.T) {
		s := serve(t, helloResponse)
		stdout, _, exitCode := tinyget(t, "http://"+s.addr+"/index.html")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stdout, helloResponse+"\n")
		assert.HasPrefix(t, s.wait(t), "GET /index.html HTTP/1.1\n")
	},

	"a location without path sends an empty request target": func(t *testing.T) {
		s := serve(t, helloResponse)
		_, _, exitCode := tinyget(t, s.addr)
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, s.wait(t), "GET  HTTP/1.1\n")
	},

	"options may follow the location": func(t *testing.T) {
		s := serve(t, helloResponse)
		stdout, _, exitCode := tinyget(t, s.addr+"/", "-o", "raw")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stdout, helloResponse+"\n")
	},

	"only the first read of the response is printed": func(t *testing.T) {
		writeConfig(t, configuration{Response: &responseConfig{BufferSize: "8"}})
		s := serve(t, helloResponse)
		stdout, _, exitCode := tinyget(t, s.addr+"/")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stdout, "HTTP/1.1\n")
	},

	"a server closing without responding prints an empty line": func(t *testing.T) {
		s := serve(t, "")
		stdout, _, exitCode := tinyget(t, s.addr+"/")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stdout, "\n")
	},

	"a request larger than the configured limit is not sent": func(t *testing.T) {
		writeConfig(t, configuration{Request: &requestConfig{MaxSize: "64"}})
		s := serve(t, helloResponse)
		stdout, stderr, exitCode := tinyget(t, s.addr+"/"+strings.Repeat("x", 64))
		assert.Equal(t, exitCode, 1)
		assert.Equal(t, stdout, "")
		assert.HasPrefix(t, stderr, "ERR: tinyget: request too large: ")
		assert.Equal(t, s.wait(t), "")
	},

	"a request limit far larger than the request is accepted": func(t *testing.T) {
		writeConfig(t, configuration{Request: &requestConfig{MaxSize: "1000 GiB"}})
		s := serve(t, helloResponse)
		stdout, _, exitCode := tinyget(t, s.addr+"/d20")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stdout, helloResponse+"\n")
	},

	"a refused connection is reported": func(t *testing.T) {
		l, err := nettest.NewLocalListener("tcp4")
		assert.OK(t, err)
		addr := l.Addr().String()
		assert.OK(t, l.Close())

		stdout, stderr, exitCode := tinyget(t, addr+"/")
		assert.Equal(t, exitCode, 1)
		assert.Equal(t, stdout, "")
		assert.HasPrefix(t, stderr, "ERR: tinyget: connecting to "+addr+": ")
	},

	"verbose mode logs the exchange to stderr": func(t *testing.T) {
		s := serve(t, helloResponse)
		host, port := s.hostPort(t)
		stdout, stderr, exitCode := tinyget(t, "-v", s.addr+"/d20")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stdout, helloResponse+"\n")
		assert.Contains(t, stderr, `msg="decomposed location" hostname=`+host+` port=`+port+` path=/d20 url=`+host+`:`+port+`/d20`)
		assert.Contains(t, stderr, `msg="sending request" size=`)
		assert.Contains(t, stderr, `msg="request sent" bytes=`)
		assert.Contains(t, stderr, `msg="response received" bytes=`)
	},

	"the dial timeout option is accepted": func(t *testing.T) {
		s := serve(t, helloResponse)
		stdout, _, exitCode := tinyget(t, "--timeout", "5s", s.addr+"/")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stdout, helloResponse+"\n")
	},
}

