package main

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/stealthrocket/tinyget/internal/assert"
	"github.com/stealthrocket/tinyget/internal/location"
)

type decodedReport struct {
	ID       string            `json:"id"       yaml:"id"`
	URL      location.Location `json:"url"      yaml:"url"`
	Request  string            `json:"request"  yaml:"request"`
	Sent     int               `json:"sent"     yaml:"sent"`
	Response string            `json:"response" yaml:"response"`
}

func (r *decodedReport) check(t *testing.T, s *server) {
	t.Helper()
	host, port := s.hostPort(t)

	id, err := uuid.Parse(r.ID)
	assert.OK(t, err)
	assert.NotEqual(t, id, uuid.Nil)
	assert.Equal(t, r.URL, location.Location{Hostname: host, Port: port, Path: "/d20"})
	assert.Equal(t, r.Request, "GET /d20 HTTP/1.1\nHost: "+host+":"+port+"\nConnection: close\n\n")
	assert.Equal(t, r.Sent, len(r.Request))
	assert.Equal(t, r.Response, helloResponse)
}

var outputTests = tests{
	"the json output describes the exchange": func(t *testing.T) {
		s := serve(t, helloResponse)
		stdout, _, exitCode := tinyget(t, "-o", "json", s.addr+"/d20")
		assert.Equal(t, exitCode, 0)

		var r decodedReport
		assert.OK(t, json.Unmarshal([]byte(stdout), &r))
		r.check(t, s)
	},

	"the yaml output describes the exchange": func(t *testing.T) {
		s := serve(t, helloResponse)
		stdout, _, exitCode := tinyget(t, "--output", "yaml", s.addr+"/d20")
		assert.Equal(t, exitCode, 0)

		var r decodedReport
		assert.OK(t, yaml.Unmarshal([]byte(stdout), &r))
		r.check(t, s)
	},

	"the json output encodes binary responses in base64": func(t *testing.T) {
		s := serve(t, "\xff\x00")
		stdout, _, exitCode := tinyget(t, "-o", "json", s.addr+"/d20")
		assert.Equal(t, exitCode, 0)

		var r decodedReport
		assert.OK(t, json.Unmarshal([]byte(stdout), &r))
		assert.Equal(t, r.Response, "/wA=")
	},

	"the text output summarizes the exchange and quotes the response": func(t *testing.T) {
		s := serve(t, helloResponse)
		host, port := s.hostPort(t)
		stdout, _, exitCode := tinyget(t, "-o", "text", s.addr+"/d20")
		assert.Equal(t, exitCode, 0)

		assert.HasPrefix(t, stdout, "ID        ")
		assert.Contains(t, stdout, "HOSTNAME  "+host+"\n")
		assert.Contains(t, stdout, "PORT      "+port+"\n")
		assert.Contains(t, stdout, "PATH      /d20\n")
		assert.Contains(t, stdout, "RECEIVED  "+strconv.Itoa(len(helloResponse))+"\n")
		assert.Contains(t, stdout, "    | HTTP/1.1 200 OK\n    | Content-Length: 5\n")
		assert.Contains(t, stdout, "    | hello\n")
	},
}
