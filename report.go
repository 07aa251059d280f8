package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/stealthrocket/tinyget/internal/location"
	"github.com/stealthrocket/tinyget/internal/print/human"
	"github.com/stealthrocket/tinyget/internal/print/jsonprint"
	"github.com/stealthrocket/tinyget/internal/print/textprint"
	"github.com/stealthrocket/tinyget/internal/print/yamlprint"
	"github.com/stealthrocket/tinyget/internal/stream"
)

// report is the record of an exchange, printed by the text, json and yaml
// output formats.
type report struct {
	ID       uuid.UUID         `json:"id"       yaml:"id"`
	URL      location.Location `json:"url"      yaml:"url"`
	Request  payload           `json:"request"  yaml:"request"`
	Sent     int               `json:"sent"     yaml:"sent"`
	Response payload           `json:"response" yaml:"response"`
}

// summary is the tabular view of a report for the text output format.
type summary struct {
	ID       uuid.UUID   `text:"ID"`
	Hostname string      `text:"HOSTNAME"`
	Port     string      `text:"PORT"`
	Path     string      `text:"PATH"`
	Sent     human.Bytes `text:"SENT"`
	Received human.Bytes `text:"RECEIVED"`
}

// payload is a sequence of raw bytes, encoded as a string when it holds valid
// UTF-8 and as base64 otherwise.
type payload []byte

func (p payload) MarshalJSON() ([]byte, error) { return jsonprint.Bytes(p) }

func (p payload) MarshalYAML() (any, error) { return yamlprint.Bytes(p), nil }

func writeReport(w io.Writer, output outputFormat, r *report) error {
	switch output {
	case "json":
		return stream.WriteAll(jsonprint.NewWriter[*report](w), r)
	case "yaml":
		return stream.WriteAll(yamlprint.NewWriter[*report](w), r)
	case "text":
		err := stream.WriteAll(textprint.NewFieldWriter[summary](w), summary{
			ID:       r.ID,
			Hostname: r.URL.Hostname,
			Port:     r.URL.Port,
			Path:     r.URL.Path,
			Sent:     human.Bytes(r.Sent),
			Received: human.Bytes(len(r.Response)),
		})
		if err != nil {
			return err
		}
		if len(r.Response) > 0 {
			if _, err := textprint.QuoteBytes(w).Write(r.Response); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, "\n")
		return err
	default:
		_, err := fmt.Fprintf(w, "%s\n", r.Response)
		return err
	}
}
