package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stealthrocket/tinyget/internal/config"
	"github.com/stealthrocket/tinyget/internal/location"
)

// get performs the exchange with the server designated by url: decompose the
// location, connect, send the request, read the response once and print it.
//
// The connection is closed on every return path.
func get(ctx context.Context, stdout io.Writer, log *slog.Logger, c *config.Config, output outputFormat, url string) error {
	loc, err := location.Parse(url)
	if err != nil {
		return err
	}
	log.Debug("decomposed location",
		slog.String("hostname", loc.Hostname),
		slog.String("port", loc.Port),
		slog.String("path", loc.Path),
		slog.String("url", loc.String()))

	conn, err := c.Dialer().Connect(ctx, loc.Hostname, loc.Port)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Debug("connected", slog.String("remote", conn.RemoteAddr().String()))

	r := &report{
		ID:  uuid.New(),
		URL: loc,
	}

	x := c.Exchanger()
	x.OnRequest = func(request []byte) {
		r.Request = append(payload(nil), request...)
		log.Debug("sending request", slog.Int("size", len(request)), slog.String("request", string(request)))
	}

	if r.Sent, err = x.SendRequest(conn, loc.Hostname, loc.Port, loc.Path); err != nil {
		return err
	}
	log.Debug("request sent", slog.Int("bytes", r.Sent))

	if r.Response, err = x.ReceiveOnce(conn); err != nil {
		return err
	}
	log.Debug("response received", slog.Int("bytes", len(r.Response)))

	return writeReport(stdout, output, r)
}
