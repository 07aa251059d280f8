package main

import (
	"context"
	"io"
	"log"
	"os"
)

func init() {
	// Diagnostics go through the slog logger configured in root.
	log.SetOutput(io.Discard)
}

func main() {
	os.Exit(root(context.Background(), os.Stdout, os.Stderr, os.Args[1:]...))
}
