// Package main is a command-line client for the itinerary store. It works
// directly against the configured backend, so it can inspect and undo
// changes while the API server is stopped.
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
