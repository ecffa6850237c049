package main

import (
	"log/slog"
	"os"

	"github.com/furilabs/furios-reset/cmd/furios-reset/commands"
)

func main() {
	// Structured logs go to stderr; stdout belongs to prompts and verdicts
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	commands.Execute()
}
