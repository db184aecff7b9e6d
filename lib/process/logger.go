// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/meridian-trading/ident/lib/config"
)

// NewLogger creates a structured logger writing to output. With format
// "auto", output gets slog.TextHandler when it is a terminal and
// slog.JSONHandler otherwise (pipes, CI, a host runtime capturing
// stderr).
func NewLogger(output io.Writer, cfg *config.Config) *slog.Logger {
	options := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	switch cfg.Log.Format {
	case "text":
		handler = slog.NewTextHandler(output, options)
	case "json":
		handler = slog.NewJSONHandler(output, options)
	default:
		if isTerminal(output) {
			handler = slog.NewTextHandler(output, options)
		} else {
			handler = slog.NewJSONHandler(output, options)
		}
	}
	return slog.New(handler)
}

func isTerminal(output io.Writer) bool {
	file, ok := output.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
