// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/meridian-trading/ident/lib/config"
	"github.com/meridian-trading/ident/lib/handle"
	"github.com/meridian-trading/ident/lib/process"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath  string
	showVersion bool

	logger *slog.Logger
	table  *handle.Table
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

// flags returns a flag set carrying the flags every subcommand accepts.
// The --config default is the current value so a path given before the
// subcommand name survives the subcommand's own flag set.
func (a *app) flags(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.StringVar(&a.configPath, "config", a.configPath, "config file (default: $"+config.EnvironmentVariable+" or built-in defaults)")
	return flagSet
}

// rootFlags adds the top-level-only flags to the shared set.
func (a *app) rootFlags() *pflag.FlagSet {
	flagSet := a.flags("positionid")
	flagSet.BoolVar(&a.showVersion, "version", false, "print version information and exit")
	return flagSet
}

// loadConfig resolves configuration: --config, then IDENT_CONFIG, then
// defaults. An explicitly named file that fails to load is an error.
func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath != "" {
		return config.LoadFile(a.configPath)
	}
	if os.Getenv(config.EnvironmentVariable) != "" {
		return config.Load()
	}
	return config.Default(), nil
}

// open builds the logger and handle table for one command run. The
// returned function closes the table and must be deferred.
func (a *app) open(command string) (func(), error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	a.logger = process.NewLogger(a.stderr, cfg).With("command", command)
	a.table = handle.New(handle.Options{
		Capacity:    cfg.Boundary.Capacity,
		ReportLeaks: cfg.Boundary.ReportLeaks,
		Logger:      a.logger,
	})
	return func() {
		if leaked := a.table.Close(); leaked > 0 {
			a.logger.Warn("handles still live at exit", "count", leaked)
		}
	}, nil
}

// withTable wraps a command body with open/close of the handle table.
func (a *app) withTable(command string, body func(args []string) error) func(args []string) error {
	return func(args []string) error {
		closeTable, err := a.open(command)
		if err != nil {
			return err
		}
		defer closeTable()
		return body(args)
	}
}

// acquireAll acquires one handle per argument. On error, handles
// acquired so far are released before returning.
func (a *app) acquireAll(texts []string) ([]handle.Handle, error) {
	handles := make([]handle.Handle, 0, len(texts))
	for _, text := range texts {
		h, err := a.table.AcquireString(text)
		if err != nil {
			a.releaseAll(handles)
			return nil, fmt.Errorf("%q: %w", text, err)
		}
		handles = append(handles, h)
	}
	return handles, nil
}

func (a *app) releaseAll(handles []handle.Handle) {
	for _, h := range handles {
		if err := a.table.Release(h); err != nil {
			a.logger.Error("release failed", "handle", h, "error", err)
		}
	}
}
