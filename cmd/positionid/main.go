// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/meridian-trading/ident/lib/process"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		// eq --exit-code prints its own result before returning an
		// ExitError; don't add an "error:" line for it.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		process.Fatal(err)
	}
}

func run(args []string) error {
	return newApp(os.Stdout, os.Stderr).root().Execute(args)
}
