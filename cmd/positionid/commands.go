// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/meridian-trading/ident/cmd/positionid/cli"
	"github.com/meridian-trading/ident/lib/codec"
	"github.com/meridian-trading/ident/lib/ref"
	"github.com/meridian-trading/ident/lib/version"
)

func (a *app) root() *cli.Command {
	root := &cli.Command{
		Name:       "positionid",
		Summary:    "Inspect position identifiers through the boundary layer",
		HelpOutput: a.stderr,
		Flags:      a.rootFlags,
		Subcommands: []*cli.Command{
			a.showCommand(),
			a.eqCommand(),
			a.hashCommand(),
			a.digestCommand(),
			a.encodeCommand(),
			a.decodeCommand(),
			a.versionCommand(),
		},
	}
	root.Run = func(args []string) error {
		if a.showVersion {
			return a.printVersion()
		}
		root.PrintHelp(a.stderr)
		if len(args) == 0 {
			return fmt.Errorf("subcommand required")
		}
		return fmt.Errorf("subcommand required (got %q)", args[0])
	}
	return root
}

func requireArgs(args []string, count int, usage string) error {
	if len(args) < count {
		return fmt.Errorf("usage: %s", usage)
	}
	return nil
}

func (a *app) showCommand() *cli.Command {
	const usage = "positionid show <text>... [flags]"
	return &cli.Command{
		Name:    "show",
		Summary: "Acquire identifiers and print their text",
		Usage:   usage,
		Flags:   func() *pflag.FlagSet { return a.flags("show") },
		Run: a.withTable("show", func(args []string) error {
			if err := requireArgs(args, 1, usage); err != nil {
				return err
			}
			handles, err := a.acquireAll(args)
			if err != nil {
				return err
			}
			defer a.releaseAll(handles)

			for _, h := range handles {
				text, err := a.table.Expose(h)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, text)
			}
			return nil
		}),
	}
}

func (a *app) eqCommand() *cli.Command {
	const usage = "positionid eq <a> <b> [flags]"
	var exitCode bool
	return &cli.Command{
		Name:        "eq",
		Summary:     "Compare two identifiers (prints 1 or 0)",
		Description: "Compare two identifiers by content. Prints 1 when equal and 0 otherwise.",
		Usage:       usage,
		Examples: []cli.Example{
			{Description: "Use in a shell condition", Command: "positionid eq --exit-code P-1 P-1 && echo same"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := a.flags("eq")
			flagSet.BoolVar(&exitCode, "exit-code", false, "exit with status 1 when the identifiers differ")
			return flagSet
		},
		Run: a.withTable("eq", func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("usage: %s", usage)
			}
			handles, err := a.acquireAll(args)
			if err != nil {
				return err
			}
			defer a.releaseAll(handles)

			equal, err := a.table.Equal(handles[0], handles[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, equal)
			if exitCode && equal == 0 {
				return &cli.ExitError{Code: 1}
			}
			return nil
		}),
	}
}

func (a *app) hashCommand() *cli.Command {
	const usage = "positionid hash <text>... [flags]"
	return &cli.Command{
		Name:    "hash",
		Summary: "Print the process-local hash of identifiers",
		Description: "Print the 64-bit lookup hash of each identifier.\n\n" +
			"The hash is seeded per process: running the command twice prints\n" +
			"different values. Use 'digest' for a value that can be stored.",
		Usage: usage,
		Flags: func() *pflag.FlagSet { return a.flags("hash") },
		Run: a.withTable("hash", func(args []string) error {
			if err := requireArgs(args, 1, usage); err != nil {
				return err
			}
			handles, err := a.acquireAll(args)
			if err != nil {
				return err
			}
			defer a.releaseAll(handles)

			for i, h := range handles {
				hash, err := a.table.Hash(h)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%016x  %s\n", hash, args[i])
			}
			return nil
		}),
	}
}

func (a *app) digestCommand() *cli.Command {
	const usage = "positionid digest <text>... [flags]"
	return &cli.Command{
		Name:    "digest",
		Summary: "Print the stable BLAKE3 digest of identifiers",
		Usage:   usage,
		Flags:   func() *pflag.FlagSet { return a.flags("digest") },
		Run: a.withTable("digest", func(args []string) error {
			if err := requireArgs(args, 1, usage); err != nil {
				return err
			}
			handles, err := a.acquireAll(args)
			if err != nil {
				return err
			}
			defer a.releaseAll(handles)

			for i, h := range handles {
				digest, err := a.table.Digest(h)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%s  %s\n", digest, args[i])
			}
			return nil
		}),
	}
}

func (a *app) encodeCommand() *cli.Command {
	const usage = "positionid encode <text> [flags]"
	var diagnostic bool
	return &cli.Command{
		Name:    "encode",
		Summary: "Print the CBOR wire form of an identifier",
		Usage:   usage,
		Flags: func() *pflag.FlagSet {
			flagSet := a.flags("encode")
			flagSet.BoolVar(&diagnostic, "diag", false, "print CBOR diagnostic notation instead of hex")
			return flagSet
		},
		Run: a.withTable("encode", func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: %s", usage)
			}
			handles, err := a.acquireAll(args)
			if err != nil {
				return err
			}
			defer a.releaseAll(handles)

			id, err := a.table.Get(handles[0])
			if err != nil {
				return err
			}
			data, err := codec.Marshal(id)
			if err != nil {
				return fmt.Errorf("encoding %q: %w", id, err)
			}
			if !diagnostic {
				fmt.Fprintln(a.stdout, hex.EncodeToString(data))
				return nil
			}
			notation, err := codec.Diagnose(data)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, notation)
			return nil
		}),
	}
}

func (a *app) decodeCommand() *cli.Command {
	const usage = "positionid decode <hex> [flags]"
	return &cli.Command{
		Name:        "decode",
		Summary:     "Decode CBOR identifiers from hex",
		Description: "Decode a hex-encoded CBOR sequence of identifiers and print each one.",
		Usage:       usage,
		Flags:       func() *pflag.FlagSet { return a.flags("decode") },
		Run: a.withTable("decode", func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: %s", usage)
			}
			data, err := hex.DecodeString(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("parsing hex: %w", err)
			}

			decoder := codec.NewDecoder(bytes.NewReader(data))
			for {
				var id ref.PositionID
				err := decoder.Decode(&id)
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return fmt.Errorf("decoding identifier: %w", err)
				}

				// Round-trip through the table so decoded text gets the
				// same boundary checks as any other foreign text.
				h, err := a.table.AcquireString(id.String())
				if err != nil {
					return err
				}
				text, err := a.table.Expose(h)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, text)
				if err := a.table.Release(h); err != nil {
					return err
				}
			}
		}),
	}
}

func (a *app) versionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Run: func(args []string) error {
			return a.printVersion()
		},
	}
}

func (a *app) printVersion() error {
	fmt.Fprintf(a.stdout, "positionid %s\n", version.Full())
	return nil
}
