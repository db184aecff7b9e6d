// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command-tree framework behind the positionid
// binary: a [Command] has pflag-based flags, nested subcommands, and
// generated help, and an unknown command or flag gets a "did you mean"
// suggestion by edit distance.
package cli
