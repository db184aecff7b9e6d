// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides entrypoint helpers shared by the CLI and the
// C shared library:
//
//   - [Fatal] reports an error to stderr when the structured logger may
//     not be initialized yet, then exits.
//   - [NewLogger] builds the slog.Logger both binaries use, honoring the
//     log section of lib/config.
package process
