// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// positionid is an operator tool for inspecting position identifiers.
//
// Every subcommand drives the same boundary layer (lib/handle) that a
// host runtime uses through the C shared library: identifiers are
// acquired into a handle table, inspected through their handles, and
// released. Handles left live at exit are reported when the config
// enables leak reporting.
//
//	positionid show P-123456789
//	positionid eq P-123456789 P-234567890      # prints 0
//	positionid hash P-123456789                # process-local, differs per run
//	positionid digest P-123456789              # stable BLAKE3 digest
//	positionid encode --diag P-123456789       # "P-123456789"
//	positionid decode 6b502d313233343536373839
//
// Configuration comes from --config or IDENT_CONFIG; with neither, the
// built-in defaults apply.
package main
