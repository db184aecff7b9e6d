// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package handle is the boundary layer between identifier values and an
// embedding host runtime that manages memory on its own terms.
//
// The host never holds a Go pointer. It holds a [Handle]: an opaque
// integer naming one [ref.PositionID] owned by a [Table]. The table is
// the single owner of every identifier it hands out. Ownership moves to
// the table on [Table.Acquire] and the identifier is destroyed on
// [Table.Release]; everything in between ([Table.Expose], [Table.Get],
// [Table.Equal], [Table.Hash], [Table.Digest]) borrows.
//
// A handle packs a slot index and a generation counter:
//
//	bits 63..32  generation of the slot when the handle was issued
//	bits 31..0   slot index + 1 (so the zero Handle is never valid)
//
// Releasing a slot bumps its generation before the slot is reused, so a
// stale handle can never alias a newer identifier. Use after release,
// double release, and forged handles are reported as errors
// ([ErrReleased], [ErrInvalidHandle]) rather than corrupting state.
//
// The host is still expected to release each handle exactly once from
// one logical owner. The table's lock keeps its own bookkeeping
// consistent under concurrent hosts; it does not arbitrate which caller
// "owns" a handle.
package handle
