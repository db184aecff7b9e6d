// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package handle

import (
	"errors"
	"fmt"
)

// Handle is an opaque reference to an identifier owned by a Table.
type Handle uint64

var (
	// ErrInvalidHandle is returned for a handle the table never issued:
	// zero, out of range, or from a generation that does not exist yet.
	ErrInvalidHandle = errors.New("invalid handle")
	// ErrReleased is returned for a handle whose identifier has already
	// been released.
	ErrReleased = errors.New("handle already released")
	// ErrTableFull is returned by Acquire when the table is at capacity.
	ErrTableFull = errors.New("handle table is full")
	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("handle table is closed")
)

// maxSlots bounds the slot index to the low 32 bits of a handle
// (minus one, since the stored index is offset by one).
const maxSlots uint64 = 1<<32 - 1

func makeHandle(index int, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index+1))
}

// index returns the slot index, or -1 for the zero handle.
func (h Handle) index() int {
	return int(uint32(h)) - 1
}

func (h Handle) generation() uint32 {
	return uint32(h >> 32)
}

// IsZero reports whether h is the zero Handle, which is never issued.
func (h Handle) IsZero() bool { return h == 0 }

// String renders the handle as "slot/generation" for logs and errors.
func (h Handle) String() string {
	if h == 0 {
		return "handle(0)"
	}
	return fmt.Sprintf("handle(%d/%d)", h.index(), h.generation())
}
