// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrEmptyText is returned by ParsePositionID for zero-length text.
	ErrEmptyText = errors.New("identifier text is empty")
	// ErrInvalidUTF8 is returned when identifier text is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("identifier text is not valid UTF-8")
	// ErrContainsNUL is returned when identifier text contains a NUL
	// byte. Such text cannot round-trip through a C string.
	ErrContainsNUL = errors.New("identifier text contains NUL byte")
)

// ValidateText checks the precondition NewPositionID relies on:
// valid UTF-8 and no NUL bytes. Empty text satisfies it.
func ValidateText(raw []byte) error {
	if index := bytes.IndexByte(raw, 0); index >= 0 {
		return fmt.Errorf("%w at position %d", ErrContainsNUL, index)
	}
	if !utf8.Valid(raw) {
		return ErrInvalidUTF8
	}
	return nil
}
