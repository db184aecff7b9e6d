// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"hash/maphash"
	"log/slog"
	"strings"
)

// hashSeed is chosen once per process. Hash values are only
// comparable within the process that produced them.
var hashSeed = maphash.MakeSeed()

// PositionID is an immutable identifier for a trading position
// (e.g., "P-123456789").
//
// PositionID is a comparable value type: == compares the text. The
// zero value is the identifier with empty text; ParsePositionID never
// returns it.
type PositionID struct {
	value string
}

// NewPositionID copies text into a new PositionID. The text is not
// validated: the caller guarantees it is valid UTF-8 without NUL
// bytes. Use ParsePositionID for untrusted input.
func NewPositionID(text string) PositionID {
	return PositionID{value: strings.Clone(text)}
}

// ParsePositionID validates raw with ValidateText and wraps it. Unlike
// NewPositionID it also rejects empty text, so a parsed identifier is
// never the zero value.
func ParsePositionID(raw string) (PositionID, error) {
	if raw == "" {
		return PositionID{}, fmt.Errorf("position ID %q: %w", raw, ErrEmptyText)
	}
	if err := ValidateText([]byte(raw)); err != nil {
		return PositionID{}, fmt.Errorf("position ID %q: %w", raw, err)
	}
	return NewPositionID(raw), nil
}

// MustParsePositionID is like ParsePositionID but panics on error. Use
// in tests and static initialization where the input is known-valid.
func MustParsePositionID(raw string) PositionID {
	id, err := ParsePositionID(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParsePositionID(%q): %v", raw, err))
	}
	return id
}

// String returns the identifier text exactly as constructed.
func (p PositionID) String() string { return p.value }

// IsZero reports whether the PositionID is the zero value (empty text).
func (p PositionID) IsZero() bool { return p.value == "" }

// Equal reports whether p and other carry the same text.
func (p PositionID) Equal(other PositionID) bool {
	return p.value == other.value
}

// Hash returns a 64-bit hash of the identifier text. Equal identifiers
// hash equally. The value changes between process runs; see Digest
// for a stable alternative.
func (p PositionID) Hash() uint64 {
	return maphash.String(hashSeed, p.value)
}

// LogValue implements slog.LogValuer so identifiers log as their text.
func (p PositionID) LogValue() slog.Value {
	return slog.StringValue(p.value)
}

// MarshalText implements encoding.TextMarshaler for JSON and CBOR.
func (p PositionID) MarshalText() ([]byte, error) {
	if p.value == "" {
		return nil, nil
	}
	return []byte(p.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Validates the
// text. An empty input produces the zero value.
func (p *PositionID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*p = PositionID{}
		return nil
	}
	parsed, err := ParsePositionID(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
