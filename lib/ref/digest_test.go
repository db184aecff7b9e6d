// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"bytes"
	"testing"

	"github.com/zeebo/blake3"
)

func TestDigestConsistentWithEqual(t *testing.T) {
	first := NewPositionID("P-123456789")
	second := NewPositionID("P-123456789")
	other := NewPositionID("P-234567890")

	if first.Digest() != second.Digest() {
		t.Error("equal IDs produced different digests")
	}
	if first.Digest() == other.Digest() {
		t.Error("different IDs produced the same digest")
	}
}

func TestDigestIsKeyed(t *testing.T) {
	id := NewPositionID("P-1")
	unkeyed := blake3.Sum256([]byte("P-1"))
	digest := id.Digest()
	if bytes.Equal(digest[:], unkeyed[:]) {
		t.Error("Digest matches unkeyed BLAKE3; domain key not applied")
	}
}

func TestDigestString(t *testing.T) {
	text := NewPositionID("P-1").Digest().String()
	if len(text) != 64 {
		t.Errorf("Digest().String() length = %d, want 64", len(text))
	}
	for _, c := range text {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			t.Fatalf("Digest().String() = %q contains non-hex %q", text, c)
		}
	}
}
