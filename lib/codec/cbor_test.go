// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"testing"

	"github.com/meridian-trading/ident/lib/ref"
)

// positionRecord is a representative wire record carrying identifiers.
type positionRecord struct {
	Position ref.PositionID `cbor:"position_id"`
	Parent   ref.PositionID `cbor:"parent_id"`
	Quantity int64          `cbor:"quantity"`
}

func TestPositionIDEncodesAsTextString(t *testing.T) {
	data, err := Marshal(ref.NewPositionID("P-1"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// Major type 3 (text string), length 3, then "P-1".
	want := []byte{0x63, 'P', '-', '1'}
	if !bytes.Equal(data, want) {
		t.Errorf("Marshal = %s, want %s", hex.EncodeToString(data), hex.EncodeToString(want))
	}

	plain, err := Marshal("P-1")
	if err != nil {
		t.Fatalf("Marshal string: %v", err)
	}
	if !bytes.Equal(data, plain) {
		t.Error("PositionID encoding differs from plain string encoding")
	}
}

func TestRecordRoundtrip(t *testing.T) {
	original := positionRecord{
		Position: ref.NewPositionID("P-123456789"),
		Parent:   ref.NewPositionID("P-000000001"),
		Quantity: 250,
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded positionRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	record := positionRecord{Position: ref.NewPositionID("P-7"), Quantity: 1}

	first, err := Marshal(record)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(record)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestZeroPositionIDRoundtrip(t *testing.T) {
	original := positionRecord{Position: ref.NewPositionID("P-1")}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded positionRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decoded.Parent.IsZero() {
		t.Errorf("Parent = %q, want zero value", decoded.Parent)
	}
}

func TestUnmarshalRejectsInvalidIdentifier(t *testing.T) {
	data, err := Marshal(map[string]any{"position_id": "P-\x00"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded positionRecord
	if err := Unmarshal(data, &decoded); err == nil {
		t.Errorf("Unmarshal accepted NUL in identifier: %+v", decoded)
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var decoded positionRecord
	if err := Unmarshal([]byte{0xff, 0xfe}, &decoded); err == nil {
		t.Error("expected error for invalid CBOR")
	}
}

func TestStreamRoundtrip(t *testing.T) {
	ids := []ref.PositionID{
		ref.NewPositionID("P-1"),
		ref.NewPositionID("P-2"),
		ref.NewPositionID("P-3"),
	}

	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for _, id := range ids {
		if err := encoder.Encode(id); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	decoder := NewDecoder(&buffer)
	for i, want := range ids {
		var got ref.PositionID
		if err := decoder.Decode(&got); err != nil {
			t.Fatalf("Decode %d: %v", i, err)
		}
		if got != want {
			t.Errorf("item %d: got %q, want %q", i, got, want)
		}
	}
	var extra ref.PositionID
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		t.Errorf("Decode past end: err=%v, want io.EOF", err)
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(ref.NewPositionID("P-123456789"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if notation != `"P-123456789"` {
		t.Errorf("Diagnose = %s, want %q", notation, `"P-123456789"`)
	}
}
