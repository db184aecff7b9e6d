// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"unsafe"
)

func TestPositionIDEquality(t *testing.T) {
	first := NewPositionID("P-123456789")
	second := NewPositionID("P-234567890")

	if !first.Equal(first) {
		t.Error("Equal is not reflexive")
	}
	if first.Equal(second) {
		t.Errorf("%q.Equal(%q) = true, want false", first, second)
	}
	if first == second {
		t.Errorf("%q == %q, want different", first, second)
	}
}

func TestPositionIDValueSemantics(t *testing.T) {
	// Separate allocations of the same text must compare equal.
	built := string([]byte("P-123456789"))
	first := NewPositionID("P-123456789")
	second := NewPositionID(built)

	if !first.Equal(second) || !second.Equal(first) {
		t.Fatalf("Equal(%q, %q) = false, want true in both directions", first, second)
	}
	if first != second {
		t.Errorf("== on equal text returned false")
	}
	if first.Hash() != second.Hash() {
		t.Errorf("Hash mismatch for equal IDs: %d != %d", first.Hash(), second.Hash())
	}
}

func TestPositionIDEqualityMatchesText(t *testing.T) {
	texts := []string{"P-1", "P-2", "p-1", "P-1 ", "001", "Ρ-1", "P-123456789"}
	for _, left := range texts {
		for _, right := range texts {
			got := NewPositionID(left).Equal(NewPositionID(right))
			if got != (left == right) {
				t.Errorf("Equal(%q, %q) = %v, want %v", left, right, got, left == right)
			}
			if got && NewPositionID(left).Hash() != NewPositionID(right).Hash() {
				t.Errorf("equal IDs %q and %q hash differently", left, right)
			}
		}
	}
}

func TestPositionIDTransitive(t *testing.T) {
	a := NewPositionID("P-42")
	b := NewPositionID(string([]byte("P-42")))
	c := NewPositionID(fmt.Sprintf("P-%d", 42))
	if !a.Equal(b) || !b.Equal(c) {
		t.Fatal("setup: expected a==b and b==c")
	}
	if !a.Equal(c) {
		t.Error("Equal is not transitive")
	}
}

func TestPositionIDStringReprs(t *testing.T) {
	id := NewPositionID("P-123456789")

	if id.String() != "P-123456789" {
		t.Errorf("String() = %q, want %q", id.String(), "P-123456789")
	}
	for _, format := range []string{"%v", "%s", "%+v"} {
		if got := fmt.Sprintf(format, id); got != "P-123456789" {
			t.Errorf("Sprintf(%q) = %q, want %q", format, got, "P-123456789")
		}
	}
	if got := fmt.Sprint(id); got != "P-123456789" {
		t.Errorf("Sprint = %q, want %q", got, "P-123456789")
	}
}

func TestPositionIDDisplayUnmodified(t *testing.T) {
	for _, text := range []string{"  padded  ", "MiXeD-Case", "ünïcödé-7", "tab\there"} {
		if got := NewPositionID(text).String(); got != text {
			t.Errorf("String() = %q, want %q", got, text)
		}
	}
}

func TestNewPositionIDCopiesText(t *testing.T) {
	buffer := []byte("P-555")
	text := string(buffer)
	id := NewPositionID(text)

	if unsafe.StringData(id.String()) == unsafe.StringData(text) {
		t.Error("NewPositionID shares storage with its argument")
	}
	if id.String() != "P-555" {
		t.Errorf("String() = %q, want %q", id.String(), "P-555")
	}
}

func TestPositionIDZeroValue(t *testing.T) {
	var zero PositionID
	if !zero.IsZero() {
		t.Error("zero value should be IsZero()")
	}
	if NewPositionID("001").IsZero() {
		t.Error("IsZero() = true for constructed ID")
	}
}

func TestParsePositionID(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{"P-123456789", nil},
		{"001", nil},
		{"ünïcödé", nil},
		{"", ErrEmptyText},
		{"P-\x00-1", ErrContainsNUL},
		{"P-\xff", ErrInvalidUTF8},
	}

	for _, test := range tests {
		id, err := ParsePositionID(test.input)
		if test.wantErr == nil {
			if err != nil {
				t.Errorf("ParsePositionID(%q): unexpected error %v", test.input, err)
				continue
			}
			if id.String() != test.input {
				t.Errorf("ParsePositionID(%q).String() = %q", test.input, id.String())
			}
			continue
		}
		if !errors.Is(err, test.wantErr) {
			t.Errorf("ParsePositionID(%q): err=%v, want %v", test.input, err, test.wantErr)
		}
	}
}

func TestMustParsePositionIDPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParsePositionID should panic on invalid input")
		}
	}()
	MustParsePositionID("")
}

func TestPositionIDJSON(t *testing.T) {
	type wrapper struct {
		Position PositionID `json:"position_id"`
	}
	original := wrapper{Position: MustParsePositionID("P-123456789")}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"position_id":"P-123456789"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded wrapper
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("round-trip: got %q, want %q", decoded.Position, original.Position)
	}

	if err := json.Unmarshal([]byte(`{"position_id":""}`), &decoded); err != nil {
		t.Fatalf("Unmarshal empty: %v", err)
	}
	if !decoded.Position.IsZero() {
		t.Error("empty string should unmarshal to zero value")
	}

	if err := json.Unmarshal([]byte(`{"position_id":"P-\u0000"}`), &decoded); !errors.Is(err, ErrContainsNUL) {
		t.Errorf("Unmarshal NUL: err=%v, want ErrContainsNUL", err)
	}
}

func TestPositionIDLogValue(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buffer, nil))
	logger.Info("opened", "position", NewPositionID("P-77"))

	if !strings.Contains(buffer.String(), "position=P-77") {
		t.Errorf("log output %q does not contain position=P-77", buffer.String())
	}
}

func TestValidateText(t *testing.T) {
	if err := ValidateText([]byte("P-1")); err != nil {
		t.Errorf("ValidateText(P-1): %v", err)
	}
	if err := ValidateText(nil); err != nil {
		t.Errorf("ValidateText(empty): %v", err)
	}
	err := ValidateText([]byte("ab\x00cd"))
	if !errors.Is(err, ErrContainsNUL) {
		t.Fatalf("ValidateText NUL: err=%v, want ErrContainsNUL", err)
	}
	if !strings.Contains(err.Error(), "position 2") {
		t.Errorf("error %q does not report NUL position", err)
	}
}
