// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"hash", "", 4},
		{"", "eq", 2},
		{"hash", "hash", 0},
		{"hsah", "hash", 2},
		{"digset", "digest", 2},
		{"show", "shows", 1},
		{"kitten", "sitting", 3},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
		if got := levenshtein(test.b, test.a); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d (symmetry)", test.b, test.a, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("eq", pflag.ContinueOnError)
	flagSet.Bool("exit-code", false, "")
	flagSet.String("config", "", "")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--confg", "x"}, "--config"},
		{[]string{"--config=x", "--exitcode"}, "--exit-code"},
		{[]string{"P-1", "--qqqqqqqqqq"}, ""},
		{[]string{"P-1"}, ""},
	}
	for _, test := range tests {
		if got := suggestFlag(test.args, flagSet); got != test.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
