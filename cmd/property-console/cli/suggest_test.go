// Copyright 2026 The Property Console Authors
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
		{"roster", "", 6},
		{"", "unit", 4},
		{"roster", "roster", 0},
		{"rester", "roster", 1},
		{"mvoe-in", "move-in", 2},
		{"sesion", "session", 1},
		{"kitten", "sitting", 3},
	}

	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "session"},
		{Name: "unit"},
		{Name: "roster"},
		{Name: "resident"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"sesion", "session"},
		{"rester", "roster"},
		{"unti", "unit"},
		{"completely-different", ""},
	}

	for _, test := range tests {
		if got := suggestCommand(test.input, commands); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	flags := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flagSet.String("unit", "", "")
		flagSet.Bool("json", false, "")
		return flagSet
	}

	if got := suggestFlag([]string{"--unt", "12"}, flags()); got != "--unit" {
		t.Errorf("got %q, want --unit", got)
	}
	if got := suggestFlag([]string{"--jsno"}, flags()); got != "--json" {
		t.Errorf("got %q, want --json", got)
	}
	if got := suggestFlag([]string{"--unit", "12"}, flags()); got != "" {
		t.Errorf("got %q for a defined flag, want no suggestion", got)
	}
	if got := suggestFlag([]string{"--nothing-close-at-all"}, flags()); got != "" {
		t.Errorf("got %q, want no suggestion", got)
	}
}
