// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"reflect"
	"testing"
)

func TestParseLongOptions(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		expected LongOptions
		err      bool
	}{
		{"empty", "", LongOptions{}, false},
		{"policies", "verbose,file:,color::", LongOptions{"verbose": NoArgument, "file": RequiredArgument, "color": OptionalArgument}, false},
		{"dashes and spaces", " --verbose , -file: ", LongOptions{"verbose": NoArgument, "file": RequiredArgument}, false},
		{"empty entries", "a,,b", LongOptions{"a": NoArgument, "b": NoArgument}, false},
		{"only colons", "::", nil, true},
		{"too many colons", "file:::", nil, true},
		{"equals in name", "a=b", nil, true},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLongOptions(tt.in)
			if (err != nil) != tt.err {
				t.Fatalf("ParseLongOptions(%q) error: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseLongOptions(%q) == %v, want %v", tt.in, got, tt.expected)
			}
		})
	}

	l := LongOptions{"verbose": NoArgument, "file": RequiredArgument, "color": OptionalArgument}
	if l.String() != "color::,file:,verbose" {
		t.Errorf("String() == %q", l.String())
	}
}

func TestLongOptions(t *testing.T) {
	long := LongOptions{"verbose": NoArgument, "file": RequiredArgument, "color": OptionalArgument}

	t.Run("permute", func(t *testing.T) {
		args := argv("--verbose", "--file", "x", "--color=red", "--color", "y", "-a")
		diag := &captureDiagnostics{}
		s := New(args, "a")
		s.LongOptions = long
		s.Diagnostics = diag
		got := s.All()
		expected := []Result{
			{Kind: KindOption, Name: "verbose"},
			{Kind: KindOption, Name: "file", Arg: "x", HasArg: true},
			{Kind: KindOption, Name: "color", Arg: "red", HasArg: true},
			{Kind: KindOption, Name: "color"},
			{Kind: KindOption, Char: 'a'},
		}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("All() == %v, want %v", got, expected)
		}
		expectedArgs := argv("--verbose", "--file", "x", "--color=red", "--color", "-a", "y")
		if !reflect.DeepEqual(args, expectedArgs) {
			t.Errorf("argv == %q, want %q", args, expectedArgs)
		}
		if s.Optind != 7 {
			t.Errorf("optind == %d, want 7", s.Optind)
		}
		if len(diag.lines) != 0 {
			t.Errorf("unexpected diagnostics: %q", diag.lines)
		}
	})

	t.Run("errors", func(t *testing.T) {
		args := argv("--nope", "--verbose=1", "--file")
		diag := &captureDiagnostics{}
		s := New(args, "a")
		s.LongOptions = long
		s.Diagnostics = diag
		got := s.All()
		expected := []Result{
			{Kind: KindUnrecognized, Name: "nope"},
			{Kind: KindUnrecognized, Name: "verbose", Arg: "1", HasArg: true},
			{Kind: KindMissingArgument, Name: "file"},
		}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("All() == %v, want %v", got, expected)
		}
		expectedLines := []string{
			"program: unrecognized option '--nope'",
			"program: option '--verbose' doesn't allow an argument",
			"program: option '--file' requires an argument",
		}
		if !reflect.DeepEqual(diag.lines, expectedLines) {
			t.Errorf("diagnostics == %q, want %q", diag.lines, expectedLines)
		}
	})

	t.Run("silent", func(t *testing.T) {
		diag := &captureDiagnostics{}
		s := New(argv("--nope"), ":a")
		s.LongOptions = long
		s.Diagnostics = diag
		s.All()
		if len(diag.lines) != 0 {
			t.Errorf("unexpected diagnostics: %q", diag.lines)
		}
	})

	t.Run("terminator wins over the matcher", func(t *testing.T) {
		s := New(argv("--", "--verbose"), "a")
		s.LongOptions = long
		if got := s.All(); len(got) != 0 {
			t.Errorf("unexpected results: %v", got)
		}
		if s.Optind != 2 {
			t.Errorf("optind == %d, want 2", s.Optind)
		}
	})

	t.Run("func matcher", func(t *testing.T) {
		var seen []string
		s := New(argv("--anything=1", "-a"), "a")
		s.LongOptions = LongMatcherFunc(func(s *Scanner, option string) Result {
			seen = append(seen, option)
			return Result{Kind: KindOption, Name: option}
		})
		got := s.All()
		if len(got) != 2 || got[0].Name != "anything=1" || got[1].Char != 'a' {
			t.Errorf("unexpected results: %v", got)
		}
		if !reflect.DeepEqual(seen, []string{"anything=1"}) {
			t.Errorf("matcher called with %q", seen)
		}
	})
}
