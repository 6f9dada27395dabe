// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"fmt"
)

// Kind - Classification of a scan step.
type Kind int

// Result kinds
const (
	KindDone Kind = iota
	KindOption
	KindNonOption
	KindUnrecognized
	KindMissingArgument
	KindAmbiguousColon
)

func (k Kind) String() string {
	switch k {
	case KindDone:
		return "done"
	case KindOption:
		return "option"
	case KindNonOption:
		return "non-option"
	case KindUnrecognized:
		return "unrecognized"
	case KindMissingArgument:
		return "missing-argument"
	case KindAmbiguousColon:
		return "ambiguous-colon"
	default:
		return "unknown"
	}
}

// Result - Outcome of a single Scanner.Next call.
//
// Short options set Char, long options set Name.
// For KindNonOption, Arg holds the operand.
type Result struct {
	Kind   Kind
	Char   rune
	Name   string
	Arg    string
	HasArg bool
}

// IsError - Indicates the result is one of the recoverable error kinds.
func (r Result) IsError() bool {
	switch r.Kind {
	case KindUnrecognized, KindMissingArgument, KindAmbiguousColon:
		return true
	}
	return false
}

// Option - Returns the option as written on the command line, "-c" or "--name".
func (r Result) Option() string {
	if r.Name != "" {
		return "--" + r.Name
	}
	if r.Char == 0 {
		return ""
	}
	return "-" + string(r.Char)
}

// Err - Returns nil for non error results, otherwise an error wrapping one of
// ErrUnrecognizedOption, ErrMissingArgument or ErrAmbiguousColon.
func (r Result) Err() error {
	switch r.Kind {
	case KindUnrecognized:
		if r.Name != "" && r.HasArg {
			return fmt.Errorf("%w: '%s' doesn't allow an argument", ErrUnrecognizedOption, r.Option())
		}
		return fmt.Errorf("%w: '%s'", ErrUnrecognizedOption, r.Option())
	case KindMissingArgument:
		return fmt.Errorf("%w for option '%s'", ErrMissingArgument, r.Option())
	case KindAmbiguousColon:
		return fmt.Errorf("%w: '%s'", ErrAmbiguousColon, r.Option())
	}
	return nil
}

func (r Result) String() string {
	switch r.Kind {
	case KindOption:
		if r.HasArg {
			return fmt.Sprintf("%s %s %q", r.Kind, r.Option(), r.Arg)
		}
		return fmt.Sprintf("%s %s", r.Kind, r.Option())
	case KindNonOption:
		return fmt.Sprintf("%s %q", r.Kind, r.Arg)
	case KindDone:
		return r.Kind.String()
	default:
		return fmt.Sprintf("%s %s", r.Kind, r.Option())
	}
}
