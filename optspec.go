// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"sort"
	"strings"
)

// Mode - Operation mode for non-option handling.
type Mode int

// Operation modes
const (
	// Permute moves operands to the end so every option is processed regardless of its position.
	Permute Mode = iota
	// PosixOrder stops scanning at the first operand.
	PosixOrder
	// ReturnInOrder returns operands as KindNonOption results in their original position.
	ReturnInOrder
)

func (m Mode) String() string {
	switch m {
	case Permute:
		return "permute"
	case PosixOrder:
		return "posix"
	case ReturnInOrder:
		return "in-order"
	default:
		return "unknown"
	}
}

// ArgPolicy - Indicates whether an option takes an argument.
type ArgPolicy int

// Argument policies
const (
	NoArgument ArgPolicy = iota
	RequiredArgument
	OptionalArgument
)

func (p ArgPolicy) String() string {
	switch p {
	case NoArgument:
		return "none"
	case RequiredArgument:
		return "required"
	case OptionalArgument:
		return "optional"
	default:
		return "unknown"
	}
}

// suffix returns the option string syntax that follows a character with this policy.
func (p ArgPolicy) suffix() string {
	switch p {
	case RequiredArgument:
		return ":"
	case OptionalArgument:
		return "::"
	default:
		return ""
	}
}

// OptionSpec - Parsed option string.
type OptionSpec struct {
	Mode         Mode
	SilentErrors bool
	Options      map[rune]ArgPolicy

	// ExplicitMode is set when Mode came from a leading '+' or '-'.
	// Only a default Permute mode is overridden by POSIXLY_CORRECT.
	ExplicitMode bool

	order []rune
}

/*
ParseSpec - Parses a getopt option string.

A leading '-' selects ReturnInOrder, a leading '+' PosixOrder, anything else
Permute. A ':' right after that (or at the very start) silences diagnostics.
Every following alphanumeric character registers an option: "c" takes no
argument, "c:" requires one and "c::" takes an optional one.

Characters that are not part of the grammar are skipped. A character that
was already registered keeps its first policy.
*/
func ParseSpec(optstring string) OptionSpec {
	spec := OptionSpec{Options: map[rune]ArgPolicy{}}
	rest := optstring
	switch {
	case strings.HasPrefix(rest, "-"):
		spec.Mode = ReturnInOrder
		spec.ExplicitMode = true
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		spec.Mode = PosixOrder
		spec.ExplicitMode = true
		rest = rest[1:]
	}
	if strings.HasPrefix(rest, ":") {
		spec.SilentErrors = true
		rest = rest[1:]
	}

	runes := []rune(rest)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if !isOptionChar(c) {
			Logger.Printf("ParseSpec: skipping %q", c)
			continue
		}
		policy := NoArgument
		if i+1 < len(runes) && runes[i+1] == ':' {
			policy = RequiredArgument
			i++
			if i+1 < len(runes) && runes[i+1] == ':' {
				policy = OptionalArgument
				i++
			}
		}
		if _, ok := spec.Options[c]; ok {
			Logger.Printf("ParseSpec: %q already registered", c)
			continue
		}
		spec.Options[c] = policy
		spec.order = append(spec.order, c)
	}
	return spec
}

// Lookup - Returns the policy for the given option character and whether it is registered.
func (spec OptionSpec) Lookup(c rune) (ArgPolicy, bool) {
	p, ok := spec.Options[c]
	return p, ok
}

// Chars - Returns the registered option characters in option string order.
// Specs built by hand, without ParseSpec, are returned sorted.
func (spec OptionSpec) Chars() []rune {
	if len(spec.order) == len(spec.Options) {
		return append([]rune(nil), spec.order...)
	}
	chars := make([]rune, 0, len(spec.Options))
	for c := range spec.Options {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// String - Returns the canonical option string for the spec.
func (spec OptionSpec) String() string {
	var b strings.Builder
	if spec.ExplicitMode {
		switch spec.Mode {
		case ReturnInOrder:
			b.WriteByte('-')
		case PosixOrder:
			b.WriteByte('+')
		}
	}
	if spec.SilentErrors {
		b.WriteByte(':')
	}
	for _, c := range spec.Chars() {
		b.WriteRune(c)
		b.WriteString(spec.Options[c].suffix())
	}
	return b.String()
}

func isOptionChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
