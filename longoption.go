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
	"sort"
	"strings"

	"github.com/DavidGamba/go-getopt/text"
)

// LongMatcher - Resolves "--name" tokens.
//
// MatchLong is called with the token already consumed and option set to the
// text after the two dashes. It may consume a following argument with
// Scanner.TakeArg. Error results it returns are reported through the
// scanner's Diagnostics.
type LongMatcher interface {
	MatchLong(s *Scanner, option string) Result
}

// LongMatcherFunc - Adapter to use an ordinary function as a LongMatcher.
type LongMatcherFunc func(s *Scanner, option string) Result

// MatchLong - Calls f(s, option).
func (f LongMatcherFunc) MatchLong(s *Scanner, option string) Result {
	return f(s, option)
}

// LongOptions - Exact match long option table.
//
// Names are matched in full, abbreviations are not expanded.
// An argument is given as "--name=value" or, for RequiredArgument, as the following token.
type LongOptions map[string]ArgPolicy

/*
ParseLongOptions - Parses a comma separated long option list.

Each entry follows the short option syntax: "name", "name:" (required
argument) or "name::" (optional argument). Leading dashes are allowed.
For example:

	verbose,file:,color::
*/
func ParseLongOptions(list string) (LongOptions, error) {
	l := LongOptions{}
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name := strings.TrimLeft(strings.TrimRight(entry, ":"), "-")
		policy := NoArgument
		switch len(strings.TrimRight(entry, ":")) {
		case len(entry) - 1:
			policy = RequiredArgument
		case len(entry) - 2:
			policy = OptionalArgument
		}
		if name == "" || strings.ContainsAny(name, "=: ") || len(entry)-len(strings.TrimRight(entry, ":")) > 2 {
			return nil, fmt.Errorf(text.ErrorInvalidLongOptionList, entry)
		}
		l[name] = policy
	}
	return l, nil
}

// MatchLong - Implements LongMatcher.
func (l LongOptions) MatchLong(s *Scanner, option string) Result {
	name, value, hasValue := strings.Cut(option, "=")
	policy, ok := l[name]
	if !ok {
		return Result{Kind: KindUnrecognized, Name: name}
	}
	r := Result{Kind: KindOption, Name: name}
	switch policy {
	case NoArgument:
		if hasValue {
			return Result{Kind: KindUnrecognized, Name: name, Arg: value, HasArg: true}
		}
	case RequiredArgument:
		if !hasValue {
			value, hasValue = s.TakeArg()
			if !hasValue {
				return Result{Kind: KindMissingArgument, Name: name}
			}
		}
		r.Arg, r.HasArg = value, true
	case OptionalArgument:
		r.Arg, r.HasArg = value, hasValue
	}
	return r
}

// String - Returns the table in ParseLongOptions syntax, sorted by name.
func (l LongOptions) String() string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		names[i] = name + l[name].suffix()
	}
	return strings.Join(names, ",")
}
