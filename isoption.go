// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

// tokenKind - Classification of a whole argument before cluster processing.
type tokenKind int

const (
	tokenNonOption tokenKind = iota
	tokenTerminator
	tokenLong
	tokenCluster
)

/*
classify - Check if the given argument is an option.

Especial cases:

  - The lone dash "-" is an operand, conventionally stdin.
  - "--" terminates option processing. It is never returned to the caller.
  - "--name" is a long option candidate, only meaningful when a LongMatcher is set.

Anything else starting with '-' is a cluster of short options.
*/
func classify(s string) tokenKind {
	switch {
	case s == "--":
		return tokenTerminator
	case len(s) < 2 || s[0] != '-':
		return tokenNonOption
	case s[1] == '-':
		return tokenLong
	default:
		return tokenCluster
	}
}

func isNonOption(s string) bool {
	return classify(s) == tokenNonOption
}
