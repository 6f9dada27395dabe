// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package getopt - POSIX getopt option scanner with the GNU extensions.

It scans an argument vector one result at a time against a classic option
string, the same way getopt(3) does, with its state kept in an explicit
Scanner instead of process globals.

# Usage

	s := getopt.New(os.Args, "ab:c::")
	for {
		r := s.Next()
		if r.Kind == getopt.KindDone {
			break
		}
		switch r.Kind {
		case getopt.KindOption:
			// r.Char, r.Arg, r.HasArg
		case getopt.KindUnrecognized, getopt.KindMissingArgument, getopt.KindAmbiguousColon:
			// A diagnostic was already written unless silenced, keep going or bail.
		}
	}
	operands := s.Remaining()

# Option string

	ab      -a and -b take no argument, they can be clustered as -ab
	p:      -p requires an argument: -pfoo or -p foo
	q::     -q takes an optional argument, only in the same token: -qfoo
	:ab     leading ':' silences diagnostics
	+ab     stop at the first operand (POSIX order)
	-ab     return operands in order as KindNonOption results

Without a '+' or '-' prefix the argument vector is permuted in place so all
options end up before the operands, unless Scanner.PosixlyCorrect is set.

# Terminator

"--" ends option processing. It is never returned and Optind is left pointing
at the first operand.

# Sessions

Scanner.Optind works like optind. Setting it to StartIndex (0), calling Reset,
or rewinding it starts a new session that re-reads the option string and
PosixlyCorrect. Advancing it by hand skips arguments, for example a
subcommand name.

# Long options

Tokens starting with "--" are passed to Scanner.LongOptions when set.
LongOptions is a minimal exact-match table; any LongMatcher can be used.
*/
package getopt
