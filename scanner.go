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
	"io"
	"log"
	"unicode/utf8"

	"github.com/DavidGamba/go-getopt/internal/argvector"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// StartIndex - Optind sentinel that starts a new scan session.
const StartIndex = 0

// Scanner - Scan session over an argument vector.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	// Optind is the index of the next argument to process.
	// Setting it to StartIndex, or rewinding it, starts a new session.
	Optind int

	// ReportErrors enables diagnostics. Defaults to true.
	ReportErrors bool

	// PosixlyCorrect forces PosixOrder when the option string has no '+' or '-' prefix.
	// Read once at the start of each session.
	PosixlyCorrect bool

	// Program is the name used in diagnostics. Defaults to args[0].
	Program string

	// Diagnostics receives reported errors. Defaults to WriterDiagnostics{Writer}.
	Diagnostics Diagnostics

	// LongOptions resolves "--name" tokens. When nil they are scanned as short clusters.
	LongOptions LongMatcher

	args      *argvector.Vector
	optstring string
	spec      OptionSpec
	mode      Mode

	initialized bool
	done        bool
	mark        int // Optind as left by the last call

	nextchar       string // unscanned remainder of the current cluster
	firstNonopt    int
	lastNonopt     int
	seenDoubleDash bool
}

// New - Returns a Scanner over args, where args[0] is the program name.
//
// In Permute mode args is reordered in place.
func New(args []string, optstring string) *Scanner {
	return &Scanner{
		Optind:       1,
		ReportErrors: true,
		args:         argvector.New(args),
		optstring:    optstring,
	}
}

// Args - Returns the argument vector, including any permutation done so far.
func (s *Scanner) Args() []string {
	return s.args.Slice()
}

// Remaining - Returns the arguments from Optind on.
// After KindDone these are the operands left for the caller.
func (s *Scanner) Remaining() []string {
	return s.args.Remaining(s.Optind)
}

// Spec - Returns the parsed option string of the current session.
func (s *Scanner) Spec() OptionSpec {
	if !s.initialized {
		return ParseSpec(s.optstring)
	}
	return s.spec
}

// Mode - Returns the effective mode of the current session, after PosixlyCorrect is applied.
func (s *Scanner) Mode() Mode {
	if !s.initialized {
		return s.effectiveMode(ParseSpec(s.optstring))
	}
	return s.mode
}

// Reset - Starts a new session on the next call to Next.
func (s *Scanner) Reset() {
	s.Optind = StartIndex
}

// TakeArg - Consumes the argument at Optind.
// Meant for LongMatcher implementations that need a separate argument.
func (s *Scanner) TakeArg() (string, bool) {
	if s.Optind >= s.args.Len() {
		return "", false
	}
	arg := s.args.At(s.Optind)
	s.Optind++
	return arg, true
}

// Next - Consumes zero or more arguments and returns one Result.
// KindDone is returned, repeatedly, once the session is exhausted.
func (s *Scanner) Next() Result {
	switch {
	case !s.initialized, s.Optind <= StartIndex, s.Optind < s.mark:
		s.initialize()
	case s.Optind > s.mark:
		// The caller skipped arguments by hand.
		s.nextchar = ""
		s.done = false
	}
	if s.done {
		return Result{Kind: KindDone}
	}
	r := s.next()
	if r.IsError() {
		s.report(r)
	}
	if r.Kind == KindDone {
		s.done = true
	}
	s.mark = s.Optind
	Logger.Printf("Next: %s, optind %d", r, s.Optind)
	return r
}

// All - Runs the session to exhaustion and returns every result except the final KindDone.
func (s *Scanner) All() []Result {
	results := []Result{}
	for {
		r := s.Next()
		if r.Kind == KindDone {
			return results
		}
		results = append(results, r)
	}
}

// Parse - Runs the session to exhaustion like All.
// When any result is an error the returned error wraps ErrorParsing and the first error result.
func (s *Scanner) Parse() ([]Result, error) {
	results := s.All()
	for _, r := range results {
		if r.IsError() {
			return results, fmt.Errorf("%w: %w", ErrorParsing, r.Err())
		}
	}
	return results, nil
}

func (s *Scanner) initialize() {
	if s.Optind <= StartIndex {
		s.Optind = 1
	}
	s.spec = ParseSpec(s.optstring)
	s.mode = s.effectiveMode(s.spec)
	s.nextchar = ""
	s.firstNonopt = s.Optind
	s.lastNonopt = s.Optind
	s.seenDoubleDash = false
	s.done = false
	s.initialized = true
	Logger.Printf("initialize: optind %d, mode %s, spec %q", s.Optind, s.mode, s.spec)
}

func (s *Scanner) effectiveMode(spec OptionSpec) Mode {
	if !spec.ExplicitMode && s.PosixlyCorrect {
		return PosixOrder
	}
	return spec.Mode
}

func (s *Scanner) next() Result {
	if s.nextchar == "" {
		if r, ok := s.advance(); !ok {
			return r
		}
	}
	return s.scanCluster()
}

// advance - Moves to the next option token, permuting and handling "--" on the way.
// It returns false together with the Result to hand back when no cluster scan is needed.
func (s *Scanner) advance() (Result, bool) {
	argc := s.args.Len()
	if s.seenDoubleDash {
		return Result{Kind: KindDone}, false
	}
	if s.Optind > argc {
		s.Optind = argc
	}
	if s.lastNonopt > s.Optind {
		s.lastNonopt = s.Optind
	}
	if s.firstNonopt > s.Optind {
		s.firstNonopt = s.Optind
	}

	if s.mode == Permute {
		// Move the operands skipped so far past the options processed since.
		if s.firstNonopt != s.lastNonopt && s.lastNonopt != s.Optind {
			s.exchange()
		} else if s.lastNonopt != s.Optind {
			s.firstNonopt = s.Optind
		}
		for s.Optind < argc && isNonOption(s.args.At(s.Optind)) {
			s.Optind++
		}
		s.lastNonopt = s.Optind
	}

	if s.Optind != argc && classify(s.args.At(s.Optind)) == tokenTerminator {
		s.Optind++
		s.seenDoubleDash = true
		// "--" is relocated together with the options, ahead of the skipped operands.
		if s.firstNonopt != s.lastNonopt && s.lastNonopt != s.Optind {
			s.exchange()
		} else if s.firstNonopt == s.lastNonopt {
			s.firstNonopt = s.Optind
		}
		s.lastNonopt = argc
		s.Optind = argc
	}

	if s.Optind == argc {
		if s.firstNonopt != s.lastNonopt {
			s.Optind = s.firstNonopt
		}
		return Result{Kind: KindDone}, false
	}

	arg := s.args.At(s.Optind)
	switch classify(arg) {
	case tokenNonOption:
		if s.mode == PosixOrder {
			return Result{Kind: KindDone}, false
		}
		s.Optind++
		return Result{Kind: KindNonOption, Arg: arg, HasArg: true}, false
	case tokenLong:
		if s.LongOptions != nil {
			s.Optind++
			return s.LongOptions.MatchLong(s, arg[2:]), false
		}
	}
	s.nextchar = arg[1:]
	return Result{}, true
}

// exchange - Rotates [firstNonopt, lastNonopt) past [lastNonopt, Optind).
func (s *Scanner) exchange() {
	Logger.Printf("exchange: operands [%d, %d) past options [%d, %d)", s.firstNonopt, s.lastNonopt, s.lastNonopt, s.Optind)
	s.args.Rotate(s.firstNonopt, s.lastNonopt, s.Optind)
	s.firstNonopt += s.Optind - s.lastNonopt
	s.lastNonopt = s.Optind
}

func (s *Scanner) scanCluster() Result {
	c, size := utf8.DecodeRuneInString(s.nextchar)
	s.nextchar = s.nextchar[size:]
	if s.nextchar == "" {
		s.Optind++
	}

	if c == ':' && s.spec.SilentErrors {
		return Result{Kind: KindAmbiguousColon, Char: c}
	}
	policy, ok := s.spec.Lookup(c)
	if !ok {
		return Result{Kind: KindUnrecognized, Char: c}
	}

	r := Result{Kind: KindOption, Char: c}
	switch policy {
	case OptionalArgument:
		if s.nextchar != "" {
			r.Arg, r.HasArg = s.nextchar, true
			s.Optind++
		}
		s.nextchar = ""
	case RequiredArgument:
		switch {
		case s.nextchar != "":
			r.Arg, r.HasArg = s.nextchar, true
			s.Optind++
		case s.Optind >= s.args.Len():
			r = Result{Kind: KindMissingArgument, Char: c}
		default:
			r.Arg, r.HasArg = s.args.At(s.Optind), true
			s.Optind++
		}
		s.nextchar = ""
	}
	return r
}

func (s *Scanner) report(r Result) {
	if !s.ReportErrors || s.spec.SilentErrors {
		return
	}
	line := FormatDiagnostic(s.program(), r)
	if line == "" {
		return
	}
	d := s.Diagnostics
	if d == nil {
		d = WriterDiagnostics{W: Writer}
	}
	d.Report(r, line)
}

func (s *Scanner) program() string {
	if s.Program != "" {
		return s.Program
	}
	return s.args.At(0)
}
