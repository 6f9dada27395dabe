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
	"os"

	"github.com/DavidGamba/go-getopt/text"
)

// Writer - Default destination for diagnostics when a Scanner has none set.
var Writer io.Writer = os.Stderr

// Diagnostics - Receives one human readable line per reported error result.
type Diagnostics interface {
	Report(r Result, line string)
}

// WriterDiagnostics - Diagnostics that print each line to W.
type WriterDiagnostics struct {
	W io.Writer
}

// Report - Writes line followed by a newline.
func (d WriterDiagnostics) Report(r Result, line string) {
	fmt.Fprintln(d.W, line)
}

// DiagnosticsFunc - Adapter to use an ordinary function as Diagnostics.
type DiagnosticsFunc func(r Result, line string)

// Report - Calls f(r, line).
func (f DiagnosticsFunc) Report(r Result, line string) {
	f(r, line)
}

// FormatDiagnostic - Returns the diagnostic line for an error result, or an
// empty string for any other kind.
func FormatDiagnostic(program string, r Result) string {
	if r.Name != "" {
		switch r.Kind {
		case KindUnrecognized:
			if r.HasArg {
				return fmt.Sprintf(text.ErrorLongDisallowsArgument, program, r.Name)
			}
			return fmt.Sprintf(text.ErrorUnrecognizedLongOption, program, r.Name)
		case KindMissingArgument:
			return fmt.Sprintf(text.ErrorLongMissingArgument, program, r.Name)
		}
		return ""
	}
	switch r.Kind {
	case KindUnrecognized, KindAmbiguousColon:
		return fmt.Sprintf(text.ErrorInvalidOption, program, r.Char)
	case KindMissingArgument:
		return fmt.Sprintf(text.ErrorMissingArgument, program, r.Char)
	}
	return ""
}
