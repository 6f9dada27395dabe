// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cli

import (
	"io"

	"github.com/DavidGamba/go-getopt"
	"github.com/fatih/color"
)

// colorDiagnostics - Writes scanner diagnostics, in red when enabled.
type colorDiagnostics struct {
	w     io.Writer
	color *color.Color
}

// newDiagnostics - mode is one of auto, always or never.
// auto colors only when w is a terminal and NO_COLOR is not set.
func newDiagnostics(w io.Writer, mode string) colorDiagnostics {
	c := color.New(color.FgRed)
	switch mode {
	case "always":
		c.EnableColor()
	case "never":
		c.DisableColor()
	default:
		if isTerminal(w) && !color.NoColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return colorDiagnostics{w: w, color: c}
}

func (d colorDiagnostics) Report(r getopt.Result, line string) {
	Logger.Printf("diagnostic for %s", r)
	d.color.Fprintln(d.w, line)
}
