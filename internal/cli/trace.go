// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-getopt"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"
)

func newTraceCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace [flags] [--] OPTSTRING PARAMETERS...",
		Short: "Print every scan result with the resulting optind",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}
			return writeTrace(cmd.OutOrStdout(), s.scanner(cmd.ErrOrStderr()))
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

var traceHeader = []string{"KIND", "OPTION", "ARG", "OPTIND"}

// writeTrace - Runs the session and prints one aligned row per result,
// KindDone included, followed by the final argument vector and the operands.
// Returns an error wrapping getopt.ErrorParsing when any result was an error.
func writeTrace(w io.Writer, sc *getopt.Scanner) error {
	rows := [][]string{traceHeader}
	var first error
	for {
		r := sc.Next()
		arg := ""
		if r.HasArg {
			arg = strconv.Quote(r.Arg)
		}
		rows = append(rows, []string{r.Kind.String(), r.Option(), arg, strconv.Itoa(sc.Optind)})
		if r.IsError() && first == nil {
			first = r.Err()
		}
		if r.Kind == getopt.KindDone {
			break
		}
	}
	writeTable(w, rows)

	fmt.Fprintf(w, "argv: %s\n", joinQuoted(sc.Args()))
	fmt.Fprintf(w, "operands: %s\n", joinQuoted(sc.Remaining()))
	if first != nil {
		return fmt.Errorf("%w: %w", getopt.ErrorParsing, first)
	}
	return nil
}

func writeTable(w io.Writer, rows [][]string) {
	widths := make([]int, len(traceHeader))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

func joinQuoted(words []string) string {
	quoted := make([]string, len(words))
	for i, word := range words {
		q, err := syntax.Quote(word, syntax.LangBash)
		if err != nil {
			q = strconv.Quote(word)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " ")
}
