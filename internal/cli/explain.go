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
	"sort"
	"strings"

	"github.com/DavidGamba/go-getopt"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newExplainCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain [flags] OPTSTRING",
		Short: "Describe how an option string is parsed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			md := explainMarkdown(s.scanner(cmd.ErrOrStderr()), s.long)
			fmt.Fprint(out, renderMarkdown(md, terminalWidth(out), isTerminal(out)))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// explainMarkdown - Describes the session's option string and long options.
func explainMarkdown(sc *getopt.Scanner, long getopt.LongOptions) string {
	spec := sc.Spec()
	var b strings.Builder

	fmt.Fprintf(&b, "# Option string `%s`\n\n", spec)
	mode := sc.Mode().String()
	if mode != spec.Mode.String() {
		mode += " (forced by POSIXLY_CORRECT)"
	}
	fmt.Fprintf(&b, "- Mode: %s\n", mode)
	fmt.Fprintf(&b, "- Silent errors: %t\n", spec.SilentErrors)

	b.WriteString("\n| Option | Argument |\n| --- | --- |\n")
	for _, c := range spec.Chars() {
		p, _ := spec.Lookup(c)
		fmt.Fprintf(&b, "| `-%c` | %s |\n", c, p)
	}
	names := make([]string, 0, len(long))
	for name := range long {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "| `--%s` | %s |\n", name, long[name])
	}
	return b.String()
}

// renderMarkdown - Renders md for the terminal when enabled, returns it unchanged otherwise
// or when rendering fails.
func renderMarkdown(md string, width int, enabled bool) string {
	if !enabled {
		return md
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		Logger.Printf("renderMarkdown: %s", err)
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		Logger.Printf("renderMarkdown: %s", err)
		return md
	}
	return out
}
