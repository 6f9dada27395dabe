// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/DavidGamba/go-getopt"
	"github.com/DavidGamba/go-getopt/text"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/shell"
)

func newReplCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl [flags] [OPTSTRING]",
		Short: "Scan lines typed at a prompt against an option string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("options") && len(args) == 0 {
				args = []string{""}
			}
			s, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}

			cfg := &readline.Config{
				Prompt:          prompt(s.optstring),
				InterruptPrompt: "^C",
				EOFPrompt:       "",
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
			}
			if in, ok := cmd.InOrStdin().(io.ReadCloser); ok {
				cfg.Stdin = in
			} else {
				cfg.Stdin = io.NopCloser(cmd.InOrStdin())
			}
			rl, err := readline.NewEx(cfg)
			if err != nil {
				return fmt.Errorf("init prompt: %w", err)
			}
			closeReader := sync.OnceValue(rl.Close)
			defer closeReader()

			ctx, cancel, done := interruptContext(cmd.ErrOrStderr())
			defer func() { cancel(); <-done }()
			go func() {
				<-ctx.Done()
				closeReader()
			}()

			r := &repl{in: rl, out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr(), sess: s}
			return r.run(ctx)
		},
	}
	return cmd
}

func prompt(optstring string) string {
	return fmt.Sprintf("getopt [%s]> ", optstring)
}

// lineReader - Source of input lines, *readline.Instance in the command.
type lineReader interface {
	Readline() (string, error)
}

type repl struct {
	in     lineReader
	out    io.Writer
	errOut io.Writer
	sess   *session
}

// run - Reads lines until EOF, :quit or ctx is done.
// An interrupt at the prompt discards the line.
func (r *repl) run(ctx context.Context) error {
	fmt.Fprintln(r.out, text.MessageReplHelp)
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := r.in.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		quit, err := r.eval(line)
		if err != nil {
			fmt.Fprintf(r.errOut, "%s\n", err)
		}
		if quit {
			return nil
		}
	}
}

// eval - Runs a single line. Returns true when the session should end.
func (r *repl) eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	Logger.Printf("eval: %q", line)

	switch cmd {
	case "":
		return false, nil
	case ":quit", ":q":
		return true, nil
	case ":help":
		fmt.Fprintln(r.out, text.MessageReplHelp)
		return false, nil
	case ":spec":
		r.sess.optstring = rest
		r.setPrompt()
		fmt.Fprintf(r.out, "spec: %s\n", getopt.ParseSpec(rest))
		return false, nil
	case ":long":
		if rest == "" {
			r.sess.long = nil
		} else {
			long, err := getopt.ParseLongOptions(rest)
			if err != nil {
				return false, err
			}
			r.sess.long = long
		}
		fmt.Fprintf(r.out, "long: %s\n", r.sess.long)
		return false, nil
	}

	words, err := shell.Fields(line, os.Getenv)
	if err != nil {
		return false, err
	}
	r.sess.params = words
	if err := writeTrace(r.out, r.sess.scanner(r.errOut)); err != nil {
		Logger.Printf("eval: %s", err)
	}
	return false, nil
}

func (r *repl) setPrompt() {
	if p, ok := r.in.(interface{ SetPrompt(string) }); ok {
		p.SetPrompt(prompt(r.sess.optstring))
	}
}
