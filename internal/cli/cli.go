// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package cli - getopt(1) style command built on the scanner.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/DavidGamba/go-getopt"
	"github.com/DavidGamba/go-getopt/internal/config"
	"github.com/DavidGamba/go-getopt/text"
	"github.com/spf13/cobra"
)

// Logger instance set to `io.Discard` by default.
// The --debug flag sends it, and the scanner Logger, to stderr.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// ErrMissingOptionString - Neither -o nor a first parameter gave an option string.
var ErrMissingOptionString = errors.New(text.ErrorMissingOptionString)

// Execute - Runs the getopt command with os.Args.
func Execute() error {
	return newRootCommand().Execute()
}

type options struct {
	optstring   string
	longOptions []string
	name        string
	quiet       bool
	posix       bool
	configPath  string
	color       string
	debug       bool

	quietOutput bool
	shell       string
	unquoted    bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "getopt [flags] [--] OPTSTRING PARAMETERS...",
		Short: "Parse command options the way getopt(3) does",
		Long: `Parse PARAMETERS against an option string and print them in normalized form:
options first, each argument as its own quoted word, then '--' and the operands.

Without -o the first parameter is the option string.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGetopt(cmd, opts, args)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.optstring, "options", "o", "", "short option string")
	pf.StringArrayVarP(&opts.longOptions, "longoptions", "l", nil, "long options, comma separated: name, name: or name::")
	pf.StringVarP(&opts.name, "name", "n", "getopt", "program name used in diagnostics")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "do not report parse errors")
	pf.BoolVar(&opts.posix, "posix", false, "stop at the first operand, like POSIXLY_CORRECT")
	pf.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/go-getopt/config.toml)")
	pf.StringVar(&opts.color, "color", "", "color diagnostics: auto, always or never")
	pf.BoolVar(&opts.debug, "debug", false, "print debug logs to stderr")

	f := cmd.Flags()
	f.SetInterspersed(false)
	f.BoolVarP(&opts.quietOutput, "quiet-output", "Q", false, "do not print the normalized parameters")
	f.StringVarP(&opts.shell, "shell", "s", "", "quoting conventions: sh, bash or mksh")
	f.BoolVarP(&opts.unquoted, "unquoted", "u", false, "do not quote the output")

	cmd.AddCommand(
		newTraceCommand(opts),
		newExplainCommand(opts),
		newReplCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

func (o *options) setup(cmd *cobra.Command, args []string) error {
	if o.debug {
		Logger.SetOutput(cmd.ErrOrStderr())
		getopt.Logger.SetOutput(cmd.ErrOrStderr())
	}
	return nil
}

// session - Everything needed to build a Scanner for one run.
type session struct {
	cfg       config.Config
	optstring string
	long      getopt.LongOptions
	program   string
	params    []string
}

// resolve - Loads the configuration, applies the environment and the flags
// and splits args into the option string and the parameters.
func (o *options) resolve(cmd *cobra.Command, args []string) (*session, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, program: o.name}
	if cmd.Flags().Changed("options") {
		s.optstring = o.optstring
		s.params = args
	} else {
		if len(args) == 0 {
			return nil, ErrMissingOptionString
		}
		s.optstring = args[0]
		s.params = args[1:]
	}

	if len(o.longOptions) > 0 {
		s.long, err = getopt.ParseLongOptions(strings.Join(o.longOptions, ","))
		if err != nil {
			return nil, err
		}
	}
	Logger.Printf("resolve: optstring %q, long %q, params %q", s.optstring, s.long, s.params)
	return s, nil
}

func (o *options) loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := o.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			Logger.Printf("loadConfig: %s", err)
			return o.applyFlags(cmd, config.Default())
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	Logger.Printf("loadConfig: %s", path)
	return o.applyFlags(cmd, cfg)
}

func (o *options) applyFlags(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	cfg.ApplyEnv(os.LookupEnv)
	if o.posix {
		cfg.Scan.PosixlyCorrect = true
	}
	if o.quiet {
		off := false
		cfg.Scan.ReportErrors = &off
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = strings.ToLower(o.color)
	}
	if cmd.Flags().Changed("shell") {
		shell := strings.ToLower(o.shell)
		if _, ok := shellLangs[shell]; !ok {
			return config.Config{}, fmt.Errorf(text.ErrorUnknownShell, o.shell, strings.Join(config.Shells, ", "))
		}
		cfg.Output.Shell = shell
	}
	return cfg, cfg.Validate()
}

// scanner - Returns a Scanner over the session parameters.
// Diagnostics go to w.
func (s *session) scanner(w io.Writer) *getopt.Scanner {
	argv := append([]string{s.program}, s.params...)
	sc := getopt.New(argv, s.optstring)
	sc.PosixlyCorrect = s.cfg.Scan.PosixlyCorrect
	sc.ReportErrors = s.cfg.Scan.ReportErrorsEnabled()
	sc.Diagnostics = newDiagnostics(w, s.cfg.Output.Color)
	if s.long != nil {
		sc.LongOptions = s.long
	}
	return sc
}

// policy - Returns the argument policy of an option result.
func (s *session) policy(sc *getopt.Scanner, r getopt.Result) getopt.ArgPolicy {
	if r.Name != "" {
		return s.long[r.Name]
	}
	p, _ := sc.Spec().Lookup(r.Char)
	return p
}

func runGetopt(cmd *cobra.Command, opts *options, args []string) error {
	s, err := opts.resolve(cmd, args)
	if err != nil {
		return err
	}
	q, err := newQuoter(s.cfg.Output.Shell, opts.unquoted)
	if err != nil {
		return err
	}

	sc := s.scanner(cmd.ErrOrStderr())
	results, parseErr := sc.Parse()
	out, err := s.normalize(sc, results, q)
	if err != nil {
		return err
	}
	if !opts.quietOutput {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return parseErr
}
