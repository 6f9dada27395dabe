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
	"strings"

	"github.com/DavidGamba/go-getopt"
	"github.com/DavidGamba/go-getopt/internal/config"
	"github.com/DavidGamba/go-getopt/text"
	"mvdan.cc/sh/v3/syntax"
)

var shellLangs = map[string]syntax.LangVariant{
	"sh":   syntax.LangPOSIX,
	"bash": syntax.LangBash,
	"mksh": syntax.LangMirBSDKorn,
}

// quoter - Turns one word into shell syntax.
type quoter func(string) (string, error)

func newQuoter(shell string, unquoted bool) (quoter, error) {
	if unquoted {
		return func(s string) (string, error) { return s, nil }, nil
	}
	lang, ok := shellLangs[shell]
	if !ok {
		return nil, fmt.Errorf(text.ErrorUnknownShell, shell, strings.Join(config.Shells, ", "))
	}
	return func(s string) (string, error) {
		return syntax.Quote(s, lang)
	}, nil
}

// normalize - Returns the parameters the way getopt(1) prints them: every
// option with its argument as a separate word, then "--" and the operands.
// Options taking an optional argument always get one, empty when absent.
// Error results are left out.
func (s *session) normalize(sc *getopt.Scanner, results []getopt.Result, q quoter) (string, error) {
	words := []string{}
	add := func(w string, quote bool) error {
		if quote {
			var err error
			w, err = q(w)
			if err != nil {
				return err
			}
		}
		words = append(words, w)
		return nil
	}

	for _, r := range results {
		switch r.Kind {
		case getopt.KindOption:
			_ = add(r.Option(), false)
			if s.policy(sc, r) != getopt.NoArgument {
				if err := add(r.Arg, true); err != nil {
					return "", err
				}
			}
		case getopt.KindNonOption:
			if err := add(r.Arg, true); err != nil {
				return "", err
			}
		}
	}
	_ = add("--", false)
	for _, operand := range sc.Remaining() {
		if err := add(operand, true); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	for _, w := range words {
		b.WriteByte(' ')
		b.WriteString(w)
	}
	return b.String(), nil
}
