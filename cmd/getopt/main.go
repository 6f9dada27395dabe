// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/DavidGamba/go-getopt"
	"github.com/DavidGamba/go-getopt/internal/cli"
)

func main() {
	os.Exit(program())
}

// program - Exit status 1 means the parameters had errors, already reported
// as diagnostics. Any other failure is 2.
func program() int {
	err := cli.Execute()
	if err == nil {
		return 0
	}
	if errors.Is(err, getopt.ErrorParsing) {
		return 1
	}
	fmt.Fprintf(os.Stderr, "getopt: %s\n", err)
	return 2
}
