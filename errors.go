// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"errors"
)

// ErrorParsing - Indicates that at least one scan result was an error.
// Returned by helpers that run a complete session, wrapping the first error result.
var ErrorParsing = errors.New("error parsing arguments")

// ErrUnrecognizedOption - The scanned option character or long name is not registered.
var ErrUnrecognizedOption = errors.New("unrecognized option")

// ErrMissingArgument - The scanned option requires an argument and none was available.
var ErrMissingArgument = errors.New("missing argument")

// ErrAmbiguousColon - A literal ':' was scanned under a specification that starts with ':'.
var ErrAmbiguousColon = errors.New("ambiguous colon")
