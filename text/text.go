// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// They are exported variables so programs can override them, for example to
// translate the diagnostics.
package text

// ErrorInvalidOption holds the diagnostic for an unregistered short option.
// Placeholders: program name, option character.
var ErrorInvalidOption = "%s: invalid option -- '%c'"

// ErrorMissingArgument holds the diagnostic for a short option without its required argument.
// Placeholders: program name, option character.
var ErrorMissingArgument = "%s: option requires an argument -- '%c'"

// ErrorUnrecognizedLongOption holds the diagnostic for an unknown long option.
// Placeholders: program name, option name.
var ErrorUnrecognizedLongOption = "%s: unrecognized option '--%s'"

// ErrorLongMissingArgument holds the diagnostic for a long option without its required argument.
// Placeholders: program name, option name.
var ErrorLongMissingArgument = "%s: option '--%s' requires an argument"

// ErrorLongDisallowsArgument holds the diagnostic for `--name=value` on a long option that takes no argument.
// Placeholders: program name, option name.
var ErrorLongDisallowsArgument = "%s: option '--%s' doesn't allow an argument"

// ErrorInvalidLongOptionList holds the error for a malformed long option list entry.
var ErrorInvalidLongOptionList = "invalid long option list entry '%s'"

// ErrorMissingOptionString is returned by the getopt command when no option string was given.
var ErrorMissingOptionString = "missing optstring argument"

// ErrorUnknownShell is returned by the getopt command for an unsupported --shell value.
var ErrorUnknownShell = "unknown shell '%s', expected one of: %s"

// MessageOnInterrupt is printed when the interactive session receives an interrupt signal.
var MessageOnInterrupt = "interrupt, bye"

// MessageReplHelp is printed by the interactive session.
var MessageReplHelp = `Type arguments to scan them against the current option string.
  :spec OPTSTRING   switch option string
  :long LIST        switch long option list
  :quit             exit`
