// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package config - getopt command settings stored in a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// EnvPosixlyCorrect is the environment variable that forces POSIX order scanning.
const EnvPosixlyCorrect = "POSIXLY_CORRECT"

// Config captures the user editable settings.
type Config struct {
	Scan   ScanBlock   `toml:"scan"`
	Output OutputBlock `toml:"output"`
}

// ScanBlock governs the scanner session.
type ScanBlock struct {
	PosixlyCorrect bool  `toml:"posixly_correct"`
	ReportErrors   *bool `toml:"report_errors"`
}

// OutputBlock governs how the getopt command prints its results.
type OutputBlock struct {
	Shell string `toml:"shell"`
	Color string `toml:"color"`
}

// Shells supported for quoting, see Validate.
var Shells = []string{"sh", "bash", "mksh"}

// Color modes.
var ColorModes = []string{"auto", "always", "never"}

var (
	// ErrInvalidShell indicates the output shell is not recognized.
	ErrInvalidShell = errors.New("config.output.shell must be sh, bash, or mksh")
	// ErrInvalidColor indicates the color mode is not recognized.
	ErrInvalidColor = errors.New("config.output.color must be auto, always, or never")
)

// ReportErrorsEnabled reports whether diagnostics should be written.
func (s ScanBlock) ReportErrorsEnabled() bool {
	if s.ReportErrors == nil {
		return true
	}
	return *s.ReportErrors
}

func (o *OutputBlock) applyDefaults() {
	if o.Shell == "" {
		o.Shell = "sh"
	} else {
		o.Shell = strings.ToLower(o.Shell)
	}
	if o.Color == "" {
		o.Color = "auto"
	} else {
		o.Color = strings.ToLower(o.Color)
	}
}

// Validate ensures the output block names a known shell and color mode.
func (o OutputBlock) Validate() error {
	if !contains(Shells, o.Shell) {
		return ErrInvalidShell
	}
	if !contains(ColorModes, o.Color) {
		return ErrInvalidColor
	}
	return nil
}

// Default returns the baseline configuration.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	c.Output.applyDefaults()
}

// Validate ensures the configuration can guide the command's behavior.
func (c Config) Validate() error {
	return c.Output.Validate()
}

// ApplyEnv overrides settings from the environment.
// POSIXLY_CORRECT enables posix order when set to anything other than a false boolean.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	v, ok := lookup(EnvPosixlyCorrect)
	if !ok {
		return
	}
	if b, err := strconv.ParseBool(v); err == nil && !b {
		return
	}
	c.Scan.PosixlyCorrect = true
}

// DefaultPath returns $XDG_CONFIG_HOME/go-getopt/config.toml, falling back to
// the user config directory.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "go-getopt", "config.toml"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "go-getopt", "config.toml"), nil
}

// Load reads configuration from disk. Missing files return a default config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes configuration to disk, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
