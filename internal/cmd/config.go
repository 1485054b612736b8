// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/aibor/vfsh/internal/sys"
)

const localConfigFile = ".vfsh.toml"

// ColorMode defines when the prompt is colored.
type ColorMode string

const (
	// ColorAuto colors the prompt if the output is a terminal.
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func (c ColorMode) String() string {
	return string(c)
}

func (c ColorMode) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func (c *ColorMode) UnmarshalText(text []byte) error {
	mode := ColorMode(text)

	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		*c = mode
	default:
		return fmt.Errorf("%w: %s", ErrInvalidColorMode, text)
	}

	return nil
}

// Enabled returns if colors should be used for the given output.
func (c ColorMode) Enabled(output any) bool {
	switch c {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return sys.IsTerminal(output)
	}
}

// Config is the content of a vfsh config file.
//
// Zero values mean the value is not set and the flag default applies.
type Config struct {
	Workdir      string    `toml:"workdir"`
	HistoryLimit uint64    `toml:"history_limit"`
	Color        ColorMode `toml:"color"`
	Debug        bool      `toml:"debug"`
}

// LoadConfig reads the TOML config file at the given path.
//
// Unknown keys are rejected with [ErrUnknownConfigKey]. If the file does not
// exist, the returned error matches [fs.ErrNotExist].
func LoadConfig(path string) (Config, error) {
	var cfg Config

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: %w: %s",
			path, ErrUnknownConfigKey, undecoded[0])
	}

	return cfg, nil
}
