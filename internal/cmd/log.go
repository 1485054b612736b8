// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"log/slog"
)

// SetupLogging sets the default [slog.Logger] for the command with the given
// name. Records are written as text to writer. Only warnings and errors are
// written unless debug is true.
func SetupLogging(writer io.Writer, name string, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler).With(slog.String("cmd", name)))
}
