// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aibor/vfsh/internal/archive"
	"github.com/aibor/vfsh/internal/history"
	"github.com/aibor/vfsh/internal/shell"
	"github.com/aibor/vfsh/internal/sys"
	"github.com/aibor/vfsh/internal/vfs"
	"github.com/go-git/go-billy/v5"
)

// Exit code used if the session is terminated by a signal.
const exitCodeInterrupted = 130

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// checkArchive reports a missing or unusable archive before the working
// directory is touched.
func checkArchive(path sys.FilePath) error {
	err := path.Check()
	if err != nil {
		return &archive.Error{Op: "open", Path: path.String(), Err: err}
	}

	return nil
}

func newSession(ctx context.Context, flags *flags, fsys billy.Filesystem) (*shell.Session, error) {
	tree, err := vfs.Build(ctx, fsys, "/")
	if err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}

	//nolint:gosec // Limited by historyLimitMax.
	hist := history.New(int(flags.HistoryLimit))

	return shell.NewSession(flags.Username, flags.Hostname, tree, hist), nil
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	err := checkArchive(flags.ArchivePath)
	if err != nil {
		return err
	}

	target, err := prepareWorkdir(flags.Workdir)
	if err != nil {
		return err
	}

	err = archive.Extract(ctx, flags.ArchivePath.String(), target)
	if err != nil {
		return fmt.Errorf("load archive: %w", err)
	}

	if flags.KeepWorkdir {
		defer slog.Info("Preserving working directory",
			slog.String("path", flags.Workdir))
	} else {
		defer removeWorkdir(flags.Workdir)
	}

	session, err := newSession(ctx, flags, target)
	if err != nil {
		return err
	}

	return newREPL(session, cfg, flags.Color).run(ctx, cfg.Stdin)
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	if errors.Is(err, context.Canceled) {
		slog.Debug("Session interrupted")
		return exitCodeInterrupted
	}

	slog.Error(err.Error())

	return -1
}

// Run is the main entry point for the CLI command. The args must not contain
// the program name.
func Run(ctx context.Context, args []string, cfg IO) int {
	SetupLogging(cfg.Stderr, name, false)

	flags, err := parseArgs(MergedArgs(args), cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err)
	}

	SetupLogging(cfg.Stderr, name, flags.Debug)

	err = run(ctx, flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
