// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Command mkvfs packs a directory into an archive that can be used with vfsh.
//
//	mkvfs [-debug] srcdir archive
//
// The archive format is chosen by the file extension of the archive: .zip,
// .tar, .tar.gz, .tgz or .cpio.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aibor/vfsh/internal/archive"
	"github.com/aibor/vfsh/internal/cmd"
)

var errUsage = errors.New("usage: mkvfs [-debug] srcdir archive")

func run(ctx context.Context, args []string, stderr io.Writer) error {
	flagSet := flag.NewFlagSet("mkvfs", flag.ContinueOnError)
	flagSet.SetOutput(stderr)

	debug := flagSet.Bool("debug", false, "enable debug output")

	err := flagSet.Parse(args)
	if err != nil {
		return fmt.Errorf("flag parse: %w", err)
	}

	cmd.SetupLogging(stderr, "mkvfs", *debug)

	if flagSet.NArg() != 2 {
		return errUsage
	}

	srcDir, archivePath := flagSet.Arg(0), flagSet.Arg(1)

	format, err := archive.FormatFor(archivePath)
	if err != nil {
		return err
	}

	file, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}

	err = archive.Pack(ctx, srcDir, file, format)
	if err != nil {
		_ = file.Close()
		_ = os.Remove(archivePath)

		return err
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	slog.Debug("Archive written",
		slog.String("path", archivePath),
		slog.String("format", format.String()))

	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)

	err := run(ctx, os.Args[1:], os.Stderr)

	cancel()

	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
