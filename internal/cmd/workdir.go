// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const (
	// workdirMarker identifies a directory as vfsh working directory. Only
	// marked or empty directories are used.
	workdirMarker = ".vfsh-workdir"

	// workdirTree is the sub directory the archive is extracted into.
	workdirTree = "tree"

	workdirMode = 0o755
)

var (
	ErrInvalidWorkdir = errors.New("invalid working directory")
	ErrWorkdirInUse   = errors.New("not empty and not a vfsh working directory")
)

// validateWorkdir rejects paths that must never be used as working
// directory.
func validateWorkdir(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidWorkdir)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWorkdir, err)
	}

	if abs == string(filepath.Separator) {
		return fmt.Errorf("%w: %s is the file system root", ErrInvalidWorkdir, path)
	}

	return nil
}

// prepareWorkdir marks the directory at path as working directory and
// returns the filesystem of its tree directory, which the archive is
// extracted into.
//
// The directory is created if it does not exist. An existing directory must
// be empty or carry the marker of a previous run. Otherwise
// [ErrWorkdirInUse] is returned and nothing is modified.
func prepareWorkdir(path string) (billy.Filesystem, error) {
	err := validateWorkdir(path)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read working directory: %w", err)
	}

	if len(entries) > 0 && !slices.ContainsFunc(entries, isMarker) {
		return nil, fmt.Errorf("%s: %w", path, ErrWorkdirInUse)
	}

	err = os.MkdirAll(abs, workdirMode)
	if err != nil {
		return nil, fmt.Errorf("create working directory: %w", err)
	}

	workdir := osfs.New(abs, osfs.WithBoundOS())

	err = util.WriteFile(workdir, workdirMarker, nil, 0o644)
	if err != nil {
		return nil, fmt.Errorf("write marker: %w", err)
	}

	tree, err := workdir.Chroot(workdirTree)
	if err != nil {
		return nil, fmt.Errorf("tree directory: %w", err)
	}

	slog.Debug("Prepared working directory", slog.String("path", abs))

	return tree, nil
}

func isMarker(entry fs.DirEntry) bool {
	return entry.Name() == workdirMarker && entry.Type().IsRegular()
}

func removeWorkdir(path string) {
	slog.Debug("Removing working directory", slog.String("path", path))

	err := os.RemoveAll(path)
	if err != nil {
		slog.Error(
			"Failed to remove working directory",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
}
