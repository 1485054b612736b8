// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aibor/vfsh/internal/archive"
)

// MustPackArchive creates an archive with the given entries in a temporary
// directory and returns its path. The format is chosen by the name's
// extension. Entries ending with "/" are created as directories, all others
// as empty files.
func MustPackArchive(tb testing.TB, name string, entries ...string) string {
	tb.Helper()

	srcDir := tb.TempDir()

	for _, entry := range entries {
		path := filepath.Join(srcDir, filepath.FromSlash(entry))

		var err error
		if strings.HasSuffix(entry, "/") {
			err = os.MkdirAll(path, 0o755)
		} else if err = os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			err = os.WriteFile(path, nil, 0o600)
		}

		if err != nil {
			tb.Fatalf("failed to create entry %s: %v", entry, err)
		}
	}

	format, err := archive.FormatFor(name)
	if err != nil {
		tb.Fatalf("failed to get format for %s: %v", name, err)
	}

	path := filepath.Join(tb.TempDir(), name)

	file, err := os.Create(path)
	if err != nil {
		tb.Fatalf("failed to create archive %s: %v", path, err)
	}
	defer file.Close()

	err = archive.Pack(context.Background(), srcDir, file, format)
	if err != nil {
		tb.Fatalf("failed to pack archive %s: %v", path, err)
	}

	return path
}
