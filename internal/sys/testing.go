// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "testing"

// MustAbsoluteFilePath returns the [FilePath] for the given path or fails the
// test.
func MustAbsoluteFilePath(tb testing.TB, path string) FilePath {
	tb.Helper()

	abs, err := AbsoluteFilePath(path)
	if err != nil {
		tb.Fatalf("failed to get absolute path %s: %v", path, err)
	}

	return abs
}
