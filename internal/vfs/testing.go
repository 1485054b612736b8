// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"context"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// MustMemFS returns an in-memory filesystem with the given entries. Entries
// ending with "/" are created as directories, all others as files along with
// their parent directories.
func MustMemFS(tb testing.TB, entries ...string) billy.Filesystem {
	tb.Helper()

	fsys := memfs.New()

	err := fsys.MkdirAll("/", 0o755)
	if err != nil {
		tb.Fatalf("failed to create root: %v", err)
	}

	for _, entry := range entries {
		name := "/" + strings.Trim(entry, "/")

		if strings.HasSuffix(entry, "/") {
			err = fsys.MkdirAll(name, 0o755)
		} else {
			err = util.WriteFile(fsys, name, []byte(entry), 0o644)
		}

		if err != nil {
			tb.Fatalf("failed to create %s: %v", entry, err)
		}
	}

	return fsys
}

// MustBuild builds a tree from an in-memory filesystem with the given
// entries. See [MustMemFS] for the format of entries.
func MustBuild(tb testing.TB, entries ...string) *Node {
	tb.Helper()

	tree, err := Build(context.Background(), MustMemFS(tb, entries...), "/")
	if err != nil {
		tb.Fatalf("failed to build tree: %v", err)
	}

	return tree
}
