// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package vfs provides the read-only virtual file tree of a vfsh session.
//
// The tree is built once with [Build] from a directory of a
// [github.com/go-git/go-billy/v5.Filesystem], usually the directory an archive
// has been extracted into. It consists of directory and file [Node]s only and
// is never modified once built. A [Navigator] keeps track of the current
// [Path] within the tree. Paths are pure segment lists and never refer to the
// host file system.
package vfs
