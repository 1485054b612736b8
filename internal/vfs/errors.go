// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNodeNotExist is returned if a node that is looked up does not exist.
	ErrNodeNotExist = fs.ErrNotExist

	// ErrNodeExist is returned if a node is added with a name that is taken.
	ErrNodeExist = fs.ErrExist

	// ErrNodeNotDir is returned if a node is used as directory but is not.
	ErrNodeNotDir = errors.New("not a directory")

	// ErrNoSuchDirectory is returned by [Navigator.ChangeDir] if the target
	// can not be changed into.
	ErrNoSuchDirectory = errors.New("no such directory")

	// ErrNotDirectory is returned by [Navigator.ChangeDir] if the target
	// exists but is a file. It matches [ErrNoSuchDirectory] as well.
	ErrNotDirectory = fmt.Errorf("%w: target is a file", ErrNoSuchDirectory)
)

// PathError records an error and the operation and path that caused it.
type PathError = fs.PathError
