// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned if the archive format is not supported.
	ErrUnknownFormat = errors.New("unknown archive format")

	// ErrUnsafePath is returned if an entry would be extracted outside of the
	// target directory.
	ErrUnsafePath = errors.New("path escapes target directory")

	// ErrNotDir is returned if the source of [Pack] is not a directory.
	ErrNotDir = errors.New("not a directory")

	// ErrNotRegular is returned if a file written as regular file is not.
	ErrNotRegular = errors.New("not a regular file")
)

// Error wraps errors that occur while handling an archive.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("archive %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Is(other error) bool {
	_, ok := other.(*Error)
	return ok
}

func (e *Error) Unwrap() error {
	return e.Err
}
