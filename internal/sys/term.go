// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"golang.org/x/sys/unix"
)

// FileDescriptor is implemented by [os.File].
type FileDescriptor interface {
	Fd() uintptr
}

// IsTerminal returns true if the given value is a file whose descriptor
// refers to a terminal. Anything else, like pipes, regular files or readers
// that are not backed by a file descriptor, is not a terminal.
func IsTerminal(v any) bool {
	file, ok := v.(FileDescriptor)
	if !ok {
		return false
	}

	_, err := unix.IoctlGetTermios(int(file.Fd()), unix.TCGETS) //nolint:gosec
	return err == nil
}
