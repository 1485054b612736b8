// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilePath is an absolute path of a file on the host.
//
// It implements [encoding.TextUnmarshaler], so it can be used with
// [flag.TextVar]. Relative paths are made absolute on unmarshalling.
type FilePath string

func (f FilePath) String() string {
	return string(f)
}

func (f FilePath) MarshalText() ([]byte, error) {
	return []byte(f), nil
}

func (f *FilePath) UnmarshalText(text []byte) error {
	var err error
	*f, err = AbsoluteFilePath(string(text))

	return err
}

// Check returns an error if the file does not exist or is not a regular file.
func (f FilePath) Check() error {
	stat, err := os.Stat(string(f))
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}

	if !stat.Mode().IsRegular() {
		return ErrNotRegularFile
	}

	return nil
}

// AbsoluteFilePath returns the absolute path as resolved by [filepath.Abs].
//
// It returns [ErrEmptyPath] if the given path is empty.
func AbsoluteFilePath(path string) (FilePath, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	return FilePath(path), nil
}
