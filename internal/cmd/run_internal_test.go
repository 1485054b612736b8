// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/vfsh/internal/archive"
	"github.com/aibor/vfsh/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleParseArgsError(t *testing.T) {
	tests := []struct {
		name             string
		err              error
		expectedExitCode int
	}{
		{
			name: "help",
			err:  &ParseArgsError{msg: "flag parse", err: ErrHelp},
		},
		{
			name:             "parse args error",
			err:              &ParseArgsError{msg: "no args"},
			expectedExitCode: -1,
		},
		{
			name:             "config error",
			err:              fmt.Errorf("config: %w", ErrUnknownConfigKey),
			expectedExitCode: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedExitCode, handleParseArgsError(tt.err))
		})
	}
}

func TestHandleRunError(t *testing.T) {
	tests := []struct {
		name             string
		err              error
		expectedExitCode int
	}{
		{
			name:             "interrupted",
			err:              fmt.Errorf("session: %w", context.Canceled),
			expectedExitCode: exitCodeInterrupted,
		},
		{
			name: "archive error",
			err: &archive.Error{
				Op:  "identify",
				Err: archive.ErrUnknownFormat,
			},
			expectedExitCode: -1,
		},
		{
			name:             "any error",
			err:              assert.AnError,
			expectedExitCode: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedExitCode, handleRunError(tt.err))
		})
	}
}

func TestCheckArchive(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tree.zip")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	tests := []struct {
		name        string
		path        sys.FilePath
		expectedErr error
	}{
		{
			name: "regular file",
			path: sys.FilePath(file),
		},
		{
			name:        "missing",
			path:        sys.FilePath(filepath.Join(dir, "missing.zip")),
			expectedErr: fs.ErrNotExist,
		},
		{
			name:        "directory",
			path:        sys.FilePath(dir),
			expectedErr: sys.ErrNotRegularFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkArchive(tt.path)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr == nil {
				return
			}

			var archiveErr *archive.Error

			require.ErrorAs(t, err, &archiveErr)
			assert.Equal(t, "open", archiveErr.Op)
			assert.Equal(t, tt.path.String(), archiveErr.Path)
		})
	}
}
