// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs_test

import (
	"testing"

	"github.com/aibor/vfsh/internal/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree(t *testing.T) *vfs.Node {
	t.Helper()

	return vfs.MustBuild(t,
		"test_file.txt",
		"test_dir/another_file.txt",
		"test_dir/nested/",
		"empty/",
	)
}

func TestNavigator_Fresh(t *testing.T) {
	nav := vfs.NewNavigator(testTree(t))

	assert.True(t, nav.Current().IsRoot())
	assert.Empty(t, nav.Current().String())
	assert.Equal(t, []string{"empty", "test_dir", "test_file.txt"}, nav.List())
}

func TestNavigator_Scenario(t *testing.T) {
	nav := vfs.NewNavigator(testTree(t))

	assert.Contains(t, nav.List(), "test_file.txt")
	assert.Contains(t, nav.List(), "test_dir")

	require.NoError(t, nav.ChangeDir("test_dir"))
	assert.Equal(t, "test_dir", nav.Current().String())
	assert.Equal(t, []string{"another_file.txt", "nested"}, nav.List())

	require.NoError(t, nav.ChangeDir(".."))
	assert.True(t, nav.Current().IsRoot())
}

func TestNavigator_ChangeDirAndBack(t *testing.T) {
	for _, start := range []vfs.Path{{}, {"test_dir"}} {
		t.Run(start.String(), func(t *testing.T) {
			nav := vfs.NewNavigator(testTree(t))
			for _, segment := range start {
				require.NoError(t, nav.ChangeDir(segment))
			}

			for _, name := range nav.List() {
				before := nav.Current()

				err := nav.ChangeDir(name)
				if err != nil {
					continue
				}

				require.NoError(t, nav.ChangeDir(".."))
				assert.Equal(t, before.String(), nav.Current().String(), name)
			}
		})
	}
}

func TestNavigator_ChangeDirErrors(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		expectedErr error
	}{
		{
			name:        "does not exist",
			target:      "does_not_exist",
			expectedErr: vfs.ErrNoSuchDirectory,
		},
		{
			name:        "multiple segments",
			target:      "test_dir/nested",
			expectedErr: vfs.ErrNoSuchDirectory,
		},
		{
			name:        "empty",
			target:      "",
			expectedErr: vfs.ErrNoSuchDirectory,
		},
		{
			name:        "current",
			target:      ".",
			expectedErr: vfs.ErrNoSuchDirectory,
		},
		{
			// Files are rejected, even though they are listed.
			name:        "file",
			target:      "test_file.txt",
			expectedErr: vfs.ErrNotDirectory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := vfs.NewNavigator(testTree(t))

			err := nav.ChangeDir(tt.target)
			require.ErrorIs(t, err, tt.expectedErr)
			require.ErrorIs(t, err, vfs.ErrNoSuchDirectory)

			var pathErr *vfs.PathError
			require.ErrorAs(t, err, &pathErr)
			assert.Equal(t, tt.target, pathErr.Path)

			assert.True(t, nav.Current().IsRoot())
		})
	}
}

func TestNavigator_ParentAtRoot(t *testing.T) {
	nav := vfs.NewNavigator(testTree(t))

	require.NoError(t, nav.ChangeDir(".."))
	require.NoError(t, nav.ChangeDir(".."))
	assert.True(t, nav.Current().IsRoot())
}

func TestNavigator_ListEmpty(t *testing.T) {
	nav := vfs.NewNavigator(testTree(t))

	require.NoError(t, nav.ChangeDir("empty"))
	assert.Empty(t, nav.List())

	require.NoError(t, nav.ChangeDir(".."))
	require.NoError(t, nav.ChangeDir("test_dir"))
	require.NoError(t, nav.ChangeDir("nested"))
	assert.Equal(t, "test_dir/nested", nav.Current().String())
	assert.Empty(t, nav.List())
}

func TestNavigator_CurrentIsCopy(t *testing.T) {
	nav := vfs.NewNavigator(testTree(t))
	require.NoError(t, nav.ChangeDir("test_dir"))

	current := nav.Current()
	current[0] = "changed"

	assert.Equal(t, "test_dir", nav.Current().String())
}

func TestNavigator_NilTree(t *testing.T) {
	nav := vfs.NewNavigator(nil)

	assert.Empty(t, nav.List())
	require.ErrorIs(t, nav.ChangeDir("any"), vfs.ErrNoSuchDirectory)
	require.NoError(t, nav.ChangeDir(".."))
}
