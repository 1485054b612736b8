// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package shell_test

import (
	"testing"

	"github.com/aibor/vfsh/internal/history"
	"github.com/aibor/vfsh/internal/shell"
	"github.com/aibor/vfsh/internal/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *shell.Session {
	t.Helper()

	tree := vfs.MustBuild(t,
		"test_file.txt",
		"test_dir/another_file.txt",
		"test_dir/empty/",
	)

	return shell.NewSession("test_user", "test_host", tree, nil)
}

func TestSession_Fresh(t *testing.T) {
	session := newSession(t)

	assert.True(t, session.Current().IsRoot())
	assert.Empty(t, session.History())
	assert.Equal(t, "test_user@test_host:$ ", session.Prompt())
}

func TestSession_Submit(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected shell.Result
	}{
		{
			name:     "empty",
			line:     "",
			expected: shell.Result{},
		},
		{
			name:     "blank",
			line:     " \t ",
			expected: shell.Result{},
		},
		{
			name: "ls",
			line: "ls",
			expected: shell.Result{
				Echo: "ls",
				Lines: []string{
					"Current directory: ",
					"test_dir",
					"test_file.txt",
				},
			},
		},
		{
			name: "ls ignores trailing text",
			line: "  ls -la whatever ",
			expected: shell.Result{
				Echo: "ls -la whatever",
				Lines: []string{
					"Current directory: ",
					"test_dir",
					"test_file.txt",
				},
			},
		},
		{
			name: "ls prefix",
			line: "lsblk",
			expected: shell.Result{
				Echo: "lsblk",
				Lines: []string{
					"Current directory: ",
					"test_dir",
					"test_file.txt",
				},
			},
		},
		{
			name: "cd",
			line: "cd test_dir",
			expected: shell.Result{
				Echo: "cd test_dir",
			},
		},
		{
			name: "cd without argument",
			line: "cd",
			expected: shell.Result{
				Echo:  "cd",
				Lines: []string{"Command not found"},
				Err:   shell.ErrCommandNotFound,
			},
		},
		{
			name: "exit",
			line: "exit",
			expected: shell.Result{
				Echo: "exit",
				Exit: true,
			},
		},
		{
			name: "exit with argument",
			line: "exit 1",
			expected: shell.Result{
				Echo:  "exit 1",
				Lines: []string{"Command not found"},
				Err:   shell.ErrCommandNotFound,
			},
		},
		{
			name: "history",
			line: "history",
			expected: shell.Result{
				Echo:  "history",
				Lines: []string{"history"},
			},
		},
		{
			name: "rev",
			line: "rev",
			expected: shell.Result{
				Echo:  "rev",
				Lines: []string{"rev"},
			},
		},
		{
			name: "unknown",
			line: "pwd",
			expected: shell.Result{
				Echo:  "pwd",
				Lines: []string{"Command not found"},
				Err:   shell.ErrCommandNotFound,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newSession(t).Submit(tt.line)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSession_Scenario(t *testing.T) {
	session := newSession(t)

	result := session.Submit("ls")
	assert.Contains(t, result.Lines, "test_file.txt")
	assert.Contains(t, result.Lines, "test_dir")

	result = session.Submit("cd test_dir")
	require.NoError(t, result.Err)
	assert.Empty(t, result.Lines)
	assert.Equal(t, "test_dir", session.Current().String())
	assert.Equal(t, "test_user@test_host:test_dir$ ", session.Prompt())

	result = session.Submit("ls")
	assert.Equal(t, []string{
		"Current directory: test_dir",
		"another_file.txt",
		"empty",
	}, result.Lines)

	result = session.Submit("cd ..")
	require.NoError(t, result.Err)
	assert.True(t, session.Current().IsRoot())
	assert.Equal(t, "test_user@test_host:$ ", session.Prompt())
}

func TestSession_ChangeDirInvalid(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		expectedErr error
	}{
		{
			name:        "does not exist",
			line:        "cd does_not_exist",
			expectedErr: vfs.ErrNoSuchDirectory,
		},
		{
			// Files are listed, but can not be changed into.
			name:        "file",
			line:        "cd test_file.txt",
			expectedErr: vfs.ErrNotDirectory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newSession(t)

			result := session.Submit(tt.line)
			require.ErrorIs(t, result.Err, tt.expectedErr)
			assert.Equal(t, []string{"No such directory"}, result.Lines)
			assert.False(t, result.Exit)
			assert.True(t, session.Current().IsRoot())
		})
	}
}

func TestSession_ChangeDirArgumentWhitespace(t *testing.T) {
	session := newSession(t)

	result := session.Submit("cd    test_dir  ")
	require.NoError(t, result.Err)
	assert.Equal(t, "test_dir", session.Current().String())
	assert.Equal(t, []string{"cd    test_dir"}, session.History())
}

func TestSession_ListEmpty(t *testing.T) {
	session := newSession(t)

	session.Submit("cd test_dir")
	session.Submit("cd empty")

	result := session.Submit("ls")
	assert.Equal(t, []string{
		"Current directory: test_dir/empty",
		"No files or directories found.",
	}, result.Lines)
}

func TestSession_History(t *testing.T) {
	session := newSession(t)

	commands := []string{
		"ls",
		"cd test_dir",
		"cd nope",
		"",
		"unknown",
		"cd ..",
	}
	for _, command := range commands {
		session.Submit(command)
	}

	accepted := []string{
		"ls",
		"cd test_dir",
		"cd nope",
		"unknown",
		"cd ..",
	}
	assert.Equal(t, accepted, session.History())

	result := session.Submit("history")
	assert.Equal(t, append(accepted, "history"), result.Lines)

	result = session.Submit("rev")
	assert.Equal(t, []string{
		"rev",
		"history",
		"cd ..",
		"unknown",
		"cd nope",
		"cd test_dir",
		"ls",
	}, result.Lines)
}

func TestSession_HistoryLimit(t *testing.T) {
	tree := vfs.MustBuild(t, "file")
	session := shell.NewSession("u", "h", tree, history.New(2))

	session.Submit("one")
	session.Submit("two")

	result := session.Submit("history")
	assert.Equal(t, []string{"two", "history"}, result.Lines)
}

func TestSession_ErrorsAreNotFatal(t *testing.T) {
	session := newSession(t)

	for _, line := range []string{"cd x", "bogus", "cd test_file.txt", "exit now"} {
		result := session.Submit(line)
		require.Error(t, result.Err, line)
		assert.False(t, result.Exit, line)
	}

	result := session.Submit("exit")
	require.NoError(t, result.Err)
	assert.True(t, result.Exit)
}
