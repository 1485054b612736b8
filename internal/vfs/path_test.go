// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs_test

import (
	"testing"

	"github.com/aibor/vfsh/internal/vfs"
	"github.com/stretchr/testify/assert"
)

func TestPath_String(t *testing.T) {
	tests := []struct {
		path     vfs.Path
		expected string
	}{
		{path: nil, expected: ""},
		{path: vfs.Path{}, expected: ""},
		{path: vfs.Path{"a"}, expected: "a"},
		{path: vfs.Path{"a", "b", "c"}, expected: "a/b/c"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.path.String())
		})
	}
}

func TestPath_JoinParent(t *testing.T) {
	root := vfs.Path{}
	assert.True(t, root.IsRoot())
	assert.True(t, root.Parent().IsRoot())

	a := root.Join("a")
	assert.Equal(t, vfs.Path{"a"}, a)
	assert.False(t, a.IsRoot())

	ab := a.Join("b")
	ac := a.Join("c")
	assert.Equal(t, vfs.Path{"a", "b"}, ab)
	assert.Equal(t, vfs.Path{"a", "c"}, ac, "join must not alias siblings")

	assert.Equal(t, vfs.Path{"a"}, ab.Parent())
	assert.True(t, a.Parent().IsRoot())

	parent := ab.Parent()
	_ = parent.Join("x")
	assert.Equal(t, vfs.Path{"a", "b"}, ab, "parent must not alias child")
}
