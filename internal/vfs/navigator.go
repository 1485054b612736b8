// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"errors"
	"slices"
)

// ParentDir is the [Navigator.ChangeDir] target for the parent directory.
const ParentDir = ".."

// Navigator keeps the current directory within a tree.
//
// The tree is shared and never modified. The current [Path] is only changed by
// successful calls of [Navigator.ChangeDir].
type Navigator struct {
	root    *Node
	current Path
}

// NewNavigator returns a [Navigator] for the given tree, positioned at its
// root.
func NewNavigator(root *Node) *Navigator {
	return &Navigator{
		root:    root,
		current: Path{},
	}
}

// Current returns the current directory.
func (n *Navigator) Current() Path {
	return slices.Clone(n.current)
}

// List returns the names of the current directory's children in
// lexicographic order.
//
// If the current path does not resolve to a directory, the result is empty.
func (n *Navigator) List() []string {
	dir := n.resolve(n.current)
	if dir == nil {
		return nil
	}

	return dir.Names()
}

// ChangeDir changes the current directory.
//
// The [ParentDir] target moves to the parent directory and does nothing at the
// root. Any other target must be the name of a child directory of the current
// directory. Otherwise, a [PathError] wrapping [ErrNoSuchDirectory] is
// returned and the current directory is unchanged. File children are rejected
// with [ErrNotDirectory].
func (n *Navigator) ChangeDir(target string) error {
	if target == ParentDir {
		n.current = n.current.Parent()
		return nil
	}

	err := n.checkTarget(target)
	if err != nil {
		return &PathError{
			Op:   "cd",
			Path: target,
			Err:  err,
		}
	}

	n.current = n.current.Join(target)

	return nil
}

func (n *Navigator) checkTarget(target string) error {
	dir := n.resolve(n.current)
	if dir == nil {
		return ErrNoSuchDirectory
	}

	child, err := dir.Child(target)
	if err != nil {
		if errors.Is(err, ErrNodeNotExist) {
			return ErrNoSuchDirectory
		}

		return err
	}

	if !child.IsDir() {
		return ErrNotDirectory
	}

	return nil
}

// resolve walks the path from the root and returns the directory it ends in
// or nil, if any segment is missing or not a directory.
func (n *Navigator) resolve(path Path) *Node {
	node := n.root
	if node == nil {
		return nil
	}

	for _, segment := range path {
		next, err := node.Child(segment)
		if err != nil || !next.IsDir() {
			return nil
		}

		node = next
	}

	if !node.IsDir() {
		return nil
	}

	return node
}
