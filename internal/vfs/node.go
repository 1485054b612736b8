// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"fmt"
	"maps"
	"slices"
)

// NodeType is the type of a [Node].
type NodeType int

const (
	// NodeTypeDirectory is a node that has children.
	NodeTypeDirectory NodeType = iota
	// NodeTypeFile is a leaf node.
	NodeTypeFile
)

// String returns the name of the [NodeType].
func (t NodeType) String() string {
	switch t {
	case NodeTypeDirectory:
		return "directory"
	case NodeTypeFile:
		return "file"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// Node is a single node of the virtual file tree.
//
// Directories map unique names to their child nodes. Files have no payload.
type Node struct {
	// Type of this node.
	Type NodeType

	children map[string]*Node
}

// NewDirectory returns a new empty directory [Node].
func NewDirectory() *Node {
	return &Node{Type: NodeTypeDirectory}
}

// NewFile returns a new file [Node].
func NewFile() *Node {
	return &Node{Type: NodeTypeFile}
}

// String returns a string representation of the [Node].
func (n *Node) String() string {
	if n.IsDir() {
		return fmt.Sprintf("directory (% s)", n.Names())
	}

	return n.Type.String()
}

// IsDir returns true if the [Node] is a directory.
func (n *Node) IsDir() bool {
	return n.Type == NodeTypeDirectory
}

// Len returns the number of children. It is always 0 for files.
func (n *Node) Len() int {
	return len(n.children)
}

// Names returns the names of all children in lexicographic order.
func (n *Node) Names() []string {
	return slices.Sorted(maps.Keys(n.children))
}

// Child returns the child [Node] with the given name.
//
// It returns [ErrNodeNotDir] if the [Node] is not a directory and
// [ErrNodeNotExist] if there is no such child.
func (n *Node) Child(name string) (*Node, error) {
	if !n.IsDir() {
		return nil, ErrNodeNotDir
	}

	child, exists := n.children[name]
	if !exists {
		return nil, ErrNodeNotExist
	}

	return child, nil
}

// add adds the given node as child. Only used while the tree is built.
func (n *Node) add(name string, node *Node) error {
	if !n.IsDir() {
		return ErrNodeNotDir
	}

	if _, exists := n.children[name]; exists {
		return ErrNodeExist
	}

	if n.children == nil {
		n.children = make(map[string]*Node)
	}

	n.children[name] = node

	return nil
}
