// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"slices"
	"strings"
)

// Separator is used to join [Path] segments for display.
const Separator = "/"

// Path is the route from the tree root to a node as ordered list of segments.
// The empty Path is the root.
type Path []string

// String joins the segments with [Separator]. The root is the empty string.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// IsRoot returns true if the [Path] has no segments.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Join returns a new [Path] with the given segment appended.
func (p Path) Join(segment string) Path {
	return append(slices.Clip(p), segment)
}

// Parent returns a new [Path] without the last segment. The parent of the
// root is the root.
func (p Path) Parent() Path {
	if p.IsRoot() {
		return Path{}
	}

	return slices.Clone(p[:len(p)-1])
}
