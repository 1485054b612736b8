// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package history

import (
	"slices"
)

// Store is an append-only ordered log of command lines.
//
// With a limit greater than 0, the oldest entries are dropped once the limit
// is exceeded. The zero value is an unlimited, empty Store.
type Store struct {
	entries []string
	limit   int
}

// New creates a new [Store] keeping at most limit entries. A limit of 0 or
// less means no limit.
func New(limit int) *Store {
	return &Store{
		limit: max(limit, 0),
	}
}

// Append adds the line as newest entry.
func (s *Store) Append(line string) {
	s.entries = append(s.entries, line)

	if s.limit > 0 && len(s.entries) > s.limit {
		s.entries = slices.Delete(s.entries, 0, len(s.entries)-s.limit)
	}
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// All returns all entries, oldest first.
func (s *Store) All() []string {
	return slices.Clone(s.entries)
}

// Reversed returns all entries, newest first.
func (s *Store) Reversed() []string {
	entries := s.All()
	slices.Reverse(entries)

	return entries
}
