// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-git/go-billy/v5"
	"golang.org/x/sync/errgroup"
)

// Build creates a directory [Node] whose children mirror the entries of the
// directory root in fsys recursively. Directories become directory nodes, all
// other entries become file nodes.
//
// Sub directories are read concurrently. Each directory node is filled by
// exactly one goroutine and the tree must not be used before Build returns.
// It returns a [PathError] if any directory can not be read.
func Build(ctx context.Context, fsys billy.Filesystem, root string) (*Node, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	b := &builder{
		ctx:   ctx,
		fsys:  fsys,
		group: group,
	}

	tree := NewDirectory()

	err := b.fill(tree, root)
	if err != nil {
		cancel()
	}

	waitErr := group.Wait()
	if err == nil {
		err = waitErr
	}

	if err != nil {
		return nil, err
	}

	slog.Debug("Built virtual file tree",
		slog.String("root", root),
		slog.Int("entries", tree.Len()))

	return tree, nil
}

type builder struct {
	ctx   context.Context //nolint:containedctx
	fsys  billy.Filesystem
	group *errgroup.Group
}

func (b *builder) fill(dir *Node, path string) error {
	if err := b.ctx.Err(); err != nil {
		return fmt.Errorf("build %s: %w", path, err)
	}

	infos, err := b.fsys.ReadDir(path)
	if err != nil {
		return &PathError{
			Op:   "readdir",
			Path: path,
			Err:  err,
		}
	}

	for _, info := range infos {
		node := NewFile()
		if info.IsDir() {
			node = NewDirectory()
		}

		err := dir.add(info.Name(), node)
		if err != nil {
			return &PathError{
				Op:   "add",
				Path: b.fsys.Join(path, info.Name()),
				Err:  err,
			}
		}

		if !node.IsDir() {
			continue
		}

		subPath := b.fsys.Join(path, info.Name())
		fillFn := func() error { return b.fill(node, subPath) }

		// Fill in place if the limit is reached. Blocking in Go would
		// deadlock once all running goroutines wait for a free slot.
		if !b.group.TryGo(fillFn) {
			err := fillFn()
			if err != nil {
				return err
			}
		}
	}

	return nil
}
