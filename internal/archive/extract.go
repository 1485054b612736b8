// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/mholt/archives"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// entry is a single archive member, independent of the archive format.
type entry struct {
	name string
	mode fs.FileMode
	open func() (io.ReadCloser, error)
}

type entryHandler func(ctx context.Context, e entry) error

type extractFunc func(ctx context.Context, handle entryHandler) error

// Extract extracts the archive at the given host path into the root of the
// target filesystem.
//
// Any previous content of the target is removed first. The archive format is
// detected by content and name. All errors are returned as [Error].
func Extract(ctx context.Context, archivePath string, target billy.Filesystem) error {
	file, err := os.Open(archivePath)
	if err != nil {
		return &Error{Op: "open", Path: archivePath, Err: err}
	}
	defer file.Close()

	extract, err := extractorFor(ctx, archivePath, file)
	if err != nil {
		return &Error{Op: "identify", Path: archivePath, Err: err}
	}

	err = clearTarget(target)
	if err != nil {
		return &Error{Op: "clear", Path: target.Root(), Err: err}
	}

	count := 0

	err = extract(ctx, func(ctx context.Context, e entry) error {
		err := ctx.Err()
		if err != nil {
			return fmt.Errorf("extraction canceled: %w", err)
		}

		extracted, err := extractEntry(target, e)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}

		if extracted {
			count++
		}

		return nil
	})
	if err != nil {
		return &Error{Op: "extract", Path: archivePath, Err: err}
	}

	slog.Debug("Extracted archive",
		slog.String("archive", archivePath),
		slog.String("target", target.Root()),
		slog.Int("entries", count))

	return nil
}

// extractorFor detects the archive format of the given file and returns a
// function that extracts it. The file is rewound.
func extractorFor(ctx context.Context, name string, file *os.File) (extractFunc, error) {
	isCPIO, err := hasCPIOMagic(file)
	if err != nil {
		return nil, err
	}

	if isCPIO {
		return func(ctx context.Context, handle entryHandler) error {
			return readCPIO(ctx, file, handle)
		}, nil
	}

	format, _, err := archives.Identify(ctx, name, file)
	if err != nil {
		if errors.Is(err, archives.NoMatch) {
			return nil, ErrUnknownFormat
		}

		return nil, fmt.Errorf("identify: %w", err)
	}

	extractor, ok := format.(archives.Extractor)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format.Extension())
	}

	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, fmt.Errorf("rewind: %w", err)
	}

	slog.Debug("Identified archive format",
		slog.String("archive", name),
		slog.String("format", format.Extension()))

	return func(ctx context.Context, handle entryHandler) error {
		return extractor.Extract(ctx, file, func(ctx context.Context, info archives.FileInfo) error {
			return handle(ctx, entry{
				name: info.NameInArchive,
				mode: info.Mode(),
				open: func() (io.ReadCloser, error) {
					return info.Open()
				},
			})
		})
	}, nil
}

// hasCPIOMagic checks if the file starts with a CPIO magic number. The file
// is rewound.
func hasCPIOMagic(file *os.File) (bool, error) {
	magic, err := bufio.NewReaderSize(file, len(cpioMagicSVR4)).Peek(len(cpioMagicSVR4))
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read magic: %w", err)
	}

	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return false, fmt.Errorf("rewind: %w", err)
	}

	switch string(magic) {
	case cpioMagicSVR4, cpioMagicSVR4CRC, cpioMagicODC:
		return true, nil
	default:
		return false, nil
	}
}

// clearTarget removes everything below the root of the given filesystem and
// makes sure the root exists.
func clearTarget(fsys billy.Filesystem) error {
	infos, err := fsys.ReadDir(rootPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read: %w", err)
	}

	for _, info := range infos {
		err := util.RemoveAll(fsys, fsys.Join(rootPath, info.Name()))
		if err != nil {
			return fmt.Errorf("remove %s: %w", info.Name(), err)
		}
	}

	err = fsys.MkdirAll(rootPath, dirMode)
	if err != nil {
		return fmt.Errorf("create root: %w", err)
	}

	return nil
}

// extractEntry writes a single entry. It returns false if the entry has been
// skipped.
func extractEntry(fsys billy.Filesystem, e entry) (bool, error) {
	name, err := targetPath(e.name)
	if err != nil {
		return false, err
	}

	switch {
	case name == rootPath:
		return false, nil
	case e.mode.IsDir():
		err := fsys.MkdirAll(name, dirMode)
		if err != nil {
			return false, fmt.Errorf("create directory: %w", err)
		}
	case e.mode.IsRegular():
		err := extractRegular(fsys, name, e)
		if err != nil {
			return false, err
		}
	default:
		slog.Debug("Skipping unsupported archive entry",
			slog.String("name", e.name),
			slog.String("type", e.mode.Type().String()))

		return false, nil
	}

	return true, nil
}

func extractRegular(fsys billy.Filesystem, name string, e entry) error {
	err := fsys.MkdirAll(path.Dir(name), dirMode)
	if err != nil {
		return fmt.Errorf("create parent: %w", err)
	}

	source, err := e.open()
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer source.Close()

	file, err := fsys.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer file.Close()

	_, err = io.Copy(file, source)
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}
