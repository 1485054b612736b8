// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"
)

// Format is an archive format [Pack] can write.
type Format int

// Supported formats for [Pack].
const (
	FormatZip Format = iota
	FormatTar
	FormatTarGz
	FormatCPIO
)

var formatExtensions = []struct {
	format    Format
	extension string
}{
	{FormatTarGz, ".tar.gz"},
	{FormatTarGz, ".tgz"},
	{FormatTar, ".tar"},
	{FormatZip, ".zip"},
	{FormatCPIO, ".cpio"},
}

// String returns the canonical file extension of the format.
func (f Format) String() string {
	switch f {
	case FormatZip:
		return "zip"
	case FormatTar:
		return "tar"
	case FormatTarGz:
		return "tar.gz"
	case FormatCPIO:
		return "cpio"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor returns the [Format] matching the extension of the given file
// name.
func FormatFor(name string) (Format, error) {
	lower := strings.ToLower(name)

	for _, e := range formatExtensions {
		if strings.HasSuffix(lower, e.extension) {
			return e.format, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Base(name))
}

// Pack writes all directories and regular files below srcDir into out as
// archive of the given format. The content of srcDir is placed at the
// archive's root.
func Pack(ctx context.Context, srcDir string, out io.Writer, format Format) error {
	info, err := os.Stat(srcDir)
	if err != nil {
		return &Error{Op: "pack", Path: srcDir, Err: err}
	}

	if !info.IsDir() {
		return &Error{Op: "pack", Path: srcDir, Err: ErrNotDir}
	}

	switch format {
	case FormatCPIO:
		err = packCPIO(ctx, os.DirFS(srcDir), out)
	case FormatZip:
		err = packArchives(ctx, srcDir, out, &archives.Zip{})
	case FormatTar:
		err = packArchives(ctx, srcDir, out, &archives.Tar{})
	case FormatTarGz:
		err = packArchives(ctx, srcDir, out, &archives.CompressedArchive{
			Compression: &archives.Gz{},
			Archival:    &archives.Tar{},
		})
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	if err != nil {
		return &Error{Op: "pack", Path: srcDir, Err: err}
	}

	slog.Debug("Packed archive",
		slog.String("source", srcDir),
		slog.String("format", format.String()))

	return nil
}

func packArchives(
	ctx context.Context,
	srcDir string,
	out io.Writer,
	archiver archives.Archiver,
) error {
	// The trailing separator places the directory's content at the root.
	files, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		filepath.Clean(srcDir) + string(filepath.Separator): "",
	})
	if err != nil {
		return fmt.Errorf("collect files: %w", err)
	}

	err = archiver.Archive(ctx, out, files)
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}

func packCPIO(ctx context.Context, fsys fs.FS, out io.Writer) error {
	writer := NewCPIOWriter(out)

	err := fs.WalkDir(fsys, ".", func(name string, dirEntry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		err = ctx.Err()
		if err != nil {
			return fmt.Errorf("packing canceled: %w", err)
		}

		switch {
		case name == ".":
			return nil
		case dirEntry.IsDir():
			return writer.WriteDirectory(name)
		case dirEntry.Type().IsRegular():
			return writeRegularFrom(writer, fsys, name)
		default:
			slog.Debug("Skipping unsupported file",
				slog.String("name", name),
				slog.String("type", dirEntry.Type().String()))

			return nil
		}
	})
	if err != nil {
		_ = writer.Close()
		return fmt.Errorf("walk: %w", err)
	}

	return writer.Close()
}

func writeRegularFrom(writer *CPIOWriter, fsys fs.FS, name string) error {
	file, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	return writer.WriteRegular(name, file)
}
