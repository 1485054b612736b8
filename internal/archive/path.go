// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"path"
	"strings"
)

const rootPath = "/"

// targetPath returns the absolute path within the target filesystem for the
// given archive entry name. Leading slashes are removed like tar does. The
// archive root itself results in [rootPath].
func targetPath(name string) (string, error) {
	name = strings.ReplaceAll(name, `\`, "/")

	for segment := range strings.SplitSeq(name, "/") {
		if segment == ".." {
			return "", ErrUnsafePath
		}
	}

	return path.Join(rootPath, path.Clean(strings.TrimLeft(name, "/"))), nil
}
