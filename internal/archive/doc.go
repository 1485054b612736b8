// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package archive extracts vfsh archives into a working directory and packs
// host directories into new archives.
//
// Zip is the primary format. Tar and compressed tar archives are identified by
// name and content using [github.com/mholt/archives]. CPIO archives (SVR4 and
// ODC) are handled with [github.com/cavaliergopher/cpio].
//
// Only directories and regular files are extracted. Symbolic links and
// special files are skipped, entries that would end up outside of the target
// directory make the extraction fail.
package archive
