// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package shell

import "errors"

// ErrCommandNotFound is set as [Result.Err] for unknown commands.
var ErrCommandNotFound = errors.New("command not found")
