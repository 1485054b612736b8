// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for vfsh. It handles flag
// parsing, configuration, the interactive read-eval-print loop and error
// handling.
package cmd
