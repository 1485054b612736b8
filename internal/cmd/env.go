// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"os"
	"strings"
)

const envArgsName = "VFSH_ARGS"

// EnvArgs returns vfsh arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv(envArgsName))
}

// MergedArgs returns the arguments from the environment followed by the given
// arguments. So flags given on the command line take precedence.
func MergedArgs(args []string) []string {
	return append(EnvArgs(), args...)
}
