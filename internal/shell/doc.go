// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package shell provides the command interpreter of vfsh.
//
// A [Session] accepts one command line at a time with [Session.Submit] and
// returns the lines to show as [Result]. It does not render anything itself.
// Supported commands are:
//
//	ls          list the current directory
//	cd <name>   change into a child directory, ".." for the parent
//	history     show all accepted command lines, oldest first
//	rev         show all accepted command lines, newest first
//	exit        end the session
//
// Commands are matched by prefix in this order: anything starting with "ls"
// lists, anything starting with "cd " changes the directory. All others must
// match exactly. Errors never end the session.
package shell
