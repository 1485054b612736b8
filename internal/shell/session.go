// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package shell

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aibor/vfsh/internal/history"
	"github.com/aibor/vfsh/internal/vfs"
)

// Messages emitted by commands.
const (
	MsgCurrentDirectory = "Current directory: "
	MsgNoEntries        = "No files or directories found."
	MsgNoSuchDirectory  = "No such directory"
	MsgCommandNotFound  = "Command not found"
)

// Command names.
const (
	CmdList      = "ls"
	CmdChangeDir = "cd"
	CmdExit      = "exit"
	CmdReverse   = "rev"
	CmdHistory   = "history"
)

const argsSeparator = " "

// Result is the outcome of a single submitted line.
type Result struct {
	// Echo is the accepted command line. It is empty if the line was blank
	// and has been ignored.
	Echo string

	// Lines are the output lines of the command.
	Lines []string

	// Exit is set if the session should end.
	Exit bool

	// Err is the error the command failed with, if any. It is already
	// reflected in Lines and never fatal.
	Err error
}

// Session is the state of one interpreter session: the current directory
// within the virtual tree and the command history.
//
// A Session must only be used from one goroutine at a time.
type Session struct {
	user    string
	host    string
	nav     *vfs.Navigator
	history *history.Store
}

// NewSession creates a new [Session] for the given tree, positioned at its
// root. If hist is nil, an unlimited [history.Store] is used.
func NewSession(user, host string, tree *vfs.Node, hist *history.Store) *Session {
	if hist == nil {
		hist = history.New(0)
	}

	return &Session{
		user:    user,
		host:    host,
		nav:     vfs.NewNavigator(tree),
		history: hist,
	}
}

// Current returns the current directory.
func (s *Session) Current() vfs.Path {
	return s.nav.Current()
}

// History returns the accepted command lines, oldest first.
func (s *Session) History() []string {
	return s.history.All()
}

// Prompt renders the prompt for the current state.
func (s *Session) Prompt() string {
	return fmt.Sprintf("%s@%s:%s$ ", s.user, s.host, s.nav.Current())
}

// Submit processes the given raw input line.
//
// Surrounding whitespace is removed. Blank lines are ignored. Any other line
// is added to the history before it is dispatched, so "history" and "rev"
// include themselves.
func (s *Session) Submit(line string) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return Result{}
	}

	s.history.Append(line)

	result := Result{Echo: line}

	switch {
	case strings.HasPrefix(line, CmdList):
		s.list(&result)
	case strings.HasPrefix(line, CmdChangeDir+argsSeparator):
		arg := strings.TrimSpace(strings.TrimPrefix(line, CmdChangeDir))
		s.changeDir(arg, &result)
	case line == CmdExit:
		result.Exit = true
	case line == CmdReverse:
		result.Lines = s.history.Reversed()
	case line == CmdHistory:
		result.Lines = s.history.All()
	default:
		result.Err = ErrCommandNotFound
		result.Lines = []string{MsgCommandNotFound}
	}

	slog.Debug("Command processed",
		slog.String("line", line),
		slog.String("cwd", s.nav.Current().String()),
		slog.Any("error", result.Err))

	return result
}

func (s *Session) list(result *Result) {
	entries := s.nav.List()

	slog.Debug("Available files",
		slog.String("cwd", s.nav.Current().String()),
		slog.Any("entries", entries))

	result.Lines = append(result.Lines, MsgCurrentDirectory+s.nav.Current().String())

	if len(entries) == 0 {
		result.Lines = append(result.Lines, MsgNoEntries)
		return
	}

	result.Lines = append(result.Lines, entries...)
}

func (s *Session) changeDir(target string, result *Result) {
	err := s.nav.ChangeDir(target)
	if err != nil {
		result.Err = err
		result.Lines = []string{MsgNoSuchDirectory}
	}
}
