// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aibor/vfsh/internal/shell"
	"github.com/aibor/vfsh/internal/sys"
	"github.com/fatih/color"
)

// lineReader reads lines in its own goroutine, so the loop can react on
// context cancellation while waiting for input.
type lineReader struct {
	lines chan string
	err   error
}

func startLineReader(ctx context.Context, input io.Reader) *lineReader {
	reader := &lineReader{
		lines: make(chan string),
	}

	go func() {
		defer close(reader.lines)

		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			select {
			case reader.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		// Only read after lines is closed.
		reader.err = scanner.Err()
	}()

	return reader
}

// repl renders a [shell.Session] as line based terminal interface.
type repl struct {
	session *shell.Session
	output  io.Writer
	prompt  *color.Color

	// echo writes each submitted line after the prompt. Used if the input is
	// not a terminal that echoes itself.
	echo bool
}

func newREPL(session *shell.Session, cfg IO, colorMode ColorMode) *repl {
	prompt := color.New(color.FgGreen, color.Bold)
	if colorMode.Enabled(cfg.Stdout) {
		prompt.EnableColor()
	} else {
		prompt.DisableColor()
	}

	return &repl{
		session: session,
		output:  cfg.Stdout,
		prompt:  prompt,
		echo:    !sys.IsTerminal(cfg.Stdin),
	}
}

// run reads lines from input until the session ends, input is exhausted or
// the context is done.
func (r *repl) run(ctx context.Context, input io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reader := startLineReader(ctx, input)

	r.printPrompt()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.output)
			return fmt.Errorf("session: %w", context.Cause(ctx))
		case line, ok := <-reader.lines:
			if !ok {
				fmt.Fprintln(r.output)

				if reader.err != nil {
					return fmt.Errorf("read input: %w", reader.err)
				}

				slog.Debug("End of input")

				return nil
			}

			result := r.session.Submit(line)
			r.render(result)

			if result.Exit {
				return nil
			}

			r.printPrompt()
		}
	}
}

func (r *repl) printPrompt() {
	fmt.Fprint(r.output, r.prompt.Sprint(r.session.Prompt()))
}

func (r *repl) render(result shell.Result) {
	if r.echo {
		fmt.Fprintln(r.output, result.Echo)
	}

	for _, line := range result.Lines {
		fmt.Fprintln(r.output, line)
	}
}
