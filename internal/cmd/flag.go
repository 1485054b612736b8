// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"runtime/debug"

	"github.com/aibor/vfsh/internal/sys"
)

const (
	name = "vfsh"

	workdirDefault = "vfs"

	flagConfig       = "config"
	flagWorkdir      = "workdir"
	flagHistoryLimit = "history-limit"
	flagColor        = "color"
	flagDebug        = "debug"

	usageMessage = `Usage of 'vfsh':
    vfsh [flags...] username hostname archive

Extracts the archive into the working directory and starts an interactive
shell over its file tree. Commands: ls, cd <dir>, cd .., history, rev, exit.

All vfsh flags can also be provided via environment variable VFSH_ARGS:
	VFSH_ARGS="-debug -keep-workdir" vfsh alice box ./tree.zip

Defaults can be set in the TOML file ./.vfsh.toml or the file given with
-config. Known keys: workdir, history_limit, color, debug.
`
)

// Set on build.
var version = "dev"

type flags struct {
	Username     string
	Hostname     string
	ArchivePath  sys.FilePath
	ConfigPath   string
	Workdir      string
	KeepWorkdir  bool
	HistoryLimit uint64
	Color        ColorMode
	Debug        bool
	Version      bool
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := &flags{
		ConfigPath: localConfigFile,
		Workdir:    workdirDefault,
		Color:      ColorAuto,
	}

	flagSet := flags.newFlagSet(output)

	err := flagSet.Parse(args)
	if err != nil {
		return nil, &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if flags.Version {
		err := printVersionInformation(output)
		return nil, &ParseArgsError{msg: "version requested", err: err}
	}

	positionalArgs := flagSet.Args()
	if len(positionalArgs) != 3 {
		return nil, fail(flagSet, fmt.Sprintf(
			"expected 3 arguments (username hostname archive), got %d",
			len(positionalArgs),
		), nil)
	}

	flags.Username = positionalArgs[0]
	if flags.Username == "" {
		return nil, fail(flagSet, "empty username", nil)
	}

	flags.Hostname = positionalArgs[1]
	if flags.Hostname == "" {
		return nil, fail(flagSet, "empty hostname", nil)
	}

	flags.ArchivePath, err = sys.AbsoluteFilePath(positionalArgs[2])
	if err != nil {
		return nil, fail(flagSet, "archive path", err)
	}

	err = flags.applyConfigFile(setFlags(flagSet))
	if err != nil {
		return nil, err
	}

	err = validateWorkdir(flags.Workdir)
	if err != nil {
		return nil, fail(flagSet, "workdir", err)
	}

	return flags, nil
}

func (f *flags) newFlagSet(output io.Writer) *flag.FlagSet {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(flagSet.Output(), usageMessage)
		fmt.Fprintln(flagSet.Output(), "\nFlags:")
		flagSet.PrintDefaults()
	}

	flagSet.StringVar(
		&f.ConfigPath,
		flagConfig,
		f.ConfigPath,
		"TOML config file. Missing default file is ignored",
	)

	flagSet.StringVar(
		&f.Workdir,
		flagWorkdir,
		f.Workdir,
		"working directory the archive is extracted into. Must be empty or "+
			"used by vfsh before",
	)

	flagSet.BoolVar(
		&f.KeepWorkdir,
		"keep-workdir",
		f.KeepWorkdir,
		"do not delete the working directory on exit",
	)

	flagSet.Var(
		newHistoryLimitValue(&f.HistoryLimit),
		flagHistoryLimit,
		"maximum number of history entries, 0 for unlimited",
	)

	flagSet.TextVar(
		&f.Color,
		flagColor,
		f.Color,
		"color the prompt: auto, always, never",
	)

	flagSet.BoolVar(
		&f.Debug,
		flagDebug,
		f.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.Version,
		"version",
		f.Version,
		"show version and exit",
	)

	return flagSet
}

// applyConfigFile sets all values from the config file that have not been
// set explicitly by flags.
func (f *flags) applyConfigFile(set map[string]bool) error {
	cfg, err := LoadConfig(f.ConfigPath)
	if err != nil {
		// Only the implicit default config file is optional.
		if errors.Is(err, fs.ErrNotExist) && !set[flagConfig] {
			return nil
		}

		return err
	}

	if cfg.Workdir != "" && !set[flagWorkdir] {
		f.Workdir = cfg.Workdir
	}

	if cfg.HistoryLimit != 0 && !set[flagHistoryLimit] {
		err := newHistoryLimitValue(&f.HistoryLimit).set(cfg.HistoryLimit)
		if err != nil {
			return fmt.Errorf("config %s: history_limit: %w", f.ConfigPath, err)
		}
	}

	if cfg.Color != "" && !set[flagColor] {
		f.Color = cfg.Color
	}

	if cfg.Debug && !set[flagDebug] {
		f.Debug = true
	}

	return nil
}

func setFlags(flagSet *flag.FlagSet) map[string]bool {
	set := map[string]bool{}

	flagSet.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	return set
}

// fail fails like flag does. It prints the error first and then usage.
func fail(flagSet *flag.FlagSet, msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(flagSet.Output(), err.Error())

	flagSet.Usage()

	return err
}

func printVersionInformation(output io.Writer) error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(output, "%s: %s\n\n", name, version)
	fmt.Fprintln(output, buildInfo.String())

	return ErrHelp
}
