package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/brettbedarf/vshell"
	"github.com/brettbedarf/vshell/config"
	"github.com/brettbedarf/vshell/internal/util"
	"github.com/brettbedarf/vshell/shell"
	"github.com/brettbedarf/vshell/vfs"
	"github.com/brettbedarf/vshell/vfsdef"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		vfsPath    string
		scriptPath string
		vfsName    string
		user       string
		verbose    int
	)

	cmd := &cobra.Command{
		Use:           "vshell",
		Short:         "Educational shell over an in-memory virtual filesystem",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose < 1 {
				verbose = 1
			}
			if verbose > 5 {
				verbose = 5
			}
			logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
			util.InitializeLogger(logLvls[verbose-1])
			logger := util.GetLogger("main")

			cfg := config.NewDefaultConfig()
			if configPath != "" {
				override, err := config.LoadConfigOverrideFile(configPath)
				if err != nil {
					logger.Error().Err(err).Str("config", configPath).Msg("Failed to load config file")
					return err
				}
				cfg.Merge(override)
			}
			// Flags win over the config file.
			flagOverride := config.ConfigOverride{}
			if vfsPath != "" {
				flagOverride.VFSPath = util.Pointer(vfsPath)
			}
			if scriptPath != "" {
				flagOverride.ScriptPath = util.Pointer(scriptPath)
			}
			if vfsName != "" {
				flagOverride.VFSName = util.Pointer(vfsName)
			}
			if user != "" {
				flagOverride.User = util.Pointer(user)
			}
			cfg.Merge(&flagOverride)

			logger.Info().
				Str("vfs", cfg.VFSPath).
				Str("script", cfg.ScriptPath).
				Str("vfs_name", cfg.VFSName).
				Msg("vshell initializing")

			tree, err := buildTree(cfg)
			if err != nil {
				logger.Error().Err(err).Str("vfs", cfg.VFSPath).Msg("Failed to load VFS description")
				return err
			}

			sh := shell.New(tree, cfg.User, nil)
			out := cmd.OutOrStdout()
			emit := func(line string) { fmt.Fprintln(out, line) }
			emit(fmt.Sprintf("[ready] VFS=%q cwd=%q user=%q", tree.Label(), "/", sh.User()))

			if cfg.ScriptPath != "" {
				data, err := os.ReadFile(cfg.ScriptPath)
				if err != nil {
					logger.Error().Err(err).Str("script", cfg.ScriptPath).Msg("Failed to read script")
					return err
				}
				if sh.RunScript(strings.Split(string(data), "\n"), emit) {
					return nil
				}
			}

			return runInteractive(sh, emit)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to config file (.yaml or .json)")
	flags.StringVarP(&vfsPath, "vfs", "n", "", "Path to a VFS description file (.csv, .json, .yaml)")
	flags.StringVarP(&scriptPath, "script", "s", "", "Path to a startup script to run before interactive input")
	flags.StringVar(&vfsName, "vfs-name", "", "Display name for the VFS tree")
	flags.StringVar(&user, "user", "", "Session identity (defaults to $USER)")
	flags.IntVarP(&verbose, "verbose", "v", 3, "Log verbosity level between 1 (error) and 5 (trace)")
	return cmd
}

// buildTree loads the configured description, or falls back to the built-in
// default tree. A configured name overrides the tree's own label.
func buildTree(cfg *config.Config) (*vfs.Tree, error) {
	var tree *vfs.Tree
	if cfg.VFSPath != "" {
		var err error
		tree, err = vfsdef.LoadFile(cfg.VFSPath)
		if err != nil {
			return nil, err
		}
	} else {
		tree = vfs.DefaultTree()
	}
	if cfg.VFSName != "" && cfg.VFSName != config.DefaultVFSName {
		tree.SetLabel(cfg.VFSName)
	}
	return tree, nil
}

// runInteractive is the console collaborator: it reads one line at a time,
// executes it, and renders the result or a formatted error line. Unlike
// script mode it reports errors and keeps accepting further lines.
func runInteractive(sh *shell.Shell, emit func(string)) error {
	rl, err := readline.NewEx(&readline.Config{Prompt: sh.Prompt()})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		out, runErr := sh.Run(line)
		switch {
		case errors.Is(runErr, vshell.ErrExit):
			return nil
		case runErr != nil:
			emit(fmt.Sprintf("error: %v", runErr))
		case out != "":
			emit(out)
		}
		rl.SetPrompt(sh.Prompt())
	}
}
