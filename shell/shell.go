// Package shell implements the command interpreter: per-session state, the
// tokenizer, the closed table of builtin commands, and the script runner.
package shell

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/brettbedarf/vshell"
	"github.com/brettbedarf/vshell/internal/util"
	"github.com/brettbedarf/vshell/vfs"
)

// handler executes one builtin against the session and returns its output.
type handler func(s *Shell, args []string) (string, error)

// builtins is the closed dispatch table. An unlisted command name is
// reported as unknown; there is no dynamic lookup.
var builtins = map[string]handler{
	"exit":   (*Shell).cmdExit,
	"ls":     (*Shell).cmdLs,
	"cd":     (*Shell).cmdCd,
	"whoami": (*Shell).cmdWhoami,
	"cal":    (*Shell).cmdCal,
	"rev":    (*Shell).cmdRev,
}

// Shell is a single interpreter session bound to one tree. The current
// directory mutates only through a successful cd; the user identity is
// fixed at construction.
type Shell struct {
	tree   *vfs.Tree
	cwd    []string // absolute current directory segments; empty means root
	user   string
	env    map[string]string
	logger util.Logger
}

// New creates a session bound to tree. An empty user falls back to the
// environment's USER, then USERNAME, then "user". A nil env uses a snapshot
// of the process environment.
func New(tree *vfs.Tree, user string, env map[string]string) *Shell {
	if env == nil {
		env = EnvSnapshot()
	}
	if user == "" {
		user = env["USER"]
	}
	if user == "" {
		user = env["USERNAME"]
	}
	if user == "" {
		user = "user"
	}

	id := uuid.New().String()
	s := &Shell{
		tree:   tree,
		cwd:    []string{},
		user:   user,
		env:    env,
		logger: util.GetLogger("shell").With().Str("session", id).Logger(),
	}
	s.logger.Debug().Str("vfs", tree.Label()).Str("user", user).Msg("Session created")
	return s
}

// Tree returns the bound tree.
func (s *Shell) Tree() *vfs.Tree { return s.tree }

// User returns the fixed session identity.
func (s *Shell) User() string { return s.user }

// Cwd returns a copy of the current directory segments.
func (s *Shell) Cwd() []string {
	return append([]string{}, s.cwd...)
}

// Prompt renders the input prompt for the current directory.
func (s *Shell) Prompt() string {
	return fmt.Sprintf("%s:%s$ ", s.tree.Label(), vfs.JoinAbs(s.cwd))
}

// Run tokenizes one input line and dispatches it to a builtin. A blank line
// yields an empty result and no error. Run returns vshell.ErrExit when the
// line requests session termination.
func (s *Shell) Run(line string) (string, error) {
	tokens, err := Tokenize(strings.TrimSpace(line), s.env)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", nil
	}
	name, args := tokens[0], tokens[1:]
	fn, ok := builtins[name]
	if !ok {
		s.logger.Debug().Str("command", name).Msg("Unknown command")
		return "", fmt.Errorf("%w: %s", vshell.ErrUnknownCommand, name)
	}
	s.logger.Trace().Str("command", name).Strs("args", args).Msg("Dispatching command")
	return fn(s, args)
}
