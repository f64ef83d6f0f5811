package shell

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/brettbedarf/vshell"
	"github.com/brettbedarf/vshell/vfs"
)

func (s *Shell) cmdExit(_ []string) (string, error) {
	s.logger.Debug().Msg("Exit requested")
	return "", vshell.ErrExit
}

// cmdLs lists the target directory's children sorted by name, directories
// suffixed with "/", joined by double spaces. A file target lists as just
// its name. With no argument the current directory is listed.
func (s *Shell) cmdLs(args []string) (string, error) {
	path := vfs.JoinAbs(s.cwd)
	if len(args) > 0 {
		path = args[0]
	}
	node, err := s.tree.Resolve(s.cwd, path)
	if err != nil {
		return "", err
	}
	if node.IsFile() {
		return node.Name(), nil
	}
	children, err := s.tree.List(node)
	if err != nil {
		return "", err
	}
	items := make([]string, 0, len(children))
	for _, ch := range children {
		name := ch.Name()
		if ch.IsDir() {
			name += "/"
		}
		items = append(items, name)
	}
	return strings.Join(items, "  "), nil
}

func (s *Shell) cmdCd(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: cd: expected 1 argument", vshell.ErrInvalidArgument)
	}
	cwd, err := s.tree.ChangeDir(s.cwd, args[0])
	if err != nil {
		return "", err
	}
	s.cwd = cwd
	return "", nil
}

func (s *Shell) cmdWhoami(args []string) (string, error) {
	if len(args) != 0 {
		return "", fmt.Errorf("%w: whoami: no arguments expected", vshell.ErrInvalidArgument)
	}
	return s.user, nil
}

// cmdCal renders a month grid: the current real-world month with no
// argument, or the YYYY-MM named month with one.
func (s *Shell) cmdCal(args []string) (string, error) {
	switch len(args) {
	case 0:
		now := time.Now()
		return formatMonth(now.Year(), now.Month()), nil
	case 1:
		if year, month, ok := parseYearMonth(args[0]); ok {
			return formatMonth(year, month), nil
		}
	}
	return "", fmt.Errorf("%w: cal: usage: cal [YYYY-MM]", vshell.ErrInvalidArgument)
}

func parseYearMonth(arg string) (int, time.Month, bool) {
	if len(arg) != 7 || arg[4] != '-' {
		return 0, 0, false
	}
	year, err := strconv.Atoi(arg[:4])
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(arg[5:])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// cmdRev reverses the character sequence of each argument independently and
// rejoins them with single spaces.
func (s *Shell) cmdRev(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: rev: usage: rev <text>", vshell.ErrInvalidArgument)
	}
	out := make([]string, 0, len(args))
	for _, arg := range args {
		out = append(out, reverse(arg))
	}
	return strings.Join(out, " "), nil
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
