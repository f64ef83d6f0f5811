package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brettbedarf/vshell"
)

// RunScript drives the session from an already-read ordered sequence of
// lines. Blank lines are skipped silently; every other line is echoed as
// prompt+line through emit before execution, followed by its non-empty
// output. The first failure is reported as an "error: ..." line and aborts
// the remaining lines; this is the divergence from interactive use, which
// reports and keeps going. RunScript returns true when a line requested
// session termination.
func (s *Shell) RunScript(lines []string, emit func(string)) bool {
	for _, raw := range lines {
		line := strings.TrimRight(raw, "\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		emit(s.Prompt() + line)
		out, err := s.Run(line)
		if errors.Is(err, vshell.ErrExit) {
			s.logger.Debug().Msg("Script requested exit")
			return true
		}
		if err != nil {
			emit(fmt.Sprintf("error: %v", err))
			s.logger.Debug().Err(err).Str("line", line).Msg("Script aborted")
			return false
		}
		if out != "" {
			emit(out)
		}
	}
	return false
}
