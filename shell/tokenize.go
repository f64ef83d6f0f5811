package shell

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"

	"github.com/brettbedarf/vshell"
)

// EnvSnapshot captures the current process environment as a map. Passing a
// snapshot into the session keeps variable expansion deterministic instead
// of reading ambient global state at dispatch time.
func EnvSnapshot() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// Tokenize expands variable references in line against env, then splits the
// result into tokens with POSIX-style quoting rules. Expansion runs before
// any quote-aware splitting, so a reference inside single or double quotes
// is expanded too. A blank line tokenizes to zero tokens.
func Tokenize(line string, env map[string]string) ([]string, error) {
	tokens, err := shlex.Split(expandVars(line, env))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vshell.ErrInvalidArgument, err)
	}
	return tokens, nil
}

// expandVars replaces $NAME and ${NAME} references with values from env.
// References to unset variables are left as written.
func expandVars(line string, env map[string]string) string {
	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != '$' || i+1 >= len(line) {
			b.WriteByte(c)
			continue
		}
		if line[i+1] == '{' {
			if end := strings.IndexByte(line[i+2:], '}'); end >= 0 {
				name := line[i+2 : i+2+end]
				if v, ok := env[name]; ok {
					b.WriteString(v)
					i += 2 + end
					continue
				}
			}
			b.WriteByte(c)
			continue
		}
		j := i + 1
		for j < len(line) && isNameByte(line[j]) {
			j++
		}
		if j == i+1 {
			b.WriteByte(c)
			continue
		}
		if v, ok := env[line[i+1:j]]; ok {
			b.WriteString(v)
			i = j - 1
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isNameByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
