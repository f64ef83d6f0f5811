package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectLines returns an emit func that appends into out.
func collectLines(out *[]string) func(string) {
	return func(line string) { *out = append(*out, line) }
}

func TestRunScript_EchoesAndEmitsOutput(t *testing.T) {
	t.Parallel()
	s := newTestShell(t)

	var got []string
	exited := s.RunScript([]string{"cd /home/user\n", "ls\n"}, collectLines(&got))

	assert.False(t, exited)
	assert.Equal(t, []string{
		"default:/$ cd /home/user",
		"default:/home/user$ ls",
		"readme.txt",
	}, got)
}

// The first failing line is reported and aborts the rest of the script.
func TestRunScript_AbortsOnError(t *testing.T) {
	t.Parallel()
	s := newTestShell(t)

	var got []string
	exited := s.RunScript([]string{"cd /nope", "ls"}, collectLines(&got))

	assert.False(t, exited)
	require.Len(t, got, 2)
	assert.Equal(t, "default:/$ cd /nope", got[0])
	assert.Contains(t, got[1], "error: ")
	assert.Contains(t, got[1], "/nope")
	// "ls" was never echoed or executed.
	for _, line := range got {
		assert.NotContains(t, line, "$ ls")
	}
}

func TestRunScript_SkipsBlankLines(t *testing.T) {
	t.Parallel()
	s := newTestShell(t)

	var got []string
	s.RunScript([]string{"\n", "   \n", "whoami\n", ""}, collectLines(&got))

	assert.Equal(t, []string{"default:/$ whoami", "tester"}, got)
}

func TestRunScript_ExitStopsCleanly(t *testing.T) {
	t.Parallel()
	s := newTestShell(t)

	var got []string
	exited := s.RunScript([]string{"exit\n", "whoami\n"}, collectLines(&got))

	assert.True(t, exited)
	// Nothing after exit runs, and exit itself is not an error.
	assert.Equal(t, []string{"default:/$ exit"}, got)
}

func TestRunScript_InteractiveDivergence(t *testing.T) {
	t.Parallel()
	s := newTestShell(t)

	// The single-line interactive path reports the same failure but the
	// session keeps accepting lines afterwards.
	_, err := s.Run("cd /nope")
	require.Error(t, err)

	out, err := s.Run("ls /")
	require.NoError(t, err)
	assert.Equal(t, "etc/  home/  var/", out)
}
