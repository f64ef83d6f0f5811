package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettbedarf/vshell"
	"github.com/brettbedarf/vshell/vfs"
)

// newTestShell binds a fresh session to the stock tree with a fixed user
// and an isolated environment.
func newTestShell(t *testing.T) *Shell {
	t.Helper()
	return New(vfs.DefaultTree(), "tester", map[string]string{})
}

func TestNew_UserFallbacks(t *testing.T) {
	t.Parallel()

	tree := vfs.DefaultTree()

	s := New(tree, "alice", map[string]string{"USER": "bob"})
	assert.Equal(t, "alice", s.User())

	s = New(tree, "", map[string]string{"USER": "bob"})
	assert.Equal(t, "bob", s.User())

	s = New(tree, "", map[string]string{"USERNAME": "carol"})
	assert.Equal(t, "carol", s.User())

	s = New(tree, "", map[string]string{})
	assert.Equal(t, "user", s.User())
}

func TestPrompt(t *testing.T) {
	t.Parallel()
	s := newTestShell(t)

	assert.Equal(t, "default:/$ ", s.Prompt())

	_, err := s.Run("cd /home/user")
	require.NoError(t, err)
	assert.Equal(t, "default:/home/user$ ", s.Prompt())
}

func TestRun_BlankLine(t *testing.T) {
	t.Parallel()
	s := newTestShell(t)

	out, err := s.Run("   ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()
	s := newTestShell(t)

	_, err := s.Run("foo bar")
	require.Error(t, err)
	assert.ErrorIs(t, err, vshell.ErrUnknownCommand)
	assert.Contains(t, err.Error(), "foo")
}

func TestRun_ExitSignal(t *testing.T) {
	t.Parallel()
	s := newTestShell(t)

	_, err := s.Run("exit")
	assert.ErrorIs(t, err, vshell.ErrExit)
}

func TestCwd_ReturnsCopy(t *testing.T) {
	t.Parallel()
	s := newTestShell(t)

	_, err := s.Run("cd /home/user")
	require.NoError(t, err)

	cwd := s.Cwd()
	cwd[0] = "mutated"
	assert.Equal(t, []string{"home", "user"}, s.Cwd())
}
