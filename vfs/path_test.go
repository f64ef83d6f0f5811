package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cwd := []string{"home", "user"}

	tests := []struct {
		name string
		cwd  []string
		raw  string
		want []string
	}{
		{"empty keeps cwd", cwd, "", []string{"home", "user"}},
		{"dot keeps cwd", cwd, ".", []string{"home", "user"}},
		{"absolute replaces cwd", cwd, "/etc", []string{"etc"}},
		{"relative appends", cwd, "docs/notes", []string{"home", "user", "docs", "notes"}},
		{"dotdot pops", cwd, "..", []string{"home"}},
		{"dotdot then descend", cwd, "../other", []string{"home", "other"}},
		{"dotdot clamps at root", []string{}, "..", []string{}},
		{"dotdot past root is no-op", []string{"a"}, "../../../b", []string{"b"}},
		{"empty segments discarded", cwd, "/a//b///c", []string{"a", "b", "c"}},
		{"dot segments discarded", cwd, "/a/./b/.", []string{"a", "b"}},
		{"root", cwd, "/", []string{}},
		{"surrounding whitespace trimmed", cwd, "  /etc  ", []string{"etc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.cwd, tt.raw))
		})
	}
}

// Normalizing an already-normalized absolute path must yield itself.
func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	parts := []string{"var", "log", "app"}
	assert.Equal(t, parts, Normalize(nil, JoinAbs(parts)))
	assert.Equal(t, []string{}, Normalize(nil, JoinAbs(nil)))
}

func TestNormalize_DoesNotMutateCwd(t *testing.T) {
	t.Parallel()

	cwd := []string{"home", "user"}
	got := Normalize(cwd, "../etc")
	got[0] = "mutated"

	assert.Equal(t, []string{"home", "user"}, cwd)
}

func TestJoinAbs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/", JoinAbs(nil))
	assert.Equal(t, "/home/user", JoinAbs([]string{"home", "user"}))
}
