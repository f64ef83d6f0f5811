package vfsdef

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettbedarf/vshell"
)

func TestFromCSV_BuildsTree(t *testing.T) {
	t.Parallel()

	body := strings.Join([]string{
		"path,type,owner,content",
		"/home/user,dir,user,",
		"/home/user/readme.txt,file,user,SGVsbG8gVkZT", // "Hello VFS"
		"/etc,dir,root,",
		"/var/log,dir,,",
	}, "\n")

	tree, err := FromCSV(strings.NewReader(body), "demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", tree.Label())

	readme, err := tree.Resolve(nil, "/home/user/readme.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello VFS"), readme.Content())
	assert.Equal(t, "user", readme.Owner())

	// Empty owner cell falls back to the default.
	log, err := tree.Resolve(nil, "/var/log")
	require.NoError(t, err)
	assert.Equal(t, vshell.DefaultOwner, log.Owner())
}

func TestFromCSV_ContentColumnOptional(t *testing.T) {
	t.Parallel()

	body := "path,type,owner\n/notes.txt,file,user\n"

	tree, err := FromCSV(strings.NewReader(body), "demo")
	require.NoError(t, err)

	node, err := tree.Resolve(nil, "/notes.txt")
	require.NoError(t, err)
	assert.Empty(t, node.Content())
}

// A header missing a required column fails before any row is processed.
func TestFromCSV_MissingRequiredColumn(t *testing.T) {
	t.Parallel()

	body := "path,type\n/etc,dir\n"

	_, err := FromCSV(strings.NewReader(body), "demo")
	require.Error(t, err)
	assert.ErrorIs(t, err, vshell.ErrImportFormat)
	assert.Contains(t, err.Error(), "need path,type,owner")
}

func TestFromCSV_BadRowValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		row  string
	}{
		{
			"bad type",
			"path,type,owner\n/etc,dir,root\n/x,link,root\n",
			"row 3",
		},
		{
			"empty path",
			"path,type,owner\n,dir,root\n",
			"row 2",
		},
		{
			"bad base64",
			"path,type,owner,content\n/a.txt,file,user,@@@not-base64@@@\n",
			"row 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := FromCSV(strings.NewReader(tt.body), "demo")
			require.Error(t, err)
			assert.ErrorIs(t, err, vshell.ErrImportFormat)
			assert.Contains(t, err.Error(), tt.row)
		})
	}
}

func TestFromCSV_ConflictAborts(t *testing.T) {
	t.Parallel()

	body := strings.Join([]string{
		"path,type,owner",
		"/a,file,root",
		"/a/b,dir,root",
	}, "\n")

	_, err := FromCSV(strings.NewReader(body), "demo")
	assert.ErrorIs(t, err, vshell.ErrTreeConflict)
}

// Rows apply strictly in order: the last write for a path wins.
func TestFromCSV_LastRowWins(t *testing.T) {
	t.Parallel()

	body := strings.Join([]string{
		"path,type,owner,content",
		"/a.txt,file,user,Zmlyc3Q=", // "first"
		"/a.txt,file,user,c2Vjb25k", // "second"
	}, "\n")

	tree, err := FromCSV(strings.NewReader(body), "demo")
	require.NoError(t, err)

	node, err := tree.Resolve(nil, "/a.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), node.Content())
}
