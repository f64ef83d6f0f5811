package vfs

import (
	"fmt"

	"github.com/brettbedarf/vshell"
	"github.com/brettbedarf/vshell/internal/util"
)

// Tree owns the root directory node and all of its descendants. A tree is
// built once at startup, only ever grows afterwards, and is exclusively
// owned by a single shell session.
type Tree struct {
	label string
	root  *Node
}

// New creates a tree holding only an empty root directory. label is a
// display name for the whole tree, not a path component.
func New(label string) *Tree {
	return &Tree{
		label: label,
		root:  NewDirNode("", vshell.DefaultOwner),
	}
}

// Label returns the tree's display name.
func (t *Tree) Label() string { return t.label }

// SetLabel replaces the tree's display name.
func (t *Tree) SetLabel(label string) { t.label = label }

// Root returns the root directory node.
func (t *Tree) Root() *Node { return t.root }

// Resolve normalizes raw against cwd and walks the tree from the root
// through each segment. It fails at the first missing segment, naming the
// full intended absolute path.
func (t *Tree) Resolve(cwd []string, raw string) (*Node, error) {
	parts := Normalize(cwd, raw)
	cur := t.root
	for _, p := range parts {
		child, ok := cur.GetChild(p)
		if !ok {
			return nil, fmt.Errorf("%w: %s", vshell.ErrPathNotFound, JoinAbs(parts))
		}
		cur = child
	}
	return cur, nil
}

// List returns node's children ordered by name, lexicographic ascending.
func (t *Tree) List(node *Node) ([]*Node, error) {
	if !node.IsDir() {
		return nil, vshell.ErrNotADirectory
	}
	names := node.childNames()
	children := make([]*Node, 0, len(names))
	for _, name := range names {
		child, _ := node.GetChild(name)
		children = append(children, child)
	}
	return children, nil
}

// ChangeDir resolves raw against cwd and returns the new normalized absolute
// path. The caller's cwd slice is never mutated.
func (t *Tree) ChangeDir(cwd []string, raw string) ([]string, error) {
	node, err := t.Resolve(cwd, raw)
	if err != nil {
		return nil, err
	}
	if !node.IsDir() {
		return nil, vshell.ErrNotADirectory
	}
	return Normalize(cwd, raw), nil
}

// ensureDirPath walks from the root through parts, creating any missing
// directory at each segment, and returns the final node. An existing
// non-directory anywhere along the walk is a conflict.
func (t *Tree) ensureDirPath(parts []string) (*Node, error) {
	cur := t.root
	for _, p := range parts {
		child, ok := cur.GetChild(p)
		if !ok {
			child = NewDirNode(p, vshell.DefaultOwner)
			cur.AddChild(child)
		}
		if !child.IsDir() {
			return nil, fmt.Errorf("%w: path conflicts with file at %q", vshell.ErrTreeConflict, p)
		}
		cur = child
	}
	return cur, nil
}

// AddDir creates the directory at path, mkdir -p style, and sets the owner
// of the final node. Existing directories along the way are reused; an
// existing final directory only has its owner overwritten.
func (t *Tree) AddDir(path, owner string) error {
	node, err := t.ensureDirPath(splitPath(path))
	if err != nil {
		return err
	}
	node.SetOwner(owner)
	return nil
}

// AddFile inserts a file node at path with the given owner and payload,
// creating any missing parent directories. An existing child of that name is
// silently replaced, whatever its kind; only intermediate segments are
// guarded against kind conflicts.
func (t *Tree) AddFile(path, owner string, content []byte) error {
	parts := splitPath(path)
	if len(parts) == 0 {
		return fmt.Errorf("%w: empty file path", vshell.ErrInvalidArgument)
	}
	dirParts, name := parts[:len(parts)-1], parts[len(parts)-1]
	dir, err := t.ensureDirPath(dirParts)
	if err != nil {
		return err
	}
	dir.AddChild(NewFileNode(name, owner, content))
	return nil
}

// DefaultTree builds the stock tree used when no description is supplied.
func DefaultTree() *Tree {
	logger := util.GetLogger("vfs.DefaultTree")

	t := New("default")
	// A fresh tree cannot conflict with itself.
	_ = t.AddDir("/home/user", "user")
	_ = t.AddFile("/home/user/readme.txt", "user", []byte("Hello VFS"))
	_ = t.AddDir("/etc", vshell.DefaultOwner)
	_ = t.AddDir("/var/log", vshell.DefaultOwner)
	logger.Debug().Str("label", t.Label()).Msg("Built default tree")
	return t
}
