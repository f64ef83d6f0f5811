package vfs

import (
	"sort"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/brettbedarf/vshell"
)

// Node is a single entry in the tree: a directory or a file. A directory
// exclusively owns its children; navigation is always root-down, so nodes
// keep no parent back-reference.
type Node struct {
	name     string
	kind     vshell.NodeKind
	owner    string
	content  []byte                    // opaque payload; only meaningful for files
	children *xsync.Map[string, *Node] // child nodes by name; empty for files
}

// NewDirNode creates an empty directory node.
func NewDirNode(name, owner string) *Node {
	return &Node{
		name:     name,
		kind:     vshell.DirKind,
		owner:    owner,
		children: xsync.NewMap[string, *Node](),
	}
}

// NewFileNode creates a file node holding the given payload.
func NewFileNode(name, owner string, content []byte) *Node {
	return &Node{
		name:     name,
		kind:     vshell.FileKind,
		owner:    owner,
		content:  content,
		children: xsync.NewMap[string, *Node](),
	}
}

// Name returns the node's path segment. The root node's name is empty and
// plays no part in resolution.
func (n *Node) Name() string { return n.name }

// Kind returns the node classification.
func (n *Node) Kind() vshell.NodeKind { return n.kind }

// Owner returns the node's owner identity.
func (n *Node) Owner() string { return n.owner }

// SetOwner replaces the node's owner identity.
func (n *Node) SetOwner(owner string) { n.owner = owner }

// Content returns the file payload; nil for directories.
func (n *Node) Content() []byte { return n.content }

func (n *Node) IsDir() bool  { return n.kind == vshell.DirKind }
func (n *Node) IsFile() bool { return n.kind == vshell.FileKind }

// AddChild links child under this node, replacing any existing child of the
// same name. The replaced subtree, if any, is dropped.
func (n *Node) AddChild(child *Node) {
	n.children.Store(child.name, child)
}

// GetChild returns a child node by name.
func (n *Node) GetChild(name string) (child *Node, ok bool) {
	return n.children.Load(name)
}

// childNames returns the names of all children, lexicographic ascending.
func (n *Node) childNames() []string {
	names := make([]string, 0, n.children.Size())
	n.children.Range(func(name string, _ *Node) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}
