// Package vshell holds the shared API types for the virtual-filesystem shell:
// the node classification used by the tree and its loaders, and the error
// taxonomy every layer reports failures through.
package vshell

// NodeKind classifies a tree node. The set is closed: there are no symlinks
// or special files.
type NodeKind string

const (
	DirKind  NodeKind = "dir"
	FileKind NodeKind = "file"
)

// Valid reports whether k is one of the known kinds.
func (k NodeKind) Valid() bool {
	return k == DirKind || k == FileKind
}

// DefaultOwner is the identity assigned to nodes created without an explicit
// owner, including every implicitly created intermediate directory.
const DefaultOwner = "root"
