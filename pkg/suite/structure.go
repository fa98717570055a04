/*
Package suite discovers the file structure of a test suite directory
and exposes it as a tree of nodes consumed by a visitor.

The node kinds are fixed: a plain data file, or a directory with an
optional init file and an ordered list of children. The builder
guarantees a stable, reproducible child order (lexicographic by name),
which visitors rely on.
*/
package suite

// Node is one element of a discovered suite structure.
type Node interface {
	// Visit dispatches on the concrete node kind.
	Visit(v Visitor) error
}

// Visitor processes discovered nodes. Implementations decide what a
// visit does; traversal order is defined by the nodes themselves.
type Visitor interface {
	VisitFile(n *FileNode) error
	VisitDirectory(n *DirectoryNode) error
}

// FileNode is a single test data file.
type FileNode struct {
	Path string
}

// Visit implements Node.
func (n *FileNode) Visit(v Visitor) error {
	return v.VisitFile(n)
}

// DirectoryNode is a directory with an optional init file and its
// discovered children in stable order.
type DirectoryNode struct {
	Path string

	// InitFile is the path of the directory's `__init__` data file,
	// empty when the directory has none.
	InitFile string

	Children []Node
}

// Visit implements Node.
func (n *DirectoryNode) Visit(v Visitor) error {
	return v.VisitDirectory(n)
}
