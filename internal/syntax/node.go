package syntax

import (
	"sgspell/internal/source"
	"sgspell/internal/token"
)

// Node is one token of the tree with the tokens it owns.
type Node struct {
	Token    token.Token
	Children []*Node
	closed   bool
}

func (n *Node) Kind() token.Kind { return n.Token.Kind }

// IsGroup reports whether the node opens a bracketed group.
func (n *Node) IsGroup() bool {
	_, ok := n.Token.Kind.Closer()
	return ok
}

// Closed reports whether a group node found its matching closer.
func (n *Node) Closed() bool { return n.closed }

// Span covers the node's token and all of its descendants, trivia excluded.
func (n *Node) Span() source.Span {
	sp := n.Token.Span
	for _, c := range n.Children {
		sp = sp.Cover(c.Span())
	}
	return sp
}

// Tree is the grouped token tree of one file. Root has kind token.File.
type Tree struct {
	File *source.File
	Root *Node
}

// Len counts token nodes, the root excluded.
func (t *Tree) Len() int {
	n := -1
	Walk(t.Root, func(*Node) Directive {
		n++
		return VisitChildren
	})
	return n
}
