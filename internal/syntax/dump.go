package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes the tree as an indented outline, one token per line, with the
// comments each token carries.
func Dump(w io.Writer, tree *Tree) error {
	return dumpNode(w, tree.Root, 0)
}

func dumpNode(w io.Writer, n *Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	if _, err := fmt.Fprintf(w, "%s%s %q %d..%d\n", indent, n.Token.Kind, n.Token.Text, n.Token.Span.Start, n.Token.Span.End); err != nil {
		return err
	}
	for _, tv := range n.Token.Leading {
		if !tv.IsComment() {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s  # %s %q\n", indent, tv.Kind, tv.Text); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := dumpNode(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
