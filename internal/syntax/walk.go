package syntax

// Directive tells Walk whether to descend into a node's children.
type Directive uint8

const (
	VisitChildren Directive = iota
	SkipChildren
)

func (d Directive) String() string {
	if d == SkipChildren {
		return "SkipChildren"
	}
	return "VisitChildren"
}

// Walk visits root and its descendants in pre-order. Children are visited in
// source order unless visit returns SkipChildren for their parent.
func Walk(root *Node, visit func(*Node) Directive) {
	if root == nil {
		return
	}
	if visit(root) == SkipChildren {
		return
	}
	for _, c := range root.Children {
		Walk(c, visit)
	}
}
