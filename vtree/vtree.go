package vtree

// Node is a node in a visual tree: anything with an upward parent link.
// The root of a tree returns nil.
type Node interface {
	Parent() Node
}

// Ancestor walks the parent chain of start, excluding start itself, until a
// node can be asserted to type T. It returns the zero T and false when the
// chain ends without a match or start is nil.
func Ancestor[T any](start Node) (T, bool) {
	var none T
	if start == nil {
		return none, false
	}
	for n := start.Parent(); n != nil; n = n.Parent() {
		if match, ok := n.(T); ok {
			return match, true
		}
	}
	return none, false
}

// AncestorFunc walks the parent chain of start, excluding start itself,
// until match reports true for a node. It returns nil and false when the
// chain ends without a match.
func AncestorFunc(start Node, match func(Node) bool) (Node, bool) {
	if start == nil {
		return nil, false
	}
	for n := start.Parent(); n != nil; n = n.Parent() {
		if match(n) {
			return n, true
		}
	}
	return nil, false
}
