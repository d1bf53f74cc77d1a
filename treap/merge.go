package treap

// Concat merges two trees so that every node of a's tree precedes every
// node of b's tree in-order. Either argument may be any node of its tree
// (its root is taken); either may be nil. Returns the root of the merged
// tree.
//
// Concat never invalidates Payload pointers or *Node pointers — only the
// parent/left/right/size links of nodes already present in a or b are
// rewritten.
//
// Complexity: expected O(log(Na+Nb)).
func Concat(a, b *Node) *Node {
	return merge(FindRoot(a), FindRoot(b))
}

// merge assumes a and b are already tree roots (or nil) and that every node
// of a precedes every node of b. It is the classic randomized-treap merge:
// the tree whose root has higher priority stays on top, and the other tree
// is merged recursively into the appropriate child.
func merge(a, b *Node) *Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.priority > b.priority {
		a.right = merge(a.right, b)
		a.right.parent = a
		updateSize(a)
		return a
	}
	b.left = merge(a, b.left)
	b.left.parent = b
	updateSize(b)
	return b
}
