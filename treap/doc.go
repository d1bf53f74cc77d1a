// Package treap implements a randomized balanced binary search tree ordered
// purely by in-order (structural) position — there is no comparison key.
// Heap order is maintained over an independent, uniformly-random priority
// assigned to every node at construction time.
//
// The tree is monomorphic: every node carries exactly one Payload, the
// half-edge of an Euler-tour tree. No generic dispatch is needed, so none
// is provided.
//
// Supported operations:
//
//	FindRoot(n)        highest ancestor reachable by parent links
//	FindMin(r)/FindMax(r)  leftmost / rightmost in-order node
//	Next(n)/Prev(n)    in-order successor/predecessor within the same tree
//	Size(n)            number of nodes in the subtree rooted at n, O(1)
//	Compare(a, b)      sign of the in-order position difference, same tree
//	Concat(a, b)       merge two trees, a entirely before b
//	SplitBefore(n)     split off everything strictly before n
//	SplitAfter(n)      split off everything strictly after n
//
// All operations run in expected O(log N) for a tree of N nodes. Concat and
// the Split* family never invalidate Payload pointers or *Node pointers —
// only the parent/left/right/size links are rewritten.
//
// Split and Concat do not use rotate-to-root (splay) rebalancing. Each Split
// records the ancestor chain from the named node to its tree's root once,
// then peels every ancestor's off-path subtree into the correct accumulator
// and re-merges by treap priority; Concat finds both roots and merges them
// by priority. This keeps the tree heap-ordered throughout.
package treap
