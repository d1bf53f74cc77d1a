package eulertour

import "github.com/katalvlaran/eulertour/treap"

// makeRoot rotates v's tour by splitting it after a rotation point chosen at
// or next to v's earlier incident half-edge and moving the split-off suffix
// to the front. Afterwards the tour's first half-edge has v as an endpoint,
// though v need not be its from vertex. v.leftOut and v.rightIn are not
// updated, so they need not be the tour's minimum and maximum nodes, and a
// second call may rotate the tour again. It is a no-op for a singleton or a
// two-half-edge (one-edge) tour.
//
// The branch below re-derives the case analysis from first principles
// (spec §9's Open Question) rather than transliterating the original: f is
// the candidate rotation point (v's earlier incident half-edge), moved at
// most one step backward or forward along the tour before the split.
func makeRoot(v *Vertex) {
	if v.isSingleton() {
		return
	}
	if treap.Size(treap.FindRoot(v.incidentFirst())) == 2 {
		// One edge: v's tour is already {leftOut, rightIn} in some order;
		// rotating it cannot change which vertex is first by more than a
		// swap, which the invariant already tolerates.
		return
	}

	fNode, bNode := v.incidentFirst(), v.incidentLast()
	if treap.Compare(fNode, bNode) > 0 {
		fNode, bNode = bNode, fNode
	}
	f := payloadOf(fNode)
	other := f.to
	if other == v {
		other = f.from
	}

	nextNode := treap.Next(fNode)
	next := payloadOf(nextNode)

	switch {
	case !next.contains(v):
		// f is not yet the last visit before leaving v's "segment": the
		// rotation point is one step earlier.
		prevNode := treap.Prev(fNode)
		if prevNode == nil {
			// v is already the tour's first vertex.
			return
		}
		fNode = prevNode

	case next.contains(other):
		// f and next form a length-2 excursion touching both v and other.
		// Whether f is still the right rotation point depends on what
		// comes after (or, at the tour's end, before) that excursion.
		afterExcursion := treap.Next(nextNode)
		if afterExcursion == nil {
			afterExcursion = treap.Prev(fNode)
		}
		if afterExcursion != nil && payloadOf(afterExcursion).contains(v) {
			fNode = nextNode
		}
		// Otherwise v is a leaf of the excursion; f stays.

	default:
		// next continues away from v without returning to it: f is
		// already the correct rotation point.
	}

	rightSubtree := treap.SplitAfter(fNode)
	if rightSubtree != nil {
		treap.Concat(rightSubtree, fNode)
	}
}
