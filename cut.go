package eulertour

import "github.com/katalvlaran/eulertour/treap"

// Cut removes the edge between u and v, possibly splitting their component
// into two.
//
// Errors:
//   - ErrVertexNotFound if either id does not exist.
//   - ErrEdgeNotFound if there is no edge between u and v.
//
// Panics:
//   - *ContractError if u and v are not connected (implies a corrupt tour,
//     since an existing edge always implies connectivity).
//
// Complexity: expected O(log N).
func (t *Tour) Cut(u, v VertexID) error {
	uv, ok := t.vertices[u]
	if !ok {
		return ErrVertexNotFound
	}
	vv, ok := t.vertices[v]
	if !ok {
		return ErrVertexNotFound
	}

	entry := t.edges.get(u, v)
	if entry == nil {
		return ErrEdgeNotFound
	}
	if !connected(uv, vv) {
		panicContract("Cut", "%v and %v are not connected", u, v)
	}

	t.nComponents++

	// from/to are the forward half-edge's endpoints, independent of which
	// of f/b ends up ordered first in the tour below.
	from, to := entry.forward.from, entry.forward.to

	f, b := entry.forward, entry.backward
	if treap.Compare(f.node, b.node) > 0 {
		f, b = b, f
	}

	p := treap.Prev(f.node)
	n := treap.Next(b.node)
	pn := treap.Next(f.node)
	nn := treap.Prev(b.node)

	// Split into: strictly-before-f, the segment strictly between f and b
	// (the tour of one resulting component), and strictly-after-b. The
	// outer two are restitched into the other resulting component's tour.
	tree1 := treap.SplitBefore(f.node)
	tree2 := treap.SplitAfter(b.node)
	if tree1 != nil && tree2 != nil {
		treap.Concat(tree1, tree2)
	}

	reassignIncidence(from, to, pn, nn, p, n)

	// Isolate f and b into one-node treaps so the edge container can safely
	// drop them.
	treap.SplitAfter(f.node)
	treap.SplitBefore(b.node)

	clearIfSingleton(from)
	clearIfSingleton(to)

	t.edges.delete(u, v)
	t.version++
	return nil
}

// reassignIncidence picks fresh leftOut/rightIn half-edges for from and to
// after the splice above, following the invariant that leftOut is a
// vertex's first occurrence as a tour "from" and rightIn its last
// occurrence as a tour "to" (spec §4.6, re-derived per spec §9's second
// Open Question rather than transliterated).
//
// pn is the first half-edge of the inner segment (next(f) before the
// split); nn is its last (prev(b) before the split); p/n are the
// half-edges immediately surrounding the removed edge in the restitched
// outer tour (prev(f)/next(b) before the split).
func reassignIncidence(from, to *Vertex, pn, nn, p, n *treapNode) {
	pnEdge, nnEdge := payloadOf(pn), payloadOf(nn)

	// n and p are the neighbours of the removed edge in the restitched outer
	// tour (tree1+tree2), read cyclically: with both outer pieces present, p
	// directly precedes n; if only one is present (one outer piece was
	// empty), the missing one is taken from the other end of the outer tour
	// (n from its first node, p from its last).
	resolveOuterBounds := func() {
		if (n != nil) == (p != nil) {
			return
		}
		if n == nil {
			n = treap.FindMin(treap.FindRoot(p))
		} else {
			p = treap.FindMax(treap.FindRoot(n))
		}
	}

	switch {
	case pnEdge.contains(from) && pnEdge.contains(to):
		// The inner segment is empty: the removed edge's two halves were
		// tour-adjacent, so neither endpoint has a component of its own
		// carved out by this cut. Both belong to the outer tour, or both
		// become singletons if there is no outer tour left.
		resolveOuterBounds()
		if n != nil {
			nEdge, pEdge := payloadOf(n), payloadOf(p)
			if nEdge.contains(from) {
				from.leftOut, from.rightIn = nEdge, pEdge
				to.leftOut, to.rightIn = nil, nil
			} else {
				to.leftOut, to.rightIn = nEdge, pEdge
				from.leftOut, from.rightIn = nil, nil
			}
		} else {
			from.leftOut, from.rightIn = nil, nil
			to.leftOut, to.rightIn = nil, nil
		}

	case pnEdge.contains(from):
		// from keeps the inner segment; to belongs to the outer tour, or
		// becomes a singleton.
		from.leftOut, from.rightIn = pnEdge, nnEdge
		resolveOuterBounds()
		if n != nil {
			to.leftOut, to.rightIn = payloadOf(n), payloadOf(p)
		} else {
			to.leftOut, to.rightIn = nil, nil
		}

	case pnEdge.contains(to):
		// to keeps the inner segment; from belongs to the outer tour, or
		// becomes a singleton.
		to.leftOut, to.rightIn = pnEdge, nnEdge
		resolveOuterBounds()
		if n != nil {
			from.leftOut, from.rightIn = payloadOf(n), payloadOf(p)
		} else {
			from.leftOut, from.rightIn = nil, nil
		}
	}
}

// clearIfSingleton clears v's incident pointers if, after the surgery
// above, its tour has collapsed to a single node (spec §4.6's guard).
func clearIfSingleton(v *Vertex) {
	if n := v.incidentFirst(); n != nil && treap.Size(treap.FindRoot(n)) == 1 {
		v.leftOut, v.rightIn = nil, nil
	}
}
