package eulertour

import "github.com/katalvlaran/eulertour/treap"

// Link inserts an edge between u and v, merging their components. u and v
// must be distinct and currently disconnected.
//
// Errors:
//   - ErrVertexNotFound if either id does not exist.
//
// Panics:
//   - *ContractError if u == v, or u and v are already connected.
//
// Complexity: expected O(log N).
func (t *Tour) Link(u, v VertexID) error {
	uv, ok := t.vertices[u]
	if !ok {
		return ErrVertexNotFound
	}
	vv, ok := t.vertices[v]
	if !ok {
		return ErrVertexNotFound
	}
	if uv == vv {
		panicContract("Link", "cannot link vertex %v to itself", u)
	}
	if connected(uv, vv) {
		panicContract("Link", "%v and %v are already connected", u, v)
	}

	t.nComponents--

	forward, backward := newHalfEdgePair(uv, vv, t.rng)
	t.edges.put(u, v, forward, backward)

	// Rotate each endpoint's existing tour so it begins with a half-edge at
	// that endpoint (see makeRoot), then splice the new edge in at the tour
	// boundaries.
	makeRoot(uv)
	makeRoot(vv)

	if uv.leftOut != nil {
		treap.Concat(uv.leftOut.node, forward.node)
	} else {
		uv.leftOut = forward
	}

	if vv.leftOut != nil {
		treap.Concat(forward.node, vv.leftOut.node)
	} else {
		vv.leftOut = forward
	}

	if vv.rightIn != nil {
		treap.Concat(vv.rightIn.node, backward.node)
	} else {
		vv.rightIn = backward
		treap.Concat(uv.leftOut.node, backward.node)
	}

	uv.rightIn = backward
	t.version++
	return nil
}
