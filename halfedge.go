package eulertour

import (
	"math/rand"

	"github.com/katalvlaran/eulertour/treap"
)

// treapNode is a local alias so the rest of this package reads naturally
// without qualifying every treap.Node reference.
type treapNode = treap.Node

// edgeKey identifies an undirected edge by its two endpoint IDs, in the order
// given; the edge container stores each edge under both orders so it can
// answer lookups in either endpoint order (spec §4.8).
type edgeKey struct {
	a, b VertexID
}

// HalfEdge is one of the two directed instances of an undirected edge.
// Every edge {u,v} is materialized as two inverse-linked half-edges, u->v
// and v->u; exactly one is designated forward (isForward), arbitrarily, at
// construction.
//
// Invariant: e.inverse.inverse == e, e.from == e.inverse.to, and
// e.to == e.inverse.from.
type HalfEdge struct {
	key       edgeKey
	isForward bool
	from, to  *Vertex
	inverse   *HalfEdge
	node      *treapNode
}

// IsTreapPayload implements treap.Payload. The treap substrate never
// inspects this type; it exists only to break the import cycle that a
// mutual reference between treap.Node and HalfEdge would otherwise create.
func (*HalfEdge) IsTreapPayload() {}

// payloadOf returns the HalfEdge carried by a treap node, or nil for a nil
// node.
func payloadOf(n *treapNode) *HalfEdge {
	if n == nil {
		return nil
	}
	return n.Value().(*HalfEdge)
}

// contains reports whether vertex is one of e's endpoints.
func (e *HalfEdge) contains(vertex *Vertex) bool {
	return e.from == vertex || e.to == vertex
}

// From returns the vertex this half-edge is traversed from.
func (e *HalfEdge) From() VertexID { return e.from.ID }

// To returns the vertex this half-edge is traversed to.
func (e *HalfEdge) To() VertexID { return e.to.ID }

// IsForward reports whether e is the arbitrarily-designated forward
// direction of its undirected edge.
func (e *HalfEdge) IsForward() bool { return e.isForward }

// Inverse returns the other directed half of e's undirected edge.
func (e *HalfEdge) Inverse() *HalfEdge { return e.inverse }

// newHalfEdgePair allocates the two directed half-edges of the undirected
// edge {u,v}, inverse-linked, with their own treap nodes. u->v is the
// forward half-edge.
func newHalfEdgePair(u, v *Vertex, rng *rand.Rand) (forward, backward *HalfEdge) {
	key := canonicalEdgeKey(u.ID, v.ID)

	forward = &HalfEdge{key: key, isForward: true, from: u, to: v}
	backward = &HalfEdge{key: key, isForward: false, from: v, to: u}
	forward.inverse = backward
	backward.inverse = forward

	forward.node = treap.New(forward, rng)
	backward.node = treap.New(backward, rng)

	return forward, backward
}
