package eulertour

import "github.com/katalvlaran/eulertour/treap"

// VertexIterator yields every vertex in a component exactly once, in Euler-
// tour order. Obtain one via Tour.VertexIterator; it is invalidated by any
// subsequent structural mutation (Link, Cut, CreateVertex, RemoveVertex) of
// the owning Tour (spec §9: "a version counter on the tour lets debug
// builds detect invalidation" — here the check is always on, not
// debug-only).
//
// Usage:
//
//	it, err := tour.VertexIterator(start)
//	for it.Next() {
//	    use(it.Vertex())
//	}
type VertexIterator struct {
	tour    *Tour
	version uint64

	node      *treapNode
	singleton *Vertex
	lastTo    *Vertex
	seen      map[*Vertex]bool

	current   VertexID
	started   bool
	exhausted bool
}

func newVertexIterator(t *Tour, v *Vertex) *VertexIterator {
	it := &VertexIterator{tour: t, version: t.version, seen: make(map[*Vertex]bool)}
	if v.isSingleton() {
		it.singleton = v
	} else {
		it.node = findRootMin(v)
	}
	return it
}

func (it *VertexIterator) checkVersion(op string) {
	if it.tour.version != it.version {
		panicContract(op, "tour was structurally modified during iteration")
	}
}

// Next advances the iterator and reports whether a vertex is available via
// Vertex.
//
// Panics:
//   - *ContractError if the owning Tour was mutated since the iterator was
//     created.
func (it *VertexIterator) Next() bool {
	it.checkVersion("VertexIterator.Next")

	if it.singleton != nil {
		it.current = it.singleton.ID
		it.singleton = nil
		it.started = true
		return true
	}
	for it.node != nil {
		edge := payloadOf(it.node)
		it.lastTo = edge.to
		it.node = treap.Next(it.node)
		if it.seen[edge.from] {
			continue
		}
		it.seen[edge.from] = true
		it.current = edge.from.ID
		it.started = true
		return true
	}
	if last := it.lastTo; last != nil {
		it.lastTo = nil
		if !it.seen[last] {
			it.seen[last] = true
			it.current = last.ID
			it.started = true
			return true
		}
	}
	it.exhausted = true
	return false
}

// Vertex returns the vertex produced by the most recent call to Next.
//
// Panics:
//   - *ContractError if called before Next, or after Next returned false.
func (it *VertexIterator) Vertex() VertexID {
	if !it.started || it.exhausted {
		panicContract("VertexIterator.Vertex", "iterator is exhausted or unstarted")
	}
	return it.current
}

// Close marks the iterator finished; further calls to Next return false.
// There is no external resource to release — this exists for API parity
// with spec §6's tour_vertex_iterator "next/destroy" surface.
func (it *VertexIterator) Close() {
	it.singleton = nil
	it.node = nil
	it.lastTo = nil
	it.exhausted = true
}

// EdgeIterator yields every half-edge in a component, in Euler-tour order
// (so each undirected edge appears twice, once per direction). Obtain one
// via Tour.EdgeIterator; the same invalidation rule as VertexIterator
// applies.
type EdgeIterator struct {
	tour    *Tour
	version uint64

	node *treapNode

	current   *HalfEdge
	started   bool
	exhausted bool
}

func newEdgeIterator(t *Tour, v *Vertex) *EdgeIterator {
	it := &EdgeIterator{tour: t, version: t.version}
	if !v.isSingleton() {
		it.node = findRootMin(v)
	}
	return it
}

func (it *EdgeIterator) checkVersion(op string) {
	if it.tour.version != it.version {
		panicContract(op, "tour was structurally modified during iteration")
	}
}

// Next advances the iterator and reports whether a half-edge is available
// via HalfEdge.
//
// Panics:
//   - *ContractError if the owning Tour was mutated since the iterator was
//     created.
func (it *EdgeIterator) Next() bool {
	it.checkVersion("EdgeIterator.Next")

	if it.node == nil {
		it.exhausted = true
		return false
	}
	it.current = payloadOf(it.node)
	it.node = treap.Next(it.node)
	it.started = true
	return true
}

// HalfEdge returns the half-edge produced by the most recent call to Next.
//
// Panics:
//   - *ContractError if called before Next, or after Next returned false.
func (it *EdgeIterator) HalfEdge() *HalfEdge {
	if !it.started || it.exhausted {
		panicContract("EdgeIterator.HalfEdge", "iterator is exhausted or unstarted")
	}
	return it.current
}

// Close marks the iterator finished; further calls to Next return false.
func (it *EdgeIterator) Close() {
	it.node = nil
	it.exhausted = true
}

// VertexIterator returns an iterator over v's component in Euler-tour
// order.
//
// Errors:
//   - ErrVertexNotFound if v does not exist.
func (t *Tour) VertexIterator(id VertexID) (*VertexIterator, error) {
	v, ok := t.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return newVertexIterator(t, v), nil
}

// EdgeIterator returns an iterator over v's component's half-edges in
// Euler-tour order.
//
// Errors:
//   - ErrVertexNotFound if v does not exist.
func (t *Tour) EdgeIterator(id VertexID) (*EdgeIterator, error) {
	v, ok := t.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return newEdgeIterator(t, v), nil
}
