// SPDX-License-Identifier: MIT

// Package eulertour implements a dynamic connectivity structure for
// undirected graphs: an Euler-Tour Tree (ETT) over a treap of half-edges.
//
// Given a fixed vertex set and a changing edge set, a Tour answers, online:
//
//   - Connected(u, v)  — are u and v in the same component?
//   - Link(u, v)       — add an edge between disconnected vertices.
//   - Cut(u, v)        — remove an edge, possibly splitting a component.
//   - Size/FindRoot/ComponentVertices — component introspection.
//   - VertexIterator/EdgeIterator     — ordered traversal of a component's
//     Euler tour.
//
// All operations run in expected O(log N) amortized, where N is the number
// of edges in the vertex's current component, except iteration (O(component
// size)). The structure is single-threaded: Tour methods must not be called
// concurrently from multiple goroutines, and there is no persistence layer.
//
// Errors:
//
//	ErrVertexNotFound — vertex ID was never created or was already removed.
//	ErrVertexExists   — CreateVertex called on an existing ID.
//	ErrEdgeNotFound   — Cut referenced a pair with no edge.
//
// Broken preconditions (linking connected vertices, removing a non-singleton
// vertex, advancing an invalidated iterator) panic with *ContractError
// rather than returning an error — per spec, these are caller bugs, not
// recoverable conditions. Cutting a pair with no edge between them does not
// panic: Cut returns ErrEdgeNotFound.
package eulertour

import (
	"math/rand"

	"github.com/katalvlaran/eulertour/treap"
)

// Tour owns the vertex map, the edge container, the component counter, and
// the shared deterministic RNG used to draw treap priorities for every
// half-edge it creates.
type Tour struct {
	vertices map[VertexID]*Vertex
	edges    *edgeSet
	rng      *rand.Rand
	seed     int64

	nComponents int
	version     uint64 // bumped on every structural mutation; see iterator.go
}

// New creates an empty Tour. By default its treap priorities are drawn from
// a fixed deterministic seed; pass WithSeed to choose a different one.
//
// Complexity: O(1).
func New(opts ...Option) *Tour {
	t := &Tour{
		vertices: make(map[VertexID]*Vertex),
		edges:    newEdgeSet(),
	}
	for _, opt := range opts {
		opt(t)
	}
	seed := t.seed
	if seed == 0 {
		seed = defaultSeed
	}
	t.rng = rand.New(rand.NewSource(seed))
	return t
}

// CreateVertex allocates a singleton vertex with identity id.
//
// Errors:
//   - ErrVertexExists if id is already present.
//
// Complexity: O(1).
func (t *Tour) CreateVertex(id VertexID) error {
	if _, exists := t.vertices[id]; exists {
		return ErrVertexExists
	}
	t.vertices[id] = &Vertex{ID: id, tour: t}
	t.nComponents++
	t.version++
	return nil
}

// RemoveVertex deletes vertex id. The vertex must already be a singleton;
// removing one with incident edges is a contract violation (cut them
// first).
//
// Errors:
//   - ErrVertexNotFound if id does not exist.
//
// Panics:
//   - *ContractError if the vertex is not currently a singleton.
//
// Complexity: O(1).
func (t *Tour) RemoveVertex(id VertexID) error {
	v, ok := t.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	if !v.isSingleton() {
		panicContract("RemoveVertex", "vertex %v still has incident edges", id)
	}
	delete(t.vertices, id)
	t.nComponents--
	t.version++
	return nil
}

// Vertex returns the vertex record for id, or (nil, false) if it was never
// created or has since been removed. This is the "not-found is an empty
// option, not an error" path described by spec §7.
//
// Complexity: O(1).
func (t *Tour) Vertex(id VertexID) (*Vertex, bool) {
	v, ok := t.vertices[id]
	return v, ok
}

// NComponents returns the current number of connected components
// (singletons plus non-singleton tours).
//
// Complexity: O(1).
func (t *Tour) NComponents() int {
	return t.nComponents
}

// Connected reports whether u and v currently belong to the same
// component.
//
// Errors:
//   - ErrVertexNotFound if either id does not exist.
//
// Complexity: expected O(log N).
func (t *Tour) Connected(u, v VertexID) (bool, error) {
	uv, ok := t.vertices[u]
	if !ok {
		return false, ErrVertexNotFound
	}
	vv, ok := t.vertices[v]
	if !ok {
		return false, ErrVertexNotFound
	}
	return connected(uv, vv), nil
}

// connected implements spec §4.3 directly on vertex records, without error
// plumbing, for reuse by Link/Cut's own precondition checks.
func connected(u, v *Vertex) bool {
	if u == v {
		return true
	}
	un, vn := u.incidentFirst(), v.incidentFirst()
	if un == nil || vn == nil {
		return false
	}
	return treap.FindRoot(un) == treap.FindRoot(vn)
}

// Size returns the number of vertices in v's current component.
//
// Errors:
//   - ErrVertexNotFound if v does not exist.
//
// Complexity: expected O(log N).
func (t *Tour) Size(id VertexID) (int, error) {
	v, ok := t.vertices[id]
	if !ok {
		return 0, ErrVertexNotFound
	}
	if v.isSingleton() {
		return 1, nil
	}
	return treap.Size(treap.FindRoot(v.incidentFirst()))/2 + 1, nil
}

// FindRoot returns the tour's starting vertex — the vertex at the minimum
// Euler-tour position in v's component — or (nil, false, nil) if v is a
// singleton.
//
// Errors:
//   - ErrVertexNotFound if v does not exist.
//
// Complexity: expected O(log N).
func (t *Tour) FindRoot(id VertexID) (VertexID, bool, error) {
	v, ok := t.vertices[id]
	if !ok {
		return nil, false, ErrVertexNotFound
	}
	minNode := findRootMin(v)
	if minNode == nil {
		return nil, false, nil
	}
	return payloadOf(minNode).from.ID, true, nil
}

// findRootMin returns the minimum treap node of v's tour (the Euler tour's
// starting position), or nil if v is a singleton.
func findRootMin(v *Vertex) *treapNode {
	n := v.incidentFirst()
	if n == nil {
		return nil
	}
	return treap.FindMin(treap.FindRoot(n))
}

// ComponentVertices returns every vertex in v's component exactly once, in
// tour order.
//
// Errors:
//   - ErrVertexNotFound if v does not exist.
//
// Complexity: O(component size).
func (t *Tour) ComponentVertices(id VertexID) ([]VertexID, error) {
	v, ok := t.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	size, _ := t.Size(id)
	out := make([]VertexID, 0, size)
	it := newVertexIterator(t, v)
	for it.Next() {
		out = append(out, it.Vertex())
	}
	return out, nil
}
