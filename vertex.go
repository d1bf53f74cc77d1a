package eulertour

// VertexID is any comparable, pointer-sized opaque identity supplied by the
// caller. The tour never inspects it beyond identity comparison and map
// lookups; ownership of the value itself stays with the caller (spec §5).
type VertexID = interface{}

// Vertex is one node of the graph tracked by a Tour.
//
// Invariant: leftOut is non-nil iff rightIn is non-nil. A Vertex with both
// nil is a singleton (its own one-vertex component); otherwise it is part
// of a tour of length >= 2, and leftOut/rightIn are the half-edges at which
// it is first and last visited in that tour.
type Vertex struct {
	ID      VertexID
	leftOut *HalfEdge
	rightIn *HalfEdge
	tour    *Tour
}

// isSingleton reports whether v currently has no incident edges.
func (v *Vertex) isSingleton() bool {
	return v.leftOut == nil
}

// incidentFirst returns the treap node of v's first tour occurrence
// (leftOut), or nil for a singleton.
func (v *Vertex) incidentFirst() *treapNode {
	if v.leftOut == nil {
		return nil
	}
	return v.leftOut.node
}

// incidentLast returns the treap node of v's last tour occurrence
// (rightIn), or nil for a singleton.
func (v *Vertex) incidentLast() *treapNode {
	if v.rightIn == nil {
		return nil
	}
	return v.rightIn.node
}
