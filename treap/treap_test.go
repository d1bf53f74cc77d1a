package treap

import (
	"math/rand"
	"testing"
)

// testPayload is a minimal treap.Payload used only by this package's own
// tests (see node.go — the marker exists purely to prevent an import cycle;
// the only other implementation is the real half-edge type).
type testPayload struct{ label string }

func (*testPayload) IsTreapPayload() {}

func newTestNode(rng *rand.Rand, label string) *Node {
	return New(&testPayload{label: label}, rng)
}

func labelOf(n *Node) string {
	if n == nil {
		return ""
	}
	return n.Value().(*testPayload).label
}

// buildChain concatenates n freshly-built singleton nodes, in order, and
// returns the resulting root plus the nodes themselves (in in-order
// position order).
func buildChain(rng *rand.Rand, labels ...string) (*Node, []*Node) {
	nodes := make([]*Node, len(labels))
	for i, l := range labels {
		nodes[i] = newTestNode(rng, l)
	}
	var root *Node
	for _, n := range nodes {
		root = Concat(root, n)
	}
	_ = root
	return FindRoot(nodes[0]), nodes
}

func TestConcatOrdersInOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, nodes := buildChain(rng, "a", "b", "c", "d", "e")

	for i := 0; i < len(nodes); i++ {
		for j := 0; j < len(nodes); j++ {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := Compare(nodes[i], nodes[j]); got != want {
				t.Fatalf("Compare(%s,%s) = %d, want %d", labelOf(nodes[i]), labelOf(nodes[j]), got, want)
			}
		}
	}

	root := FindRoot(nodes[0])
	if FindMin(root) != nodes[0] {
		t.Fatalf("FindMin mismatch")
	}
	if FindMax(root) != nodes[len(nodes)-1] {
		t.Fatalf("FindMax mismatch")
	}
	if Size(root) != len(nodes) {
		t.Fatalf("Size(root) = %d, want %d", Size(root), len(nodes))
	}
}

func TestNextPrevWalkChain(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	_, nodes := buildChain(rng, "a", "b", "c", "d")

	for i, n := range nodes {
		var wantNext, wantPrev *Node
		if i+1 < len(nodes) {
			wantNext = nodes[i+1]
		}
		if i > 0 {
			wantPrev = nodes[i-1]
		}
		if got := Next(n); got != wantNext {
			t.Fatalf("Next(%s) = %v, want %v", labelOf(n), labelOf(got), labelOf(wantNext))
		}
		if got := Prev(n); got != wantPrev {
			t.Fatalf("Prev(%s) = %v, want %v", labelOf(n), labelOf(got), labelOf(wantPrev))
		}
	}
}

func TestSplitBeforeAndAfter(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	_, nodes := buildChain(rng, "a", "b", "c", "d", "e")
	mid := nodes[2] // "c"

	before := SplitBefore(mid)
	if Size(before) != 2 {
		t.Fatalf("Size(before) = %d, want 2", Size(before))
	}
	if FindMin(before) != nodes[0] || FindMax(before) != nodes[1] {
		t.Fatalf("before part is not {a,b}")
	}

	remainder := FindRoot(mid)
	if FindRoot(before) == remainder {
		t.Fatalf("split halves must not share a root")
	}
	if FindMin(remainder) != mid {
		t.Fatalf("remainder does not start at split point")
	}
	if Size(remainder) != 3 {
		t.Fatalf("Size(remainder) = %d, want 3", Size(remainder))
	}

	after := SplitAfter(nodes[3]) // "d"
	if Size(after) != 1 {
		t.Fatalf("Size(after) = %d, want 1 (just 'e')", Size(after))
	}
	if FindRoot(after) == FindRoot(mid) {
		t.Fatalf("split halves must not share a root")
	}
	if Size(FindRoot(mid)) != 2 {
		t.Fatalf("mid side should now hold {c,d}")
	}
	if FindMax(FindRoot(mid)) != nodes[3] {
		t.Fatalf("mid side should end at 'd'")
	}
}

func TestSplitAtBoundaries(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	_, nodes := buildChain(rng, "a", "b", "c")

	// Splitting before the first node yields an empty "before" part.
	if before := SplitBefore(nodes[0]); before != nil {
		t.Fatalf("SplitBefore(first) = %v, want nil", labelOf(before))
	}
	if Size(FindRoot(nodes[0])) != 3 {
		t.Fatalf("tree should be untouched by a boundary split")
	}

	// Splitting after the last node yields an empty "after" part.
	if after := SplitAfter(nodes[2]); after != nil {
		t.Fatalf("SplitAfter(last) = %v, want nil", labelOf(after))
	}
	if Size(FindRoot(nodes[0])) != 3 {
		t.Fatalf("tree should be untouched by a boundary split")
	}
}

func TestConcatRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	_, nodes := buildChain(rng, "a", "b", "c", "d")

	left := SplitBefore(nodes[2])
	rejoined := Concat(left, nodes[2])
	if Size(rejoined) != 4 {
		t.Fatalf("Size after round-trip concat = %d, want 4", Size(rejoined))
	}
	for i, n := range nodes {
		if FindRoot(n) != rejoined {
			t.Fatalf("node %d lost its root after round-trip", i)
		}
	}
	if FindMin(rejoined) != nodes[0] || FindMax(rejoined) != nodes[3] {
		t.Fatalf("round-trip concat did not preserve order")
	}
}

func TestSingleNodeTree(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	n := newTestNode(rng, "solo")

	if FindRoot(n) != n {
		t.Fatalf("FindRoot(solo) != solo")
	}
	if Size(n) != 1 {
		t.Fatalf("Size(solo) = %d, want 1", Size(n))
	}
	if Next(n) != nil || Prev(n) != nil {
		t.Fatalf("a singleton has no neighbors")
	}
	if SplitBefore(n) != nil || SplitAfter(n) != nil {
		t.Fatalf("splitting a singleton yields no extra part")
	}
}
