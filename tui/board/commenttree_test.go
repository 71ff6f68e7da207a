package board

import (
	"testing"

	"github.com/llmit/llmit-term/domain"
)

func TestFlattenComments_PreOrderWithDepth(t *testing.T) {
	nodes := FlattenComments(sampleThread(42))

	wantIDs := []int64{1, 2, 3, 4}
	wantDepths := []int{0, 1, 2, 0}
	if len(nodes) != len(wantIDs) {
		t.Fatalf("expected %d nodes, got %d", len(wantIDs), len(nodes))
	}
	for i, n := range nodes {
		if n.Comment.ID != wantIDs[i] || n.Depth != wantDepths[i] {
			t.Fatalf("node %d = (id %d, depth %d), want (id %d, depth %d)",
				i, n.Comment.ID, n.Depth, wantIDs[i], wantDepths[i])
		}
	}
}

func TestFlattenComments_NodeCountMatchesTree(t *testing.T) {
	forests := [][]domain.Comment{
		nil,
		{},
		sampleThread(1),
		{{ID: 1, Children: nil}, {ID: 2, Children: []domain.Comment{}}},
	}
	for i, f := range forests {
		if got, want := len(FlattenComments(f)), domain.CountComments(f); got != want {
			t.Fatalf("forest %d: %d nodes, want %d", i, got, want)
		}
	}
}

func TestFlattenComments_ChildIndentedBeyondAncestors(t *testing.T) {
	nodes := FlattenComments(sampleThread(1))

	// Ancestors of a node are the nearest preceding nodes at each
	// shallower depth.
	for i, n := range nodes {
		want := n.Depth - 1
		for j := i - 1; j >= 0 && want >= 0; j-- {
			if nodes[j].Depth != want {
				continue
			}
			if CommentIndent(n.Depth) <= CommentIndent(nodes[j].Depth) {
				t.Fatalf("comment %d not indented past ancestor %d", n.Comment.ID, nodes[j].Comment.ID)
			}
			want--
		}
	}
}

func TestFlattenComments_DeepChainDoesNotRecurse(t *testing.T) {
	const depth = 20000
	root := domain.Comment{ID: depth}
	for i := depth - 1; i >= 1; i-- {
		root = domain.Comment{ID: int64(i), Children: []domain.Comment{root}}
	}

	nodes := FlattenComments([]domain.Comment{root})
	if len(nodes) != depth {
		t.Fatalf("expected %d nodes, got %d", depth, len(nodes))
	}
	if last := nodes[len(nodes)-1]; last.Depth != depth-1 || last.Comment.ID != depth {
		t.Fatalf("unexpected deepest node: id %d depth %d", last.Comment.ID, last.Depth)
	}
}

func TestCommentIndent(t *testing.T) {
	if CommentIndent(0) != 0 {
		t.Fatalf("roots have no offset")
	}
	if CommentIndent(-1) != 0 {
		t.Fatalf("negative depth clamps to zero")
	}
	for d := 1; d < 6; d++ {
		if CommentIndent(d) <= CommentIndent(d-1) {
			t.Fatalf("indent not strictly increasing at depth %d", d)
		}
	}
}
