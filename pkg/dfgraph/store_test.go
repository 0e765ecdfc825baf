package dfgraph

import (
	"reflect"
	"testing"
)

func TestGraphStoreInsertionOrder(t *testing.T) {
	s := NewGraphStore()
	a, b, c := &Node{idx: 0}, &Node{idx: 1}, &Node{idx: 2}
	s.AddNode(a)
	s.AddNode(b)
	s.AddNode(c)

	// b then a, in that call order: Incoming must preserve it even
	// though gonum's own edge iteration order is unspecified.
	s.AddEdge(b, c)
	s.AddEdge(a, c)

	got := s.Incoming(c)
	want := []*Node{b, a}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Incoming(c) = %v, want %v", got, want)
	}

	if got := s.Outgoing(a); !reflect.DeepEqual(got, []*Node{c}) {
		t.Errorf("Outgoing(a) = %v, want [c]", got)
	}
}

func TestGraphStoreReverseDFSVisitsEachNodeOnce(t *testing.T) {
	s := NewGraphStore()
	a, b, c, root := &Node{idx: 0}, &Node{idx: 1}, &Node{idx: 2}, &Node{idx: 3}
	for _, n := range []*Node{a, b, c, root} {
		s.AddNode(n)
	}
	// Diamond: a and b both feed root, c feeds both a and b.
	s.AddEdge(c, a)
	s.AddEdge(c, b)
	s.AddEdge(a, root)
	s.AddEdge(b, root)

	var visited []*Node
	s.ReverseDFS(root, func(n *Node) { visited = append(visited, n) })

	if len(visited) != 4 {
		t.Fatalf("ReverseDFS visited %d nodes, want 4 (no duplicate visit of c)", len(visited))
	}
	if visited[0] != root {
		t.Errorf("ReverseDFS must visit root first, got %v first", visited[0])
	}
	seen := make(map[int64]bool)
	for _, n := range visited {
		if seen[n.ID()] {
			t.Fatalf("node %d visited twice", n.ID())
		}
		seen[n.ID()] = true
	}
}

func TestGraphStoreNodeLookup(t *testing.T) {
	s := NewGraphStore()
	n := &Node{idx: 7}
	s.AddNode(n)
	if got := s.Node(7); got != n {
		t.Errorf("Node(7) = %v, want %v", got, n)
	}
	if got := s.Node(8); got != nil {
		t.Errorf("Node(8) = %v, want nil", got)
	}
}
