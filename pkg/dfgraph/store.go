package dfgraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// GraphStore is an append-only directed graph of DFG nodes, backed by
// gonum's simple.DirectedGraph. It owns every node payload for the
// lifetime of the DFG; there is no removal API.
//
// gonum's node/edge iterators do not guarantee insertion order, which
// the Filter pass and test fixtures rely on (incoming/outgoing edges
// "ordered by insertion" per the data model), so GraphStore keeps a
// side table of insertion-ordered adjacency lists alongside the
// gonum graph.
type GraphStore struct {
	g        *simple.DirectedGraph
	byID     map[int64]*Node
	incoming map[int64][]int64
	outgoing map[int64][]int64
}

// NewGraphStore creates an empty graph store.
func NewGraphStore() *GraphStore {
	return &GraphStore{
		g:        simple.NewDirectedGraph(),
		byID:     make(map[int64]*Node),
		incoming: make(map[int64][]int64),
		outgoing: make(map[int64][]int64),
	}
}

// AddNode appends n to the store. n's identity (its Idx) must already
// be set and unique; AddNode is called exactly once per node by the
// node factory.
func (s *GraphStore) AddNode(n *Node) {
	s.g.AddNode(n)
	s.byID[n.ID()] = n
}

// AddEdge records a dependency edge from -> to. Duplicate edges are
// tolerated: semantics depend only on an edge's presence, so a repeat
// call is a no-op against gonum's edge set but still grows the
// insertion-ordered adjacency lists, matching "multi-edges allowed".
func (s *GraphStore) AddEdge(from, to *Node) {
	s.g.SetEdge(simple.Edge{F: from, T: to})
	s.outgoing[from.ID()] = append(s.outgoing[from.ID()], to.ID())
	s.incoming[to.ID()] = append(s.incoming[to.ID()], from.ID())
}

// Node looks up a node by its creation index.
func (s *GraphStore) Node(id int64) *Node {
	return s.byID[id]
}

// Incoming returns the nodes with an edge into n, in insertion order.
func (s *GraphStore) Incoming(n *Node) []*Node {
	return s.resolve(s.incoming[n.ID()])
}

// Outgoing returns the nodes n has an edge into, in insertion order.
func (s *GraphStore) Outgoing(n *Node) []*Node {
	return s.resolve(s.outgoing[n.ID()])
}

func (s *GraphStore) resolve(ids []int64) []*Node {
	if len(ids) == 0 {
		return nil
	}
	out := make([]*Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.byID[id])
	}
	return out
}

// ReverseDFS visits every node reachable from root by following
// incoming edges, exactly once each, invoking visit on each node in
// the order it is first discovered. root itself is visited first.
func (s *GraphStore) ReverseDFS(root *Node, visit func(*Node)) {
	if root == nil {
		return
	}
	visited := make(map[int64]bool)
	var stack []*Node
	stack = append(stack, root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[n.ID()] {
			continue
		}
		visited[n.ID()] = true
		visit(n)
		preds := s.Incoming(n)
		for i := len(preds) - 1; i >= 0; i-- {
			if !visited[preds[i].ID()] {
				stack = append(stack, preds[i])
			}
		}
	}
}

// underlying exposes the gonum graph for callers that want to run
// gonum algorithms (shortest path, topological sort, ...) over the
// same DAG the DFG built.
func (s *GraphStore) underlying() graph.Directed {
	return s.g
}
