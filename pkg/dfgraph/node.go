package dfgraph

// Node is a single DFG node: a creation-ordered, immutably-kinded
// payload holding either a literal operand or an accumulated
// operator-sequence fragment.
//
// Node implements gonum's graph.Node interface (ID() int64) so the
// Graph Store can use Node values directly as vertices of a
// gonum.org/v1/gonum/graph/simple.DirectedGraph.
type Node struct {
	idx     int64
	kind    Kind
	content string
}

// Idx returns the node's creation sequence number. Idx values are
// strictly increasing and unique within a DFG.
func (n *Node) Idx() int64 { return n.idx }

// ID satisfies gonum's graph.Node.
func (n *Node) ID() int64 { return n.idx }

// Kind returns the node's tag bitset.
func (n *Node) Kind() Kind { return n.kind }

// Content returns the node's text: a literal operand for leaf-like
// nodes, a comma-led postfix fragment ",op1,op2,...,OP" for operator
// nodes, or unprefixed text for merge nodes ("merge to ...") and flag
// nodes (":(...)").
func (n *Node) Content() string { return n.content }

func (n *Node) String() string {
	return n.content
}
