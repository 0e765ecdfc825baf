package dfgraph

// SymbolTable maps intermediate-result names and register origin
// names to their graph nodes. A register's bit-range descriptor is
// immutable after DFG construction and already lives in the register
// file handed to dfg.New, so it is served directly from there rather
// than duplicated here; SymbolTable keeps only the two namespaces
// that are actually mutated during evaluation: per-register origin
// VAR nodes (lazily populated) and intermediate-result names bound to
// their RESULT nodes.
type SymbolTable struct {
	origins map[string]*Node
	results map[string]*Node
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		origins: make(map[string]*Node),
		results: make(map[string]*Node),
	}
}

// Origin returns the cached origin VAR node for a register name, if
// one has been materialized yet.
func (t *SymbolTable) Origin(reg string) (*Node, bool) {
	n, ok := t.origins[reg]
	return n, ok
}

// SetOrigin binds a register's origin VAR node. Returns true: a Go
// map insert cannot fail short of process-fatal allocation exhaustion.
func (t *SymbolTable) SetOrigin(reg string, n *Node) bool {
	t.origins[reg] = n
	return true
}

// Result returns the RESULT node bound to an intermediate-result
// name, if it is still live.
func (t *SymbolTable) Result(name string) (*Node, bool) {
	n, ok := t.results[name]
	return n, ok
}

// SetResult binds an intermediate-result name to its RESULT node.
func (t *SymbolTable) SetResult(name string, n *Node) bool {
	t.results[name] = n
	return true
}
