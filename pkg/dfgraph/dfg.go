// Package dfgraph builds and filters symbolic data-flow graphs for a
// stack-based instruction-semantics expression language: constants,
// registers, and operator applications become graph nodes, and value
// dependencies become edges, so that the symbolic value of any
// register can later be reconstructed as a reduced postfix
// expression.
package dfgraph

import (
	"fmt"
	"io"
	"log"

	"github.com/minz/esildfg/pkg/esilexpr"
	"github.com/minz/esildfg/pkg/regfile"
)

// DFG is a disposable, single-threaded, non-reentrant scratch
// structure accumulating the symbolic evaluation of one or more
// expressions against one register file. It owns every node, edge,
// interval, and symbol-table entry it creates; releasing a DFG is a
// no-op in Go since the garbage collector reclaims it, but Close is
// kept for callers that like an explicit lifetime boundary.
type DFG struct {
	store     *GraphStore
	regs      *regfile.RegisterFile
	intervals *IntervalMap
	symtab    *SymbolTable
	idx       int64
	logger    *log.Logger

	// cur and old hold the most recently written and previously
	// defining register nodes, consulted by the flag operator
	// handlers. eq_weak deliberately does not update them.
	cur *Node
	old *Node
}

// New creates an empty DFG over the given register file. Token-level
// tracing is disabled until SetLogger installs a logger.
func New(regs *regfile.RegisterFile) *DFG {
	return &DFG{
		store:     NewGraphStore(),
		regs:      regs,
		intervals: NewIntervalMap(),
		symtab:    NewSymbolTable(),
		logger:    log.New(io.Discard, "", 0),
	}
}

// SetLogger installs a logger that traces every token evaluated by
// Expr. Passing nil restores the default discarding logger, which is
// how cmd/esildfg turns tracing on only under --verbose.
func (d *DFG) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	d.logger = l
}

// Close releases the DFG. It is a no-op: Go's garbage collector owns
// node payload lifetimes once the DFG becomes unreachable.
func (d *DFG) Close() {}

// Store exposes the underlying graph store, e.g. for callers that
// want to run additional gonum graph algorithms over the built DAG.
func (d *DFG) Store() *GraphStore { return d.store }

func (d *DFG) nextIdx() int64 {
	id := d.idx
	d.idx++
	return id
}

func (d *DFG) newNode(kind Kind, content string) *Node {
	n := &Node{idx: d.nextIdx(), kind: kind, content: content}
	d.store.AddNode(n)
	return n
}

// newLiteralConst implements the two-node NUM resolution pattern: a
// bare literal node feeding a CONST node whose content embeds its own
// creation index.
func (d *DFG) newLiteralConst(text string) *Node {
	lit := d.newNode(0, text)
	c := d.newNode(Const, "")
	c.content = fmt.Sprintf("%s:const_%d", text, c.idx)
	d.store.AddEdge(lit, c)
	return c
}

// registerOrigin lazily materializes and caches the origin VAR node
// for a register name: a raw register-name node feeding a VAR node.
func (d *DFG) registerOrigin(name string) *Node {
	if n, ok := d.symtab.Origin(name); ok {
		return n
	}
	raw := d.newNode(0, name)
	v := d.newNode(Var, "")
	v.content = fmt.Sprintf("%s:var_%d", name, v.idx)
	d.store.AddEdge(raw, v)
	d.symtab.SetOrigin(name, v)
	return v
}

// readRegister reads the current defining node(s) for a register's
// full bit range, synthesizing a merge node when more than one
// interval contributes.
func (d *DFG) readRegister(name string) (*Node, error) {
	desc, ok := d.regs.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRegister, name)
	}
	parts := d.intervals.Read(desc.From, desc.To, func() *Node {
		return d.registerOrigin(name)
	})
	switch len(parts) {
	case 0:
		return nil, nil
	case 1:
		return parts[0], nil
	default:
		id := d.nextIdx()
		g := &Node{idx: id, kind: Generative, content: fmt.Sprintf("merge to %s:var_%d", name, id)}
		d.store.AddNode(g)
		for _, p := range parts {
			d.store.AddEdge(p, g)
		}
		return g, nil
	}
}

func (d *DFG) writeRegister(name string, node *Node) error {
	desc, ok := d.regs.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidRegister, name)
	}
	d.intervals.Write(desc.From, desc.To, node)
	return nil
}

// operandText returns the text an operand token contributes to a
// generative node's content: a numeric literal is rendered through
// its CONST node (so the filtered output shows "0x10:const_3" rather
// than the bare digits), while register names and intermediate-result
// names are embedded as the raw token, since those already are the
// identifiers the filter pass resolves by.
func (d *DFG) operandText(raw string, resolved *Node) string {
	if esilexpr.Classify(raw, d.regs) == esilexpr.KindNum {
		return resolved.content
	}
	return raw
}

// resolveOperand resolves a popped operand token to the node that
// currently defines its value: a register read, a freshly synthesized
// literal+CONST pair, or a symbol-table lookup for an intermediate
// result.
func (d *DFG) resolveOperand(tok string) (*Node, error) {
	switch esilexpr.Classify(tok, d.regs) {
	case esilexpr.KindReg:
		return d.readRegister(tok)
	case esilexpr.KindNum:
		return d.newLiteralConst(tok), nil
	default: // KindInternal
		if n, ok := d.symtab.Result(tok); ok {
			return n, nil
		}
		return nil, fmt.Errorf("%w: unresolved intermediate %q", ErrMissingOperand, tok)
	}
}

// resolveMemDest resolves the destination operand of a memory store:
// a register (read for its current value, e.g. a pointer held in a
// register) or a live intermediate result. Unlike resolveOperand, a
// numeric literal is never accepted here — "5,0x8048000,=[4]" names an
// absolute address that this DFG has no pointer-origin node for, so it
// fails the same way an unbound intermediate-result reference would.
func (d *DFG) resolveMemDest(tok string) (*Node, error) {
	switch esilexpr.Classify(tok, d.regs) {
	case esilexpr.KindReg:
		return d.readRegister(tok)
	case esilexpr.KindInternal:
		if n, ok := d.symtab.Result(tok); ok {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: memory destination %q is not a register or a live intermediate result", ErrMissingOperand, tok)
}

// Expr tokenizes and symbolically executes expr against the DFG,
// dispatching each token as either a stack push (register, literal,
// or intermediate-result name) or a dispatch-table operator.
func (d *DFG) Expr(expr string) error {
	d.logger.Printf("expr %q", expr)
	var stack operandStack
	for _, tok := range esilexpr.Tokenize(expr) {
		h, isOp := dispatch[tok]
		if !isOp {
			d.logger.Printf("  push %q (%v)", tok, esilexpr.Classify(tok, d.regs))
			stack.Push(tok)
			continue
		}
		d.logger.Printf("  dispatch %q (stack depth %d)", tok, stack.Len())
		if err := h(d, tok, &stack); err != nil {
			return fmt.Errorf("token %q: %w", tok, err)
		}
	}
	return nil
}

// Filter performs the filter pass for a register: it reads the
// register's current defining node and reconstructs a reduced
// postfix expression computing it, substituting every intermediate
// result with its defining sub-expression.
func (d *DFG) Filter(reg string) (string, error) {
	root, err := d.readRegister(reg)
	if err != nil {
		return "", err
	}
	if root == nil {
		return "", nil
	}
	return filter(d.store, root), nil
}

// Expr builds (or extends) a DFG from expression text, allocating a
// new DFG if dfg is nil so that multiple expressions may accumulate
// in one DFG.
func Expr(dfg *DFG, regs *regfile.RegisterFile, expr string) (*DFG, error) {
	if dfg == nil {
		dfg = New(regs)
	}
	if err := dfg.Expr(expr); err != nil {
		return dfg, err
	}
	return dfg, nil
}

// FilterExpr builds a DFG from expression text, filters it for reg,
// and discards the DFG.
func FilterExpr(regs *regfile.RegisterFile, expr, reg string) (string, error) {
	d := New(regs)
	defer d.Close()
	if err := d.Expr(expr); err != nil {
		return "", err
	}
	return d.Filter(reg)
}
