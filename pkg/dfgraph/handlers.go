package dfgraph

import "fmt"

// handler is the signature every dispatch-table entry implements: pop
// whatever operands the operator needs from stack, synthesize graph
// nodes, and push whatever result the operator produces.
type handler func(d *DFG, op string, stack *operandStack) error

// dispatch is the expression language's token -> handler table.
// Every token appears exactly once; ^= and >>> are registered a
// single time each.
var dispatch = map[string]handler{
	"=":  consume2SetReg(true),
	":=": eqWeak,

	"+=": consume2SetReg(false),
	"-=": consume2SetReg(false),
	"*=": consume2SetReg(false),
	"/=": consume2SetReg(false),
	"&=": consume2SetReg(false),
	"|=": consume2SetReg(false),
	"^=": consume2SetReg(false),

	"+":   consume2Push1,
	"-":   consume2Push1,
	"*":   consume2Push1,
	"/":   consume2Push1,
	"%":   consume2Push1,
	"&":   consume2Push1,
	"|":   consume2Push1,
	"^":   consume2Push1,
	">>":  consume2Push1,
	"<<":  consume2Push1,
	">>>": consume2Push1,

	"!": consume1Push1,

	"[1]":  consume1Push1,
	"[2]":  consume1Push1,
	"[4]":  consume1Push1,
	"[8]":  consume1Push1,
	"[16]": consume1Push1,

	"=[1]": consume2SetMem,
	"=[2]": consume2SetMem,
	"=[4]": consume2SetMem,
	"=[8]": consume2SetMem,

	"$z": useNewPush1,
	"$p": useNewPush1,

	"$c": consume1UseOldNewPush1,
	"$b": consume1UseOldNewPush1,
}

// OperatorCount returns how many distinct operator tokens the stack
// machine recognizes, for callers that want to report it (cmd/esildfg
// surfaces it through pkg/version's build info).
func OperatorCount() int {
	return len(dispatch)
}

func pushResult(d *DFG, stack *operandStack, r *Node) {
	d.symtab.SetResult(r.content, r)
	stack.Push(r.content)
}

// consume1Push1 handles unary operators and unary-arity memory reads
// ([1], [2], [4], [8], [16]): pop one operand, synthesize a
// generative node and its result, push the result name.
func consume1Push1(d *DFG, op string, stack *operandStack) error {
	s, ok := stack.Pop()
	if !ok {
		return ErrMissingOperand
	}
	sNode, err := d.resolveOperand(s)
	if err != nil {
		return err
	}
	g := d.newNode(Result|Generative, fmt.Sprintf(",%s,%s", d.operandText(s, sNode), op))
	d.store.AddEdge(sNode, g)

	r := d.newNode(Result, "")
	r.content = fmt.Sprintf("result_%d", r.idx)
	d.store.AddEdge(g, r)

	pushResult(d, stack, r)
	return nil
}

// consume2Push1 handles binary math operators. The two operands are
// popped top-first (last pushed first) but resolved and rendered in
// source order, so "1,2,+" reads as "1,2,+" in the generative
// fragment and "1" claims the lower-numbered CONST node, matching the
// left-to-right reading of the original postfix expression.
func consume2Push1(d *DFG, op string, stack *operandStack) error {
	second, ok := stack.Pop() // last pushed: right-hand operand
	if !ok {
		return ErrMissingOperand
	}
	first, ok := stack.Pop() // pushed earlier: left-hand operand
	if !ok {
		return ErrMissingOperand
	}
	firstNode, err := d.resolveOperand(first)
	if err != nil {
		return err
	}
	secondNode, err := d.resolveOperand(second)
	if err != nil {
		return err
	}

	g := d.newNode(Result|Generative, fmt.Sprintf(",%s,%s,%s",
		d.operandText(first, firstNode), d.operandText(second, secondNode), op))
	d.store.AddEdge(firstNode, g)
	d.store.AddEdge(secondNode, g)

	r := d.newNode(Result, "")
	r.content = fmt.Sprintf("result_%d", r.idx)
	d.store.AddEdge(g, r)

	pushResult(d, stack, r)
	return nil
}

// consume2SetReg returns the register-write handler for useOrigin
// true (plain "=") or false (the arithmetic-assignment family).
func consume2SetReg(useOrigin bool) handler {
	return func(d *DFG, op string, stack *operandStack) error {
		_, old, err := setReg(d, op, stack, useOrigin)
		if err != nil {
			return err
		}
		d.old = old
		return nil
	}
}

// eqWeak implements ":=": structurally identical to consume2SetReg
// with useOrigin=true, but the prior cur/old references survive, so a
// flag set by an earlier write still refers to its original operands.
func eqWeak(d *DFG, op string, stack *operandStack) error {
	savedCur, savedOld := d.cur, d.old
	if _, _, err := setReg(d, op, stack, true); err != nil {
		return err
	}
	d.cur, d.old = savedCur, savedOld
	return nil
}

// setReg implements the shared body of consume_2_set_reg: pop dst
// then src, resolve src, obtain the prior dst node (origin or READ),
// build the generative+VAR-result nodes, WRITE the result back, and
// update d.cur. Returns the new result node and the prior dst node
// ("old") so callers decide whether to keep them.
func setReg(d *DFG, op string, stack *operandStack, useOrigin bool) (r, old *Node, err error) {
	dst, ok := stack.Pop()
	if !ok {
		return nil, nil, ErrMissingOperand
	}
	src, ok := stack.Pop()
	if !ok {
		return nil, nil, ErrMissingOperand
	}
	if !d.regs.Has(dst) {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidRegister, dst)
	}

	srcNode, err := d.resolveOperand(src)
	if err != nil {
		return nil, nil, err
	}

	var dstNode *Node
	if useOrigin {
		dstNode = d.registerOrigin(dst)
	} else {
		dstNode, err = d.readRegister(dst)
		if err != nil {
			return nil, nil, err
		}
	}
	old = dstNode

	g := d.newNode(Generative, fmt.Sprintf(",%s,%s,%s", d.operandText(src, srcNode), dst, op))
	d.store.AddEdge(dstNode, g)
	d.store.AddEdge(srcNode, g)

	r = d.newNode(Result|Var, "")
	r.content = fmt.Sprintf("%s:var_%d", dst, r.idx)
	d.store.AddEdge(g, r)

	if err := d.writeRegister(dst, r); err != nil {
		return nil, nil, err
	}
	d.cur = r
	return r, old, nil
}

// consume2SetMem implements the memory-store family ("=[N]"): same
// shape as consume_2_set_reg but the destination is an address, not a
// register range, so no interval-map write happens. The destination
// is resolved through resolveMemDest, not resolveOperand: a literal
// address (e.g. "5,0x8048000,=[4]") has no pointer-origin node to
// synthesize and surfaces ErrMissingOperand rather than silently
// succeeding against a bogus CONST "address" node.
func consume2SetMem(d *DFG, op string, stack *operandStack) error {
	dst, ok := stack.Pop()
	if !ok {
		return ErrMissingOperand
	}
	src, ok := stack.Pop()
	if !ok {
		return ErrMissingOperand
	}

	dstNode, err := d.resolveMemDest(dst)
	if err != nil {
		return err
	}
	srcNode, err := d.resolveOperand(src)
	if err != nil {
		return err
	}

	g := d.newNode(Generative, fmt.Sprintf(",%s,%s,%s",
		d.operandText(src, srcNode), d.operandText(dst, dstNode), op))
	d.store.AddEdge(dstNode, g)
	d.store.AddEdge(srcNode, g)

	r := d.newNode(Result|Var, "")
	r.content = fmt.Sprintf(":var_mem_%d", r.idx)
	d.store.AddEdge(g, r)
	return nil
}

// useNewPush1 implements the zero/parity flag operators ($z, $p):
// zero pops, one push, the constraint is synthesized from d.cur.
func useNewPush1(d *DFG, op string, stack *operandStack) error {
	if d.cur == nil {
		return fmt.Errorf("%w: %s with no preceding write", ErrMissingOperand, op)
	}
	var content string
	switch op {
	case "$z":
		content = fmt.Sprintf(":(%s==0)", d.cur.content)
	case "$p":
		content = fmt.Sprintf(":parity_of(%s)", d.cur.content)
	}

	g := d.newNode(Generative, content)
	d.store.AddEdge(d.cur, g)

	r := d.newNode(Result, "")
	r.content = fmt.Sprintf("result_%d", r.idx)
	d.store.AddEdge(g, r)

	pushResult(d, stack, r)
	return nil
}

// consume1UseOldNewPush1 implements the carry/borrow flag operators
// ($c, $b): pop a width, one push, the constraint is synthesized from
// d.cur and d.old.
func consume1UseOldNewPush1(d *DFG, op string, stack *operandStack) error {
	w, ok := stack.Pop()
	if !ok {
		return ErrMissingOperand
	}
	if d.cur == nil || d.old == nil {
		return fmt.Errorf("%w: %s with no preceding write", ErrMissingOperand, op)
	}
	wNode, err := d.resolveOperand(w)
	if err != nil {
		return err
	}

	var content string
	switch op {
	case "$c":
		content = fmt.Sprintf(":((%s&mask(%s&0x3f))<(%s&mask(%s&0x3f)))",
			d.cur.content, w, d.old.content, w)
	case "$b":
		content = fmt.Sprintf(":((%s&mask((%s+0x3f)&0x3f))<(%s&mask((%s+0x3f)&0x3f)))",
			d.old.content, w, d.cur.content, w)
	}

	g := d.newNode(Generative, content)
	d.store.AddEdge(d.cur, g)
	d.store.AddEdge(d.old, g)
	d.store.AddEdge(wNode, g)

	r := d.newNode(Result, "")
	r.content = fmt.Sprintf("result_%d", r.idx)
	d.store.AddEdge(g, r)

	pushResult(d, stack, r)
	return nil
}
