package dfgraph

// Kind is a bitset tagging what a Node represents. Nodes may combine
// tags, notably Result|Var and Result|Generative.
type Kind uint8

const (
	// Const tags a literal numeric value introduced on the stack.
	Const Kind = 1 << iota
	// Var tags the current symbolic value of a register sub-range or
	// a memory-backed variable.
	Var
	// Ptr marks a node whose value is used as a memory address.
	Ptr
	// Generative tags an operator application.
	Generative
	// Result tags an intermediate pushed back on the stack as a
	// named operand.
	Result
)

// Has reports whether k includes every bit set in want.
func (k Kind) Has(want Kind) bool {
	return k&want == want
}

// Any reports whether k includes at least one bit set in want.
func (k Kind) Any(want Kind) bool {
	return k&want != 0
}

func (k Kind) String() string {
	if k == 0 {
		return "none"
	}
	order := []struct {
		bit  Kind
		name string
	}{
		{Const, "const"},
		{Var, "var"},
		{Ptr, "ptr"},
		{Generative, "generative"},
		{Result, "result"},
	}
	var parts []string
	for _, o := range order {
		if k.Any(o.bit) {
			parts = append(parts, o.name)
		}
	}
	s := parts[0]
	for _, p := range parts[1:] {
		s += "|" + p
	}
	return s
}
