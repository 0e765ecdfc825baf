package dfgraph

import "errors"

// ErrMissingOperand is returned when a handler pops from an empty
// operand stack. Evaluation of the current token halts, but the DFG
// built so far remains well-formed.
var ErrMissingOperand = errors.New("dfgraph: missing operand")

// ErrInvalidRegister is returned when a token names a register that
// is not present in the DFG's register file.
var ErrInvalidRegister = errors.New("dfgraph: invalid register")
