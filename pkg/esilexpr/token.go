// Package esilexpr provides the minimal tokenizer and operand
// classifier that the symbolic stack machine assumes as an external
// collaborator: split postfix expression text into comma/whitespace
// separated tokens, and classify each operand as a register read, a
// numeric literal, or a reference to a previously pushed intermediate
// result.
package esilexpr

import (
	"strconv"
	"strings"

	"github.com/minz/esildfg/pkg/regfile"
)

// Kind classifies a token popped off the symbolic stack.
type Kind int

const (
	// KindOperator is a dispatch-table token such as "+=" or "$z".
	KindOperator Kind = iota
	// KindReg is a register alias name.
	KindReg
	// KindNum is a numeric literal (decimal or 0x-prefixed hex).
	KindNum
	// KindInternal is an intermediate-result name such as "result_7".
	KindInternal
)

// Tokenize splits postfix expression text on commas and whitespace,
// dropping empty tokens. This is the "assumed" tokenizer contract:
// the expression language's real parser/tokenizer is out of scope.
func Tokenize(expr string) []string {
	fields := strings.FieldsFunc(expr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	return fields
}

// Classify determines whether tok is a register name, a numeric
// literal, or an intermediate-result reference, given the register
// file in scope. Operator tokens are never passed to Classify; the
// stack machine recognizes them against its dispatch table first.
func Classify(tok string, rf *regfile.RegisterFile) Kind {
	if rf != nil && rf.Has(tok) {
		return KindReg
	}
	if IsNumeric(tok) {
		return KindNum
	}
	return KindInternal
}

// IsNumeric reports whether tok parses as a decimal or 0x-prefixed
// hexadecimal integer literal.
func IsNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	s := tok
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		_, err := strconv.ParseInt(s[2:], 16, 64)
		return err == nil
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}
