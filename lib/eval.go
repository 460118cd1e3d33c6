package lib

import (
	"errors"
	"fmt"
)

// ErrUndefinedAtom is returned when evaluation reaches an atom with no
// numeric value. The parser happily accepts letters as operands, but only
// the digits 0-9 mean anything to the evaluator.
var ErrUndefinedAtom = errors.New("no numeric value for atom")

// Eval walks the tree bottom-up (left child before right) and computes the
// result as a float64. Division follows IEEE 754: dividing by zero yields
// an infinity, or NaN for 0/0, and is not reported as an error.
func Eval(expr Expr) (float64, error) {
	switch e := expr.(type) {
	case Atom:
		if !isDigit(e.Ch) {
			return 0, fmt.Errorf("%w '%c'", ErrUndefinedAtom, e.Ch)
		}
		return float64(e.Ch - '0'), nil

	case BinaryOp:
		left, err := Eval(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := Eval(e.Right)
		if err != nil {
			return 0, err
		}
		return applyOp(e.Op, left, right), nil

	default:
		return 0, fmt.Errorf("cannot evaluate expression of type %T", expr)
	}
}

// The parser only ever builds BinaryOp nodes for operators in its
// precedence table, so anything else here is unreachable.
func applyOp(op rune, left float64, right float64) float64 {
	switch op {
	case '+':
		return left + right
	case '-':
		return left - right
	case '*':
		return left * right
	case '/':
		return left / right
	}
	panic(fmt.Sprintf("operator %c escaped the precedence table", op))
}
