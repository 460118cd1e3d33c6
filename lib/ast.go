package lib

import "fmt"

// Expr is a parsed arithmetic expression. There are exactly two kinds of
// node: a single-character atom at the leaves and a binary operator
// everywhere else. Trees are built bottom-up by the parser and never
// change afterwards.
type Expr interface {
	isExpr()
}

func (a Atom) isExpr()     {}
func (b BinaryOp) isExpr() {}

// Atom is a leaf holding the literal operand character. The lexer accepts
// any digit or letter here; only digits have a defined numeric value.
type Atom struct {
	Ch rune
}

// BinaryOp applies Op to exactly two sub-expressions.
type BinaryOp struct {
	Op    rune
	Left  Expr
	Right Expr
}

func (a Atom) String() string {
	return string(a.Ch)
}

func (b BinaryOp) String() string {
	return fmt.Sprintf("(%c %s %s)", b.Op, b.Left, b.Right)
}

// Render formats an expression in fully parenthesized prefix form, e.g.
// "1+2*3" renders as "(+ 1 (* 2 3))". The output is canonical: any two
// inputs that parse to the same tree render identically.
func Render(expr Expr) string {
	return fmt.Sprintf("%v", expr)
}
