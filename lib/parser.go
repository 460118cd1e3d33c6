package lib

import (
	"errors"
	"fmt"
)

// Parse failures come in three distinct kinds so callers can tell a
// missing operand from a stray atom from an operator the precedence table
// has never heard of. Each is wrapped with the offending token's location,
// so match with errors.Is.
var (
	ErrExpectedAtom     = errors.New("expecting an operand")
	ErrExpectedOperator = errors.New("expecting an operator")
	ErrUnknownOperator  = errors.New("unknown operator")
)

// Parse lexes one line of input and parses it into an expression tree by
// precedence climbing. The lexer runs in its own goroutine and feeds the
// parser through a buffered token stream. Parsing fails fast: the first
// bad token aborts the whole parse and nothing is recovered.
func Parse(input string) (Expr, error) {
	stream := newTokenStream()
	p := parser{reader: stream}
	var lexErr error = nil

	go (func() {
		lexErr = lex(input, stream.Write)
		stream.Done()
	})()

	expr, err := p.parseExpr(0)
	if err != nil {
		// A parse failure stops reading mid-input, which can leave the
		// lexer blocked writing into a full stream. Drain the leftovers
		// so its goroutine can finish.
		stream.drain()
		return nil, err
	}
	return expr, lexErr
}

type parser struct {
	reader tokenReader
}

// parseExpr consumes one operand and then keeps folding infix operators
// into the left-hand side for as long as their left binding power is at
// least minBP. An operator that binds weaker than minBP is left in the
// stream for the enclosing call to pick up.
func (p *parser) parseExpr(minBP float64) (Expr, error) {
	tok, _, err := p.reader.Next()
	if err != nil {
		return nil, err
	}
	if tok.tokType != tokenTypeAtom {
		return nil, fmt.Errorf("%w but got <%s>", ErrExpectedAtom, tokenString(tok))
	}
	var lhs Expr = Atom{Ch: tok.ch}

	for {
		opTok, done, err := p.reader.Peek()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		if opTok.tokType != tokenTypeOp {
			return nil, fmt.Errorf("%w but got <%s>", ErrExpectedOperator, tokenString(opTok))
		}

		leftBP, rightBP, err := infixBindingPower(opTok)
		if err != nil {
			return nil, err
		}
		if leftBP < minBP {
			break
		}

		_, _, err = p.reader.Next()
		if err != nil {
			return nil, err
		}

		rhs, err := p.parseExpr(rightBP)
		if err != nil {
			return nil, err
		}

		lhs = BinaryOp{Op: opTok.ch, Left: lhs, Right: rhs}
	}

	return lhs, nil
}

// infixBindingPower is the whole precedence table. The right half of each
// pair is a notch above the left half, which is what makes same-tier
// operators associate to the left: the recursive call for a right-hand
// side demands strictly more binding power than the operator just applied.
func infixBindingPower(tok token) (left float64, right float64, err error) {
	switch tok.ch {
	case '+', '-':
		return 1.0, 1.1, nil
	case '*', '/':
		return 2.0, 2.1, nil
	}
	return 0, 0, fmt.Errorf("%w at <%s>", ErrUnknownOperator, tokenString(tok))
}

func tokenString(tok token) string {
	return fmt.Sprintf(
		"%d:%d -> %s",
		tok.location.line,
		tok.location.col,
		tokenValueString(tok))
}

func tokenValueString(tok token) string {
	switch tok.tokType {
	case tokenTypeAtom:
		return fmt.Sprintf("atom: %c", tok.ch)
	case tokenTypeOp:
		return fmt.Sprintf("op: %c", tok.ch)
	case tokenTypeEndOfInput:
		return "end of input"
	default:
		return "?"
	}
}
