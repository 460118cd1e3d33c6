package lib

type tokenType int

// The zero value of token is the end-of-input sentinel. The lexer never
// emits one; the token stream hands it back once the input is exhausted.
const (
	tokenTypeEndOfInput tokenType = iota
	tokenTypeAtom
	tokenTypeOp
)

type charLocation struct {
	line int
	col  int
}

type token struct {
	tokType  tokenType
	ch       rune
	location charLocation
}
