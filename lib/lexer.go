package lib

type charInfo struct {
	ch       rune
	location charLocation
}

// lex scans the input one rune at a time and emits a token per meaningful
// character. Whitespace is dropped. Digits and letters become atom tokens,
// every other character becomes an operator token; whether an operator is
// actually one the parser understands is decided later.
func lex(input string, emit func(token)) error {
	l := newLexer(input, emit)
	return l.scan()
}

type lexer struct {
	input            []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
	emitCallback     func(token)
}

func newLexer(input string, emit func(token)) *lexer {
	runes := []rune(input)
	return &lexer{
		input:            runes,
		length:           len(runes),
		currentCharIndex: 0,
		currentLocation:  charLocation{line: 1, col: 1},
		emitCallback:     emit,
	}
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.input[i], location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	l.currentCharIndex++
	if info.ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return info, ok
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	chInfo, ok := l.advance()
	if !ok {
		return false, nil
	}
	ch := chInfo.ch

	switch {
	case isWhitespace(ch):
		// eat it
	case isDigit(ch) || isLetter(ch):
		l.emitCallback(token{tokType: tokenTypeAtom, ch: ch, location: chInfo.location})
	default:
		l.emitCallback(token{tokType: tokenTypeOp, ch: ch, location: chInfo.location})
	}

	return true, nil
}

func isWhitespace(ch rune) bool {
	return ch == ' ' ||
		ch == '\t' ||
		ch == '\r' ||
		ch == '\n' ||
		ch == '\f'
}

func isDigit(ch rune) bool {
	return ch == '0' ||
		ch == '1' ||
		ch == '2' ||
		ch == '3' ||
		ch == '4' ||
		ch == '5' ||
		ch == '6' ||
		ch == '7' ||
		ch == '8' ||
		ch == '9'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
