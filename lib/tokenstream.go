package lib

import (
	"errors"
	"time"
)

const TOKEN_BUF_SIZE = 100

var TokenReadTimeout = 1 * time.Second

type peekResult struct {
	tok  token
	done bool
	err  error
}

// tokenStream sits between the lexer and the parser. The lexer writes
// tokens from its own goroutine; the parser pulls them out with Next/Peek.
// An exhausted stream reports done=true forever, which is how the parser
// sees end-of-input (no end-of-input token is ever written to the stream).
type tokenStream struct {
	tokChan      chan token
	doneChan     chan struct{}
	peeked       *peekResult
	doneReceived bool
}

func newTokenStream() *tokenStream {
	return &tokenStream{
		tokChan:  make(chan token, TOKEN_BUF_SIZE),
		doneChan: make(chan struct{}, 1),
	}
}

func (ts *tokenStream) Next() (tok token, done bool, err error) {
	if ts.peeked != nil {
		res := ts.peeked
		ts.peeked = nil
		return res.tok, res.done, res.err
	}

	// Once the lexer has signalled completion only drained tokens remain,
	// so there is no reason to wait on the channel.
	timeout := TokenReadTimeout
	if ts.doneReceived {
		timeout = 0
	}

	select {
	case tok := <-ts.tokChan:
		return tok, false, nil
	case <-ts.doneChan:
		ts.doneReceived = true
		return ts.Next()
	case <-time.After(timeout):
		if ts.doneReceived {
			return token{}, true, nil
		}
		return token{}, false, errors.New("timed out waiting for next token")
	}
}

func (ts *tokenStream) Peek() (token, bool, error) {
	if ts.peeked != nil {
		return ts.peeked.tok, ts.peeked.done, ts.peeked.err
	}
	tok, done, err := ts.Next()
	ts.peeked = &peekResult{tok: tok, done: done, err: err}
	return tok, done, err
}

// drain discards whatever is left in the stream. A reader that stops
// early must call it, or a writer stuck on a full channel never finishes.
func (ts *tokenStream) drain() {
	for {
		_, done, err := ts.Next()
		if done || err != nil {
			return
		}
	}
}

func (ts *tokenStream) Write(tok token) {
	ts.tokChan <- tok
}

func (ts *tokenStream) Done() {
	ts.doneChan <- struct{}{}
}
