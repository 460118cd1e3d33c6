package lib

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStreamNext(t *testing.T) {
	stream := newTokenStream()

	stream.Write(token{tokType: tokenTypeAtom, ch: '1'})

	tok, done, err := stream.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, tokenTypeAtom, tok.tokType)
	require.Equal(t, "1", string(tok.ch))
}

func TestStreamNextDone(t *testing.T) {
	stream := newTokenStream()

	stream.Write(token{tokType: tokenTypeOp, ch: '+'})
	stream.Done()

	tok, done, err := stream.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, tokenTypeOp, tok.tokType)

	tok, done, err = stream.Next()
	require.NoError(t, err)
	require.True(t, done)
	require.Equal(t, tokenTypeEndOfInput, tok.tokType)

	// stays done forever
	tok, done, err = stream.Next()
	require.NoError(t, err)
	require.True(t, done)
	require.Equal(t, tokenTypeEndOfInput, tok.tokType)
}

func TestStreamNextTimeout(t *testing.T) {
	oldTimeout := TokenReadTimeout
	TokenReadTimeout = 1 * time.Microsecond
	defer func() {
		TokenReadTimeout = oldTimeout
	}()

	stream := newTokenStream()
	_, done, err := stream.Next()
	require.Error(t, err)
	require.False(t, done)
}

func TestStreamPeek(t *testing.T) {
	stream := newTokenStream()

	stream.Write(token{tokType: tokenTypeAtom, ch: '9'})
	stream.Done()

	tok, done, err := stream.Peek()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, "9", string(tok.ch))

	// peek does not consume
	tok, done, err = stream.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, "9", string(tok.ch))

	_, done, err = stream.Next()
	require.NoError(t, err)
	require.True(t, done)
}
