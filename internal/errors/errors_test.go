package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return "coded" }

func (e *codedError) Code() int { return e.code }

type coder interface{ Code() int }

func TestFind(t *testing.T) {
	inner := &codedError{code: 7}
	wrapped := Wrap(Wrapf(inner, "layer %d", 1), "layer 2")

	got, ok := Find[*codedError](wrapped)
	require.True(t, ok)
	assert.Equal(t, 7, got.code)

	_, ok = Find[*codedError](Wrap(io.EOF, "read"))
	assert.False(t, ok)

	_, ok = Find[*codedError](nil)
	assert.False(t, ok)

	asIface, ok := Find[coder](Join(io.EOF, Wrap(inner, "second")))
	require.True(t, ok)
	assert.Equal(t, 7, asIface.Code())
}

func TestWrapKeepsChain(t *testing.T) {
	err := WithStack(Wrap(io.ErrUnexpectedEOF, "decode"))

	assert.True(t, Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, "decode: unexpected EOF", err.Error())
	assert.EqualError(t, Errorf("page %d", 3), "page 3")
	assert.EqualError(t, New("boom"), "boom")
}
