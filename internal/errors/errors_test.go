package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapKeepsSentinel(t *testing.T) {
	t.Parallel()

	wrapped := Wrapf(Wrap(errSentinel, "inner"), "outer %d", 1)

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, "outer 1: inner: sentinel", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "errors_test.go")
}

func TestWrapNil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Wrap(nil, "nothing"))
	assert.NoError(t, WithStack(nil))
}

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsFindsTypedError(t *testing.T) {
	t.Parallel()

	err := Join(New("other"), Wrap(&codedError{code: "E1"}, "ctx"))

	var target *codedError
	if assert.True(t, As(err, &target)) {
		assert.Equal(t, "E1", target.code)
	}
}
