package svcmgr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind ErrKind
	}{
		{"wrong state", errWrongState(Running), KindWrongState},
		{"timeout", errTimeout(Stopped), KindTimeout},
		{"timeout error", errTimeoutError(KindAccessDenied), KindTimeoutError},
		{"bad exit status", errBadExitStatus(1, true, "boom"), KindBadExitStatus},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errors.Is(tc.err, &Error{Kind: tc.kind}))
			assert.False(t, errors.Is(tc.err, &Error{Kind: KindUnknown}))
		})
	}
}

func TestErrBadExitStatusCarriesCodeAndStderr(t *testing.T) {
	err := errBadExitStatus(1060, true, "service does not exist")

	assert.Equal(t, 1060, err.Code)
	assert.True(t, err.HasCode)
	assert.Equal(t, "service does not exist", err.Stderr)
	assert.Contains(t, err.Error(), "1060")
}

func TestExitCodeStringWithoutCode(t *testing.T) {
	assert.Equal(t, "unknown", exitCodeString(0, false))
	assert.Equal(t, "7", exitCodeString(7, true))
}

func TestWrapErrPreservesCause(t *testing.T) {
	cause := errors.New("underlying failure")
	wrapped := wrapErr(KindIOError, cause, "write failed: %v", cause)

	assert.Equal(t, cause, errors.Unwrap(wrapped))
	assert.Equal(t, KindIOError, wrapped.Kind)
}
