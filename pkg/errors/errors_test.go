package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

var (
	errInner     = errors.New("inner")
	errRootCause = errors.New("root cause")
	errPlain     = errors.New("plain error")
	errElectrum  = errors.New("electrum: connection refused")
)

func TestExitCodes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"success", nil, bdkerr.ExitSuccess},
		{"general error", bdkerr.ErrGeneral, bdkerr.ExitGeneral},
		{"missing parameter", bdkerr.ErrMissingParameter, bdkerr.ExitInput},
		{"conflicting parameters", bdkerr.ErrConflictingParameters, bdkerr.ExitInput},
		{"invalid threshold", bdkerr.ErrInvalidThreshold, bdkerr.ExitInput},
		{"engine error", bdkerr.ErrEngine, bdkerr.ExitEngine},
		{"plain error", errPlain, bdkerr.ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, bdkerr.ExitCode(tt.err))
		})
	}
}

func TestExitCodeWrappedError(t *testing.T) {
	t.Parallel()
	wrapped := bdkerr.Wrap(bdkerr.ErrInvalidAmount, "broadcast")
	assert.Equal(t, bdkerr.ExitInput, bdkerr.ExitCode(wrapped))
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()
	sentinels := []*bdkerr.BdkError{
		bdkerr.ErrMissingParameter,
		bdkerr.ErrConflictingParameters,
		bdkerr.ErrInvalidThreshold,
		bdkerr.ErrInvalidDescriptor,
		bdkerr.ErrInvalidAmount,
		bdkerr.ErrInvalidEntropy,
		bdkerr.ErrEngine,
	}

	for _, sentinel := range sentinels {
		wrapped := bdkerr.Wrap(sentinel, "wrapped")
		require.ErrorIs(t, wrapped, sentinel)
	}
}

func TestErrorCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err      error
		expected string
	}{
		{bdkerr.ErrGeneral, "GENERAL_ERROR"},
		{bdkerr.ErrMissingParameter, "MISSING_PARAMETER"},
		{bdkerr.ErrConflictingParameters, "CONFLICTING_PARAMETERS"},
		{bdkerr.ErrInvalidThreshold, "INVALID_THRESHOLD"},
		{bdkerr.ErrInvalidDescriptor, "INVALID_DESCRIPTOR"},
		{bdkerr.ErrInvalidAmount, "INVALID_AMOUNT"},
		{bdkerr.ErrEngine, "ENGINE_ERROR"},
		{errPlain, "GENERAL_ERROR"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, bdkerr.Code(tt.err))
	}
}

func TestBdkError_Error(t *testing.T) {
	t.Parallel()

	t.Run("message only", func(t *testing.T) {
		t.Parallel()
		err := &bdkerr.BdkError{Code: "X", Message: "something broke"}
		assert.Equal(t, "something broke", err.Error())
	})

	t.Run("details are sorted", func(t *testing.T) {
		t.Parallel()
		err := bdkerr.WithDetails(bdkerr.ErrMissingParameter, map[string]string{
			"param": "network",
			"for":   "mnemonic",
		})
		assert.Equal(t, "required param is missing (for: mnemonic) (param: network)", err.Error())
	})

	t.Run("cause is appended", func(t *testing.T) {
		t.Parallel()
		err := bdkerr.Wrap(errInner, "loading config")
		assert.Equal(t, "loading config: inner", err.Error())
	})
}

func TestEngine(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, bdkerr.Engine(nil))
	})

	t.Run("keeps engine message", func(t *testing.T) {
		t.Parallel()
		err := bdkerr.Engine(errElectrum)
		require.ErrorIs(t, err, bdkerr.ErrEngine)
		require.ErrorIs(t, err, errElectrum)
		assert.Equal(t, "electrum: connection refused", err.Error())
		assert.Equal(t, bdkerr.ExitEngine, bdkerr.ExitCode(err))
	})

	t.Run("structured engine errors pass through", func(t *testing.T) {
		t.Parallel()
		err := bdkerr.Engine(bdkerr.ErrNotSupported)
		assert.Equal(t, bdkerr.CodeNotSupported, bdkerr.Code(err))
	})
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, bdkerr.Wrap(nil, "context"))
	})

	t.Run("plain error becomes general", func(t *testing.T) {
		t.Parallel()
		err := bdkerr.Wrap(errRootCause, "reading %s", "file")
		assert.Equal(t, "GENERAL_ERROR", bdkerr.Code(err))
		require.ErrorIs(t, err, errRootCause)
	})

	t.Run("keeps code of structured error", func(t *testing.T) {
		t.Parallel()
		err := bdkerr.Wrap(bdkerr.ErrInvalidThreshold, "multisig")
		var se *bdkerr.BdkError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "INVALID_THRESHOLD", se.Code)
		assert.Equal(t, "multisig: threshold value is invalid", se.Message)
	})
}

func TestWithSuggestion(t *testing.T) {
	t.Parallel()

	assert.NoError(t, bdkerr.WithSuggestion(nil, "x"))

	err := bdkerr.WithSuggestion(bdkerr.ErrMissingParameter, "pass --network")
	var se *bdkerr.BdkError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "pass --network", se.Suggestion)
	assert.Equal(t, bdkerr.CodeMissingParameter, se.Code)

	err = bdkerr.WithSuggestion(errPlain, "retry")
	require.ErrorAs(t, err, &se)
	assert.Equal(t, bdkerr.CodeGeneral, se.Code)
	assert.Equal(t, "retry", se.Suggestion)
}

func TestIsMatchesByCode(t *testing.T) {
	t.Parallel()
	a := &bdkerr.BdkError{Code: bdkerr.CodeInvalidAmount, Message: "first"}
	b := &bdkerr.BdkError{Code: bdkerr.CodeInvalidAmount, Message: "second"}
	require.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, bdkerr.ErrEngine)
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bdkerr.ExitInput, bdkerr.ExitCodeFor(bdkerr.CodeInvalidThreshold))
	assert.Equal(t, bdkerr.ExitEngine, bdkerr.ExitCodeFor(bdkerr.CodeEngine))
	assert.Equal(t, bdkerr.ExitEngine, bdkerr.ExitCodeFor(bdkerr.CodeNotSupported))
	assert.Equal(t, bdkerr.ExitGeneral, bdkerr.ExitCodeFor(bdkerr.CodeGeneral))
	assert.Equal(t, bdkerr.ExitGeneral, bdkerr.ExitCodeFor("SOMETHING_ELSE"))
}
