package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("tally.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "tally.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: tally.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("tally.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: tally.yaml: no such file", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("celebration.every", "must be at least 1", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "celebration.every", validationErr.Field)
	require.Contains(t, validationErr.Message, "at least 1")
	require.Equal(t, "validation error: celebration.every: must be at least 1", err.Error())

	require.Equal(t, "validation error: bad", NewValidationError("", "bad", nil).Error())
}

func TestTerminalErrorIncludesReason(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("inappropriate ioctl")
	err := NewTerminalError("stdout is not a terminal", underlying)

	var termErr *TerminalError
	require.ErrorAs(t, err, &termErr)
	require.Equal(t, "stdout is not a terminal", termErr.Reason)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "inappropriate ioctl")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var termErr *TerminalError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, termErr.Error())
	require.Nil(t, termErr.Unwrap())
}
