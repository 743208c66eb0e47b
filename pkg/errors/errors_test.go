package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorFormatting(t *testing.T) {
	cause := stderrors.New("bad indent")

	withLine := NewParseError("pressable.yaml", 7, cause)
	assert.Equal(t, "parse error: pressable.yaml:7: bad indent", withLine.Error())

	withoutLine := NewParseError("pressable.yaml", 0, cause)
	assert.Equal(t, "parse error: pressable.yaml: bad indent", withoutLine.Error())
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := stderrors.New("bad indent")
	err := NewParseError("pressable.yaml", 1, cause)

	require.ErrorIs(t, err, cause)
}

func TestValidationErrorFormatting(t *testing.T) {
	withField := NewValidationError("padding", "must be non-negative", nil)
	assert.Equal(t, "validation error: padding: must be non-negative", withField.Error())

	withoutField := NewValidationError("", "configuration is nil", nil)
	assert.Equal(t, "validation error: configuration is nil", withoutField.Error())
}

func TestValidationErrorUnwrap(t *testing.T) {
	cause := stderrors.New("constraint failed")
	err := NewValidationError("width", "bad width", cause)

	require.ErrorIs(t, err, cause)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "width", verr.Field)
}

func TestNilReceiversAreSafe(t *testing.T) {
	var perr *ParseError
	var verr *ValidationError

	assert.Empty(t, perr.Error())
	assert.Nil(t, perr.Unwrap())
	assert.Empty(t, verr.Error())
	assert.Nil(t, verr.Unwrap())
}
