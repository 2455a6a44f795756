package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"connection refused", errors.New("dial tcp: connection refused"), ErrorTypeNetwork},
		{"timeout", errors.New("request timeout"), ErrorTypeTimeout},
		{"context deadline", errors.New("context deadline exceeded"), ErrorTypeTimeout},
		{"unauthorized", errors.New("[401] unauthorized"), ErrorTypeSessionExpired},
		{"forbidden", errors.New("[403] forbidden"), ErrorTypeSessionExpired},
		{"not found", errors.New("[404] post not found"), ErrorTypeNotFound},
		{"server error", errors.New("[500] internal server error"), ErrorTypeServer},
		{"anything else", errors.New("weird failure"), ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CategorizeError(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Type)
		})
	}
}

func TestCategorizeError_Nil(t *testing.T) {
	assert.Nil(t, CategorizeError(nil))
}

func TestCategorizeError_PassesThroughCLIError(t *testing.T) {
	orig := ValidationError("time", "must be in the future")
	got := CategorizeError(fmt.Errorf("running command: %w", orig))
	assert.Same(t, orig, got)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ValidationError("topic", "cannot be empty")))
	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", ValidationError("f", "r"))))
	assert.False(t, IsValidation(ServerError()))
	assert.False(t, IsValidation(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewCLIError(ErrorTypeUnknown, "wrapped", cause)
	assert.ErrorIs(t, err, cause)
}

func TestFormatError(t *testing.T) {
	out := FormatError(NotLoggedInError())
	assert.Contains(t, out, "Error (auth): Not logged in")
	assert.Contains(t, out, "Suggestion: Run 'socialgen auth login' first.")
}

func TestFormatError_UnknownHasNoTypeTag(t *testing.T) {
	out := FormatError(errors.New("weird failure"))
	assert.Contains(t, out, "Error: weird failure")
	assert.NotContains(t, out, "unknown")
	assert.NotContains(t, out, "Suggestion")
}

func TestFormatError_Nil(t *testing.T) {
	assert.Empty(t, FormatError(nil))
}
