package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Unwrap(t *testing.T) {
	err := New(ErrDuplicateEmail, "Email already registered")

	assert.Equal(t, "Email already registered", err.Error())
	assert.True(t, errors.Is(err, ErrDuplicateEmail))
	assert.False(t, errors.Is(err, ErrDuplicateUsername))
}

func TestAppError_WrappedThroughFmt(t *testing.T) {
	// Services wrap with %w; errors.Is must still reach the sentinel.
	inner := Validation("username required")
	outer := fmt.Errorf("signup: %w", inner)

	assert.True(t, errors.Is(outer, ErrValidation))

	var appErr *AppError
	require.True(t, errors.As(outer, &appErr))
	assert.Equal(t, "username required", appErr.Message)
}

func TestStorage_HidesDetail(t *testing.T) {
	dbErr := errors.New("dial tcp 10.0.0.3:3306: connection refused")
	err := Storage(dbErr)

	assert.True(t, errors.Is(err, ErrStorage))
	// the caller-facing message never contains the internal detail
	assert.Equal(t, "internal server error", err.Error())
}

func TestNotFound(t *testing.T) {
	err := NotFound("post")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "post not found", err.Error())
}
