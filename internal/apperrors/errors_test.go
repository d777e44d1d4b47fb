package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "plain",
			err:  New(ErrCodeNotFound, "proposition not found"),
			want: "NOT_FOUND: proposition not found",
		},
		{
			name: "with field",
			err:  NewValidation("player2_sign", "must differ"),
			want: "VALIDATION_ERROR(player2_sign): must differ",
		},
		{
			name: "wrapped",
			err:  Wrap(errors.New("connection refused"), ErrCodeInternal, "failed to get user"),
			want: "INTERNAL_ERROR: failed to get user (connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("service: %w", NotFound("TgUser not found."))

	assert.True(t, Is(err, ErrCodeNotFound))
	assert.False(t, Is(err, ErrCodeValidation))
	assert.False(t, Is(errors.New("plain"), ErrCodeNotFound))
	assert.False(t, Is(nil, ErrCodeNotFound))
}

func TestWrap_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrCodeInternal, "failed")

	assert.ErrorIs(t, err, cause)
}
