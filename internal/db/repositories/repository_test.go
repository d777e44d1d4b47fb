package repositories

import (
	"errors"
	"testing"

	"tictactoe_matchmaking/internal/apperrors"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
)

type fakePGError struct {
	integrityViolation bool
}

func (e fakePGError) Error() string {
	return "ERROR #23505 duplicate key value violates unique constraint"
}

func (e fakePGError) Field(field byte) string {
	return ""
}

func (e fakePGError) IntegrityViolation() bool {
	return e.integrityViolation
}

func TestReadError(t *testing.T) {
	assert.NoError(t, readError(nil, "missing"))

	err := readError(pg.ErrNoRows, "missing")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	assert.ErrorIs(t, err, pg.ErrNoRows)

	other := errors.New("connection refused")
	assert.Equal(t, other, readError(other, "missing"))
}

func TestWriteError(t *testing.T) {
	assert.NoError(t, writeError(nil, "conflict"))

	err := writeError(fakePGError{integrityViolation: true}, "conflict")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "conflict", appErr.Message)
	assert.Empty(t, appErr.Field)

	other := fakePGError{integrityViolation: false}
	assert.Equal(t, error(other), writeError(other, "conflict"))
}
