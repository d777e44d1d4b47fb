package services

import (
	"testing"
	"time"

	"tictactoe_matchmaking/internal/apperrors"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

func ptr[T any](v T) *T {
	return &v
}

func requireAppError(t *testing.T, err error, code, field string) {
	t.Helper()

	require.Error(t, err)
	require.True(t, apperrors.Is(err, code), "expected %s, got %v", code, err)

	if field != "" {
		require.Equal(t, field, err.(*apperrors.AppError).Field)
	}
}
