package services

import (
	"context"
	"testing"
	"time"

	"tictactoe_matchmaking/internal/apperrors"
	"tictactoe_matchmaking/internal/db/models"
	mock_repositories "tictactoe_matchmaking/internal/db/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTgUserService(t *testing.T) (*tgUserService, *mock_repositories.MockTgUserRepository) {
	ctrl := gomock.NewController(t)
	tgUserRepository := mock_repositories.NewMockTgUserRepository(ctrl)

	service := NewTgUserService(tgUserRepository).(*tgUserService)
	service.now = fixedClock

	return service, tgUserRepository
}

func TestTgUserService_Upsert_SanitizesInput(t *testing.T) {
	service, tgUserRepository := newTgUserService(t)

	tgUserRepository.EXPECT().Upsert(gomock.Any(), gomock.Any(), testNow).DoAndReturn(
		func(_ context.Context, user *models.TgUser, _ time.Time) (*models.TgUser, bool, error) {
			return user, true, nil
		},
	)

	user, created, err := service.Upsert(context.Background(), &models.TgUser{
		ID:        5,
		FirstName: "  <b>Ann</b> ",
		Username:  ptr("<i>ann</i>"),
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Ann", user.FirstName)
	assert.Equal(t, "ann", *user.Username)
}

func TestTgUserService_Upsert_Existing(t *testing.T) {
	service, tgUserRepository := newTgUserService(t)

	stored := &models.TgUser{ID: 5, FirstName: "Ann", CreatedAt: testNow.Add(-time.Hour)}
	tgUserRepository.EXPECT().Upsert(gomock.Any(), gomock.Any(), testNow).Return(stored, false, nil)

	user, created, err := service.Upsert(context.Background(), &models.TgUser{ID: 5, FirstName: "Ann"})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, stored, user)
}

func TestTgUserService_Upsert_Invalid(t *testing.T) {
	service, _ := newTgUserService(t)

	_, _, err := service.Upsert(context.Background(), &models.TgUser{ID: 5, FirstName: "<b></b>"})

	requireAppError(t, err, apperrors.ErrCodeValidation, "tg_first_name")
}
