package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"tictactoe_matchmaking/internal/db/models"
	mock_repositories "tictactoe_matchmaking/internal/db/repositories/mocks"
	"tictactoe_matchmaking/internal/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	fail map[int64]bool
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	message := c.(tgbotapi.MessageConfig)
	if f.fail[message.ChatID] {
		return tgbotapi.Message{}, errors.New("telegram error")
	}
	f.sent = append(f.sent, message)
	return tgbotapi.Message{}, nil
}

func expiredProposition(id int64) *models.Proposition {
	createdAt := time.Now().Add(-8 * 24 * time.Hour)
	proposition := models.NewProposition(models.TgPlayer(100), createdAt)
	proposition.ID = id
	proposition.SetPlayer2(&models.PlayerRef{Kind: models.PlayerKindTgUser, ID: 200})
	return proposition
}

func newPropositionService(ctrl *gomock.Controller, repo *mock_repositories.MockPropositionRepository) services.PropositionService {
	return services.NewPropositionService(
		repo,
		services.NewPlayerResolver(
			mock_repositories.NewMockUserRepository(ctrl),
			mock_repositories.NewMockTgUserRepository(ctrl),
		),
		zap.NewNop().Sugar(),
	)
}

func TestTelegramRecipients_BothTelegramPlayers(t *testing.T) {
	result := telegramRecipients(expiredProposition(1))
	assert.Equal(t, []int64{100, 200}, result)
}

func TestTelegramRecipients_NoPlayer2(t *testing.T) {
	proposition := models.NewProposition(models.TgPlayer(100), time.Now())
	result := telegramRecipients(proposition)
	assert.Equal(t, []int64{100}, result)
}

func TestTelegramRecipients_SkipsWebUsers(t *testing.T) {
	proposition := models.NewProposition(models.WebPlayer(5), time.Now())
	proposition.SetPlayer2(&models.PlayerRef{Kind: models.PlayerKindTgUser, ID: 200})

	result := telegramRecipients(proposition)
	assert.Equal(t, []int64{200}, result)
}

func TestMessageForExpiredProposition(t *testing.T) {
	proposition := expiredProposition(7)
	proposition.ExpiresAt = time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)

	message := messageForExpiredProposition(100, proposition)
	assert.Equal(t, int64(100), message.ChatID)
	assert.Contains(t, message.Text, "#7")
	assert.Contains(t, message.Text, "03.05.2024")
}

func TestSendNotifications_ContinuesAfterFailure(t *testing.T) {
	sender := &fakeSender{fail: map[int64]bool{100: true}}

	sendNotifications(expiredProposition(1), sender, zap.NewNop().Sugar())

	assert.Equal(t, 1, len(sender.sent))
	assert.Equal(t, int64(200), sender.sent[0].ChatID)
}

func TestDeclineExpiredPropositions_AllDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	propositionRepo := mock_repositories.NewMockPropositionRepository(ctrl)

	propositions := []*models.Proposition{expiredProposition(1), expiredProposition(2)}

	propositionRepo.EXPECT().GetManyExpired(gomock.Any(), gomock.Any()).Return(propositions, nil)
	propositionRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Proposition) (*models.Proposition, error) {
			return p, nil
		}).Times(2)

	result := declineExpiredPropositions(context.Background(), newPropositionService(ctrl, propositionRepo), zap.NewNop().Sugar())
	assert.Equal(t, 2, len(result))
	for _, proposition := range result {
		assert.Equal(t, models.PropositionStatusDeclined, proposition.Status)
	}
}

func TestDeclineExpiredPropositions_SomeNotUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	propositionRepo := mock_repositories.NewMockPropositionRepository(ctrl)

	propositions := []*models.Proposition{expiredProposition(1), expiredProposition(2)}

	propositionRepo.EXPECT().GetManyExpired(gomock.Any(), gomock.Any()).Return(propositions, nil)
	propositionRepo.EXPECT().Update(gomock.Any(), propositions[0]).Return(nil, errors.New("database error"))
	propositionRepo.EXPECT().Update(gomock.Any(), propositions[1]).Return(propositions[1], nil)

	result := declineExpiredPropositions(context.Background(), newPropositionService(ctrl, propositionRepo), zap.NewNop().Sugar())
	assert.Equal(t, 1, len(result))
}

func TestDeclineExpiredPropositions_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	propositionRepo := mock_repositories.NewMockPropositionRepository(ctrl)
	propositionRepo.EXPECT().GetManyExpired(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

	result := declineExpiredPropositions(context.Background(), newPropositionService(ctrl, propositionRepo), zap.NewNop().Sugar())
	assert.Equal(t, 0, len(result))
}
