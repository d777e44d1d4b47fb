package services

import (
	"context"
	"time"

	"tictactoe_matchmaking/internal/db/models"
	"tictactoe_matchmaking/internal/db/repositories"
	"tictactoe_matchmaking/internal/security"
)

type TgUserService interface {
	// Upsert registers a /start of the Telegram user. created is true when the user was new.
	Upsert(ctx context.Context, request *models.TgUser) (user *models.TgUser, created bool, err error)
	Exists(ctx context.Context, telegramID int64) (bool, error)
}

type tgUserService struct {
	tgUserRepository repositories.TgUserRepository
	now              func() time.Time
}

func NewTgUserService(tgUserRepository repositories.TgUserRepository) TgUserService {
	return &tgUserService{
		tgUserRepository: tgUserRepository,
		now:              time.Now,
	}
}

func (s *tgUserService) Upsert(ctx context.Context, request *models.TgUser) (*models.TgUser, bool, error) {
	request.FirstName = security.SanitizeText(request.FirstName)
	request.LastName = security.SanitizeOptional(request.LastName)
	request.Username = security.SanitizeOptional(request.Username)
	request.LanguageCode = security.SanitizeOptional(request.LanguageCode)

	if err := request.Validate(); err != nil {
		return nil, false, err
	}

	return s.tgUserRepository.Upsert(ctx, request, s.now())
}

func (s *tgUserService) Exists(ctx context.Context, telegramID int64) (bool, error) {
	return s.tgUserRepository.Exists(ctx, telegramID)
}
