package services

import (
	"context"
	"time"

	"tictactoe_matchmaking/internal/db/models"
	"tictactoe_matchmaking/internal/db/repositories"
)

type GameService interface {
	// StartFromProposition opens a game with an empty board for an accepted proposition of the player.
	StartFromProposition(ctx context.Context, player models.PlayerRef, propositionID int64) (*models.Game, error)
	List(ctx context.Context, player models.PlayerRef) ([]*models.Game, error)
	States(ctx context.Context, player models.PlayerRef, gameID int64) ([]*models.GameState, error)
}

type gameService struct {
	gameRepository        repositories.GameRepository
	propositionRepository repositories.PropositionRepository
	now                   func() time.Time
}

func NewGameService(gameRepository repositories.GameRepository, propositionRepository repositories.PropositionRepository) GameService {
	return &gameService{
		gameRepository:        gameRepository,
		propositionRepository: propositionRepository,
		now:                   time.Now,
	}
}

func (s *gameService) StartFromProposition(ctx context.Context, player models.PlayerRef, propositionID int64) (*models.Game, error) {
	proposition, err := s.propositionRepository.GetOneForPlayer(ctx, player, propositionID)
	if err != nil {
		return nil, err
	}

	now := s.now()

	game, err := models.NewGameFromProposition(proposition, now)
	if err != nil {
		return nil, err
	}

	state := &models.GameState{
		Cells:     models.EmptyBoard,
		CreatedAt: now,
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}

	return s.gameRepository.CreateWithState(ctx, game, state)
}

func (s *gameService) List(ctx context.Context, player models.PlayerRef) ([]*models.Game, error) {
	return s.gameRepository.GetManyForPlayer(ctx, player)
}

func (s *gameService) States(ctx context.Context, player models.PlayerRef, gameID int64) ([]*models.GameState, error) {
	if _, err := s.gameRepository.GetOneForPlayer(ctx, player, gameID); err != nil {
		return nil, err
	}

	return s.gameRepository.GetStates(ctx, gameID)
}
