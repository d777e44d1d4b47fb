package repositories

import (
	"context"

	"tictactoe_matchmaking/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type gameRepository struct {
	repository
}

type GameRepository interface {
	// CreateWithState stores the game and its first board in one transaction.
	CreateWithState(ctx context.Context, game *models.Game, state *models.GameState) (*models.Game, error)
	GetOneForPlayer(ctx context.Context, player models.PlayerRef, gameID int64) (*models.Game, error)
	GetManyForPlayer(ctx context.Context, player models.PlayerRef) ([]*models.Game, error)
	GetStates(ctx context.Context, gameID int64) ([]*models.GameState, error)
}

func NewGameRepository(db *pg.DB) GameRepository {
	return &gameRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *gameRepository) CreateWithState(ctx context.Context, game *models.Game, state *models.GameState) (*models.Game, error) {
	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if _, err := tx.ModelContext(ctx, game).Insert(); err != nil {
			return err
		}

		state.GameID = game.ID
		_, err := tx.ModelContext(ctx, state).Insert()
		return err
	})
	if err != nil {
		return nil, writeError(err, "A game for this proposition already exists.")
	}

	return game, nil
}

func (r *gameRepository) GetOneForPlayer(ctx context.Context, player models.PlayerRef, gameID int64) (*models.Game, error) {
	game := &models.Game{}

	err := r.db.ModelContext(ctx, game).
		Where("id = ?", gameID).
		WhereGroup(whereAnyPlayer(player)).
		Select()
	if err != nil {
		return nil, readError(err, "Game not found.")
	}

	return game, nil
}

func (r *gameRepository) GetManyForPlayer(ctx context.Context, player models.PlayerRef) ([]*models.Game, error) {
	games := make([]*models.Game, 0)

	err := r.db.ModelContext(ctx, &games).
		WhereGroup(whereAnyPlayer(player)).
		OrderExpr("id ASC").
		Select()

	return games, err
}

func (r *gameRepository) GetStates(ctx context.Context, gameID int64) ([]*models.GameState, error) {
	states := make([]*models.GameState, 0)

	err := r.db.ModelContext(ctx, &states).
		Where("game_id = ?", gameID).
		OrderExpr("id ASC").
		Select()

	return states, err
}
