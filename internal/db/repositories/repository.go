package repositories

//go:generate mockgen -source=proposition_repository.go -destination=mocks/proposition_repository.go -package=mock_repositories
//go:generate mockgen -source=tg_user_repository.go -destination=mocks/tg_user_repository.go -package=mock_repositories
//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository.go -package=mock_repositories
//go:generate mockgen -source=game_repository.go -destination=mocks/game_repository.go -package=mock_repositories

import (
	"errors"

	"tictactoe_matchmaking/internal/apperrors"
	"tictactoe_matchmaking/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type repository struct {
	db *pg.DB
}

// readError turns a missing row into a NOT_FOUND app error.
func readError(err error, notFoundMessage string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pg.ErrNoRows) {
		return apperrors.Wrap(err, apperrors.ErrCodeNotFound, notFoundMessage)
	}
	return err
}

// writeError turns constraint violations into validation errors on the whole object.
func writeError(err error, conflictMessage string) error {
	if err == nil {
		return nil
	}

	var pgErr pg.Error
	if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: conflictMessage,
			Err:     err,
		}
	}
	return err
}

// wherePlayer matches rows where the player sits in the given slot, "player1" or "player2".
func wherePlayer(slot string, player models.PlayerRef) func(q *pg.Query) (*pg.Query, error) {
	return func(q *pg.Query) (*pg.Query, error) {
		return q.
			Where("? = ?", pg.Ident(slot+"_kind"), player.Kind).
			Where("? = ?", pg.Ident(slot+"_id"), player.ID), nil
	}
}

func whereAnyPlayer(player models.PlayerRef) func(q *pg.Query) (*pg.Query, error) {
	return func(q *pg.Query) (*pg.Query, error) {
		return q.
			WhereOrGroup(wherePlayer("player1", player)).
			WhereOrGroup(wherePlayer("player2", player)), nil
	}
}
