package services

import (
	"context"
	"fmt"

	"tictactoe_matchmaking/internal/apperrors"
	"tictactoe_matchmaking/internal/db/models"
	"tictactoe_matchmaking/internal/db/repositories"
)

type playerLookup func(ctx context.Context, id int64) (bool, error)

// PlayerResolver checks that a player reference points at an existing account of its kind.
type PlayerResolver interface {
	Resolve(ctx context.Context, field string, player models.PlayerRef) error
}

type playerResolver struct {
	lookups map[models.PlayerKind]playerLookup
}

func NewPlayerResolver(userRepository repositories.UserRepository, tgUserRepository repositories.TgUserRepository) PlayerResolver {
	return &playerResolver{
		lookups: map[models.PlayerKind]playerLookup{
			models.PlayerKindUser:   userRepository.Exists,
			models.PlayerKindTgUser: tgUserRepository.Exists,
		},
	}
}

// Resolve reports validation errors against field+"_kind" and field+"_id".
func (r *playerResolver) Resolve(ctx context.Context, field string, player models.PlayerRef) error {
	lookup, ok := r.lookups[player.Kind]
	if !ok {
		return apperrors.NewValidation(field+"_kind", fmt.Sprintf("%q is not a valid choice.", player.Kind.String()))
	}

	exists, err := lookup(ctx, player.ID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewValidation(field+"_id", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", player.ID))
	}

	return nil
}
