package repositories

import (
	"context"

	"tictactoe_matchmaking/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type userRepository struct {
	repository
}

type UserRepository interface {
	GetOneByID(ctx context.Context, userID int64) (*models.User, error)
	Exists(ctx context.Context, userID int64) (bool, error)
}

func NewUserRepository(db *pg.DB) UserRepository {
	return &userRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *userRepository) GetOneByID(ctx context.Context, userID int64) (*models.User, error) {
	user := &models.User{}

	err := r.db.ModelContext(ctx, user).
		Where("id = ?", userID).
		Select()
	if err != nil {
		return nil, readError(err, "User not found.")
	}

	return user, nil
}

func (r *userRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	return r.db.ModelContext(ctx, (*models.User)(nil)).
		Where("id = ?", userID).
		Exists()
}
