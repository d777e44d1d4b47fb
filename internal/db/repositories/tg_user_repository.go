package repositories

import (
	"context"
	"errors"
	"time"

	"tictactoe_matchmaking/internal/db/models"

	"github.com/go-pg/pg/v10"
)

const tgUserNotFoundMessage = "TgUser not found."

type tgUserRepository struct {
	repository
}

type TgUserRepository interface {
	GetOneByID(ctx context.Context, telegramID int64) (*models.TgUser, error)
	Exists(ctx context.Context, telegramID int64) (bool, error)
	// Upsert inserts or refreshes the user and records a start attempt in one transaction.
	Upsert(ctx context.Context, request *models.TgUser, now time.Time) (user *models.TgUser, created bool, err error)
}

func NewTgUserRepository(db *pg.DB) TgUserRepository {
	return &tgUserRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *tgUserRepository) GetOneByID(ctx context.Context, telegramID int64) (*models.TgUser, error) {
	user := &models.TgUser{}

	err := r.db.ModelContext(ctx, user).
		Where("id = ?", telegramID).
		Select()
	if err != nil {
		return nil, readError(err, tgUserNotFoundMessage)
	}

	return user, nil
}

func (r *tgUserRepository) Exists(ctx context.Context, telegramID int64) (bool, error) {
	return r.db.ModelContext(ctx, (*models.TgUser)(nil)).
		Where("id = ?", telegramID).
		Exists()
}

func (r *tgUserRepository) Upsert(ctx context.Context, request *models.TgUser, now time.Time) (*models.TgUser, bool, error) {
	var (
		user    *models.TgUser
		created bool
	)

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		existing := &models.TgUser{}

		err := tx.ModelContext(ctx, existing).
			Where("id = ?", request.ID).
			For("UPDATE").
			Select()

		switch {
		case errors.Is(err, pg.ErrNoRows):
			request.CreatedAt = now
			request.UpdatedAt = now
			request.IsActive = true

			if _, err := tx.ModelContext(ctx, request).Insert(); err != nil {
				return err
			}
			user, created = request, true
		case err != nil:
			return err
		default:
			columns := existing.Merge(request)
			if len(columns) > 0 {
				existing.UpdatedAt = now
				columns = append(columns, "updated_at")

				if _, err := tx.ModelContext(ctx, existing).Column(columns...).WherePK().Update(); err != nil {
					return err
				}
			}
			user = existing
		}

		attempt := &models.TgStartAttempt{
			TgUserID:    user.ID,
			AttemptTime: now,
		}
		_, err = tx.ModelContext(ctx, attempt).Insert()
		return err
	})
	if err != nil {
		return nil, false, err
	}

	return user, created, nil
}
