package repositories

import (
	"context"
	"time"

	"tictactoe_matchmaking/internal/db/models"

	"github.com/go-pg/pg/v10"
)

const (
	propositionNotFoundMessage = "Proposition not found or not active for this user."
	propositionConflictMessage = "An active proposition between these players already exists."
)

// PropositionFilter narrows the propositions of one player. Nil fields are not applied.
type PropositionFilter struct {
	Statuses  []models.PropositionStatus
	IsPlayer1 *bool
	Expired   *bool
	Now       time.Time
}

type propositionRepository struct {
	repository
}

type PropositionRepository interface {
	Create(ctx context.Context, request *models.Proposition) (*models.Proposition, error)
	Update(ctx context.Context, request *models.Proposition) (*models.Proposition, error)
	GetOneForPlayer(ctx context.Context, player models.PlayerRef, propositionID int64) (*models.Proposition, error)
	GetManyForPlayer(ctx context.Context, player models.PlayerRef, filter PropositionFilter) ([]*models.Proposition, error)
	GetManyExpired(ctx context.Context, now time.Time) ([]*models.Proposition, error)
}

func NewPropositionRepository(db *pg.DB) PropositionRepository {
	return &propositionRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *propositionRepository) Create(ctx context.Context, request *models.Proposition) (*models.Proposition, error) {
	_, err := r.db.ModelContext(ctx, request).Insert()
	if err != nil {
		return nil, writeError(err, propositionConflictMessage)
	}

	return request, nil
}

func (r *propositionRepository) Update(ctx context.Context, request *models.Proposition) (*models.Proposition, error) {
	_, err := r.db.ModelContext(ctx, request).WherePK().Update()
	if err != nil {
		return nil, writeError(err, propositionConflictMessage)
	}

	return request, nil
}

func (r *propositionRepository) GetOneForPlayer(ctx context.Context, player models.PlayerRef, propositionID int64) (*models.Proposition, error) {
	proposition := &models.Proposition{}

	err := r.db.ModelContext(ctx, proposition).
		Where("id = ?", propositionID).
		Where("is_active = ?", true).
		WhereGroup(whereAnyPlayer(player)).
		Select()
	if err != nil {
		return nil, readError(err, propositionNotFoundMessage)
	}

	return proposition, nil
}

func (r *propositionRepository) GetManyForPlayer(ctx context.Context, player models.PlayerRef, filter PropositionFilter) ([]*models.Proposition, error) {
	propositions := make([]*models.Proposition, 0)

	q := r.db.ModelContext(ctx, &propositions).
		Where("is_active = ?", true)

	switch {
	case filter.IsPlayer1 == nil:
		q = q.WhereGroup(whereAnyPlayer(player))
	case *filter.IsPlayer1:
		q = q.WhereGroup(wherePlayer("player1", player))
	default:
		q = q.WhereGroup(wherePlayer("player2", player))
	}

	if len(filter.Statuses) > 0 {
		q = q.Where("status IN (?)", pg.In(filter.Statuses))
	}

	if filter.Expired != nil {
		if *filter.Expired {
			q = q.Where("expires_at < ?", filter.Now)
		} else {
			q = q.Where("expires_at >= ?", filter.Now)
		}
	}

	err := q.OrderExpr("id ASC").Select()

	return propositions, err
}

func (r *propositionRepository) GetManyExpired(ctx context.Context, now time.Time) ([]*models.Proposition, error) {
	propositions := make([]*models.Proposition, 0)

	err := r.db.ModelContext(ctx, &propositions).
		Where("is_active = ?", true).
		Where("status IN (?)", pg.In([]models.PropositionStatus{
			models.PropositionStatusPending,
			models.PropositionStatusIncomplete,
		})).
		Where("expires_at < ?", now).
		OrderExpr("id ASC").
		Select()

	return propositions, err
}
