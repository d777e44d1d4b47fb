package services

import (
	"context"
	"time"

	"tictactoe_matchmaking/internal/apperrors"
	"tictactoe_matchmaking/internal/db/models"
	"tictactoe_matchmaking/internal/db/repositories"

	"go.uber.org/zap"
)

// PropositionInput carries the mutable fields of a proposition. Nil means the field was not sent.
type PropositionInput struct {
	Player2Kind  *models.PlayerKind
	Player2ID    *int64
	Player1First *bool
	Player1Sign  *models.Sign
	Player2Sign  *models.Sign
	ExpiresAt    *time.Time
}

type PropositionListFilter struct {
	Statuses  []models.PropositionStatus
	IsPlayer1 *bool
	Expired   *bool
}

type PropositionService interface {
	List(ctx context.Context, player models.PlayerRef, filter PropositionListFilter) ([]*models.Proposition, error)
	Get(ctx context.Context, player models.PlayerRef, propositionID int64) (*models.Proposition, error)
	Create(ctx context.Context, player models.PlayerRef, input PropositionInput) (*models.Proposition, error)
	// Update replaces the mutable fields. With partial set only the sent fields change.
	Update(ctx context.Context, player models.PlayerRef, propositionID int64, input PropositionInput, partial bool) (*models.Proposition, error)
	Deactivate(ctx context.Context, player models.PlayerRef, propositionID int64) error
	Accept(ctx context.Context, player models.PlayerRef, propositionID int64) (*models.Proposition, error)
	Decline(ctx context.Context, player models.PlayerRef, propositionID int64) (*models.Proposition, error)
	// DeclineExpired closes every active pending or incomplete proposition past its expiry.
	DeclineExpired(ctx context.Context) ([]*models.Proposition, error)
}

type propositionService struct {
	propositionRepository repositories.PropositionRepository
	playerResolver        PlayerResolver
	logger                *zap.SugaredLogger
	now                   func() time.Time
}

func NewPropositionService(
	propositionRepository repositories.PropositionRepository,
	playerResolver PlayerResolver,
	logger *zap.SugaredLogger,
) PropositionService {
	return &propositionService{
		propositionRepository: propositionRepository,
		playerResolver:        playerResolver,
		logger:                logger,
		now:                   time.Now,
	}
}

func (s *propositionService) List(ctx context.Context, player models.PlayerRef, filter PropositionListFilter) ([]*models.Proposition, error) {
	return s.propositionRepository.GetManyForPlayer(ctx, player, repositories.PropositionFilter{
		Statuses:  filter.Statuses,
		IsPlayer1: filter.IsPlayer1,
		Expired:   filter.Expired,
		Now:       s.now(),
	})
}

func (s *propositionService) Get(ctx context.Context, player models.PlayerRef, propositionID int64) (*models.Proposition, error) {
	return s.propositionRepository.GetOneForPlayer(ctx, player, propositionID)
}

func (s *propositionService) Create(ctx context.Context, player models.PlayerRef, input PropositionInput) (*models.Proposition, error) {
	now := s.now()
	proposition := models.NewProposition(player, now)

	if err := s.apply(ctx, proposition, input, now); err != nil {
		return nil, err
	}

	if err := proposition.Prepare(now); err != nil {
		return nil, err
	}

	return s.propositionRepository.Create(ctx, proposition)
}

func (s *propositionService) Update(
	ctx context.Context,
	player models.PlayerRef,
	propositionID int64,
	input PropositionInput,
	partial bool,
) (*models.Proposition, error) {
	proposition, err := s.propositionRepository.GetOneForPlayer(ctx, player, propositionID)
	if err != nil {
		return nil, err
	}

	now := s.now()

	if !partial {
		proposition.SetPlayer2(nil)
		proposition.Player1First = nil
		proposition.Player1Sign = nil
		proposition.Player2Sign = nil
		proposition.ExpiresAt = proposition.CreatedAt.Add(models.PropositionLifetime)
	}

	if err := s.apply(ctx, proposition, input, now); err != nil {
		return nil, err
	}

	if err := proposition.Prepare(now); err != nil {
		return nil, err
	}

	return s.propositionRepository.Update(ctx, proposition)
}

func (s *propositionService) Deactivate(ctx context.Context, player models.PlayerRef, propositionID int64) error {
	proposition, err := s.propositionRepository.GetOneForPlayer(ctx, player, propositionID)
	if err != nil {
		return err
	}

	proposition.IsActive = false

	if err := proposition.Prepare(s.now()); err != nil {
		return err
	}

	_, err = s.propositionRepository.Update(ctx, proposition)
	return err
}

func (s *propositionService) Accept(ctx context.Context, player models.PlayerRef, propositionID int64) (*models.Proposition, error) {
	return s.respond(ctx, player, propositionID, models.PropositionStatusAccepted)
}

func (s *propositionService) Decline(ctx context.Context, player models.PlayerRef, propositionID int64) (*models.Proposition, error) {
	return s.respond(ctx, player, propositionID, models.PropositionStatusDeclined)
}

func (s *propositionService) respond(
	ctx context.Context,
	player models.PlayerRef,
	propositionID int64,
	status models.PropositionStatus,
) (*models.Proposition, error) {
	proposition, err := s.propositionRepository.GetOneForPlayer(ctx, player, propositionID)
	if err != nil {
		return nil, err
	}

	now := s.now()

	if !proposition.IsPlayer2(player) {
		return nil, apperrors.NewValidation("", "Only Player 2 can respond to this proposition.")
	}
	if proposition.Status != models.PropositionStatusPending {
		return nil, apperrors.NewValidation("status", "Only pending propositions can be answered.")
	}
	if proposition.IsExpired(now) {
		return nil, apperrors.NewValidation("expires_at", "Proposition has expired.")
	}

	proposition.Status = status

	if err := proposition.Prepare(now); err != nil {
		return nil, err
	}

	return s.propositionRepository.Update(ctx, proposition)
}

func (s *propositionService) DeclineExpired(ctx context.Context) ([]*models.Proposition, error) {
	now := s.now()

	propositions, err := s.propositionRepository.GetManyExpired(ctx, now)
	if err != nil {
		return nil, err
	}

	declined := make([]*models.Proposition, 0, len(propositions))

	for _, proposition := range propositions {
		proposition.Status = models.PropositionStatusDeclined

		if err := proposition.Prepare(now); err != nil {
			s.logger.Errorw("failed to validate expired proposition", "error", err, "propositionID", proposition.ID)
			continue
		}

		updated, err := s.propositionRepository.Update(ctx, proposition)
		if err != nil {
			s.logger.Errorw("failed to decline expired proposition", "error", err, "propositionID", proposition.ID)
			continue
		}

		declined = append(declined, updated)
	}

	return declined, nil
}

func (s *propositionService) apply(ctx context.Context, proposition *models.Proposition, input PropositionInput, now time.Time) error {
	if (input.Player2Kind == nil) != (input.Player2ID == nil) {
		return apperrors.NewValidation("", "Both player2_kind and player2_id must be provided or both omitted.")
	}

	if input.ExpiresAt != nil && input.ExpiresAt.Before(now) {
		return apperrors.NewValidation("expires_at", "Expiration date cannot be in the past.")
	}

	if input.Player2Kind != nil {
		player2 := models.PlayerRef{Kind: *input.Player2Kind, ID: *input.Player2ID}
		if err := s.playerResolver.Resolve(ctx, "player2", player2); err != nil {
			return err
		}
		proposition.SetPlayer2(&player2)
	}

	if input.Player1First != nil {
		proposition.Player1First = input.Player1First
	}
	if input.Player1Sign != nil {
		proposition.Player1Sign = input.Player1Sign
	}
	if input.Player2Sign != nil {
		proposition.Player2Sign = input.Player2Sign
	}
	if input.ExpiresAt != nil {
		proposition.ExpiresAt = *input.ExpiresAt
	}

	return nil
}
