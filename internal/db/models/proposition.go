package models

import (
	"time"

	"tictactoe_matchmaking/internal/apperrors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	PropositionStatus string
	Sign              string
)

func (s PropositionStatus) String() string {
	return string(s)
}

func (s PropositionStatus) Title() string {
	return cases.Title(language.English).String(s.String())
}

func (s Sign) String() string {
	return string(s)
}

const (
	PropositionStatusPending    PropositionStatus = "pending"
	PropositionStatusAccepted   PropositionStatus = "accepted"
	PropositionStatusDeclined   PropositionStatus = "declined"
	PropositionStatusIncomplete PropositionStatus = "incomplete"

	SignCross  Sign = "❌"
	SignNought Sign = "⭕"
)

const PropositionLifetime = 7 * 24 * time.Hour

var PropositionStatuses = []PropositionStatus{
	PropositionStatusPending,
	PropositionStatusAccepted,
	PropositionStatusDeclined,
	PropositionStatusIncomplete,
}

func (s PropositionStatus) Valid() bool {
	for _, status := range PropositionStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s Sign) Valid() bool {
	return s == SignCross || s == SignNought
}

// Opposite returns the other sign of the pair.
func (s Sign) Opposite() Sign {
	if s == SignCross {
		return SignNought
	}
	return SignCross
}

type Proposition struct {
	tableName struct{} `pg:"tictactoe_propositions"`

	ID           int64             `json:"id" pg:",pk"`
	Player1Kind  PlayerKind        `json:"player1_kind" pg:",notnull"`
	Player1ID    int64             `json:"player1_id" pg:",notnull"`
	Player2Kind  *PlayerKind       `json:"player2_kind"`
	Player2ID    *int64            `json:"player2_id"`
	Player1First *bool             `json:"player1_first"`
	Player1Sign  *Sign             `json:"player1_sign"`
	Player2Sign  *Sign             `json:"player2_sign"`
	Status       PropositionStatus `json:"status" pg:",notnull"`
	CreatedAt    time.Time         `json:"created_at" pg:",notnull"`
	AcceptedAt   *time.Time        `json:"accepted_at"`
	ExpiresAt    time.Time         `json:"expires_at" pg:",notnull"`
	IsActive     bool              `json:"is_active" pg:",notnull,use_zero"`
}

// NewProposition returns an active proposition created by player1 that expires after PropositionLifetime.
func NewProposition(player1 PlayerRef, now time.Time) *Proposition {
	return &Proposition{
		Player1Kind: player1.Kind,
		Player1ID:   player1.ID,
		Status:      PropositionStatusPending,
		CreatedAt:   now,
		ExpiresAt:   now.Add(PropositionLifetime),
		IsActive:    true,
	}
}

func (p *Proposition) Player1() PlayerRef {
	return PlayerRef{Kind: p.Player1Kind, ID: p.Player1ID}
}

func (p *Proposition) Player2() *PlayerRef {
	if p.Player2Kind == nil || p.Player2ID == nil {
		return nil
	}
	return &PlayerRef{Kind: *p.Player2Kind, ID: *p.Player2ID}
}

func (p *Proposition) SetPlayer2(player *PlayerRef) {
	if player == nil {
		p.Player2Kind = nil
		p.Player2ID = nil
		return
	}

	kind, id := player.Kind, player.ID
	p.Player2Kind = &kind
	p.Player2ID = &id
}

func (p *Proposition) IsPlayer1(player PlayerRef) bool {
	return p.Player1() == player
}

func (p *Proposition) IsPlayer2(player PlayerRef) bool {
	player2 := p.Player2()
	return player2 != nil && *player2 == player
}

func (p *Proposition) IsExpired(now time.Time) bool {
	return p.ExpiresAt.Before(now)
}

// IsComplete reports whether everything needed to start a game has been chosen.
func (p *Proposition) IsComplete() bool {
	return p.Player2() != nil && p.Player1First != nil && p.Player1Sign != nil && p.Player2Sign != nil
}

// DeriveStatus recomputes the status from the filled fields. Status drives accepted_at, never the
// other way round.
func (p *Proposition) DeriveStatus(now time.Time) {
	complete := p.IsComplete()

	switch {
	case !complete && p.Status != PropositionStatusDeclined:
		p.Status = PropositionStatusIncomplete
	case complete && p.Status == PropositionStatusIncomplete:
		p.Status = PropositionStatusPending
	}

	if p.Status == PropositionStatusAccepted && p.AcceptedAt == nil {
		acceptedAt := now
		p.AcceptedAt = &acceptedAt
	}
}

func (p *Proposition) Validate() error {
	if player2 := p.Player2(); player2 != nil && *player2 == p.Player1() {
		return apperrors.NewValidation("player2", "Player 1 and Player 2 cannot be the same.")
	}

	if p.Player1Sign != nil && p.Player2Sign != nil && *p.Player1Sign == *p.Player2Sign {
		return apperrors.NewValidation("player2_sign", "Player 1 and Player 2 must have different signs.")
	}

	if p.Player1Sign != nil && !p.Player1Sign.Valid() {
		return apperrors.NewValidation("player1_sign", "Invalid sign selected for Player 1.")
	}
	if p.Player2Sign != nil && !p.Player2Sign.Valid() {
		return apperrors.NewValidation("player2_sign", "Invalid sign selected for Player 2.")
	}

	if p.AcceptedAt != nil && p.Player2() == nil {
		return apperrors.NewValidation("accepted_at", "Accepted timestamp cannot be set without Player 2.")
	}

	if !p.CreatedAt.IsZero() && p.ExpiresAt.Before(p.CreatedAt) {
		return apperrors.NewValidation("expires_at", "Expiration date cannot be earlier than creation date.")
	}

	switch p.Status {
	case PropositionStatusAccepted:
		if !p.IsComplete() || p.AcceptedAt == nil {
			return apperrors.NewValidation("status", "Accepted status requires Player 2, both signs, the first move and accepted_at to be set.")
		}
	case PropositionStatusPending, PropositionStatusIncomplete:
		if p.AcceptedAt != nil {
			return apperrors.NewValidation("accepted_at", "Pending or incomplete status cannot have accepted_at set.")
		}
	case PropositionStatusDeclined:
		if p.AcceptedAt != nil {
			return apperrors.NewValidation("accepted_at", "Declined status cannot have accepted_at set.")
		}
	default:
		return apperrors.NewValidation("status", "Unknown proposition status.")
	}

	return nil
}

// Prepare runs status derivation followed by validation; every write path calls it before persisting.
func (p *Proposition) Prepare(now time.Time) error {
	p.DeriveStatus(now)
	return p.Validate()
}
