package models

import (
	"regexp"
	"strings"
	"time"

	"tictactoe_matchmaking/internal/apperrors"
)

const (
	CellEmpty  = ' '
	CellCross  = 'X'
	CellNought = '0'

	BoardSize = 9
)

var (
	EmptyBoard = strings.Repeat(string(CellEmpty), BoardSize)

	cellsPattern = regexp.MustCompile(`^[ X0]{9}$`)
)

type Game struct {
	tableName struct{} `pg:"games"`

	ID            int64      `json:"id" pg:",pk"`
	PropositionID *int64     `json:"proposition_id"`
	Player1Kind   PlayerKind `json:"player1_kind" pg:",notnull"`
	Player1ID     int64      `json:"player1_id" pg:",notnull"`
	Player2Kind   PlayerKind `json:"player2_kind" pg:",notnull"`
	Player2ID     int64      `json:"player2_id" pg:",notnull"`
	Player1Symbol Sign       `json:"player1_symbol" pg:",notnull"`
	Player2Symbol Sign       `json:"player2_symbol" pg:",notnull"`
	Player1First  bool       `json:"player1_first" pg:",notnull,use_zero"`
	CreatedAt     time.Time  `json:"created_at" pg:",notnull"`
}

type GameState struct {
	tableName struct{} `pg:"game_states"`

	ID            int64     `json:"id" pg:",pk"`
	GameID        int64     `json:"game_id" pg:",notnull"`
	Cells         string    `json:"cells" pg:",notnull"`
	ParentStateID *int64    `json:"parent_state_id" pg:",unique"`
	CreatedAt     time.Time `json:"created_at" pg:",notnull"`
}

// NewGameFromProposition pairs the players of an accepted proposition.
func NewGameFromProposition(proposition *Proposition, now time.Time) (*Game, error) {
	if proposition.Status != PropositionStatusAccepted || !proposition.IsComplete() {
		return nil, apperrors.NewValidation("status", "Only accepted propositions can start a game.")
	}

	player2 := proposition.Player2()
	propositionID := proposition.ID

	game := &Game{
		PropositionID: &propositionID,
		Player1Kind:   proposition.Player1Kind,
		Player1ID:     proposition.Player1ID,
		Player2Kind:   player2.Kind,
		Player2ID:     player2.ID,
		Player1Symbol: *proposition.Player1Sign,
		Player2Symbol: *proposition.Player2Sign,
		Player1First:  *proposition.Player1First,
		CreatedAt:     now,
	}

	return game, game.Validate()
}

func (g *Game) Player1() PlayerRef {
	return PlayerRef{Kind: g.Player1Kind, ID: g.Player1ID}
}

func (g *Game) Player2() PlayerRef {
	return PlayerRef{Kind: g.Player2Kind, ID: g.Player2ID}
}

func (g *Game) HasPlayer(player PlayerRef) bool {
	return g.Player1() == player || g.Player2() == player
}

func (g *Game) Validate() error {
	if g.Player1() == g.Player2() {
		return apperrors.NewValidation("player2", "Player 1 and Player 2 cannot be the same.")
	}
	if g.Player1Symbol == g.Player2Symbol {
		return apperrors.NewValidation("player2_symbol", "Player 1 and Player 2 must have different symbols.")
	}
	if !g.Player1Symbol.Valid() || !g.Player2Symbol.Valid() {
		return apperrors.NewValidation("player1_symbol", "Invalid symbol selected for player.")
	}
	return nil
}

func (s *GameState) Validate() error {
	if !cellsPattern.MatchString(s.Cells) {
		return apperrors.NewValidation("cells", "Must contain 9 cells of: X, 0(null), or space")
	}
	return nil
}
