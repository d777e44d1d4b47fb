package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameFromProposition(t *testing.T) {
	p := completeProposition()
	p.ID = 42
	p.Status = PropositionStatusAccepted
	p.AcceptedAt = ptr(testNow)

	game, err := NewGameFromProposition(p, testNow)

	require.NoError(t, err)
	assert.Equal(t, int64(42), *game.PropositionID)
	assert.Equal(t, TgPlayer(1), game.Player1())
	assert.Equal(t, TgPlayer(2), game.Player2())
	assert.Equal(t, SignCross, game.Player1Symbol)
	assert.Equal(t, SignNought, game.Player2Symbol)
	assert.True(t, game.Player1First)
	assert.True(t, game.HasPlayer(TgPlayer(2)))
	assert.False(t, game.HasPlayer(TgPlayer(3)))
}

func TestNewGameFromProposition_NotAccepted(t *testing.T) {
	_, err := NewGameFromProposition(completeProposition(), testNow)

	assert.Equal(t, "status", validationField(t, err))
}

func TestGameState_Validate(t *testing.T) {
	tests := []struct {
		cells string
		valid bool
	}{
		{cells: EmptyBoard, valid: true},
		{cells: "X0 X0 X0 ", valid: true},
		{cells: "XXXXXXXXX", valid: true},
		{cells: "X0X", valid: false},
		{cells: "X0 X0 X0 X", valid: false},
		{cells: "XO XO XO ", valid: false},
		{cells: "X0\tX0 X0 ", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.cells, func(t *testing.T) {
			err := (&GameState{Cells: tt.cells}).Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, "cells", validationField(t, err))
			}
		})
	}
}

func TestGame_Validate(t *testing.T) {
	game := &Game{
		Player1Kind:   PlayerKindTgUser,
		Player1ID:     1,
		Player2Kind:   PlayerKindTgUser,
		Player2ID:     1,
		Player1Symbol: SignCross,
		Player2Symbol: SignNought,
	}
	assert.Equal(t, "player2", validationField(t, game.Validate()))

	game.Player2ID = 2
	game.Player2Symbol = SignCross
	assert.Equal(t, "player2_symbol", validationField(t, game.Validate()))

	game.Player2Symbol = SignNought
	assert.NoError(t, game.Validate())
}
