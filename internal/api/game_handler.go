package api

import (
	"net/http"

	"tictactoe_matchmaking/internal/apperrors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) startGame(c *gin.Context) {
	propositionID, ok := idParam(c, "id")
	if !ok {
		renderError(c, h.logger, apperrors.NotFound(propositionNotFoundMessage))
		return
	}

	game, err := h.gameService.StartFromProposition(c.Request.Context(), playerFrom(c), propositionID)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	h.logger.Infow("game started", "gameID", game.ID, "propositionID", propositionID)
	c.JSON(http.StatusCreated, game)
}

func (h *Handler) listGames(c *gin.Context) {
	games, err := h.gameService.List(c.Request.Context(), playerFrom(c))
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

func (h *Handler) listGameStates(c *gin.Context) {
	gameID, ok := idParam(c, "game_id")
	if !ok {
		renderError(c, h.logger, apperrors.NotFound("Game not found."))
		return
	}

	states, err := h.gameService.States(c.Request.Context(), playerFrom(c), gameID)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, states)
}
