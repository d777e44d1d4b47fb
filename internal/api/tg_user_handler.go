package api

import (
	"fmt"
	"net/http"

	"tictactoe_matchmaking/internal/apperrors"
	"tictactoe_matchmaking/internal/db/models"

	"github.com/gin-gonic/gin"
)

type tgUserResponse struct {
	*models.TgUser
	UserContentType string `json:"user_content_type"`
}

func (h *Handler) upsertTgUser(c *gin.Context) {
	request := &models.TgUser{}
	if err := c.ShouldBindJSON(request); err != nil {
		renderError(c, h.logger, apperrors.New(apperrors.ErrCodeBadRequest, fmt.Sprintf("JSON parse error - %s", err)))
		return
	}

	user, created, err := h.tgUserService.Upsert(c.Request.Context(), request)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		h.logger.Infow("tg user registered", "tgUser", user.String())
	}

	c.JSON(status, tgUserResponse{TgUser: user, UserContentType: "TgUser"})
}
