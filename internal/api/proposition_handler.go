package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tictactoe_matchmaking/internal/apperrors"
	"tictactoe_matchmaking/internal/db/models"
	"tictactoe_matchmaking/internal/services"

	"github.com/gin-gonic/gin"
)

const propositionNotFoundMessage = "Proposition not found or not active for this user."

type propositionRequest struct {
	Player2Kind  *models.PlayerKind `json:"player2_kind"`
	Player2ID    *int64             `json:"player2_id"`
	Player1First *bool              `json:"player1_first"`
	Player1Sign  *models.Sign       `json:"player1_sign"`
	Player2Sign  *models.Sign       `json:"player2_sign"`
	ExpiresAt    *time.Time         `json:"expires_at"`
}

func (r propositionRequest) input() services.PropositionInput {
	return services.PropositionInput{
		Player2Kind:  r.Player2Kind,
		Player2ID:    r.Player2ID,
		Player1First: r.Player1First,
		Player1Sign:  r.Player1Sign,
		Player2Sign:  r.Player2Sign,
		ExpiresAt:    r.ExpiresAt,
	}
}

type propositionResponse struct {
	ID           int64                    `json:"id"`
	Player1      models.PlayerRef         `json:"player1"`
	Player2      *models.PlayerRef        `json:"player2"`
	Player1First *bool                    `json:"player1_first"`
	Player1Sign  *models.Sign             `json:"player1_sign"`
	Player2Sign  *models.Sign             `json:"player2_sign"`
	Status       models.PropositionStatus `json:"status"`
	CreatedAt    time.Time                `json:"created_at"`
	AcceptedAt   *time.Time               `json:"accepted_at"`
	ExpiresAt    time.Time                `json:"expires_at"`
	DeepLinks    deepLinks                `json:"deep_links"`
}

func (h *Handler) propositionResponse(p *models.Proposition) propositionResponse {
	return propositionResponse{
		ID:           p.ID,
		Player1:      p.Player1(),
		Player2:      p.Player2(),
		Player1First: p.Player1First,
		Player1Sign:  p.Player1Sign,
		Player2Sign:  p.Player2Sign,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		AcceptedAt:   p.AcceptedAt,
		ExpiresAt:    p.ExpiresAt,
		DeepLinks:    h.links.Proposition(p.ID),
	}
}

func (h *Handler) listPropositions(c *gin.Context) {
	filter, err := parsePropositionFilter(c)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	propositions, err := h.propositionService.List(c.Request.Context(), playerFrom(c), filter)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	response := make([]propositionResponse, 0, len(propositions))
	for _, proposition := range propositions {
		response = append(response, h.propositionResponse(proposition))
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) getProposition(c *gin.Context) {
	propositionID, ok := idParam(c, "id")
	if !ok {
		renderError(c, h.logger, apperrors.NotFound(propositionNotFoundMessage))
		return
	}

	proposition, err := h.propositionService.Get(c.Request.Context(), playerFrom(c), propositionID)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, h.propositionResponse(proposition))
}

func (h *Handler) createProposition(c *gin.Context) {
	request, err := bindPropositionRequest(c)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	proposition, err := h.propositionService.Create(c.Request.Context(), playerFrom(c), request.input())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, h.propositionResponse(proposition))
}

func (h *Handler) updateProposition(partial bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		propositionID, ok := idParam(c, "id")
		if !ok {
			renderError(c, h.logger, apperrors.NotFound(propositionNotFoundMessage))
			return
		}

		request, err := bindPropositionRequest(c)
		if err != nil {
			renderError(c, h.logger, err)
			return
		}

		proposition, err := h.propositionService.Update(c.Request.Context(), playerFrom(c), propositionID, request.input(), partial)
		if err != nil {
			renderError(c, h.logger, err)
			return
		}

		c.JSON(http.StatusOK, h.propositionResponse(proposition))
	}
}

func (h *Handler) deleteProposition(c *gin.Context) {
	propositionID, ok := idParam(c, "id")
	if !ok {
		renderError(c, h.logger, apperrors.NotFound(propositionNotFoundMessage))
		return
	}

	if err := h.propositionService.Deactivate(c.Request.Context(), playerFrom(c), propositionID); err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) acceptProposition(c *gin.Context) {
	h.respondToProposition(c, h.propositionService.Accept)
}

func (h *Handler) declineProposition(c *gin.Context) {
	h.respondToProposition(c, h.propositionService.Decline)
}

func (h *Handler) respondToProposition(
	c *gin.Context,
	respond func(ctx context.Context, player models.PlayerRef, propositionID int64) (*models.Proposition, error),
) {
	propositionID, ok := idParam(c, "id")
	if !ok {
		renderError(c, h.logger, apperrors.NotFound(propositionNotFoundMessage))
		return
	}

	proposition, err := respond(c.Request.Context(), playerFrom(c), propositionID)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, h.propositionResponse(proposition))
}

// bindPropositionRequest accepts an empty body as a request with no fields set.
func bindPropositionRequest(c *gin.Context) (propositionRequest, error) {
	var request propositionRequest

	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		return propositionRequest{}, apperrors.New(apperrors.ErrCodeBadRequest, fmt.Sprintf("JSON parse error - %s", err))
	}

	return request, nil
}

func parsePropositionFilter(c *gin.Context) (services.PropositionListFilter, error) {
	var filter services.PropositionListFilter

	for _, raw := range c.QueryArray("statuses") {
		for _, value := range strings.Split(raw, ",") {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}

			status := models.PropositionStatus(value)
			if !status.Valid() {
				return services.PropositionListFilter{}, apperrors.NewValidation("statuses", fmt.Sprintf("%q is not a valid choice.", value))
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	var err error

	if filter.IsPlayer1, err = parseOptionalBool(c, "is_player1"); err != nil {
		return services.PropositionListFilter{}, err
	}
	if filter.Expired, err = parseOptionalBool(c, "expired"); err != nil {
		return services.PropositionListFilter{}, err
	}

	return filter, nil
}

func parseOptionalBool(c *gin.Context, name string) (*bool, error) {
	value, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "null":
		return nil, nil
	case "true", "t", "yes", "y", "on", "1":
		result := true
		return &result, nil
	case "false", "f", "no", "n", "off", "0":
		result := false
		return &result, nil
	}

	return nil, apperrors.NewValidation(name, fmt.Sprintf("%q is not a valid boolean.", value))
}
