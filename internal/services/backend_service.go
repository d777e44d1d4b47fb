package services

//go:generate mockgen -source=backend_service.go -destination=mocks/backend_service.go -package=mock_services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tictactoe_matchmaking/internal/db/models"
	"tictactoe_matchmaking/internal/security"
)

const backendServiceName = "tictactoe_bot"

// TgUserPayload is the identity the bot reports on /start.
type TgUserPayload struct {
	ID                    int64   `json:"id"`
	FirstName             string  `json:"tg_first_name"`
	LastName              *string `json:"tg_last_name,omitempty"`
	Username              *string `json:"tg_username,omitempty"`
	IsBot                 bool    `json:"is_bot"`
	LanguageCode          *string `json:"language_code,omitempty"`
	IsPremium             *bool   `json:"is_premium,omitempty"`
	AddedToAttachmentMenu *bool   `json:"added_to_attachment_menu,omitempty"`
}

type PropositionSummary struct {
	ID          int64                    `json:"id"`
	Player1     models.PlayerRef         `json:"player1"`
	Player2     *models.PlayerRef        `json:"player2"`
	Player1Sign *models.Sign             `json:"player1_sign"`
	Player2Sign *models.Sign             `json:"player2_sign"`
	Status      models.PropositionStatus `json:"status"`
	ExpiresAt   time.Time                `json:"expires_at"`
	DeepLinks   struct {
		Telegram string `json:"telegram"`
		Web      string `json:"web"`
	} `json:"deep_links"`
}

// BackendService talks to the REST API on behalf of the bot.
type BackendService interface {
	UpsertTgUser(ctx context.Context, payload TgUserPayload) (created bool, err error)
	ListPropositions(ctx context.Context, tgUserID int64, statuses ...models.PropositionStatus) ([]PropositionSummary, error)
}

type backendService struct {
	client    *http.Client
	baseURL   string
	jwtSecret string
}

func NewBackendService(baseURL, jwtSecret string) BackendService {
	return &backendService{
		client:    &http.Client{Timeout: 10 * time.Second},
		baseURL:   strings.TrimRight(baseURL, "/"),
		jwtSecret: jwtSecret,
	}
}

func (s *backendService) UpsertTgUser(ctx context.Context, payload TgUserPayload) (bool, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return false, err
	}

	response, err := s.do(ctx, http.MethodPost, "/tgusers/", bytes.NewBuffer(jsonData))
	if err != nil {
		return false, err
	}
	defer response.Body.Close()

	if err := checkResponse(response); err != nil {
		return false, err
	}

	return response.StatusCode == http.StatusCreated, nil
}

func (s *backendService) ListPropositions(ctx context.Context, tgUserID int64, statuses ...models.PropositionStatus) ([]PropositionSummary, error) {
	path := fmt.Sprintf("/tgusers/%d/tictactoe-propositions/", tgUserID)

	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, status.String())
		}
		path += "?" + url.Values{"statuses": {strings.Join(values, ",")}}.Encode()
	}

	response, err := s.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if err := checkResponse(response); err != nil {
		return nil, err
	}

	propositions := make([]PropositionSummary, 0)
	if err := json.NewDecoder(response.Body).Decode(&propositions); err != nil {
		return nil, err
	}

	return propositions, nil
}

func (s *backendService) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	request.Header.Add("Accept", "application/json")
	if body != nil {
		request.Header.Add("Content-Type", "application/json; charset=utf-8")
	}

	if s.jwtSecret != "" {
		token, err := security.GenerateServiceToken(backendServiceName, s.jwtSecret, time.Now())
		if err != nil {
			return nil, err
		}
		request.Header.Add("Authorization", "Bearer "+token)
	}

	return s.client.Do(request)
}

func checkResponse(response *http.Response) error {
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}

	responseBody, _ := io.ReadAll(io.LimitReader(response.Body, 4096))
	return fmt.Errorf("backend responded with %d: %s", response.StatusCode, strings.TrimSpace(string(responseBody)))
}
