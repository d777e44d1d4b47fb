package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"tictactoe_matchmaking/internal/db/models"
	"tictactoe_matchmaking/internal/services"
	mock_services "tictactoe_matchmaking/internal/services/mocks"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func commandMessage(text string, from *tgbotapi.User) *tgbotapi.Message {
	command := text
	for i, r := range text {
		if r == ' ' {
			command = text[:i]
			break
		}
	}

	return &tgbotapi.Message{
		Text: text,
		From: from,
		Chat: &tgbotapi.Chat{ID: 100},
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(command)},
		},
	}
}

func singleText(t *testing.T, messages []tgbotapi.Chattable) tgbotapi.MessageConfig {
	t.Helper()

	require.Len(t, messages, 1)
	message, ok := messages[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(100), message.ChatID)
	return message
}

func TestStartCommand_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	backendService := mock_services.NewMockBackendService(ctrl)
	command := NewStartCommand(backendService, zap.NewNop().Sugar())

	from := &tgbotapi.User{ID: 42, FirstName: "Ann", LastName: "<Lee>", UserName: "ann", LanguageCode: "en"}
	lastName, username, languageCode := "<Lee>", "ann", "en"

	backendService.EXPECT().UpsertTgUser(gomock.Any(), services.TgUserPayload{
		ID:           42,
		FirstName:    "Ann",
		LastName:     &lastName,
		Username:     &username,
		LanguageCode: &languageCode,
	}).Return(true, nil)

	assert.True(t, command.CanHandle("start"))
	message := singleText(t, command.Handle(context.Background(), commandMessage("/start", from)))

	assert.Equal(t, tgbotapi.ModeHTML, message.ParseMode)
	assert.Contains(t, message.Text, "Hello, <b>Ann &lt;Lee&gt;</b>!")
	assert.NotContains(t, message.Text, "proposition <b>")
}

func TestStartCommand_HandleDeepLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	backendService := mock_services.NewMockBackendService(ctrl)
	command := NewStartCommand(backendService, zap.NewNop().Sugar())

	backendService.EXPECT().UpsertTgUser(gomock.Any(), gomock.Any()).Return(false, nil)

	message := singleText(t, command.Handle(context.Background(), commandMessage("/start proposition_12", &tgbotapi.User{ID: 42, FirstName: "Ann"})))

	assert.Contains(t, message.Text, "Hello, <b>Ann</b>!")
	assert.Contains(t, message.Text, "proposition <b>#12</b>")
}

func TestStartCommand_BackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	backendService := mock_services.NewMockBackendService(ctrl)
	command := NewStartCommand(backendService, zap.NewNop().Sugar())

	backendService.EXPECT().UpsertTgUser(gomock.Any(), gomock.Any()).Return(false, errors.New("backend responded with 500"))

	message := singleText(t, command.Handle(context.Background(), commandMessage("/start", &tgbotapi.User{ID: 42, FirstName: "Ann"})))

	assert.Equal(t, "Something went wrong, please try again later.", message.Text)
}

func TestPropositionsCommand_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	backendService := mock_services.NewMockBackendService(ctrl)
	command := NewPropositionsCommand(backendService, zap.NewNop().Sugar())

	incoming := services.PropositionSummary{
		ID:        3,
		Player1:   models.TgPlayer(7),
		Player2:   &models.PlayerRef{Kind: models.PlayerKindTgUser, ID: 42},
		Status:    models.PropositionStatusPending,
		ExpiresAt: time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC),
	}
	outgoing := services.PropositionSummary{
		ID:        4,
		Player1:   models.TgPlayer(42),
		Status:    models.PropositionStatusIncomplete,
		ExpiresAt: time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC),
	}
	backendService.EXPECT().
		ListPropositions(gomock.Any(), int64(42), models.PropositionStatusPending, models.PropositionStatusIncomplete).
		Return([]services.PropositionSummary{incoming, outgoing}, nil)

	assert.True(t, command.CanHandle("propositions"))
	message := singleText(t, command.Handle(context.Background(), commandMessage("/propositions", &tgbotapi.User{ID: 42, FirstName: "Ann"})))

	assert.Contains(t, message.Text, "#3 Pending vs tg_user:7, expires 17.05.2024")
	assert.Contains(t, message.Text, "#4 Incomplete vs anyone, expires 18.05.2024")
}

func TestPropositionsCommand_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	backendService := mock_services.NewMockBackendService(ctrl)
	command := NewPropositionsCommand(backendService, zap.NewNop().Sugar())

	backendService.EXPECT().ListPropositions(gomock.Any(), int64(42), gomock.Any(), gomock.Any()).Return(nil, nil)

	message := singleText(t, command.Handle(context.Background(), commandMessage("/propositions", &tgbotapi.User{ID: 42, FirstName: "Ann"})))

	assert.Equal(t, "You have no open propositions.", message.Text)
}
