package commands

import (
	"context"
	"fmt"
	"strings"

	"tictactoe_matchmaking/internal"
	"tictactoe_matchmaking/internal/db/models"
	"tictactoe_matchmaking/internal/services"
	"tictactoe_matchmaking/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const propositionsCommandName = "propositions"

type propositionsCommand struct {
	backendService services.BackendService
	logger         *zap.SugaredLogger
}

func NewPropositionsCommand(backendService services.BackendService, logger *zap.SugaredLogger) Command {
	return &propositionsCommand{
		backendService: backendService,
		logger:         logger,
	}
}

func (c *propositionsCommand) CanHandle(command string) bool {
	return command == propositionsCommandName
}

func (c *propositionsCommand) Handle(ctx context.Context, message *tgbotapi.Message) []tgbotapi.Chattable {
	chatID := message.Chat.ID

	if message.From == nil {
		return []tgbotapi.Chattable{extension.DefaultErrorMessage(chatID)}
	}

	propositions, err := c.backendService.ListPropositions(
		ctx,
		message.From.ID,
		models.PropositionStatusPending,
		models.PropositionStatusIncomplete,
	)
	if err != nil {
		c.logger.Errorw("failed to get propositions", "error", err, "telegramID", message.From.ID)
		return []tgbotapi.Chattable{extension.DefaultErrorMessage(chatID)}
	}

	if len(propositions) == 0 {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "You have no open propositions.")}
	}

	lines := make([]string, 0, len(propositions)+1)
	lines = append(lines, "Your open propositions:")
	for _, proposition := range propositions {
		lines = append(lines, propositionLine(message.From.ID, proposition))
	}

	response := tgbotapi.NewMessage(chatID, strings.Join(lines, "\n"))
	response.DisableWebPagePreview = true
	return []tgbotapi.Chattable{response}
}

func propositionLine(telegramID int64, proposition services.PropositionSummary) string {
	opponent := "anyone"
	if proposition.Player1 != models.TgPlayer(telegramID) {
		opponent = proposition.Player1.String()
	} else if proposition.Player2 != nil {
		opponent = proposition.Player2.String()
	}

	return fmt.Sprintf(
		"#%d %s vs %s, expires %s %s",
		proposition.ID,
		proposition.Status.Title(),
		opponent,
		internal.Format(proposition.ExpiresAt),
		proposition.DeepLinks.Telegram,
	)
}
