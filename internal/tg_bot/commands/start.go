package commands

import (
	"context"
	"fmt"
	"html"
	"strings"

	"tictactoe_matchmaking/internal/services"
	"tictactoe_matchmaking/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	startCommandName = "start"

	propositionPayloadPrefix = "proposition_"
)

type startCommand struct {
	backendService services.BackendService
	logger         *zap.SugaredLogger
}

func NewStartCommand(backendService services.BackendService, logger *zap.SugaredLogger) Command {
	return &startCommand{
		backendService: backendService,
		logger:         logger,
	}
}

func (c *startCommand) CanHandle(command string) bool {
	return command == startCommandName
}

func (c *startCommand) Handle(ctx context.Context, message *tgbotapi.Message) []tgbotapi.Chattable {
	chatID := message.Chat.ID

	if message.From == nil {
		c.logger.Warn("received start without sender")
		return []tgbotapi.Chattable{extension.DefaultErrorMessage(chatID)}
	}

	created, err := c.backendService.UpsertTgUser(ctx, extension.TgUserPayload(message.From))
	if err != nil {
		c.logger.Errorw("failed to register tg user", "error", err, "telegramID", message.From.ID)
		return []tgbotapi.Chattable{extension.DefaultErrorMessage(chatID)}
	}
	c.logger.Infow("tg user started bot", "telegramID", message.From.ID, "created", created)

	return []tgbotapi.Chattable{c.greeting(chatID, message.From, message.CommandArguments())}
}

func (c *startCommand) greeting(chatID int64, from *tgbotapi.User, payload string) tgbotapi.Chattable {
	text := fmt.Sprintf(`Hello, <b>%s</b>!

I match you with opponents for tic-tac-toe.

/propositions - show your open game propositions.`, html.EscapeString(extension.FullName(from)))

	if id, found := strings.CutPrefix(payload, propositionPayloadPrefix); found && id != "" {
		text += fmt.Sprintf("\n\nYou were invited to proposition <b>#%s</b>.", html.EscapeString(id))
	}

	message := tgbotapi.NewMessage(chatID, text)
	message.ParseMode = tgbotapi.ModeHTML
	return message
}
