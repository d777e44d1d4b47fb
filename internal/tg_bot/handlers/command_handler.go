package handlers

import (
	"context"

	"tictactoe_matchmaking/internal/tg_bot/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const fallbackText = "Nice try!"

type CommandHandler interface {
	Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable
}

type tictactoeBotCommandHandler struct {
	logger *zap.SugaredLogger

	commands []commands.Command
}

func NewTictactoeBotCommandHandler(logger *zap.SugaredLogger, commands []commands.Command) CommandHandler {
	return &tictactoeBotCommandHandler{
		logger:   logger,
		commands: commands,
	}
}

func (h *tictactoeBotCommandHandler) Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable {
	message := update.Message

	if message == nil {
		h.logger.Warn("received unknown updates")
		return []tgbotapi.Chattable{}
	}

	chatID := message.Chat.ID

	if message.IsCommand() {
		command := message.Command()
		h.logger.Infow("received command", "command", command, "chatID", chatID)

		for _, handler := range h.commands {
			if handler.CanHandle(command) {
				return handler.Handle(ctx, message)
			}
		}

		h.logger.Warnf("received unknown command: %s", command)
	}

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, fallbackText)}
}
