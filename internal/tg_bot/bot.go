package tgbot

import (
	"context"
	"time"

	"tictactoe_matchmaking/configs"
	"tictactoe_matchmaking/internal/tg_bot/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const updateHandlingTimeout = 30 * time.Second

type bot struct {
	handler handlers.CommandHandler
}

type Bot interface {
	Start(config configs.TictactoeBotConfig, logger *zap.SugaredLogger)
}

func NewBot(handler handlers.CommandHandler) Bot {
	return &bot{handler: handler}
}

func (b *bot) Start(config configs.TictactoeBotConfig, logger *zap.SugaredLogger) {
	logger.Info("creating bot")
	bot, updates, err := b.createBot(config)
	if err != nil {
		logger.Fatalf("failed to create bot: %v", err)
	}
	logger.Infow("bot created", "username", bot.Self.UserName)

	for update := range updates {
		ctx, cancel := context.WithTimeout(context.Background(), updateHandlingTimeout)

		for _, message := range b.handler.Handle(ctx, update) {
			if _, err := bot.Send(message); err != nil {
				logger.Errorf("failed to send message: %v", err)
			}
		}

		cancel()
	}
}

func (b *bot) createBot(config configs.TictactoeBotConfig) (*tgbotapi.BotAPI, tgbotapi.UpdatesChannel, error) {
	bot, err := tgbotapi.NewBotAPI(config.Bot.Token)
	if err != nil {
		return nil, nil, err
	}

	bot.Debug = config.App.IsDevEnvironment()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = config.Bot.UpdateTimeout

	return bot, bot.GetUpdatesChan(u), nil
}
