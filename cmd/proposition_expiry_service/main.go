package main

import (
	"context"
	"fmt"
	"time"

	"tictactoe_matchmaking/configs"
	"tictactoe_matchmaking/internal"
	"tictactoe_matchmaking/internal/db"
	"tictactoe_matchmaking/internal/db/models"
	"tictactoe_matchmaking/internal/db/repositories"
	"tictactoe_matchmaking/internal/di"
	"tictactoe_matchmaking/internal/services"

	"github.com/go-co-op/gocron"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const jobTimeout = time.Minute

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

func main() {
	_ = godotenv.Load()

	s := gocron.NewScheduler(time.UTC)

	config, err := configs.LoadPropositionExpiryServiceConfig()
	if err != nil {
		zap.Must(zap.NewProduction()).Sugar().Fatalw("failed to load config", "error", err)
	}

	logger := di.NewLogger(config.Logger, config.App)
	defer func() { _ = logger.Sync() }()
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	bot, err := tgbotapi.NewBotAPI(config.Bot.Token)
	if err != nil {
		logger.Fatalw("could not create bot", "error", err)
	}

	logger.Info("initializing repositories and services")
	propositionService := services.NewPropositionService(
		repositories.NewPropositionRepository(database),
		services.NewPlayerResolver(repositories.NewUserRepository(database), repositories.NewTgUserRepository(database)),
		logger,
	)

	_, err = s.Cron(config.Expiry.Cron).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		declined := declineExpiredPropositions(ctx, propositionService, logger)
		if len(declined) == 0 {
			logger.Info("no expired propositions")
			return
		}

		for _, proposition := range declined {
			sendNotifications(proposition, bot, logger)
		}

		logger.Infow("expired propositions declined", "count", len(declined))
	})
	if err != nil {
		logger.Fatalw("failed to schedule job", "error", err, "cron", config.Expiry.Cron)
	}

	s.StartBlocking()
}

func declineExpiredPropositions(
	ctx context.Context,
	propositionService services.PropositionService,
	logger *zap.SugaredLogger,
) []*models.Proposition {
	logger.Info("declining expired propositions")

	declined, err := propositionService.DeclineExpired(ctx)
	if err != nil {
		logger.Errorw("failed to get expired propositions", "error", err)
		return nil
	}

	return declined
}

// telegramRecipients returns chat ids of the participants registered through Telegram.
func telegramRecipients(proposition *models.Proposition) []int64 {
	recipients := []int64{}

	if proposition.Player1Kind == models.PlayerKindTgUser {
		recipients = append(recipients, proposition.Player1ID)
	}

	if player2 := proposition.Player2(); player2 != nil && player2.Kind == models.PlayerKindTgUser {
		recipients = append(recipients, player2.ID)
	}

	return recipients
}

func sendNotifications(proposition *models.Proposition, bot messageSender, logger *zap.SugaredLogger) {
	for _, chatID := range telegramRecipients(proposition) {
		if _, err := bot.Send(messageForExpiredProposition(chatID, proposition)); err != nil {
			logger.Errorw("could not send message", "error", err, "chatID", chatID, "propositionID", proposition.ID)
		}
	}
}

func messageForExpiredProposition(chatID int64, proposition *models.Proposition) tgbotapi.MessageConfig {
	text := fmt.Sprintf(
		"Tic-tac-toe proposition #%d expired on %s and was declined.\n\nSend /propositions to see the ones still waiting.",
		proposition.ID,
		internal.Format(proposition.ExpiresAt),
	)
	return tgbotapi.NewMessage(chatID, text)
}
