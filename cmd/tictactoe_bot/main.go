package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tictactoe_matchmaking/configs"
	"tictactoe_matchmaking/internal/di"
	"tictactoe_matchmaking/internal/services"
	tgbot "tictactoe_matchmaking/internal/tg_bot"
	"tictactoe_matchmaking/internal/tg_bot/commands"
	"tictactoe_matchmaking/internal/tg_bot/handlers"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	config, err := configs.LoadTictactoeBotConfig()
	if err != nil {
		zap.Must(zap.NewProduction()).Sugar().Fatalw("failed to load config", "error", err)
	}

	logger := di.NewLogger(config.Logger, config.App)
	defer func() { _ = logger.Sync() }()
	logger.Info("config loaded")

	go func() {
		logger.Info("setting up health check server")
		settingUpHealthCheckServer(config.Bot.HealthcheckAddr, logger)
	}()

	logger.Info("starting bot")
	backendService := services.NewBackendService(config.Backend.URL, config.Backend.JWTSecret)

	tgbot.NewBot(
		handlers.NewTictactoeBotCommandHandler(logger,
			[]commands.Command{
				commands.NewStartCommand(backendService, logger),
				commands.NewPropositionsCommand(backendService, logger),
			},
		),
	).Start(config, logger)
}

func settingUpHealthCheckServer(addr string, logger *zap.SugaredLogger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tictactoe-bot/healthcheck", healthCheckHandler)

	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		<-stop

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Errorw("failed to shutdown http server", "error", err)
		}
		os.Exit(0)
	}()

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Errorw("failed to start http server", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}
