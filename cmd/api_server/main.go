package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tictactoe_matchmaking/configs"
	"tictactoe_matchmaking/internal/api"
	"tictactoe_matchmaking/internal/db"
	"tictactoe_matchmaking/internal/db/repositories"
	"tictactoe_matchmaking/internal/di"
	"tictactoe_matchmaking/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	config, err := configs.LoadAPIServerConfig()
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
	defer database.Close()
	logger.Info("db started")

	logger.Info("initializing repositories and services")
	userRepository := repositories.NewUserRepository(database)
	tgUserRepository := repositories.NewTgUserRepository(database)
	propositionRepository := repositories.NewPropositionRepository(database)
	gameRepository := repositories.NewGameRepository(database)

	playerResolver := services.NewPlayerResolver(userRepository, tgUserRepository)

	handler := api.NewHandler(
		services.NewTgUserService(tgUserRepository),
		services.NewPropositionService(propositionRepository, playerResolver, logger),
		services.NewGameService(gameRepository, propositionRepository),
		api.DeepLinkBuilder{BotUsername: config.App.BotUsername, WebBaseURL: config.App.WebBaseURL},
		logger,
	)

	if !config.App.IsDevEnvironment() {
		gin.SetMode(gin.ReleaseMode)
	}
	if !config.API.AuthEnabled() {
		logger.Warn("API_JWT_SECRET is empty, api is not protected")
	}

	server := &http.Server{
		Addr: config.API.Addr,
		Handler: api.NewRouter(handler, api.RouterOptions{
			BasePath:  config.API.BasePath,
			JWTSecret: config.API.JWTSecret,
		}),
	}

	go func() {
		logger.Infow("starting http server", "addr", config.API.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("failed to start http server", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), config.API.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorw("failed to shutdown http server", "error", err)
		return
	}

	logger.Info("shutting down")
}
