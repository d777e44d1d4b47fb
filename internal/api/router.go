package api

import (
	"net/http"

	"tictactoe_matchmaking/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	tgUserService      services.TgUserService
	propositionService services.PropositionService
	gameService        services.GameService
	links              DeepLinkBuilder
	logger             *zap.SugaredLogger
}

func NewHandler(
	tgUserService services.TgUserService,
	propositionService services.PropositionService,
	gameService services.GameService,
	links DeepLinkBuilder,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		tgUserService:      tgUserService,
		propositionService: propositionService,
		gameService:        gameService,
		links:              links,
		logger:             logger,
	}
}

type RouterOptions struct {
	BasePath string
	// JWTSecret enables bearer token auth on every route except the healthcheck.
	JWTSecret string
}

func NewRouter(handler *Handler, options RouterOptions) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(methodNotAllowed)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
	})
	r.Use(RequestLogger(handler.logger), Recovery(handler.logger))

	r.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "I'm alive")
	})

	api := r.Group(options.BasePath)
	if options.JWTSecret != "" {
		api.Use(Auth(options.JWTSecret, handler.logger))
	}

	tgUsers := api.Group("/tgusers")
	{
		tgUsers.POST("/", handler.upsertTgUser)
		tgUsers.GET("/", methodNotAllowed)

		tgUser := tgUsers.Group("/:tguser_pk", requireTgUser(handler.tgUserService, handler.logger))

		propositions := tgUser.Group("/tictactoe-propositions")
		{
			propositions.GET("/", handler.listPropositions)
			propositions.POST("/", handler.createProposition)
			propositions.GET("/:id/", handler.getProposition)
			propositions.PUT("/:id/", handler.updateProposition(false))
			propositions.PATCH("/:id/", handler.updateProposition(true))
			propositions.DELETE("/:id/", handler.deleteProposition)
			propositions.POST("/:id/accept/", handler.acceptProposition)
			propositions.POST("/:id/decline/", handler.declineProposition)
			propositions.POST("/:id/game/", handler.startGame)
		}

		games := tgUser.Group("/games")
		{
			games.GET("/", handler.listGames)
			games.GET("/:game_id/states/", handler.listGameStates)
		}
	}

	return r
}
