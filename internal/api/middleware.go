package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tictactoe_matchmaking/internal/apperrors"
	"tictactoe_matchmaking/internal/db/models"
	"tictactoe_matchmaking/internal/security"
	"tictactoe_matchmaking/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	playerKey  = "player"
	serviceKey = "service"

	tgUserNotFoundMessage = "TgUser not found."
)

func RequestLogger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Infow("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"clientIP", c.ClientIP(),
		)
	}
}

func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Errorw("panic recovered", "error", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "A server error occurred."})
	})
}

// Auth accepts requests carrying a valid HS256 bearer token signed with secret.
func Auth(secret string, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			renderError(c, logger, apperrors.New(apperrors.ErrCodeUnauthorized, "Authentication credentials were not provided."))
			return
		}

		claims, err := security.ValidateToken(tokenString, secret)
		if err != nil {
			renderError(c, logger, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "Invalid token."))
			return
		}

		c.Set(serviceKey, claims.Service)
		c.Next()
	}
}

// requireTgUser resolves :tguser_pk to an existing Telegram user and stores it as the acting player.
func requireTgUser(tgUserService services.TgUserService, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		telegramID, err := strconv.ParseInt(c.Param("tguser_pk"), 10, 64)
		if err != nil {
			renderError(c, logger, apperrors.NotFound(tgUserNotFoundMessage))
			return
		}

		exists, err := tgUserService.Exists(c.Request.Context(), telegramID)
		if err != nil {
			renderError(c, logger, err)
			return
		}
		if !exists {
			renderError(c, logger, apperrors.NotFound(tgUserNotFoundMessage))
			return
		}

		c.Set(playerKey, models.TgPlayer(telegramID))
		c.Next()
	}
}

func playerFrom(c *gin.Context) models.PlayerRef {
	return c.MustGet(playerKey).(models.PlayerRef)
}

func methodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{
		"detail": fmt.Sprintf("Method %q not allowed.", c.Request.Method),
	})
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
