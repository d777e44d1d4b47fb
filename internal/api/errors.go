package api

import (
	"errors"
	"net/http"

	"tictactoe_matchmaking/internal/apperrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const nonFieldErrorsKey = "non_field_errors"

// renderError writes err in the shape API clients expect: field errors as {"field": ["msg"]},
// everything else as {"detail": "msg"}.
func renderError(c *gin.Context, logger *zap.SugaredLogger, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Errorw("request failed", "error", err, "path", c.FullPath())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "A server error occurred."})
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeValidation:
		field := appErr.Field
		if field == "" {
			field = nonFieldErrorsKey
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{field: []string{appErr.Message}})
	case apperrors.ErrCodeNotFound:
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": appErr.Message})
	case apperrors.ErrCodeBadRequest:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": appErr.Message})
	case apperrors.ErrCodeUnauthorized:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": appErr.Message})
	default:
		logger.Errorw("request failed", "error", err, "path", c.FullPath())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "A server error occurred."})
	}
}
