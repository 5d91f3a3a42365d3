package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the single fatal-error envelope the dialogue platform
// receives. Business outcomes (no fare, no driver, declined payment) never
// use it; they ride back inside the session parameters.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Error: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends the standardized JSON error response
func JSONError(c *gin.Context, status int, message string) {
	logger := GetLogger()
	logger.Warn("request failed", zap.Int("status", status), zap.String("error", message))
	c.JSON(status, ErrorResponse{Error: message})
}
