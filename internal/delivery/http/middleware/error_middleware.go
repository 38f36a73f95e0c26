package middleware

import (
	"errors"
	"net/http"

	"hirerevops-backend/internal/delivery/http/response"
	"hirerevops-backend/pkg/apperror"
	"hirerevops-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached via c.Error into the JSON envelope.
// Unrecognized errors are logged server-side and surfaced as a generic 500
// so internals never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code == http.StatusInternalServerError {
				logger.Log.Error("internal error",
					"error", appErr.Err,
					"path", c.Request.URL.Path,
					"request_id", c.GetString("RequestID"),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("unhandled error",
			"error", err,
			"path", c.Request.URL.Path,
			"request_id", c.GetString("RequestID"),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
