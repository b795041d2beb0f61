package middleware

import (
	"errors"
	"net/http"

	"siteseekers-backend/internal/delivery/http/response"
	"siteseekers-backend/pkg/apperror"
	"siteseekers-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				// Internal errors carry the real cause; log it server-side
				// and keep the client message generic.
				if appErr.Code >= http.StatusInternalServerError && logger.Log != nil {
					logger.Log.Error("request failed",
						"path", c.FullPath(),
						"error", appErr.Err,
					)
				}
				response.Error(c, appErr.Code, appErr.Message)
				return
			}

			if logger.Log != nil {
				logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
			}
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
		}
	}
}
