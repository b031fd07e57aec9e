package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/pkg/apperror"
	"go-resume-builder/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				var fields interface{}
				if appErr.Fields != nil {
					fields = appErr.Fields
				}
				response.Error(c, appErr.Code, appErr.Message, fields)
				return
			}
			// Never expose internal error details to clients. Log server-side,
			// send a generic message.
			logger.Log.Error("Internal server error", "error", err, "path", c.Request.URL.Path)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
