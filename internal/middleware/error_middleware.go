package middleware

import (
	"net/http"

	"atelier-catalog/internal/transport/httpdto"
	"atelier-catalog/pkg/apierrors"
	"atelier-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors attached to the context onto the response
// envelope. Internal errors are logged with full detail; the client only sees
// a generic message outside of debug mode.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apierrors.HTTPStatus(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			if l != nil {
				l.Errorf("request error: %s", err.Error())
			}
			if !gin.IsDebugging() {
				message = "an unexpected error occurred"
			}
		}
		c.JSON(status, httpdto.NewErrorResponse(message, apierrors.Code(err)))
	}
}
