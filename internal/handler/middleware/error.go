package middleware

import (
	"log/slog"
	"net/http"

	"fitcoach-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Public errors carry the response that was already written; only 5xx need a log line with the cause.
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			resp, ok := err.Meta.(httperr.Response)
			if !ok || !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp.Status >= http.StatusInternalServerError {
				slog.Error("request failed",
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path,
					"error", err.Err)
			}
			if !c.Writer.Written() {
				c.JSON(resp.Status, resp)
			}
			return
		}

		if c.Writer.Written() {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = httperr.GenericFailureMessage

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
