package middleware

import (
	"log/slog"
	"net/http"

	"reservas-web/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the {detail} envelope for errors a handler recorded
// without answering. Public errors carry their response in Meta; anything
// else is a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.JSON(status, httperr.Response{Detail: http.StatusText(status)})
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Detail: "Internal Server Error"})
	}
}

// NotFound and MethodNotAllowed answer unknown routes in the same envelope
// as every other error.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, httperr.Response{Detail: "Not Found"})
}

func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, httperr.Response{Detail: "Method Not Allowed"})
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Recovered from panic",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{Detail: "Internal Server Error"})
			}
		}()
		c.Next()
	}
}
