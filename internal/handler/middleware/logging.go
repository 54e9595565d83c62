package middleware

import (
	"context"
	"log/slog"
	"time"

	"reservas-web/internal/handler/httperr"
	"reservas-web/internal/pkg/config"
	"reservas-web/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxRequestIDKey = "request_id"
	HeaderRequestID = "X-Request-ID"

	maxStackLines = 8
)

type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

func NewLogger(logger *slog.Logger, cfg config.LogConfig) *Logger {
	return &Logger{
		logger:   logger,
		timezone: time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset),
	}
}

// LoggingMiddleware tags every request with an ID, taken from X-Request-ID
// when the caller sent a valid one, and logs its outcome. Rejections log the
// detail sent to the client; server errors add the top of the stack.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := requestIDFrom(c)

		c.Set(ctxRequestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)

		logAttrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}

		l.logger.LogAttrs(context.Background(), slog.LevelDebug, "Request started", logAttrs...)

		c.Next()

		statusCode := c.Writer.Status()

		responseAttrs := make([]slog.Attr, len(logAttrs), len(logAttrs)+6)
		copy(responseAttrs, logAttrs)
		responseAttrs = append(responseAttrs,
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(startTime)),
			slog.String("finished_at", time.Now().In(l.timezone).Format(time.RFC3339)),
		)

		// set by the auth middleware, which runs after this one
		if userID, ok := GetUserID(c); ok {
			responseAttrs = append(responseAttrs, slog.String("user_id", userID.String()))
		}

		if last := c.Errors.Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				if detail, ok := resp.Detail.(string); ok {
					responseAttrs = append(responseAttrs, slog.String("detail", detail))
				}
			}
			if statusCode >= 500 {
				responseAttrs = append(responseAttrs, slog.Any("stack", errs.ExtractStackLines(last.Err, maxStackLines)))
			} else {
				responseAttrs = append(responseAttrs, slog.String("error", last.Err.Error()))
			}
		}

		logLevel := slog.LevelInfo
		if statusCode >= 500 {
			logLevel = slog.LevelError
		} else if statusCode >= 400 {
			logLevel = slog.LevelWarn
		}

		l.logger.LogAttrs(context.Background(), logLevel, "Request completed", responseAttrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(ctxRequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

func LoggingMiddleware(logger *slog.Logger, cfg config.LogConfig) gin.HandlerFunc {
	return NewLogger(logger, cfg).LoggingMiddleware()
}

func requestIDFrom(c *gin.Context) string {
	if id, err := uuid.Parse(c.GetHeader(HeaderRequestID)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
