package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"
	"strings"
	"time"

	"fitcoach-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	ctxRequestIDKey = "request_id"
	requestIDHeader = "X-Request-ID"
)

type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

// NewLogger builds the process-wide slog logger and installs it as the default.
func NewLogger(cfg config.LogConfig) *Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{logger: logger, timezone: timezone}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware logs one line per request. Live feeds are long-lived, so they
// also get a line when the stream opens.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		startTime := time.Now()
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = l.generateRequestID(startTime)
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		if key := c.GetHeader("Idempotency-Key"); key != "" {
			attrs = append(attrs, slog.String("idempotency_key", key))
		}
		if strings.HasPrefix(c.Request.URL.Path, "/api/live/") {
			l.logger.LogAttrs(context.Background(), slog.LevelInfo, "Stream opened", attrs...)
		}

		c.Next()

		// the auth middleware runs after this one, so the caller is only known now
		if userID, role := extractUserContext(c); userID != "" {
			attrs = append(attrs, slog.String("user_id", userID), slog.String("role", role))
		}
		attrs = append(attrs,
			slog.Int("status_code", c.Writer.Status()),
			slog.Duration("duration", time.Since(startTime)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch status := c.Writer.Status(); {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		l.logger.LogAttrs(context.Background(), level, "Request completed", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

func (l *Logger) generateRequestID(now time.Time) string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return now.In(l.timezone).Format("20060102150405") + "-" + hex.EncodeToString(b)
}

func extractUserContext(c *gin.Context) (userID, role string) {
	claims, ok := c.Get("jwt_claims")
	if !ok {
		return "", ""
	}
	m, ok := claims.(map[string]any)
	if !ok {
		return "", ""
	}
	userID, _ = m["user_id"].(string)
	role, _ = m["role"].(string)
	return userID, role
}
