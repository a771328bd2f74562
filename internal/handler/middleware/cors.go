package middleware

import (
	"log/slog"
	"slices"

	"fitcoach-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Headers the booking API depends on regardless of configuration.
var (
	requiredAllowHeaders  = []string{"Authorization", "Content-Type", "Idempotency-Key", "Last-Event-ID"}
	requiredExposeHeaders = []string{"Location", requestIDHeader}
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withRequired(cfg.AllowHeaders, requiredAllowHeaders),
		ExposeHeaders:    withRequired(cfg.ExposeHeaders, requiredExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

func withRequired(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
