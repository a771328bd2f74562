package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is anything the service cannot work without.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]Pinger
}

func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// @Summary Health check
// @Description Check if the service and its dependencies are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := gin.H{}
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			deps[name] = err.Error()
			continue
		}
		deps[name] = "ok"
	}

	msg := "Service is healthy"
	if status != http.StatusOK {
		msg = "Service is degraded"
	}
	c.JSON(status, gin.H{
		"status":       http.StatusText(status),
		"message":      msg,
		"dependencies": deps,
	})
}
