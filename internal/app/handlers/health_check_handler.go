package handlers

import (
	"context"
	"net/http"
	"time"

	"loanlink/internal/pkg/logger"
	"loanlink/internal/pkg/models"

	"github.com/gin-gonic/gin"
)

const rootGreeting = "Hello from Server.."

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthCheckHandler struct {
	db Pinger
}

// NewHealthCheckHandler reports healthy unconditionally when db is nil.
func NewHealthCheckHandler(db Pinger) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

func (h *HealthCheckHandler) HealthCheck(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			logger.CtxError(ctx, "Health check ping failed", err)
			c.JSON(http.StatusServiceUnavailable, models.MessageResponse{Message: "Service Unavailable"})
			return
		}
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Health Check"})
}

func (h *HealthCheckHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, rootGreeting)
}
