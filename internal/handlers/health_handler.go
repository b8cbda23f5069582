package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elpresidentey/diasporan-backend/internal/database"
)

// HealthHandler serves the health endpoint
type HealthHandler struct {
	db database.DB
}

// NewHealthHandler creates a new HealthHandler. db may be nil in mock mode.
func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "unconfigured"})
		return
	}

	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
}
