package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler serves liveness and readiness probes.
type Handler struct {
	db        *gorm.DB
	service   string
	startedAt time.Time
}

// NewHandler creates a health handler. db may be nil when the service runs
// without a database.
func NewHandler(db *gorm.DB, service string) *Handler {
	return &Handler{db: db, service: service, startedAt: time.Now().UTC()}
}

// RegisterRoutes registers the health endpoints on the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.Liveness)
	r.GET("/readyz", h.Readiness)
}

// Liveness handles GET /healthz.
func (h *Handler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.service,
		"uptime":  time.Since(h.startedAt).String(),
	})
}

// Readiness handles GET /readyz. With a database configured it must be
// reachable; without one the service is always ready.
func (h *Handler) Readiness(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unavailable",
				"service": h.service,
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"service": h.service,
	})
}
