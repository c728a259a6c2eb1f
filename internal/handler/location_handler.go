package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/routesketch/service-planner/internal/application"
	"github.com/routesketch/service-planner/internal/response"
)

// LocationHandler handles HTTP requests for the location registry.
type LocationHandler struct {
	service *application.LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(service *application.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// RegisterRoutes registers all location routes on the given router group.
func (h *LocationHandler) RegisterRoutes(r *gin.RouterGroup) {
	locations := r.Group("/api/v1/locations")
	{
		locations.GET("", h.ListLocations)
		locations.GET("/search", h.SearchLocations)
	}
}

// ListLocations handles GET /api/v1/locations.
func (h *LocationHandler) ListLocations(c *gin.Context) {
	entries, err := h.service.ListLocations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}

// SearchLocations handles GET /api/v1/locations/search?q=.
// An empty query yields an empty result: suggestions stay hidden.
func (h *LocationHandler) SearchLocations(c *gin.Context) {
	matches, err := h.service.SearchLocations(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, matches)
}
