package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/routesketch/service-planner/internal/application"
	"github.com/routesketch/service-planner/internal/response"
)

// PlannerHandler handles HTTP requests for planning sessions.
type PlannerHandler struct {
	service *application.PlannerService
}

// NewPlannerHandler creates a new PlannerHandler.
func NewPlannerHandler(service *application.PlannerService) *PlannerHandler {
	return &PlannerHandler{service: service}
}

// RegisterRoutes registers all planner routes on the given router group.
func (h *PlannerHandler) RegisterRoutes(r *gin.RouterGroup) {
	sessions := r.Group("/api/v1/planner/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.PUT("/:id/source", h.SetSource)
		sessions.PUT("/:id/destination", h.SetDestination)
		sessions.POST("/:id/swap", h.Swap)
		sessions.PUT("/:id/selection", h.SelectPoint)
		sessions.DELETE("/:id/selection", h.ClearSelection)
		sessions.POST("/:id/route", h.ComputeRoute)
		sessions.GET("/:id/render", h.RenderPlan)
	}
}

type setEndpointRequest struct {
	Name string `json:"name" binding:"required"`
}

type selectPointRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

// CreateSession handles POST /api/v1/planner/sessions.
func (h *PlannerHandler) CreateSession(c *gin.Context) {
	result, err := h.service.CreateSession(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// GetSession handles GET /api/v1/planner/sessions/:id.
func (h *PlannerHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	result, err := h.service.GetSession(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SetSource handles PUT /api/v1/planner/sessions/:id/source.
func (h *PlannerHandler) SetSource(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req setEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SetSource(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SetDestination handles PUT /api/v1/planner/sessions/:id/destination.
func (h *PlannerHandler) SetDestination(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req setEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SetDestination(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Swap handles POST /api/v1/planner/sessions/:id/swap.
func (h *PlannerHandler) Swap(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	result, err := h.service.Swap(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SelectPoint handles PUT /api/v1/planner/sessions/:id/selection.
func (h *PlannerHandler) SelectPoint(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req selectPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SelectPoint(c.Request.Context(), id, *req.Lat, *req.Lng)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ClearSelection handles DELETE /api/v1/planner/sessions/:id/selection.
func (h *PlannerHandler) ClearSelection(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	result, err := h.service.ClearSelection(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ComputeRoute handles POST /api/v1/planner/sessions/:id/route.
func (h *PlannerHandler) ComputeRoute(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	result, err := h.service.ComputeRoute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// RenderPlan handles GET /api/v1/planner/sessions/:id/render.
func (h *PlannerHandler) RenderPlan(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	plan, err := h.service.RenderPlan(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, plan)
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}
