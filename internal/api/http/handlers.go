package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/uncertain/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/uncertain/internal/service"
	"github.com/GriffinCanCode/uncertain/internal/shared/types"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Uncertainty Propagation Service",
		"version": "0.2.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	services := h.registry.List()

	if category := c.Query("category"); category != "" {
		filtered := services[:0]
		for _, svc := range services {
			if string(svc.Category) == category {
				filtered = append(filtered, svc)
			}
		}
		services = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    h.registry.Stats(),
	})
}

// GetService returns a single service definition
func (h *Handlers) GetService(c *gin.Context) {
	id := c.Param("id")

	provider, ok := h.registry.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found: " + id})
		return
	}

	c.JSON(http.StatusOK, provider.Definition())
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	serviceID, _, found := strings.Cut(req.ToolID, ".")
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tool ID format: " + req.ToolID})
		return
	}

	var appCtx *types.Context
	if id, ok := c.Get("request_id"); ok {
		if rid, ok := id.(string); ok {
			appCtx = &types.Context{RequestID: &rid}
		}
	}

	var timer *monitoring.Timer
	if h.metrics != nil {
		timer = monitoring.NewTimer(h.metrics, serviceID, req.ToolID)
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		if timer != nil {
			timer.Stop("error")
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if timer != nil {
		if result.Success {
			timer.Stop("ok")
		} else {
			timer.Stop("error")
		}
	}

	c.JSON(http.StatusOK, result)
}
