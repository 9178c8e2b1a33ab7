package handlers

import (
	"net/http"

	"github.com/finserv-tools/bank_management_app/internal/composite"
	"github.com/gin-gonic/gin"
)

// compositeHandler handles HTTP requests for aggregated views.
type compositeHandler struct {
	compositeService *composite.Service
}

// newCompositeHandler creates a new compositeHandler.
func newCompositeHandler(cs *composite.Service) *compositeHandler {
	return &compositeHandler{compositeService: cs}
}

// registerCompositeRoutes registers routes for aggregated views. The routes
// are skipped entirely when no composite service is configured.
func registerCompositeRoutes(rg *gin.RouterGroup, compositeService *composite.Service) {
	if compositeService == nil {
		return
	}
	h := newCompositeHandler(compositeService)

	rg.GET("/composite/clients/:clientId/summary", h.getClientSummary)
}

func (h *compositeHandler) getClientSummary(c *gin.Context) {
	clientID := c.Param("clientId")

	summary, err := h.compositeService.GetClientSummary(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
