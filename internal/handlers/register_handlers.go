package handlers

import (
	"github.com/finserv-tools/bank_management_app/internal/composite"
	portssvc "github.com/finserv-tools/bank_management_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	compositeService *composite.Service,
) {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	v1 := r.Group("/api/v1")

	registerClientRoutes(v1, services.Client)
	registerAccountRoutes(v1, services.Account)
	registerTransactionRoutes(v1, services.Transaction)
	registerReportRoutes(v1, services.Report)
	registerCompositeRoutes(v1, compositeService)
}
