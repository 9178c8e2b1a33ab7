package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finserv-tools/bank_management_app/internal/core/ports/services"
	"github.com/finserv-tools/bank_management_app/internal/dto"
	"github.com/finserv-tools/bank_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests related to statement reports.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

// registerReportRoutes registers routes related to statement reports.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	rg.GET("/reports", h.getStatement)
}

func (h *reportHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for statement report", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	statement, err := h.reportService.GenerateStatement(c.Request.Context(), params.ClientID, params.StartDate, params.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(statement))
}
