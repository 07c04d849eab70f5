package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karibugroceries/karibu-api/internal/application/service"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/dto/response"
)

// ReportHandler handles report summary and export download requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// reportKinds maps URL path segments to report kinds
var reportKinds = map[string]service.ReportKind{
	"inventory":    service.ReportInventory,
	"sales":        service.ReportSales,
	"credit-sales": service.ReportCreditSales,
	"full":         service.ReportFull,
}

// GetSummary returns the aggregate figures shown on the reports page
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportService.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report summary retrieved successfully", summary)
}

// Export streams a report download. The format query parameter selects the
// artifact type and defaults to csv; the full report is PDF only.
func (h *ReportHandler) Export(c *gin.Context) {
	kind, ok := reportKinds[c.Param("report")]
	if !ok {
		response.ErrorWithCode(c, http.StatusNotFound, "Unknown report")
		return
	}

	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	if kind == service.ReportFull {
		format = service.FormatPDF
	}

	artifact, err := h.reportService.Export(c.Request.Context(), kind, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	if artifact == nil {
		response.NoContent(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}
