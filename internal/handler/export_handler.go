package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gymplan/subplan-api/internal/service"
	"github.com/gymplan/subplan-api/pkg/response"
)

// ExportHandler serves the printable day report.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// DayReport godoc
// @Summary Download the day's substitution report
// @Tags Export
// @Produce text/csv
// @Produce application/pdf
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param format query string false "csv or pdf" default(pdf)
// @Success 200 {file} binary
// @Router /export/day-report [get]
func (h *ExportHandler) DayReport(c *gin.Context) {
	format := c.DefaultQuery("format", "pdf")
	report, err := h.service.DayReport(c.Query("date"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
	c.Data(200, report.ContentType, report.Content)
}
