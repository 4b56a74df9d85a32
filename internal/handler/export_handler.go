package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/AppariLavanya/inventory-management-system/internal/service"
)

// ExportHandler handles report download endpoints.
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler constructs an ExportHandler.
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// DownloadCSV streams the full inventory report as a CSV attachment.
func (h *ExportHandler) DownloadCSV(c *gin.Context) {
	filename := fmt.Sprintf("inventory-report-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.exportService.WriteCSV(c.Writer); err != nil {
		// Headers may already be out; log and abort the stream.
		log.Error().Err(err).Msg("CSV export failed")
		c.Abort()
		return
	}
}
