package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"schedulebuilder-backend/middleware"
	"schedulebuilder-backend/models"
	"schedulebuilder-backend/repository"
	"schedulebuilder-backend/service"
	"schedulebuilder-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExportHandler handles HTTP requests for schedule exports
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportSchedule handles POST /schedules/:id/export
func (h *ExportHandler) ExportSchedule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	export, err := h.exportService.ExportSchedule(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export schedule"})
		return
	}

	c.JSON(http.StatusOK, export)
}

// ListExports handles GET /schedules/exports
func (h *ExportHandler) ListExports(c *gin.Context) {
	exports, err := h.exportService.ListExports(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exports"})
		return
	}

	if exports == nil {
		exports = []*models.ScheduleExport{}
	}

	c.JSON(http.StatusOK, exports)
}

// DownloadExport handles GET /schedules/exports/:id
func (h *ExportHandler) DownloadExport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid export ID"})
		return
	}

	payload, err := h.exportService.DownloadExport(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, storage.ErrObjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Export not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to download export"})
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}
