package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"schedulebuilder-backend/middleware"
	"schedulebuilder-backend/models"
	"schedulebuilder-backend/repository"
	"schedulebuilder-backend/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles HTTP requests for schedules
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// CreateScheduleRequest represents the request body for creating a schedule
type CreateScheduleRequest struct {
	Name      string               `json:"name" binding:"required"`
	Data      *models.ScheduleData `json:"data" binding:"required"`
	Version   string               `json:"version" binding:"required"`
	IsDefault bool                 `json:"is_default"`
}

// CreateSchedule handles POST /schedules
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.scheduleService.CreateSchedule(c.Request.Context(), service.CreateScheduleRequest{
		UserID:    middleware.CurrentUserID(c),
		Name:      req.Name,
		Data:      *req.Data,
		Version:   req.Version,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// ListSchedules handles GET /schedules
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.scheduleService.ListSchedules(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list schedules"})
		return
	}

	if schedules == nil {
		schedules = []*models.Schedule{}
	}

	c.JSON(http.StatusOK, schedules)
}

// GetDefaultSchedule handles GET /schedules/default
func (h *ScheduleHandler) GetDefaultSchedule(c *gin.Context) {
	schedule, err := h.scheduleService.GetDefaultSchedule(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No default schedule found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load default schedule"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// UpdateScheduleRequest represents the request body for a partial update
type UpdateScheduleRequest struct {
	Name      *string              `json:"name"`
	Data      *models.ScheduleData `json:"data"`
	Version   *string              `json:"version"`
	IsDefault *bool                `json:"is_default"`
}

// UpdateSchedule handles PUT /schedules/:id
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.scheduleService.UpdateSchedule(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		id,
		service.SchedulePatch{
			Name:      req.Name,
			Data:      req.Data,
			Version:   req.Version,
			IsDefault: req.IsDefault,
		},
	)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule handles DELETE /schedules/:id
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	err = h.scheduleService.DeleteSchedule(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}
