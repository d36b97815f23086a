package handlers

import (
	"net/http"

	"barshift-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftHandler handles HTTP requests for shifts
type ShiftHandler struct {
	service *service.ShiftService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(service *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{service: service}
}

// CreateShift handles POST /api/v1/shifts
// @Summary Create a new shift
// @Description Create a shift at a venue with staffing requirements
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.CreateShiftRequest true "Shift data"
// @Success 201 {object} service.ShiftResponse "Successfully created shift"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Venue not found"
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	shift, err := h.service.CreateShift(&req)
	if err != nil {
		writeError(c, err, "Failed to create shift")
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// GetShift handles GET /api/v1/shifts/:id
// @Summary Get shift by ID
// @Description Get a specific shift by its UUID
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Successfully retrieved shift"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	shift, err := h.service.GetShift(id)
	if err != nil {
		writeError(c, err, "Failed to get shift")
		return
	}

	c.JSON(http.StatusOK, shift)
}

// ListShifts handles GET /api/v1/shifts
// @Summary List shifts at a venue
// @Description Get shifts at a venue inside a date range
// @Tags shifts
// @Produce json
// @Param venue_id query string true "Venue ID (UUID)"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved shifts"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Security BearerAuth
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	venueID, ok := parseUUIDQuery(c, "venue_id")
	if !ok {
		return
	}
	limit, offset := parsePagination(c)

	shifts, total, err := h.service.ListShifts(venueID, c.Query("from"), c.Query("to"), limit, offset)
	if err != nil {
		writeError(c, err, "Failed to list shifts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"shifts": shifts, "total": total, "limit": limit, "offset": offset})
}

// UpdateShift handles PUT /api/v1/shifts/:id
// @Summary Update a shift
// @Description Update a shift's schedule or staffing requirements
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param shift body service.UpdateShiftRequest true "Shift fields to update"
// @Success 200 {object} service.ShiftResponse "Successfully updated shift"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	shift, err := h.service.UpdateShift(id, &req)
	if err != nil {
		writeError(c, err, "Failed to update shift")
		return
	}

	c.JSON(http.StatusOK, shift)
}

// DeleteShift handles DELETE /api/v1/shifts/:id
// @Summary Delete a shift
// @Description Delete a shift and its assignments
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 204 "Successfully deleted shift"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteShift(id); err != nil {
		writeError(c, err, "Failed to delete shift")
		return
	}

	c.Status(http.StatusNoContent)
}
