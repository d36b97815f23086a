package handlers

import (
	"net/http"

	"barshift-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StaffHandler handles HTTP requests for staff members
type StaffHandler struct {
	service *service.StaffService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(service *service.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

// CreateStaff handles POST /api/v1/staff
// @Summary Create a new staff member
// @Description Create a new staff member with the provided details
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body service.CreateStaffRequest true "Staff member data"
// @Success 201 {object} service.StaffResponse "Successfully created staff member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email already in use"
// @Security BearerAuth
// @Router /staff [post]
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req service.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	staff, err := h.service.CreateStaff(&req)
	if err != nil {
		writeError(c, err, "Failed to create staff member")
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// GetStaff handles GET /api/v1/staff/:id
// @Summary Get staff member by ID
// @Description Get a specific staff member with venue preferences
// @Tags staff
// @Produce json
// @Param id path string true "Staff ID (UUID)"
// @Success 200 {object} service.StaffResponse "Successfully retrieved staff member"
// @Failure 404 {object} map[string]interface{} "Staff member not found"
// @Security BearerAuth
// @Router /staff/{id} [get]
func (h *StaffHandler) GetStaff(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	staff, err := h.service.GetStaff(id)
	if err != nil {
		writeError(c, err, "Failed to get staff member")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// ListStaff handles GET /api/v1/staff
// @Summary List staff members
// @Description Get all staff members with pagination support
// @Tags staff
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved staff members"
// @Security BearerAuth
// @Router /staff [get]
func (h *StaffHandler) ListStaff(c *gin.Context) {
	limit, offset := parsePagination(c)

	members, total, err := h.service.ListStaff(limit, offset)
	if err != nil {
		writeError(c, err, "Failed to list staff members")
		return
	}

	c.JSON(http.StatusOK, gin.H{"staff": members, "total": total, "limit": limit, "offset": offset})
}

// UpdateStaff handles PUT /api/v1/staff/:id
// @Summary Update a staff member
// @Description Update a staff member's fields
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID (UUID)"
// @Param staff body service.UpdateStaffRequest true "Staff fields to update"
// @Success 200 {object} service.StaffResponse "Successfully updated staff member"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Staff member not found"
// @Security BearerAuth
// @Router /staff/{id} [put]
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	staff, err := h.service.UpdateStaff(id, &req)
	if err != nil {
		writeError(c, err, "Failed to update staff member")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// DeleteStaff handles DELETE /api/v1/staff/:id
// @Summary Delete a staff member
// @Description Delete a staff member and their assignments
// @Tags staff
// @Produce json
// @Param id path string true "Staff ID (UUID)"
// @Success 204 "Successfully deleted staff member"
// @Failure 404 {object} map[string]interface{} "Staff member not found"
// @Security BearerAuth
// @Router /staff/{id} [delete]
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteStaff(id); err != nil {
		writeError(c, err, "Failed to delete staff member")
		return
	}

	c.Status(http.StatusNoContent)
}

// SetVenuePreferences handles PUT /api/v1/staff/:id/venue-preferences
// @Summary Set a staff member's venue preference order
// @Description Replace the staff member's ordered venue list; list order becomes preference order
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID (UUID)"
// @Param preferences body []service.VenuePreferenceRequest true "Ordered venue list"
// @Success 200 {object} service.StaffResponse "Successfully updated preferences"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Staff member or venue not found"
// @Security BearerAuth
// @Router /staff/{id}/venue-preferences [put]
func (h *StaffHandler) SetVenuePreferences(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var prefs []service.VenuePreferenceRequest
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	staff, err := h.service.SetVenuePreferences(id, prefs)
	if err != nil {
		writeError(c, err, "Failed to set venue preferences")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// SetVenueRank handles PUT /api/v1/staff/:id/venue-rank/:venueId
// @Summary Set the management ranking for a staff/venue pair
// @Description Set or clear the auto-fill ranking for one staff member at one venue
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID (UUID)"
// @Param venueId path string true "Venue ID (UUID)"
// @Param rank body map[string]interface{} true "Rank payload, e.g. {\"rank\": 2} or {\"rank\": null}"
// @Success 204 "Successfully set rank"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Preference not found"
// @Security BearerAuth
// @Router /staff/{id}/venue-rank/{venueId} [put]
func (h *StaffHandler) SetVenueRank(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	venueID, ok := parseUUIDParam(c, "venueId")
	if !ok {
		return
	}

	var body struct {
		Rank *int `json:"rank"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.SetVenueRank(id, venueID, body.Rank); err != nil {
		writeError(c, err, "Failed to set venue rank")
		return
	}

	c.Status(http.StatusNoContent)
}
