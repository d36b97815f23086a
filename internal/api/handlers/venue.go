package handlers

import (
	"net/http"

	"barshift-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VenueHandler handles HTTP requests for venues
type VenueHandler struct {
	service *service.VenueService
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(service *service.VenueService) *VenueHandler {
	return &VenueHandler{service: service}
}

// CreateVenue handles POST /api/v1/venues
// @Summary Create a new venue
// @Description Create a new venue with the provided details
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body service.CreateVenueRequest true "Venue data"
// @Success 201 {object} service.VenueResponse "Successfully created venue"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Venue already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /venues [post]
func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var req service.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	venue, err := h.service.CreateVenue(&req)
	if err != nil {
		writeError(c, err, "Failed to create venue")
		return
	}

	c.JSON(http.StatusCreated, venue)
}

// GetVenue handles GET /api/v1/venues/:id
// @Summary Get venue by ID
// @Description Get a specific venue by its UUID
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID (UUID)"
// @Success 200 {object} service.VenueResponse "Successfully retrieved venue"
// @Failure 400 {object} map[string]interface{} "Invalid venue ID"
// @Failure 404 {object} map[string]interface{} "Venue not found"
// @Security BearerAuth
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenue(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	venue, err := h.service.GetVenue(id)
	if err != nil {
		writeError(c, err, "Failed to get venue")
		return
	}

	c.JSON(http.StatusOK, venue)
}

// ListVenues handles GET /api/v1/venues
// @Summary List venues
// @Description Get all venues with pagination support
// @Tags venues
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved venues"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /venues [get]
func (h *VenueHandler) ListVenues(c *gin.Context) {
	limit, offset := parsePagination(c)

	venues, total, err := h.service.ListVenues(limit, offset)
	if err != nil {
		writeError(c, err, "Failed to list venues")
		return
	}

	c.JSON(http.StatusOK, gin.H{"venues": venues, "total": total, "limit": limit, "offset": offset})
}

// UpdateVenue handles PUT /api/v1/venues/:id
// @Summary Update a venue
// @Description Update a venue's fields
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID (UUID)"
// @Param venue body service.UpdateVenueRequest true "Venue fields to update"
// @Success 200 {object} service.VenueResponse "Successfully updated venue"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Venue not found"
// @Security BearerAuth
// @Router /venues/{id} [put]
func (h *VenueHandler) UpdateVenue(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	venue, err := h.service.UpdateVenue(id, &req)
	if err != nil {
		writeError(c, err, "Failed to update venue")
		return
	}

	c.JSON(http.StatusOK, venue)
}

// DeleteVenue handles DELETE /api/v1/venues/:id
// @Summary Delete a venue
// @Description Delete a venue and its shifts
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID (UUID)"
// @Success 204 "Successfully deleted venue"
// @Failure 400 {object} map[string]interface{} "Invalid venue ID"
// @Failure 404 {object} map[string]interface{} "Venue not found"
// @Security BearerAuth
// @Router /venues/{id} [delete]
func (h *VenueHandler) DeleteVenue(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteVenue(id); err != nil {
		writeError(c, err, "Failed to delete venue")
		return
	}

	c.Status(http.StatusNoContent)
}
