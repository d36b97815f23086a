package handlers

import (
	"net/http"

	"barshift-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler handles HTTP requests for monthly availability
type AvailabilityHandler struct {
	service *service.AvailabilityService
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(service *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

// GetMonth handles GET /api/v1/availability/:staffId/:month
// @Summary Get availability for a month
// @Description Get one staff member's availability for a "YYYY-MM" month
// @Tags availability
// @Produce json
// @Param staffId path string true "Staff ID (UUID)"
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} service.AvailabilityResponse "Successfully retrieved availability"
// @Failure 404 {object} map[string]interface{} "Availability not found"
// @Security BearerAuth
// @Router /availability/{staffId}/{month} [get]
func (h *AvailabilityHandler) GetMonth(c *gin.Context) {
	staffID, ok := parseUUIDParam(c, "staffId")
	if !ok {
		return
	}

	availability, err := h.service.GetMonth(staffID, c.Param("month"))
	if err != nil {
		writeError(c, err, "Failed to get availability")
		return
	}

	c.JSON(http.StatusOK, availability)
}

// SaveDays handles PUT /api/v1/availability
// @Summary Save availability days
// @Description Create or update a month's day map; locked months require a manager-issued unlock
// @Tags availability
// @Accept json
// @Produce json
// @Param availability body service.SaveAvailabilityRequest true "Availability data"
// @Success 200 {object} service.AvailabilityResponse "Successfully saved availability"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Availability is locked"
// @Security BearerAuth
// @Router /availability [put]
func (h *AvailabilityHandler) SaveDays(c *gin.Context) {
	var req service.SaveAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	availability, err := h.service.SaveDays(&req)
	if err != nil {
		writeError(c, err, "Failed to save availability")
		return
	}

	c.JSON(http.StatusOK, availability)
}

// Submit handles POST /api/v1/availability/:staffId/:month/submit
// @Summary Submit availability
// @Description Mark a month as submitted, making it visible to auto-fill
// @Tags availability
// @Produce json
// @Param staffId path string true "Staff ID (UUID)"
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} service.AvailabilityResponse "Successfully submitted availability"
// @Failure 404 {object} map[string]interface{} "Availability not found"
// @Failure 409 {object} map[string]interface{} "Already submitted"
// @Security BearerAuth
// @Router /availability/{staffId}/{month}/submit [post]
func (h *AvailabilityHandler) Submit(c *gin.Context) {
	staffID, ok := parseUUIDParam(c, "staffId")
	if !ok {
		return
	}

	availability, err := h.service.Submit(staffID, c.Param("month"))
	if err != nil {
		writeError(c, err, "Failed to submit availability")
		return
	}

	c.JSON(http.StatusOK, availability)
}

// LockMonth handles POST /api/v1/availability/lock/:month
// @Summary Lock a month's availability
// @Description Lock every availability record for a month; manager only
// @Tags availability
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} map[string]interface{} "Lock count"
// @Failure 400 {object} map[string]interface{} "Invalid month"
// @Security BearerAuth
// @Router /availability/lock/{month} [post]
func (h *AvailabilityHandler) LockMonth(c *gin.Context) {
	locked, err := h.service.Lock(c.Param("month"))
	if err != nil {
		writeError(c, err, "Failed to lock availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"locked": locked})
}

// Unlock handles POST /api/v1/availability/unlock
// @Summary Unlock a locked month for one staff member
// @Description Record a manager-issued unlock so the staff member can edit again; manager only
// @Tags availability
// @Accept json
// @Produce json
// @Param unlock body service.UnlockAvailabilityRequest true "Unlock data"
// @Success 204 "Successfully unlocked"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Managerial role required"
// @Failure 409 {object} map[string]interface{} "Unlock already exists"
// @Security BearerAuth
// @Router /availability/unlock [post]
func (h *AvailabilityHandler) Unlock(c *gin.Context) {
	var req service.UnlockAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Unlock(&req); err != nil {
		writeError(c, err, "Failed to unlock availability")
		return
	}

	c.Status(http.StatusNoContent)
}
