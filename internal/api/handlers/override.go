package handlers

import (
	"net/http"

	"barshift-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OverrideHandler handles HTTP requests for assignment overrides
type OverrideHandler struct {
	service *service.OverrideService
}

// NewOverrideHandler creates a new override handler
func NewOverrideHandler(service *service.OverrideService) *OverrideHandler {
	return &OverrideHandler{service: service}
}

// CreateOverride handles POST /api/v1/overrides
// @Summary Create an override
// @Description Propose an override for one (shift, staff) pair; the creating manager's approval is recorded automatically
// @Tags overrides
// @Accept json
// @Produce json
// @Param override body service.CreateOverrideRequest true "Override data"
// @Success 201 {object} service.OverrideResponse "Successfully created override"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Managerial role required"
// @Failure 404 {object} map[string]interface{} "Shift or staff member not found"
// @Security BearerAuth
// @Router /overrides [post]
func (h *OverrideHandler) CreateOverride(c *gin.Context) {
	var req service.CreateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	override, err := h.service.CreateOverride(&req)
	if err != nil {
		writeError(c, err, "Failed to create override")
		return
	}

	c.JSON(http.StatusCreated, override)
}

// RespondToOverride handles POST /api/v1/overrides/:id/respond
// @Summary Respond to an override
// @Description Record the target staff member's approval or decline; an override activates once both sides approve
// @Tags overrides
// @Accept json
// @Produce json
// @Param id path string true "Override ID (UUID)"
// @Param response body service.RespondOverrideRequest true "Response data"
// @Success 200 {object} service.OverrideResponse "Successfully recorded response"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Not the override target"
// @Failure 409 {object} map[string]interface{} "Override not pending or already responded"
// @Security BearerAuth
// @Router /overrides/{id}/respond [post]
func (h *OverrideHandler) RespondToOverride(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.RespondOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	override, err := h.service.RespondToOverride(id, &req)
	if err != nil {
		writeError(c, err, "Failed to respond to override")
		return
	}

	c.JSON(http.StatusOK, override)
}

// GetOverride handles GET /api/v1/overrides/:id
// @Summary Get override by ID
// @Description Get an override with its approvals and event history
// @Tags overrides
// @Produce json
// @Param id path string true "Override ID (UUID)"
// @Success 200 {object} service.OverrideResponse "Successfully retrieved override"
// @Failure 404 {object} map[string]interface{} "Override not found"
// @Security BearerAuth
// @Router /overrides/{id} [get]
func (h *OverrideHandler) GetOverride(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	override, err := h.service.GetOverride(id)
	if err != nil {
		writeError(c, err, "Failed to get override")
		return
	}

	c.JSON(http.StatusOK, override)
}

// ListByStaff handles GET /api/v1/overrides
// @Summary List overrides for a staff member
// @Description Get overrides targeting one staff member with pagination support
// @Tags overrides
// @Produce json
// @Param staff_id query string true "Staff ID (UUID)"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved overrides"
// @Security BearerAuth
// @Router /overrides [get]
func (h *OverrideHandler) ListByStaff(c *gin.Context) {
	staffID, ok := parseUUIDQuery(c, "staff_id")
	if !ok {
		return
	}
	limit, offset := parsePagination(c)

	overrides, total, err := h.service.ListByStaff(staffID, limit, offset)
	if err != nil {
		writeError(c, err, "Failed to list overrides")
		return
	}

	c.JSON(http.StatusOK, gin.H{"overrides": overrides, "total": total, "limit": limit, "offset": offset})
}
