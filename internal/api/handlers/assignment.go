package handlers

import (
	"net/http"

	"barshift-backend/internal/auth"
	"barshift-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for shift assignments
type AssignmentHandler struct {
	service  *service.AssignmentService
	autoFill *service.AutoFillService
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service *service.AssignmentService, autoFill *service.AutoFillService) *AssignmentHandler {
	return &AssignmentHandler{service: service, autoFill: autoFill}
}

// EvaluateAssignment handles POST /api/v1/assignments
// @Summary Evaluate and create an assignment
// @Description Run the full eligibility check for a (shift, staff) placement; all violations are returned together
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.EvaluateAssignmentRequest true "Assignment request"
// @Success 201 {object} service.AssignmentResponse "Successfully created assignment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Shift or staff member not found"
// @Failure 409 {object} map[string]interface{} "Staff member already assigned"
// @Failure 422 {object} map[string]interface{} "Eligibility violations"
// @Security BearerAuth
// @Router /assignments [post]
func (h *AssignmentHandler) EvaluateAssignment(c *gin.Context) {
	var req service.EvaluateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	// The bypass flag is reserved for managerial callers
	if req.Bypass {
		role, exists := auth.GetUserRole(c)
		if !exists || !role.IsManagerial() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Managerial role required to bypass eligibility checks"})
			return
		}
	}

	assignment, err := h.service.EvaluateAssignment(&req)
	if err != nil {
		writeError(c, err, "Failed to create assignment")
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// ListByShift handles GET /api/v1/shifts/:id/assignments
// @Summary List assignments on a shift
// @Description Get every assignment on one shift
// @Tags assignments
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved assignments"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id}/assignments [get]
func (h *AssignmentHandler) ListByShift(c *gin.Context) {
	shiftID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.service.ListByShift(shiftID)
	if err != nil {
		writeError(c, err, "Failed to list assignments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}

// RecordTip handles PUT /api/v1/assignments/:id/tip
// @Summary Record a tip on an assignment
// @Description Set the tip amount and optional note for one assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param tip body service.RecordTipRequest true "Tip data"
// @Success 200 {object} service.AssignmentResponse "Successfully recorded tip"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Security BearerAuth
// @Router /assignments/{id}/tip [put]
func (h *AssignmentHandler) RecordTip(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.RecordTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	assignment, err := h.service.RecordTip(id, &req)
	if err != nil {
		writeError(c, err, "Failed to record tip")
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// RemoveAssignment handles DELETE /api/v1/assignments/:id
// @Summary Remove an assignment
// @Description Remove a staff member from a shift
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Successfully removed assignment"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Security BearerAuth
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) RemoveAssignment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.RemoveAssignment(id); err != nil {
		writeError(c, err, "Failed to remove assignment")
		return
	}

	c.Status(http.StatusNoContent)
}

// AutoFill handles POST /api/v1/shifts/:id/auto-fill
// @Summary Auto-fill a shift
// @Description Fill remaining slots from the submitted-availability pool; ineligible candidates are skipped, never errored
// @Tags assignments
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.AllocationSummary "Allocation summary, possibly partial"
// @Failure 404 {object} map[string]interface{} "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id}/auto-fill [post]
func (h *AssignmentHandler) AutoFill(c *gin.Context) {
	shiftID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.autoFill.AutoFillShift(shiftID)
	if err != nil {
		writeError(c, err, "Failed to auto-fill shift")
		return
	}

	c.JSON(http.StatusOK, summary)
}
