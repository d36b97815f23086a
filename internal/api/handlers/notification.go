package handlers

import (
	"net/http"

	"barshift-backend/internal/auth"
	"barshift-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	service *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListMine handles GET /api/v1/notifications
// @Summary List my notifications
// @Description Get the authenticated user's notifications with pagination support
// @Tags notifications
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved notifications"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListMine(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	limit, offset := parsePagination(c)

	notifications, total, err := h.service.ListForUser(userID, limit, offset)
	if err != nil {
		writeError(c, err, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "total": total, "limit": limit, "offset": offset})
}

// MarkRead handles POST /api/v1/notifications/:id/read
// @Summary Mark a notification as read
// @Description Mark one notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 204 "Successfully marked as read"
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.MarkRead(id); err != nil {
		writeError(c, err, "Failed to mark notification as read")
		return
	}

	c.Status(http.StatusNoContent)
}
