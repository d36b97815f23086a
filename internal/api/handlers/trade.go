package handlers

import (
	"net/http"

	"barshift-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TradeHandler handles HTTP requests for shift trades
type TradeHandler struct {
	service *service.TradeService
}

// NewTradeHandler creates a new trade handler
func NewTradeHandler(service *service.TradeService) *TradeHandler {
	return &TradeHandler{service: service}
}

// ProposeTrade handles POST /api/v1/trades
// @Summary Propose a shift trade
// @Description Propose a trade to a specific receiver, or post the shift to the marketplace when no receiver is named
// @Tags trades
// @Accept json
// @Produce json
// @Param trade body service.ProposeTradeRequest true "Trade proposal"
// @Success 201 {object} service.TradeResponse "Successfully proposed trade"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Proposer holds no assignment on the shift"
// @Failure 409 {object} map[string]interface{} "Shift already up for trade"
// @Failure 422 {object} map[string]interface{} "Receiver eligibility violations"
// @Security BearerAuth
// @Router /trades [post]
func (h *TradeHandler) ProposeTrade(c *gin.Context) {
	var req service.ProposeTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	trade, err := h.service.ProposeTrade(&req)
	if err != nil {
		writeError(c, err, "Failed to propose trade")
		return
	}

	c.JSON(http.StatusCreated, trade)
}

// RespondTrade handles POST /api/v1/trades/:id/respond
// @Summary Respond to a trade
// @Description Accept, decline, or cancel a proposed trade; accepting a marketplace trade binds the claimant as receiver
// @Tags trades
// @Accept json
// @Produce json
// @Param id path string true "Trade ID (UUID)"
// @Param response body service.RespondTradeRequest true "Response data"
// @Success 200 {object} service.TradeResponse "Successfully recorded response"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Responder may not act on this trade"
// @Failure 409 {object} map[string]interface{} "Trade is not in the proposed state"
// @Failure 422 {object} map[string]interface{} "Claimant eligibility violations"
// @Security BearerAuth
// @Router /trades/{id}/respond [post]
func (h *TradeHandler) RespondTrade(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.RespondTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	trade, err := h.service.RespondTrade(id, &req)
	if err != nil {
		writeError(c, err, "Failed to respond to trade")
		return
	}

	c.JSON(http.StatusOK, trade)
}

// ApproveTrade handles POST /api/v1/trades/:id/approve
// @Summary Approve or decline an accepted trade
// @Description Manager decision on an accepted trade; approval reassigns the shift to the receiver with tips preserved
// @Tags trades
// @Accept json
// @Produce json
// @Param id path string true "Trade ID (UUID)"
// @Param decision body service.ApproveTradeRequest true "Manager decision"
// @Success 200 {object} service.TradeResponse "Successfully resolved trade"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Managerial role required"
// @Failure 409 {object} map[string]interface{} "Trade has not been accepted"
// @Security BearerAuth
// @Router /trades/{id}/approve [post]
func (h *TradeHandler) ApproveTrade(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ApproveTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	trade, err := h.service.ApproveTrade(id, &req)
	if err != nil {
		writeError(c, err, "Failed to approve trade")
		return
	}

	c.JSON(http.StatusOK, trade)
}

// GetTrade handles GET /api/v1/trades/:id
// @Summary Get trade by ID
// @Description Get a specific trade by its UUID
// @Tags trades
// @Produce json
// @Param id path string true "Trade ID (UUID)"
// @Success 200 {object} service.TradeResponse "Successfully retrieved trade"
// @Failure 404 {object} map[string]interface{} "Trade not found"
// @Security BearerAuth
// @Router /trades/{id} [get]
func (h *TradeHandler) GetTrade(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	trade, err := h.service.GetTrade(id)
	if err != nil {
		writeError(c, err, "Failed to get trade")
		return
	}

	c.JSON(http.StatusOK, trade)
}

// ListByStaff handles GET /api/v1/trades
// @Summary List trades for a staff member
// @Description Get trades involving one staff member with pagination support
// @Tags trades
// @Produce json
// @Param staff_id query string true "Staff ID (UUID)"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved trades"
// @Security BearerAuth
// @Router /trades [get]
func (h *TradeHandler) ListByStaff(c *gin.Context) {
	staffID, ok := parseUUIDQuery(c, "staff_id")
	if !ok {
		return
	}
	limit, offset := parsePagination(c)

	trades, total, err := h.service.ListByStaff(staffID, limit, offset)
	if err != nil {
		writeError(c, err, "Failed to list trades")
		return
	}

	c.JSON(http.StatusOK, gin.H{"trades": trades, "total": total, "limit": limit, "offset": offset})
}
