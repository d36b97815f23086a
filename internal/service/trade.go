package service

import (
	"errors"
	"fmt"

	"barshift-backend/internal/database/models"
	apperrors "barshift-backend/internal/errors"
	"barshift-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TradeService governs shift-trade proposals between staff and their
// manager approval: direct proposals to a named receiver, marketplace
// proposals broadcast to every eligible candidate, and the approval-time
// assignment ownership transfer
type TradeService struct {
	repo             repository.TradeRepositoryInterface
	shiftRepo        repository.ShiftRepositoryInterface
	staffRepo        repository.StaffRepositoryInterface
	venueRepo        repository.VenueRepositoryInterface
	assignmentRepo   repository.AssignmentRepositoryInterface
	availabilityRepo repository.AvailabilityRepositoryInterface
	notifier         Notifier
	validator        *validator.Validate
}

// NewTradeService creates a new trade service
func NewTradeService(
	repo repository.TradeRepositoryInterface,
	shiftRepo repository.ShiftRepositoryInterface,
	staffRepo repository.StaffRepositoryInterface,
	venueRepo repository.VenueRepositoryInterface,
	assignmentRepo repository.AssignmentRepositoryInterface,
	availabilityRepo repository.AvailabilityRepositoryInterface,
	notifier Notifier,
	validator *validator.Validate,
) *TradeService {
	return &TradeService{
		repo:             repo,
		shiftRepo:        shiftRepo,
		staffRepo:        staffRepo,
		venueRepo:        venueRepo,
		assignmentRepo:   assignmentRepo,
		availabilityRepo: availabilityRepo,
		notifier:         notifier,
		validator:        validator,
	}
}

// ProposeTradeRequest represents the request to propose a trade. A nil
// ReceiverID puts the shift up on the marketplace instead of naming a
// receiver.
type ProposeTradeRequest struct {
	ShiftID    uuid.UUID  `json:"shift_id" validate:"required"`
	ProposerID uuid.UUID  `json:"proposer_id" validate:"required"`
	ReceiverID *uuid.UUID `json:"receiver_id,omitempty"`
	Reason     string     `json:"reason,omitempty"`
}

// RespondTradeRequest represents a staff response to a trade
type RespondTradeRequest struct {
	ResponderID uuid.UUID          `json:"responder_id" validate:"required"`
	Status      models.TradeStatus `json:"status" validate:"required"`
	Reason      string             `json:"reason,omitempty"`
}

// ApproveTradeRequest represents the manager decision on an accepted trade
type ApproveTradeRequest struct {
	ManagerID      uuid.UUID `json:"manager_id" validate:"required"`
	Approved       bool      `json:"approved"`
	DeclinedReason string    `json:"declined_reason,omitempty"`
}

// TradeResponse represents the response for trade operations
type TradeResponse struct {
	ID             uuid.UUID          `json:"id"`
	ShiftID        uuid.UUID          `json:"shift_id"`
	ProposerID     uuid.UUID          `json:"proposer_id"`
	ReceiverID     *uuid.UUID         `json:"receiver_id,omitempty"`
	Status         models.TradeStatus `json:"status"`
	Reason         string             `json:"reason,omitempty"`
	DeclinedReason string             `json:"declined_reason,omitempty"`
	CreatedAt      string             `json:"created_at"`
}

// ProposeTrade opens a trade for the proposer's assignment on a shift.
// Direct proposals validate the named receiver up front, collecting every
// violation into one batch. Marketplace proposals flag the shift and
// broadcast to all eligible receivers and the venue's managers.
func (s *TradeService) ProposeTrade(req *ProposeTradeRequest) (*TradeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	shift, err := s.shiftRepo.GetByID(req.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	proposer, err := s.staffRepo.GetByID(req.ProposerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get proposer: %w", err)
	}

	proposerAssignment, err := s.assignmentRepo.GetByShiftAndStaff(req.ShiftID, req.ProposerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotAssignmentOwner
		}
		return nil, fmt.Errorf("failed to get proposer assignment: %w", err)
	}

	open, err := s.repo.GetOpenByShift(req.ShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to check open trades: %w", err)
	}
	if len(open) > 0 {
		return nil, apperrors.ErrTradeAlreadyOpen
	}

	if req.ReceiverID == nil {
		return s.proposeMarketplace(shift, proposer, proposerAssignment, req.Reason)
	}
	return s.proposeDirect(shift, proposer, proposerAssignment, *req.ReceiverID, req.Reason)
}

// proposeDirect validates the named receiver and creates the trade
func (s *TradeService) proposeDirect(shift *models.Shift, proposer *models.StaffMember, proposerAssignment *models.ShiftAssignment, receiverID uuid.UUID, reason string) (*TradeResponse, error) {
	receiver, err := s.staffRepo.GetByID(receiverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get receiver: %w", err)
	}

	violations, err := s.checkReceiver(shift, proposerAssignment, receiver)
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		return nil, apperrors.NewEligibilityError(violations)
	}

	trade := &models.ShiftTrade{
		ShiftID:    shift.ID,
		ProposerID: proposer.ID,
		ReceiverID: &receiver.ID,
		Status:     models.TradeStatusProposed,
		Reason:     reason,
	}
	if err := s.repo.Create(trade); err != nil {
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	s.notifier.Dispatch(receiver.ID, models.NotificationTradeProposed,
		"Shift trade proposed",
		fmt.Sprintf("%s wants to trade you their shift on %s", proposer.FullName, shift.DateKey()),
		map[string]interface{}{"trade_id": trade.ID.String()})

	return toTradeResponse(trade), nil
}

// proposeMarketplace flags the shift as up for trade and broadcasts to
// every eligible receiver plus the venue's managers. No receiver is bound;
// any eligible staff member may claim the trade by accepting it.
func (s *TradeService) proposeMarketplace(shift *models.Shift, proposer *models.StaffMember, proposerAssignment *models.ShiftAssignment, reason string) (*TradeResponse, error) {
	if shift.UpForTrade {
		return nil, apperrors.ErrShiftAlreadyOnTrade
	}

	trade := &models.ShiftTrade{
		ShiftID:    shift.ID,
		ProposerID: proposer.ID,
		Status:     models.TradeStatusProposed,
		Reason:     reason,
	}
	if err := s.repo.Create(trade); err != nil {
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	shift.UpForTrade = true
	shift.TradeProposerID = &proposer.ID
	shift.TradeReason = reason
	if err := s.shiftRepo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to flag shift for trade: %w", err)
	}

	eligible, err := s.eligibleReceivers(shift, proposerAssignment, proposer.ID)
	if err != nil {
		return nil, err
	}
	for _, candidate := range eligible {
		s.notifier.Dispatch(candidate.ID, models.NotificationTradeMarketplace,
			"Shift up for trade",
			fmt.Sprintf("%s put a %s shift on %s up for trade", proposer.FullName, proposerAssignment.Role, shift.DateKey()),
			map[string]interface{}{"trade_id": trade.ID.String()})
	}

	managers, err := s.staffRepo.GetManagersByVenue(shift.VenueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue managers: %w", err)
	}
	for _, manager := range managers {
		s.notifier.Dispatch(manager.ID, models.NotificationTradeMarketplace,
			"Shift up for trade",
			fmt.Sprintf("%s put their shift on %s up for trade", proposer.FullName, shift.DateKey()),
			map[string]interface{}{"trade_id": trade.ID.String()})
	}

	return toTradeResponse(trade), nil
}

// RespondTrade handles the receiver-side transitions: accepted or declined
// by the receiver (or any eligible claimant for a marketplace trade), or
// cancelled by the proposer.
func (s *TradeService) RespondTrade(tradeID uuid.UUID, req *RespondTradeRequest) (*TradeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	trade, err := s.repo.GetByID(tradeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTradeNotFound
		}
		return nil, fmt.Errorf("failed to get trade: %w", err)
	}
	if trade.Status != models.TradeStatusProposed {
		return nil, apperrors.ErrTradeNotProposed
	}

	switch req.Status {
	case models.TradeStatusCancelled:
		if trade.ProposerID != req.ResponderID {
			return nil, apperrors.ErrNotTradeProposer
		}
		trade.Status = models.TradeStatusCancelled
	case models.TradeStatusAccepted:
		if err := s.acceptTrade(trade, req.ResponderID); err != nil {
			return nil, err
		}
	case models.TradeStatusDeclined:
		if trade.ReceiverID == nil || *trade.ReceiverID != req.ResponderID {
			return nil, apperrors.ErrNotTradeReceiver
		}
		trade.Status = models.TradeStatusDeclined
		trade.DeclinedReason = req.Reason
	default:
		return nil, apperrors.ErrInvalidStatus
	}

	if err := s.repo.Update(trade); err != nil {
		return nil, fmt.Errorf("failed to update trade: %w", err)
	}

	if trade.Status == models.TradeStatusCancelled || trade.Status == models.TradeStatusDeclined {
		s.clearMarketplaceFlag(trade.ShiftID)
	}

	s.notifier.Dispatch(trade.ProposerID, models.NotificationTradeResolved,
		"Trade update",
		fmt.Sprintf("Your trade is now %s", trade.Status),
		map[string]interface{}{"trade_id": trade.ID.String()})

	return toTradeResponse(trade), nil
}

// acceptTrade validates the accepting party and moves the trade to
// accepted. A marketplace trade binds its receiver here; acceptance is
// claim-by-first-eligible.
func (s *TradeService) acceptTrade(trade *models.ShiftTrade, responderID uuid.UUID) error {
	if trade.ReceiverID != nil {
		if *trade.ReceiverID != responderID {
			return apperrors.ErrNotTradeReceiver
		}
		trade.Status = models.TradeStatusAccepted
		return nil
	}

	// Marketplace claim: the claimant must pass the same receiver checks
	// a direct proposal runs at creation time.
	shift, err := s.shiftRepo.GetByID(trade.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}
	claimant, err := s.staffRepo.GetByID(responderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStaffNotFound
		}
		return fmt.Errorf("failed to get claimant: %w", err)
	}
	proposerAssignment, err := s.assignmentRepo.GetByShiftAndStaff(trade.ShiftID, trade.ProposerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to get proposer assignment: %w", err)
	}

	violations, err := s.checkReceiver(shift, proposerAssignment, claimant)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		return apperrors.NewEligibilityError(violations)
	}

	trade.ReceiverID = &claimant.ID
	trade.Status = models.TradeStatusAccepted
	return nil
}

// clearMarketplaceFlag resets the shift's up-for-trade marker once its
// trade reaches a terminal state, so the shift can be listed again.
func (s *TradeService) clearMarketplaceFlag(shiftID uuid.UUID) {
	shift, err := s.shiftRepo.GetByID(shiftID)
	if err != nil || !shift.UpForTrade {
		return
	}
	shift.UpForTrade = false
	shift.TradeProposerID = nil
	shift.TradeReason = ""
	_ = s.shiftRepo.Update(shift)
}

// ApproveTrade is the manager decision on an accepted trade. Approval
// transfers the proposer's existing assignment row to the receiver, role
// and lead flag unchanged, tips preserved. Decline leaves the assignment
// untouched.
func (s *TradeService) ApproveTrade(tradeID uuid.UUID, req *ApproveTradeRequest) (*TradeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	trade, err := s.repo.GetByID(tradeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTradeNotFound
		}
		return nil, fmt.Errorf("failed to get trade: %w", err)
	}
	if trade.Status != models.TradeStatusAccepted {
		return nil, apperrors.ErrTradeNotAccepted
	}

	manager, err := s.staffRepo.GetByID(req.ManagerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get manager: %w", err)
	}
	if !manager.Role.IsManagerial() {
		return nil, apperrors.ErrManagerRequired
	}

	if req.Approved {
		assignment, err := s.assignmentRepo.GetByShiftAndStaff(trade.ShiftID, trade.ProposerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrAssignmentNotFound
			}
			return nil, fmt.Errorf("failed to get assignment: %w", err)
		}
		if err := s.assignmentRepo.Reassign(assignment.ID, *trade.ReceiverID); err != nil {
			if repository.IsUniqueViolation(err) {
				return nil, apperrors.ErrAssignmentExists
			}
			return nil, fmt.Errorf("failed to reassign: %w", err)
		}
		trade.Status = models.TradeStatusApproved
	} else {
		trade.Status = models.TradeStatusDeclined
		trade.DeclinedReason = req.DeclinedReason
	}

	if err := s.repo.Update(trade); err != nil {
		return nil, fmt.Errorf("failed to update trade: %w", err)
	}

	s.clearMarketplaceFlag(trade.ShiftID)

	for _, userID := range []uuid.UUID{trade.ProposerID, *trade.ReceiverID} {
		s.notifier.Dispatch(userID, models.NotificationTradeResolved,
			"Trade decision",
			fmt.Sprintf("Your trade was %s by %s", trade.Status, manager.FullName),
			map[string]interface{}{"trade_id": trade.ID.String()})
	}

	return toTradeResponse(trade), nil
}

// GetTrade retrieves a trade by ID
func (s *TradeService) GetTrade(id uuid.UUID) (*TradeResponse, error) {
	trade, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTradeNotFound
		}
		return nil, fmt.Errorf("failed to get trade: %w", err)
	}
	return toTradeResponse(trade), nil
}

// ListByStaff retrieves trades involving one staff member
func (s *TradeService) ListByStaff(staffID uuid.UUID, limit, offset int) ([]TradeResponse, int64, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	trades, total, err := s.repo.GetByStaffID(staffID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trades: %w", err)
	}

	responses := make([]TradeResponse, len(trades))
	for i := range trades {
		responses[i] = *toTradeResponse(&trades[i])
	}
	return responses, total, nil
}

// checkReceiver runs the receiver-side trade validation: same role as the
// outgoing assignment, lead capability when the assignment is a lead slot,
// no availability opt-out for the date, and no same-day assignment in the
// networked scope. Violations are collected, not fail-fast.
func (s *TradeService) checkReceiver(shift *models.Shift, proposerAssignment *models.ShiftAssignment, receiver *models.StaffMember) ([]apperrors.Violation, error) {
	var violations []apperrors.Violation

	if string(receiver.Role) != string(proposerAssignment.Role) {
		violations = append(violations, apperrors.Violation{
			Field:   "receiver_id",
			Message: fmt.Sprintf("%s is a %s; this is a %s assignment", receiver.FullName, receiver.Role, proposerAssignment.Role),
			Remedy:  "pick a receiver with the same role",
		})
	}

	if proposerAssignment.IsLead && !receiver.CanLead() {
		violations = append(violations, apperrors.Violation{
			Field:   "receiver_id",
			Type:    models.ViolationLeadShortage,
			Message: fmt.Sprintf("%s cannot cover a lead assignment", receiver.FullName),
			Remedy:  "pick a lead-capable bartender",
		})
	}

	availability, err := s.availabilityRepo.GetByStaffAndMonth(receiver.ID, shift.MonthKey())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get receiver availability: %w", err)
	}
	if availability.IsSubmitted() && availability.MarkedOff(shift.DateKey()) {
		violations = append(violations, apperrors.Violation{
			Field:   "receiver_id",
			Type:    models.ViolationRequestOff,
			Message: fmt.Sprintf("%s has requested %s off", receiver.FullName, shift.DateKey()),
		})
	}

	scope, err := networkedVenueScope(s.venueRepo, shift.VenueID)
	if err != nil {
		return nil, err
	}
	sameDay, err := s.assignmentRepo.GetByStaffAndDate(receiver.ID, shift.Date, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to get receiver same-day assignments: %w", err)
	}
	if len(sameDay) > 0 {
		violations = append(violations, apperrors.Violation{
			Field:   "receiver_id",
			Type:    models.ViolationDoubleBooking,
			Message: fmt.Sprintf("%s already has an assignment on %s in this network", receiver.FullName, shift.DateKey()),
		})
	}

	return violations, nil
}

// eligibleReceivers computes the marketplace broadcast set: the venue's
// roster filtered through the same receiver checks a direct proposal runs,
// minus the proposer
func (s *TradeService) eligibleReceivers(shift *models.Shift, proposerAssignment *models.ShiftAssignment, proposerID uuid.UUID) ([]models.StaffMember, error) {
	roster, err := s.staffRepo.GetActiveByVenue(shift.VenueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue roster: %w", err)
	}

	var eligible []models.StaffMember
	for i := range roster {
		candidate := &roster[i]
		if candidate.ID == proposerID {
			continue
		}
		violations, err := s.checkReceiver(shift, proposerAssignment, candidate)
		if err != nil {
			return nil, err
		}
		if len(violations) == 0 {
			eligible = append(eligible, *candidate)
		}
	}
	return eligible, nil
}

// toTradeResponse converts a trade model to a response
func toTradeResponse(trade *models.ShiftTrade) *TradeResponse {
	return &TradeResponse{
		ID:             trade.ID,
		ShiftID:        trade.ShiftID,
		ProposerID:     trade.ProposerID,
		ReceiverID:     trade.ReceiverID,
		Status:         trade.Status,
		Reason:         trade.Reason,
		DeclinedReason: trade.DeclinedReason,
		CreatedAt:      trade.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
