package service

import (
	"errors"
	"fmt"

	"barshift-backend/internal/database/models"
	apperrors "barshift-backend/internal/errors"
	"barshift-backend/internal/logger"
	"barshift-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AutoFillService fills a shift's staffing quotas from the ranked,
// availability-filtered candidate pool. The allocation is greedy and single
// pass: decisions are never reconsidered, and a candidate lost to a
// concurrent assignment is skipped rather than failing the run.
type AutoFillService struct {
	shiftRepo        repository.ShiftRepositoryInterface
	staffRepo        repository.StaffRepositoryInterface
	assignmentRepo   repository.AssignmentRepositoryInterface
	availabilityRepo repository.AvailabilityRepositoryInterface
	notifier         Notifier
	log              *logger.Logger
}

// NewAutoFillService creates a new auto-fill service
func NewAutoFillService(
	shiftRepo repository.ShiftRepositoryInterface,
	staffRepo repository.StaffRepositoryInterface,
	assignmentRepo repository.AssignmentRepositoryInterface,
	availabilityRepo repository.AvailabilityRepositoryInterface,
	notifier Notifier,
) *AutoFillService {
	return &AutoFillService{
		shiftRepo:        shiftRepo,
		staffRepo:        staffRepo,
		assignmentRepo:   assignmentRepo,
		availabilityRepo: availabilityRepo,
		notifier:         notifier,
		log:              logger.New().WithField("component", "autofill"),
	}
}

// AllocationSummary reports what one auto-fill run assigned. Informational
// only; partial fills are the expected outcome when the pool runs short.
type AllocationSummary struct {
	ShiftID            uuid.UUID `json:"shift_id"`
	AssignedCount      int       `json:"assigned_count"`
	LeadsAssigned      int       `json:"leads_assigned"`
	BartendersAssigned int       `json:"bartenders_assigned"`
	BarbacksAssigned   int       `json:"barbacks_assigned"`
}

// AutoFillShift fills the shift's lead, bartender, and barback quotas in
// that order. Leads are always considered before non-lead bartenders so a
// dual-qualified candidate cannot starve the lead quota. Each assignment is
// attempted independently: a uniqueness failure for one candidate is logged
// and the loop proceeds.
func (s *AutoFillService) AutoFillShift(shiftID uuid.UUID) (*AllocationSummary, error) {
	shift, err := s.shiftRepo.GetByID(shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	existing, err := s.assignmentRepo.GetByShiftID(shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to get existing assignments: %w", err)
	}

	// Leads count toward both the lead quota and the bartender quota.
	leadsHave, bartendersHave, barbacksHave := 0, 0, 0
	assignedStaff := make(map[uuid.UUID]bool, len(existing))
	for _, a := range existing {
		assignedStaff[a.StaffID] = true
		switch a.Role {
		case models.AssignedRoleBartender:
			bartendersHave++
			if a.IsLead {
				leadsHave++
			}
		case models.AssignedRoleBarback:
			barbacksHave++
		}
	}

	roster, err := s.staffRepo.GetActiveByVenue(shift.VenueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue roster: %w", err)
	}

	availabilityByStaff, err := s.loadAvailability(roster, shift.MonthKey())
	if err != nil {
		return nil, err
	}

	summary := &AllocationSummary{ShiftID: shiftID}
	dateKey := shift.DateKey()

	// Phase 1: leads. Rank with lead priority and walk lead-capable
	// bartenders until the lead quota is met.
	bartenderPool := BuildAutoFillPool(roster, models.StaffRoleBartender, dateKey, availabilityByStaff, assignedStaff)
	for _, candidate := range RankCandidates(bartenderPool, shift.VenueID, true) {
		if leadsHave >= shift.LeadsRequired {
			break
		}
		if !candidate.CanLead() {
			continue
		}
		if s.tryAssign(shift, &candidate, models.AssignedRoleBartender, true) {
			assignedStaff[candidate.ID] = true
			leadsHave++
			bartendersHave++
			summary.LeadsAssigned++
			summary.AssignedCount++
		}
	}

	// Phase 2: remaining bartenders, re-filtered to drop just-assigned
	// leads, ranked without lead priority.
	bartenderPool = BuildAutoFillPool(roster, models.StaffRoleBartender, dateKey, availabilityByStaff, assignedStaff)
	for _, candidate := range RankCandidates(bartenderPool, shift.VenueID, false) {
		if bartendersHave >= shift.BartendersRequired {
			break
		}
		if s.tryAssign(shift, &candidate, models.AssignedRoleBartender, false) {
			assignedStaff[candidate.ID] = true
			bartendersHave++
			summary.BartendersAssigned++
			summary.AssignedCount++
		}
	}

	// Phase 3: barbacks.
	barbackPool := BuildAutoFillPool(roster, models.StaffRoleBarback, dateKey, availabilityByStaff, assignedStaff)
	for _, candidate := range RankCandidates(barbackPool, shift.VenueID, false) {
		if barbacksHave >= shift.BarbacksRequired {
			break
		}
		if s.tryAssign(shift, &candidate, models.AssignedRoleBarback, false) {
			assignedStaff[candidate.ID] = true
			barbacksHave++
			summary.BarbacksAssigned++
			summary.AssignedCount++
		}
	}

	s.log.WithFields(map[string]interface{}{
		"shift_id":   shiftID,
		"assigned":   summary.AssignedCount,
		"leads":      summary.LeadsAssigned,
		"bartenders": summary.BartendersAssigned,
		"barbacks":   summary.BarbacksAssigned,
	}).Info("auto-fill completed")

	return summary, nil
}

// tryAssign attempts one assignment. The pool filter is trusted; no
// eligibility rules are re-run here. A uniqueness failure means the
// candidate was assigned elsewhere concurrently and is skipped.
func (s *AutoFillService) tryAssign(shift *models.Shift, candidate *models.StaffMember, role models.AssignedRole, isLead bool) bool {
	assignment := &models.ShiftAssignment{
		ShiftID: shift.ID,
		StaffID: candidate.ID,
		Role:    role,
		IsLead:  isLead,
	}
	if err := s.assignmentRepo.Create(assignment); err != nil {
		if repository.IsUniqueViolation(err) {
			s.log.WithFields(map[string]interface{}{
				"shift_id": shift.ID,
				"staff_id": candidate.ID,
			}).Warn("candidate assigned concurrently, skipping")
			return false
		}
		s.log.WithFields(map[string]interface{}{
			"shift_id": shift.ID,
			"staff_id": candidate.ID,
		}).Errorf("assignment attempt failed: %v", err)
		return false
	}

	s.notifier.Dispatch(candidate.ID, models.NotificationAssignmentCreated,
		"New shift assignment",
		fmt.Sprintf("You have been auto-assigned to a shift on %s (%s-%s)", shift.DateKey(), shift.StartTime, shift.EndTime),
		map[string]interface{}{"shift_id": shift.ID.String()})

	return true
}

// loadAvailability fetches each roster member's availability for the month.
// Missing records stay nil in the map and exclude the member from the pool.
func (s *AutoFillService) loadAvailability(roster []models.StaffMember, month string) (map[uuid.UUID]*models.Availability, error) {
	byStaff := make(map[uuid.UUID]*models.Availability, len(roster))
	for _, member := range roster {
		availability, err := s.availabilityRepo.GetByStaffAndMonth(member.ID, month)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to get availability: %w", err)
		}
		byStaff[member.ID] = availability
	}
	return byStaff, nil
}
