package service

import (
	"fmt"

	"barshift-backend/internal/database/models"
	apperrors "barshift-backend/internal/errors"
)

// AssignmentCheck is the read-only snapshot an eligibility evaluation runs
// against. The persistence layer supplies it; the checker itself never
// touches storage.
type AssignmentCheck struct {
	Shift     *models.Shift
	Candidate *models.StaffMember

	// Role and lead flag being requested for the candidate
	Role   models.AssignedRole
	IsLead bool

	// Assignments already on the target shift
	ExistingAssignments []models.ShiftAssignment

	// Candidate's availability for the shift's month; nil when none exists.
	// Absence is treated as available on the manual path.
	Availability *models.Availability

	// Candidate's assignments on the shift date at venues sharing the
	// shift venue's networked scope (the shift's own venue included)
	SameDayAssignments []models.ShiftAssignment

	// Bypass skips the venue, cutoff, availability, and double-booking
	// rules. Duplicate and lead-role checks are never bypassed.
	Bypass bool
}

// CheckEligibility evaluates whether the candidate may be placed on the shift
// under the supplied snapshot. All applicable violations are collected and
// returned together; an empty slice means the assignment is allowed.
func CheckEligibility(check AssignmentCheck) []apperrors.Violation {
	var violations []apperrors.Violation

	shift := check.Shift
	candidate := check.Candidate

	// Duplicate assignment blocks unconditionally, override or not.
	for _, a := range check.ExistingAssignments {
		if a.StaffID == candidate.ID {
			violations = append(violations, apperrors.Violation{
				Field:   "staff_id",
				Message: fmt.Sprintf("%s is already assigned to this shift", candidate.FullName),
				Remedy:  "remove the existing assignment first",
			})
			break
		}
	}

	// Lead designation requires the bartender role, override or not.
	if check.IsLead && candidate.Role != models.StaffRoleBartender {
		violations = append(violations, apperrors.Violation{
			Field:   "is_lead",
			Message: "only a bartender may be assigned as lead",
			Remedy:  "assign without the lead designation or pick a bartender",
		})
	}

	if check.Bypass {
		return violations
	}

	// Venue affiliation
	if !candidate.PrefersVenue(shift.VenueID) {
		violations = append(violations, apperrors.Violation{
			Field:   "venue_id",
			Type:    models.ViolationVenueMismatch,
			Message: fmt.Sprintf("%s does not work at this venue", candidate.FullName),
			Remedy:  "add the venue to the staff member's preferred venues or request an override",
		})
	}

	// Day-job cutoff. Both sides are zero-padded 24h "HH:MM" strings, so
	// lexicographic comparison is a valid time comparison.
	if candidate.HasDayJob && candidate.DayJobCutoff != nil && shift.StartTime < *candidate.DayJobCutoff {
		violations = append(violations, apperrors.Violation{
			Field:   "start_time",
			Type:    models.ViolationCutoff,
			Message: fmt.Sprintf("shift starts at %s, before %s's day-job cutoff of %s", shift.StartTime, candidate.FullName, *candidate.DayJobCutoff),
			Remedy:  "pick a later shift or request a cutoff override",
		})
	}

	// Availability: only an explicit available=false entry in a submitted
	// month is a violation. Missing data defaults to available here; the
	// auto-fill pool filter is stricter.
	if check.Availability.IsSubmitted() && check.Availability.MarkedOff(shift.DateKey()) {
		violations = append(violations, apperrors.Violation{
			Field:   "date",
			Type:    models.ViolationRequestOff,
			Message: fmt.Sprintf("%s has requested %s off", candidate.FullName, shift.DateKey()),
			Remedy:  "request an availability override",
		})
	}

	// Double-booking within the networked scope
	for _, a := range check.SameDayAssignments {
		if a.ShiftID != shift.ID {
			violations = append(violations, apperrors.Violation{
				Field:   "date",
				Type:    models.ViolationDoubleBooking,
				Message: fmt.Sprintf("%s already has an assignment on %s at a venue in this network", candidate.FullName, shift.DateKey()),
				Remedy:  "remove the conflicting assignment or request a double-booking override",
			})
			break
		}
	}

	return violations
}
