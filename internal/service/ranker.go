package service

import (
	"sort"

	"barshift-backend/internal/database/models"

	"github.com/google/uuid"
)

// RankCandidates orders a pool of nominally eligible staff for one venue by
// the auto-fill priority: lead-capable first while leads are still needed,
// then management ranking (present beats absent, lower beats higher), then
// the candidate's own preferred-venue position (present beats absent, lower
// beats higher). Ties keep input order, so the result is deterministic for
// identical input.
func RankCandidates(pool []models.StaffMember, venueID uuid.UUID, leadsNeeded bool) []models.StaffMember {
	ranked := make([]models.StaffMember, len(pool))
	copy(ranked, pool)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := &ranked[i], &ranked[j]

		if leadsNeeded {
			aLead, bLead := a.CanLead(), b.CanLead()
			if aLead != bLead {
				return aLead
			}
		}

		aRank, bRank := a.VenueRank(venueID), b.VenueRank(venueID)
		switch {
		case aRank != nil && bRank == nil:
			return true
		case aRank == nil && bRank != nil:
			return false
		case aRank != nil && bRank != nil && *aRank != *bRank:
			return *aRank < *bRank
		}

		aPos, bPos := a.VenuePosition(venueID), b.VenuePosition(venueID)
		switch {
		case aPos >= 0 && bPos < 0:
			return true
		case aPos < 0 && bPos >= 0:
			return false
		case aPos >= 0 && bPos >= 0 && aPos != bPos:
			return aPos < bPos
		}

		return false
	})

	return ranked
}

// BuildAutoFillPool filters the venue's active bartender/barback roster down
// to auto-fill candidates for one shift date. Stricter than the manual
// assignment path: a candidate must have SUBMITTED availability for the
// month with an explicit available=true entry for the date; absent data
// excludes them. Staff already assigned to the shift are excluded.
func BuildAutoFillPool(roster []models.StaffMember, role models.StaffRole, dateKey string, availabilityByStaff map[uuid.UUID]*models.Availability, assignedStaff map[uuid.UUID]bool) []models.StaffMember {
	var pool []models.StaffMember
	for _, member := range roster {
		if member.Role != role {
			continue
		}
		if member.Status != models.StaffStatusActive {
			continue
		}
		if assignedStaff[member.ID] {
			continue
		}
		availability := availabilityByStaff[member.ID]
		if !availability.IsSubmitted() || !availability.AvailableOn(dateKey) {
			continue
		}
		pool = append(pool, member)
	}
	return pool
}
