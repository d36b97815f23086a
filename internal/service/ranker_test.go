package service_test

import (
	"testing"
	"time"

	"barshift-backend/internal/database/models"
	"barshift-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func member(name string, prefs ...models.StaffVenuePreference) models.StaffMember {
	return models.StaffMember{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		FullName:         name,
		Role:             models.StaffRoleBartender,
		Status:           models.StaffStatusActive,
		VenuePreferences: prefs,
	}
}

func names(pool []models.StaffMember) []string {
	out := make([]string, len(pool))
	for i, m := range pool {
		out[i] = m.FullName
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestRankCandidates_LeadsFirstWhenNeeded(t *testing.T) {
	venueID := uuid.New()

	regular := member("Regular", models.StaffVenuePreference{VenueID: venueID, Position: 0})
	lead := member("Lead", models.StaffVenuePreference{VenueID: venueID, Position: 3})
	lead.IsLead = true

	ranked := service.RankCandidates([]models.StaffMember{regular, lead}, venueID, true)

	assert.Equal(t, []string{"Lead", "Regular"}, names(ranked))
}

func TestRankCandidates_NoLeadPriorityWhenNotNeeded(t *testing.T) {
	venueID := uuid.New()

	regular := member("Regular", models.StaffVenuePreference{VenueID: venueID, Position: 0})
	lead := member("Lead", models.StaffVenuePreference{VenueID: venueID, Position: 3})
	lead.IsLead = true

	ranked := service.RankCandidates([]models.StaffMember{regular, lead}, venueID, false)

	// Without the lead quota in play, position decides.
	assert.Equal(t, []string{"Regular", "Lead"}, names(ranked))
}

func TestRankCandidates_ManagementRankOrdering(t *testing.T) {
	venueID := uuid.New()

	unranked := member("Unranked", models.StaffVenuePreference{VenueID: venueID, Position: 0})
	rankFive := member("RankFive", models.StaffVenuePreference{VenueID: venueID, Position: 0, Rank: intPtr(5)})
	rankOne := member("RankOne", models.StaffVenuePreference{VenueID: venueID, Position: 0, Rank: intPtr(1)})

	ranked := service.RankCandidates([]models.StaffMember{unranked, rankFive, rankOne}, venueID, false)

	// Any rank beats no rank; lower rank beats higher.
	assert.Equal(t, []string{"RankOne", "RankFive", "Unranked"}, names(ranked))
}

func TestRankCandidates_PreferencePositionBreaksRankTies(t *testing.T) {
	venueID := uuid.New()

	third := member("Third", models.StaffVenuePreference{VenueID: venueID, Position: 2})
	first := member("First", models.StaffVenuePreference{VenueID: venueID, Position: 0})
	noPref := member("NoPref")

	ranked := service.RankCandidates([]models.StaffMember{third, noPref, first}, venueID, false)

	assert.Equal(t, []string{"First", "Third", "NoPref"}, names(ranked))
}

func TestRankCandidates_StableForEqualCandidates(t *testing.T) {
	venueID := uuid.New()

	a := member("A", models.StaffVenuePreference{VenueID: venueID, Position: 1})
	b := member("B", models.StaffVenuePreference{VenueID: venueID, Position: 1})
	c := member("C", models.StaffVenuePreference{VenueID: venueID, Position: 1})

	pool := []models.StaffMember{a, b, c}
	first := service.RankCandidates(pool, venueID, false)
	second := service.RankCandidates(pool, venueID, false)

	assert.Equal(t, []string{"A", "B", "C"}, names(first))
	assert.Equal(t, names(first), names(second))
}

func TestRankCandidates_DoesNotMutateInput(t *testing.T) {
	venueID := uuid.New()

	pool := []models.StaffMember{
		member("Second", models.StaffVenuePreference{VenueID: venueID, Position: 1}),
		member("First", models.StaffVenuePreference{VenueID: venueID, Position: 0}),
	}
	service.RankCandidates(pool, venueID, false)

	assert.Equal(t, []string{"Second", "First"}, names(pool))
}

func TestBuildAutoFillPool_RequiresSubmittedAvailableEntry(t *testing.T) {
	dateKey := "2026-03-14"
	submitted := time.Now()

	available := member("Available")
	noEntry := member("NoEntry")
	markedOff := member("MarkedOff")
	unsubmitted := member("Unsubmitted")
	noRecord := member("NoRecord")

	availabilityByStaff := map[uuid.UUID]*models.Availability{
		available.ID: {
			Days:        models.AvailabilityDays{dateKey: {Available: true}},
			SubmittedAt: &submitted,
		},
		noEntry.ID: {
			Days:        models.AvailabilityDays{},
			SubmittedAt: &submitted,
		},
		markedOff.ID: {
			Days:        models.AvailabilityDays{dateKey: {Available: false}},
			SubmittedAt: &submitted,
		},
		unsubmitted.ID: {
			Days: models.AvailabilityDays{dateKey: {Available: true}},
		},
	}

	roster := []models.StaffMember{available, noEntry, markedOff, unsubmitted, noRecord}
	pool := service.BuildAutoFillPool(roster, models.StaffRoleBartender, dateKey, availabilityByStaff, nil)

	assert.Equal(t, []string{"Available"}, names(pool))
}

func TestBuildAutoFillPool_FiltersRoleStatusAndAssigned(t *testing.T) {
	dateKey := "2026-03-14"
	submitted := time.Now()

	bartender := member("Bartender")
	barback := member("Barback")
	barback.Role = models.StaffRoleBarback
	inactive := member("Inactive")
	inactive.Status = models.StaffStatusInactive
	assigned := member("Assigned")

	availabilityByStaff := make(map[uuid.UUID]*models.Availability)
	for _, m := range []models.StaffMember{bartender, barback, inactive, assigned} {
		availabilityByStaff[m.ID] = &models.Availability{
			Days:        models.AvailabilityDays{dateKey: {Available: true}},
			SubmittedAt: &submitted,
		}
	}

	roster := []models.StaffMember{bartender, barback, inactive, assigned}
	pool := service.BuildAutoFillPool(roster, models.StaffRoleBartender, dateKey, availabilityByStaff,
		map[uuid.UUID]bool{assigned.ID: true})

	assert.Equal(t, []string{"Bartender"}, names(pool))
}
