package testutils

import (
	"time"

	"barshift-backend/internal/database/models"

	"github.com/google/uuid"
)

// VenueFactory provides methods to create test Venue data
type VenueFactory struct{}

// NewVenueFactory creates a new VenueFactory
func NewVenueFactory() *VenueFactory {
	return &VenueFactory{}
}

// Create creates a test Venue with default values
func (f *VenueFactory) Create() *models.Venue {
	id := uuid.New()
	return &models.Venue{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Venue " + id.String()[:8],
		Address:     "42 Test Street",
		IsNetworked: false,
		Priority:    0,
		IsActive:    true,
	}
}

// WithName sets a custom name for the venue
func (f *VenueFactory) WithName(name string) *models.Venue {
	venue := f.Create()
	venue.Name = name
	return venue
}

// Networked marks the venue as part of the networked group
func (f *VenueFactory) Networked() *models.Venue {
	venue := f.Create()
	venue.IsNetworked = true
	return venue
}

// WithPriority sets the auto-fill priority for the venue
func (f *VenueFactory) WithPriority(priority int) *models.Venue {
	venue := f.Create()
	venue.Priority = priority
	return venue
}

// StaffFactory provides methods to create test StaffMember data
type StaffFactory struct{}

// NewStaffFactory creates a new StaffFactory
func NewStaffFactory() *StaffFactory {
	return &StaffFactory{}
}

// Create creates a test StaffMember with default values
func (f *StaffFactory) Create() *models.StaffMember {
	id := uuid.New()
	// Unique email per instance to avoid collisions on the unique index
	email := "staff-" + id.String()[:8] + "@test.com"

	return &models.StaffMember{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName: "Jordan Test",
		Email:    email,
		// bcrypt hash of "password1" so login tests can authenticate
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		PhoneNumber:  "+1-555-0142",
		Role:         models.StaffRoleBartender,
		IsLead:       false,
		HasDayJob:    false,
		Status:       models.StaffStatusActive,
	}
}

// WithRole sets a custom role for the staff member
func (f *StaffFactory) WithRole(role models.StaffRole) *models.StaffMember {
	staff := f.Create()
	staff.Role = role
	return staff
}

// Lead creates a bartender flagged as lead-capable
func (f *StaffFactory) Lead() *models.StaffMember {
	staff := f.Create()
	staff.Role = models.StaffRoleBartender
	staff.IsLead = true
	return staff
}

// Barback creates a barback staff member
func (f *StaffFactory) Barback() *models.StaffMember {
	staff := f.Create()
	staff.Role = models.StaffRoleBarback
	return staff
}

// Manager creates a manager staff member
func (f *StaffFactory) Manager() *models.StaffMember {
	staff := f.Create()
	staff.Role = models.StaffRoleManager
	return staff
}

// WithDayJob sets a day-job cutoff time ("HH:MM")
func (f *StaffFactory) WithDayJob(cutoff string) *models.StaffMember {
	staff := f.Create()
	staff.HasDayJob = true
	staff.DayJobCutoff = &cutoff
	return staff
}

// WithEmail sets a custom email for the staff member
func (f *StaffFactory) WithEmail(email string) *models.StaffMember {
	staff := f.Create()
	staff.Email = email
	return staff
}

// WithVenue attaches a venue preference at the given position
func (f *StaffFactory) WithVenue(venueID uuid.UUID, position int) *models.StaffMember {
	staff := f.Create()
	staff.VenuePreferences = []models.StaffVenuePreference{
		{
			StaffID:  staff.ID,
			VenueID:  venueID,
			Position: position,
		},
	}
	return staff
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test Shift with default values
func (f *ShiftFactory) Create() *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		VenueID:            uuid.New(),
		Date:               time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:          "18:00",
		EndTime:            "02:00",
		BartendersRequired: 2,
		BarbacksRequired:   1,
		LeadsRequired:      1,
	}
}

// WithVenue sets the venue ID for the shift
func (f *ShiftFactory) WithVenue(venueID uuid.UUID) *models.Shift {
	shift := f.Create()
	shift.VenueID = venueID
	return shift
}

// WithDate sets the calendar date for the shift
func (f *ShiftFactory) WithDate(date time.Time) *models.Shift {
	shift := f.Create()
	shift.Date = date
	return shift
}

// WithTimes sets the start and end times ("HH:MM") for the shift
func (f *ShiftFactory) WithTimes(start, end string) *models.Shift {
	shift := f.Create()
	shift.StartTime = start
	shift.EndTime = end
	return shift
}

// WithHeadcount sets the required role counts for the shift
func (f *ShiftFactory) WithHeadcount(bartenders, barbacks, leads int) *models.Shift {
	shift := f.Create()
	shift.BartendersRequired = bartenders
	shift.BarbacksRequired = barbacks
	shift.LeadsRequired = leads
	return shift
}

// AvailabilityFactory provides methods to create test Availability data
type AvailabilityFactory struct{}

// NewAvailabilityFactory creates a new AvailabilityFactory
func NewAvailabilityFactory() *AvailabilityFactory {
	return &AvailabilityFactory{}
}

// Create creates an unsubmitted test Availability with default values
func (f *AvailabilityFactory) Create() *models.Availability {
	return &models.Availability{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		StaffID: uuid.New(),
		Month:   "2026-03",
		Days:    models.AvailabilityDays{},
	}
}

// Submitted creates a submitted availability for the staff member and month
func (f *AvailabilityFactory) Submitted(staffID uuid.UUID, month string, days models.AvailabilityDays) *models.Availability {
	now := time.Now()
	a := f.Create()
	a.StaffID = staffID
	a.Month = month
	a.Days = days
	a.SubmittedAt = &now
	return a
}

// AvailableAll creates a submitted availability marking every given date available
func (f *AvailabilityFactory) AvailableAll(staffID uuid.UUID, month string, dateKeys ...string) *models.Availability {
	days := models.AvailabilityDays{}
	for _, key := range dateKeys {
		days[key] = models.DayEntry{Available: true}
	}
	return f.Submitted(staffID, month, days)
}

// AssignmentFactory provides methods to create test ShiftAssignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test ShiftAssignment with default values
func (f *AssignmentFactory) Create() *models.ShiftAssignment {
	return &models.ShiftAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ShiftID: uuid.New(),
		StaffID: uuid.New(),
		Role:    models.AssignedRoleBartender,
	}
}

// For sets the shift and staff IDs for the assignment
func (f *AssignmentFactory) For(shiftID, staffID uuid.UUID) *models.ShiftAssignment {
	assignment := f.Create()
	assignment.ShiftID = shiftID
	assignment.StaffID = staffID
	return assignment
}

// AsLead marks the assignment as the shift lead
func (f *AssignmentFactory) AsLead(shiftID, staffID uuid.UUID) *models.ShiftAssignment {
	assignment := f.For(shiftID, staffID)
	assignment.IsLead = true
	return assignment
}

// OverrideFactory provides methods to create test Override data
type OverrideFactory struct{}

// NewOverrideFactory creates a new OverrideFactory
func NewOverrideFactory() *OverrideFactory {
	return &OverrideFactory{}
}

// Create creates a pending test Override with default values
func (f *OverrideFactory) Create() *models.Override {
	return &models.Override{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ShiftID:       uuid.New(),
		StaffID:       uuid.New(),
		Reason:        "covering for a coworker emergency",
		ViolationType: models.ViolationVenueMismatch,
		Status:        models.OverrideStatusPending,
	}
}

// For sets the shift and staff IDs for the override
func (f *OverrideFactory) For(shiftID, staffID uuid.UUID) *models.Override {
	override := f.Create()
	override.ShiftID = shiftID
	override.StaffID = staffID
	return override
}

// Active creates an active (dual-approved) override for the shift and staff
func (f *OverrideFactory) Active(shiftID, staffID, managerID uuid.UUID) *models.Override {
	override := f.For(shiftID, staffID)
	override.Status = models.OverrideStatusActive
	override.Approvals = []models.OverrideApproval{
		{OverrideID: override.ID, ApproverID: managerID, IsManager: true, Approved: true},
		{OverrideID: override.ID, ApproverID: staffID, Approved: true},
	}
	return override
}

// TradeFactory provides methods to create test ShiftTrade data
type TradeFactory struct{}

// NewTradeFactory creates a new TradeFactory
func NewTradeFactory() *TradeFactory {
	return &TradeFactory{}
}

// Create creates a proposed marketplace trade with default values
func (f *TradeFactory) Create() *models.ShiftTrade {
	return &models.ShiftTrade{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ShiftID:    uuid.New(),
		ProposerID: uuid.New(),
		Status:     models.TradeStatusProposed,
		Reason:     "family obligation",
	}
}

// Direct creates a proposed trade bound to a specific receiver
func (f *TradeFactory) Direct(shiftID, proposerID, receiverID uuid.UUID) *models.ShiftTrade {
	trade := f.Create()
	trade.ShiftID = shiftID
	trade.ProposerID = proposerID
	trade.ReceiverID = &receiverID
	return trade
}

// Marketplace creates a proposed trade with no bound receiver
func (f *TradeFactory) Marketplace(shiftID, proposerID uuid.UUID) *models.ShiftTrade {
	trade := f.Create()
	trade.ShiftID = shiftID
	trade.ProposerID = proposerID
	return trade
}

// FactorySet provides access to all factories
type FactorySet struct {
	Venue        *VenueFactory
	Staff        *StaffFactory
	Shift        *ShiftFactory
	Availability *AvailabilityFactory
	Assignment   *AssignmentFactory
	Override     *OverrideFactory
	Trade        *TradeFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Venue:        NewVenueFactory(),
		Staff:        NewStaffFactory(),
		Shift:        NewShiftFactory(),
		Availability: NewAvailabilityFactory(),
		Assignment:   NewAssignmentFactory(),
		Override:     NewOverrideFactory(),
		Trade:        NewTradeFactory(),
	}
}
