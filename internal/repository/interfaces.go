package repository

import (
	"time"

	"barshift-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// VenueRepositoryInterface defines the interface for venue repository operations
type VenueRepositoryInterface interface {
	Create(venue *models.Venue) error
	GetByID(id uuid.UUID) (*models.Venue, error)
	GetAll(limit, offset int) ([]models.Venue, int64, error)
	GetNetworked() ([]models.Venue, error)
	Update(venue *models.Venue) error
	Delete(id uuid.UUID) error
}

// StaffRepositoryInterface defines the interface for staff repository operations
type StaffRepositoryInterface interface {
	Create(staff *models.StaffMember) error
	GetByID(id uuid.UUID) (*models.StaffMember, error)
	GetByEmail(email string) (*models.StaffMember, error)
	GetAll(limit, offset int) ([]models.StaffMember, int64, error)
	GetActiveByVenue(venueID uuid.UUID) ([]models.StaffMember, error)
	GetManagersByVenue(venueID uuid.UUID) ([]models.StaffMember, error)
	Update(staff *models.StaffMember) error
	Delete(id uuid.UUID) error
	SetVenuePreferences(staffID uuid.UUID, prefs []models.StaffVenuePreference) error
	SetVenueRank(staffID, venueID uuid.UUID, rank *int) error
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	GetByVenueAndDateRange(venueID uuid.UUID, from, to time.Time, limit, offset int) ([]models.Shift, int64, error)
	Update(shift *models.Shift) error
	Delete(id uuid.UUID) error
}

// AvailabilityRepositoryInterface defines the interface for availability repository operations
type AvailabilityRepositoryInterface interface {
	GetByStaffAndMonth(staffID uuid.UUID, month string) (*models.Availability, error)
	GetByMonth(month string) ([]models.Availability, error)
	Save(availability *models.Availability) error
	CreateUnlock(unlock *models.AvailabilityUnlock) error
	HasUnlock(staffID uuid.UUID, month string) (bool, error)
}

// AssignmentRepositoryInterface defines the interface for shift assignment repository operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.ShiftAssignment) error
	GetByID(id uuid.UUID) (*models.ShiftAssignment, error)
	GetByShiftID(shiftID uuid.UUID) ([]models.ShiftAssignment, error)
	GetByShiftAndStaff(shiftID, staffID uuid.UUID) (*models.ShiftAssignment, error)
	GetByStaffAndDate(staffID uuid.UUID, date time.Time, venueIDs []uuid.UUID) ([]models.ShiftAssignment, error)
	Update(assignment *models.ShiftAssignment) error
	Reassign(assignmentID, newStaffID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// OverrideRepositoryInterface defines the interface for override repository operations
type OverrideRepositoryInterface interface {
	Create(override *models.Override) error
	GetByID(id uuid.UUID) (*models.Override, error)
	GetActiveForAssignment(shiftID, staffID uuid.UUID) (*models.Override, error)
	GetByStaffID(staffID uuid.UUID, limit, offset int) ([]models.Override, int64, error)
	UpdateStatus(id uuid.UUID, status models.OverrideStatus) error
	AddApproval(approval *models.OverrideApproval) error
	AppendEvent(event *models.OverrideEvent) error
	GetEvents(overrideID uuid.UUID) ([]models.OverrideEvent, error)
}

// TradeRepositoryInterface defines the interface for shift trade repository operations
type TradeRepositoryInterface interface {
	Create(trade *models.ShiftTrade) error
	GetByID(id uuid.UUID) (*models.ShiftTrade, error)
	GetOpenByShift(shiftID uuid.UUID) ([]models.ShiftTrade, error)
	GetByStaffID(staffID uuid.UUID, limit, offset int) ([]models.ShiftTrade, int64, error)
	Update(trade *models.ShiftTrade) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error)
	MarkRead(id uuid.UUID) error
}
