package models

import (
	"github.com/google/uuid"
)

// Override is a tracked, dual-approved exception allowing one specific
// (shift, staff) assignment to bypass normal eligibility rules. It is
// created by a manager (which auto-records the manager's approval) and
// becomes active only once the affected staff member also approves.
type Override struct {
	BaseModel
	ShiftID       uuid.UUID      `json:"shift_id" gorm:"type:uuid;not null;index" validate:"required"`
	StaffID       uuid.UUID      `json:"staff_id" gorm:"type:uuid;not null;index" validate:"required"`
	Reason        string         `json:"reason" gorm:"type:text;not null" validate:"required,min=10"`
	ViolationType ViolationType  `json:"violation_type" gorm:"type:varchar(50);not null" validate:"required"`
	Status        OverrideStatus `json:"status" gorm:"type:varchar(50);not null;default:'pending'"`

	// Relationships
	Shift     Shift              `json:"shift,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
	Staff     StaffMember        `json:"staff,omitempty" gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
	Approvals []OverrideApproval `json:"approvals,omitempty" gorm:"foreignKey:OverrideID;constraint:OnDelete:CASCADE"`
	Events    []OverrideEvent    `json:"events,omitempty" gorm:"foreignKey:OverrideID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Override
func (Override) TableName() string {
	return "overrides"
}

// ApprovalBy returns the approval recorded by the given user, or nil
func (o *Override) ApprovalBy(userID uuid.UUID) *OverrideApproval {
	for i := range o.Approvals {
		if o.Approvals[i].ApproverID == userID {
			return &o.Approvals[i]
		}
	}
	return nil
}

// HasManagerApproval reports whether an approved=true manager approval exists
func (o *Override) HasManagerApproval() bool {
	for _, a := range o.Approvals {
		if a.IsManager && a.Approved {
			return true
		}
	}
	return false
}

// OverrideApproval is one party's sign-off on an override. Two are expected
// per override: one manager (recorded at creation) and the target staff member.
type OverrideApproval struct {
	BaseModel
	OverrideID uuid.UUID `json:"override_id" gorm:"type:uuid;not null;uniqueIndex:idx_override_approvals" validate:"required"`
	ApproverID uuid.UUID `json:"approver_id" gorm:"type:uuid;not null;uniqueIndex:idx_override_approvals" validate:"required"`
	IsManager  bool      `json:"is_manager" gorm:"default:false"`
	Approved   bool      `json:"approved" gorm:"not null"`
	Comment    string    `json:"comment" gorm:"type:text"`

	// Relationships
	Override Override    `json:"override,omitempty" gorm:"foreignKey:OverrideID;constraint:OnDelete:CASCADE"`
	Approver StaffMember `json:"approver,omitempty" gorm:"foreignKey:ApproverID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OverrideApproval
func (OverrideApproval) TableName() string {
	return "override_approvals"
}

// OverrideEvent is an append-only ledger entry recording one override state
// transition. Events are never edited or reordered; CreatedAt orders the log.
type OverrideEvent struct {
	BaseModel
	OverrideID uuid.UUID `json:"override_id" gorm:"type:uuid;not null;index" validate:"required"`
	Action     string    `json:"action" gorm:"size:50;not null" validate:"required"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	UserName   string    `json:"user_name" gorm:"size:200"`
	Note       string    `json:"note" gorm:"type:text"`

	// Relationships
	Override Override `json:"override,omitempty" gorm:"foreignKey:OverrideID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OverrideEvent
func (OverrideEvent) TableName() string {
	return "override_events"
}

// Override ledger event actions
const (
	OverrideEventCreated  = "created"
	OverrideEventApproved = "approved"
	OverrideEventDeclined = "declined"
	OverrideEventConsumed = "consumed"
)
