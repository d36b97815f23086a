package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// NotificationType categorizes a dispatched notification
type NotificationType string

const (
	NotificationAssignmentCreated    NotificationType = "assignment_created"
	NotificationAssignmentRemoved    NotificationType = "assignment_removed"
	NotificationOverrideRequested    NotificationType = "override_requested"
	NotificationOverrideResolved     NotificationType = "override_resolved"
	NotificationTradeProposed        NotificationType = "trade_proposed"
	NotificationTradeMarketplace     NotificationType = "trade_marketplace"
	NotificationTradeResolved        NotificationType = "trade_resolved"
	NotificationAvailabilityUnlocked NotificationType = "availability_unlocked"
)

// Notification is a persisted fire-and-forget message to one staff member.
// Delivery transports are out of scope; rows are read back by the client.
type Notification struct {
	BaseModel
	UserID  uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type    NotificationType `json:"type" gorm:"type:varchar(50);not null" validate:"required"`
	Title   string           `json:"title" gorm:"size:200;not null" validate:"required,max=200"`
	Message string           `json:"message" gorm:"type:text"`
	Data    json.RawMessage  `json:"data,omitempty" gorm:"type:jsonb"`
	IsRead  bool             `json:"is_read" gorm:"default:false"`

	// Relationships
	User StaffMember `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
