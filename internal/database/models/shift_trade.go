package models

import (
	"github.com/google/uuid"
)

// ShiftTrade is a proposal to hand a shift assignment from the proposer to a
// receiver. A nil ReceiverID means a marketplace trade: the shift is broadcast
// to every eligible staff member and any of them may claim it by accepting.
type ShiftTrade struct {
	BaseModel
	ShiftID        uuid.UUID   `json:"shift_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProposerID     uuid.UUID   `json:"proposer_id" gorm:"type:uuid;not null;index" validate:"required"`
	ReceiverID     *uuid.UUID  `json:"receiver_id,omitempty" gorm:"type:uuid;index"`
	Status         TradeStatus `json:"status" gorm:"type:varchar(50);not null;default:'proposed'"`
	Reason         string      `json:"reason" gorm:"type:text"`
	DeclinedReason string      `json:"declined_reason" gorm:"type:text"`

	// Relationships
	Shift    Shift        `json:"shift,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
	Proposer StaffMember  `json:"proposer,omitempty" gorm:"foreignKey:ProposerID;constraint:OnDelete:CASCADE"`
	Receiver *StaffMember `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for ShiftTrade
func (ShiftTrade) TableName() string {
	return "shift_trades"
}

// IsMarketplace reports whether the trade has no bound receiver
func (t *ShiftTrade) IsMarketplace() bool {
	return t.ReceiverID == nil
}
