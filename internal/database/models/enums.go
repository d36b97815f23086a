package models

// StaffRole represents the role of a staff member
type StaffRole string

const (
	StaffRoleBartender      StaffRole = "bartender"
	StaffRoleBarback        StaffRole = "barback"
	StaffRoleManager        StaffRole = "manager"
	StaffRoleGeneralManager StaffRole = "general_manager"
	StaffRoleSuperAdmin     StaffRole = "super_admin"
)

// IsValid checks if the StaffRole is valid
func (r StaffRole) IsValid() bool {
	switch r {
	case StaffRoleBartender, StaffRoleBarback, StaffRoleManager, StaffRoleGeneralManager, StaffRoleSuperAdmin:
		return true
	}
	return false
}

// IsSchedulable reports whether the role may hold shift assignments
func (r StaffRole) IsSchedulable() bool {
	return r == StaffRoleBartender || r == StaffRoleBarback
}

// IsManagerial reports whether the role may approve overrides and trades
func (r StaffRole) IsManagerial() bool {
	switch r {
	case StaffRoleManager, StaffRoleGeneralManager, StaffRoleSuperAdmin:
		return true
	}
	return false
}

// StaffStatus represents whether a staff member is active
type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusInactive StaffStatus = "inactive"
)

// IsValid checks if the StaffStatus is valid
func (s StaffStatus) IsValid() bool {
	return s == StaffStatusActive || s == StaffStatusInactive
}

// AssignedRole represents the role a staff member fills on a shift
type AssignedRole string

const (
	AssignedRoleBartender AssignedRole = "bartender"
	AssignedRoleBarback   AssignedRole = "barback"
)

// IsValid checks if the AssignedRole is valid
func (r AssignedRole) IsValid() bool {
	return r == AssignedRoleBartender || r == AssignedRoleBarback
}

// ViolationType categorizes an eligibility rule violation
type ViolationType string

const (
	ViolationVenueMismatch ViolationType = "venue_mismatch"
	ViolationCutoff        ViolationType = "cutoff"
	ViolationRequestOff    ViolationType = "request_off"
	ViolationDoubleBooking ViolationType = "double_booking"
	ViolationLeadShortage  ViolationType = "lead_shortage"
)

// IsValid checks if the ViolationType is valid
func (v ViolationType) IsValid() bool {
	switch v {
	case ViolationVenueMismatch, ViolationCutoff, ViolationRequestOff, ViolationDoubleBooking, ViolationLeadShortage:
		return true
	}
	return false
}

// OverrideStatus represents the lifecycle state of an override
type OverrideStatus string

const (
	OverrideStatusPending  OverrideStatus = "pending"
	OverrideStatusApproved OverrideStatus = "approved"
	OverrideStatusActive   OverrideStatus = "active"
	OverrideStatusDeclined OverrideStatus = "declined"
	OverrideStatusConsumed OverrideStatus = "consumed"
)

// IsValid checks if the OverrideStatus is valid
func (s OverrideStatus) IsValid() bool {
	switch s {
	case OverrideStatusPending, OverrideStatusApproved, OverrideStatusActive, OverrideStatusDeclined, OverrideStatusConsumed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed
func (s OverrideStatus) IsTerminal() bool {
	return s == OverrideStatusDeclined || s == OverrideStatusConsumed
}

// TradeStatus represents the lifecycle state of a shift trade
type TradeStatus string

const (
	TradeStatusProposed  TradeStatus = "proposed"
	TradeStatusAccepted  TradeStatus = "accepted"
	TradeStatusDeclined  TradeStatus = "declined"
	TradeStatusCancelled TradeStatus = "cancelled"
	TradeStatusApproved  TradeStatus = "approved"
)

// IsValid checks if the TradeStatus is valid
func (s TradeStatus) IsValid() bool {
	switch s {
	case TradeStatusProposed, TradeStatusAccepted, TradeStatusDeclined, TradeStatusCancelled, TradeStatusApproved:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed
func (s TradeStatus) IsTerminal() bool {
	switch s {
	case TradeStatusDeclined, TradeStatusCancelled, TradeStatusApproved:
		return true
	}
	return false
}
