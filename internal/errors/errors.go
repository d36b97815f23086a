package errors

import (
	"errors"
	"fmt"
	"strings"

	"barshift-backend/internal/database/models"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents an idempotency or state-transition conflict:
// a duplicate response, an unexpected trade state, a uniqueness violation
type ConflictError struct {
	Entity  string
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ForbiddenError represents an actor lacking standing to perform an action
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// ValidationError represents a single-field validation error outside the
// eligibility flow (bad request shapes, invalid enums, short reasons)
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Violation is one named eligibility rule failure. Type drives the override
// flow's categorization of the exception being requested; Remedy tells the
// operator what would clear it.
type Violation struct {
	Field   string               `json:"field"`
	Type    models.ViolationType `json:"violation_type,omitempty"`
	Message string               `json:"message"`
	Remedy  string               `json:"remedy,omitempty"`
}

// EligibilityError carries the full batch of violations for one assignment
// attempt. Violations are always collected, never short-circuited, so the
// caller sees everything wrong with the attempt at once.
type EligibilityError struct {
	Violations []Violation
}

func (e *EligibilityError) Error() string {
	if len(e.Violations) == 0 {
		return "assignment not eligible"
	}
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return "assignment not eligible: " + strings.Join(msgs, "; ")
}

// Entity Not Found Errors
var (
	ErrVenueNotFound        = &NotFoundError{Entity: "venue"}
	ErrStaffNotFound        = &NotFoundError{Entity: "staff member"}
	ErrShiftNotFound        = &NotFoundError{Entity: "shift"}
	ErrAssignmentNotFound   = &NotFoundError{Entity: "shift assignment"}
	ErrAvailabilityNotFound = &NotFoundError{Entity: "availability"}
	ErrOverrideNotFound     = &NotFoundError{Entity: "override"}
	ErrTradeNotFound        = &NotFoundError{Entity: "shift trade"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
	ErrPreferenceNotFound   = &NotFoundError{Entity: "venue preference"}
)

// Conflict Errors
var (
	ErrVenueExists           = &ConflictError{Entity: "venue", Message: "a venue with this name already exists"}
	ErrStaffExists           = &ConflictError{Entity: "staff member", Message: "a staff member with this email already exists"}
	ErrAssignmentExists      = &ConflictError{Entity: "shift assignment", Message: "staff member is already assigned to this shift"}
	ErrAlreadyResponded      = &ConflictError{Entity: "override", Message: "staff member has already responded to this override"}
	ErrOverrideNotPending    = &ConflictError{Entity: "override", Message: "override is not awaiting a response"}
	ErrTradeNotProposed      = &ConflictError{Entity: "shift trade", Message: "trade is not in the proposed state"}
	ErrTradeNotAccepted      = &ConflictError{Entity: "shift trade", Message: "trade has not been accepted by the receiver"}
	ErrShiftAlreadyOnTrade   = &ConflictError{Entity: "shift", Message: "shift is already up for trade"}
	ErrTradeAlreadyOpen      = &ConflictError{Entity: "shift trade", Message: "an open trade already exists for this shift"}
	ErrAvailabilityLocked    = &ConflictError{Entity: "availability", Message: "availability is locked for this month"}
	ErrAvailabilitySubmitted = &ConflictError{Entity: "availability", Message: "availability has already been submitted"}
	ErrUnlockExists          = &ConflictError{Entity: "availability unlock", Message: "an unlock already exists for this staff member and month"}
)

// Forbidden Errors
var (
	ErrNotOverrideTarget  = &ForbiddenError{Message: "only the override's target staff member may respond"}
	ErrNotTradeReceiver   = &ForbiddenError{Message: "only the trade's receiver may respond"}
	ErrNotTradeProposer   = &ForbiddenError{Message: "only the trade's proposer may cancel"}
	ErrManagerRequired    = &ForbiddenError{Message: "a managerial role is required for this action"}
	ErrNotAssignmentOwner = &ForbiddenError{Message: "staff member does not hold an assignment on this shift"}
	ErrRoleNotSchedulable = &ForbiddenError{Message: "only bartenders and barbacks may hold shift assignments"}
)

// Business Logic Errors
var (
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidViolation    = errors.New("invalid violation type")
	ErrInvalidMonthFormat  = errors.New("month must be formatted as YYYY-MM")
	ErrInvalidTimeFormat   = errors.New("time must be formatted as HH:MM")
	ErrReasonTooShort      = errors.New("reason must be at least 10 characters")
	ErrLeadMustBeBartender = errors.New("only a bartender may be assigned as lead")
	ErrOverrideNotActive   = errors.New("override is not active")
	ErrOverrideMismatch    = errors.New("override does not cover this shift and staff member")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError
	return errors.As(err, &forbiddenErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsEligibility checks if an error is an EligibilityError
func IsEligibility(err error) bool {
	var eligibilityErr *EligibilityError
	return errors.As(err, &eligibilityErr)
}

// AsEligibility returns the EligibilityError wrapped in err, or nil
func AsEligibility(err error) *EligibilityError {
	var eligibilityErr *EligibilityError
	if errors.As(err, &eligibilityErr) {
		return eligibilityErr
	}
	return nil
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, message string) error {
	return &ConflictError{Entity: entity, Message: message}
}

// NewForbiddenError creates a new ForbiddenError
func NewForbiddenError(message string) error {
	return &ForbiddenError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewEligibilityError creates a new EligibilityError from a violation batch
func NewEligibilityError(violations []Violation) error {
	return &EligibilityError{Violations: violations}
}
