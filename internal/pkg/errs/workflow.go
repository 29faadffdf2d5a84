package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the workflow and reservation domains.
var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrStaleState        = errors.New("stale state")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrNumberConflict    = errors.New("number conflict")
)

// InvalidTransitionError indicates that a workflow action is not legal for
// the order's current status, or not legal at all. No mutation has occurred.
type InvalidTransitionError struct {
	Status string
	Action string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given status and action.
func NewInvalidTransitionError(status, action string) *InvalidTransitionError {
	return &InvalidTransitionError{Status: status, Action: action}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: action %s is not allowed in status %s", ErrInvalidTransition, e.Action, e.Status)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// StaleStateError indicates that an optimistic-concurrency check failed: the
// stored status no longer matches the status the caller last observed. The
// caller must re-fetch the order and retry; nothing has been written.
type StaleStateError struct {
	ParamName string
	Expected  string
}

// NewStaleStateError creates a StaleStateError for the given object and expected status.
func NewStaleStateError(paramName, expected string) *StaleStateError {
	return &StaleStateError{ParamName: paramName, Expected: expected}
}

func (e *StaleStateError) Error() string {
	return fmt.Sprintf("%s: %s is no longer in status %s", ErrStaleState, e.ParamName, e.Expected)
}

func (e *StaleStateError) Unwrap() error {
	return ErrStaleState
}

// PermissionDeniedError indicates that the acting user's role or assignment
// does not authorize the attempted operation.
type PermissionDeniedError struct {
	UserID string
	Action string
}

// NewPermissionDeniedError creates a PermissionDeniedError for the given user and action.
func NewPermissionDeniedError(userID, action string) *PermissionDeniedError {
	return &PermissionDeniedError{UserID: userID, Action: action}
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s: user %s may not perform %s", ErrPermissionDenied, e.UserID, e.Action)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

// ConflictReason classifies why a number reservation attempt collided.
type ConflictReason string

const (
	// ConflictPermanentlyTaken means a confirmed reservation already links the
	// number to an order. The caller should be directed to that order.
	ConflictPermanentlyTaken ConflictReason = "permanently_taken"

	// ConflictTemporarilyHeld means an unconfirmed reservation owned by
	// another user currently holds the number. It may be released later.
	ConflictTemporarilyHeld ConflictReason = "temporarily_held"
)

// NumberConflictError indicates that a document-number reservation attempt
// collided with an existing active reservation for the same
// (company, order type, year, sequence) slot.
type NumberConflictError struct {
	FullNumber string
	Reason     ConflictReason

	// ConflictingOrderID is set when Reason is ConflictPermanentlyTaken,
	// identifying the order the number is already attached to.
	ConflictingOrderID string
}

// NewNumberConflictError creates a NumberConflictError for the given number and reason.
func NewNumberConflictError(fullNumber string, reason ConflictReason) *NumberConflictError {
	return &NumberConflictError{FullNumber: fullNumber, Reason: reason}
}

// NewPermanentNumberConflictError creates a NumberConflictError for a number
// already confirmed and attached to the given order.
func NewPermanentNumberConflictError(fullNumber, conflictingOrderID string) *NumberConflictError {
	return &NumberConflictError{
		FullNumber:         fullNumber,
		Reason:             ConflictPermanentlyTaken,
		ConflictingOrderID: conflictingOrderID,
	}
}

func (e *NumberConflictError) Error() string {
	if e.Reason == ConflictPermanentlyTaken && e.ConflictingOrderID != "" {
		return fmt.Sprintf("%s: %s is %s by order %s",
			ErrNumberConflict, e.FullNumber, e.Reason, e.ConflictingOrderID)
	}
	return fmt.Sprintf("%s: %s is %s", ErrNumberConflict, e.FullNumber, e.Reason)
}

func (e *NumberConflictError) Unwrap() error {
	return ErrNumberConflict
}
