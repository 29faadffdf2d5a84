package order

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created through NewHistoryEntry or RestoreHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New(
	"HistoryEntry must be created via NewHistoryEntry constructor")

// HistoryEntry is one immutable row of an order's transition log. Entries
// are only ever appended; ordering by ChangedAt fully reconstructs the
// lifecycle. Notes carry rejection or cancellation reasons.
type HistoryEntry struct {
	id              kernel.UUID
	purchaseOrderID kernel.UUID
	fromStatus      Status
	toStatus        Status
	action          Action
	changedBy       kernel.UUID
	changedAt       time.Time
	notes           *string

	isConstructed bool
}

// NewHistoryEntry creates a validated history entry for one committed transition.
func NewHistoryEntry(
	id, purchaseOrderID kernel.UUID,
	fromStatus, toStatus Status,
	action Action,
	changedBy kernel.UUID,
	changedAt time.Time,
	notes *string,
) (*HistoryEntry, error) {
	if err := errors.Join(
		id.Validate(),
		purchaseOrderID.Validate(),
		fromStatus.Validate(),
		toStatus.Validate(),
		action.Validate(),
		changedBy.Validate(),
	); err != nil {
		return nil, err
	}

	return &HistoryEntry{
		id:              id,
		purchaseOrderID: purchaseOrderID,
		fromStatus:      fromStatus,
		toStatus:        toStatus,
		action:          action,
		changedBy:       changedBy,
		changedAt:       changedAt,
		notes:           notes,
		isConstructed:   true,
	}, nil
}

// RestoreHistoryEntry reconstructs an entry from persistence.
func RestoreHistoryEntry(
	id, purchaseOrderID kernel.UUID,
	fromStatus, toStatus Status,
	action Action,
	changedBy kernel.UUID,
	changedAt time.Time,
	notes *string,
) (*HistoryEntry, error) {
	return NewHistoryEntry(id, purchaseOrderID, fromStatus, toStatus, action, changedBy, changedAt, notes)
}

// Validate ensures the entry was created through a constructor.
func (h *HistoryEntry) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (h *HistoryEntry) ID() kernel.UUID {
	return h.id
}

// PurchaseOrderID returns the order this entry belongs to.
func (h *HistoryEntry) PurchaseOrderID() kernel.UUID {
	return h.purchaseOrderID
}

// FromStatus returns the status the order left.
func (h *HistoryEntry) FromStatus() Status {
	return h.fromStatus
}

// ToStatus returns the status the order settled in, after any auto-advance.
func (h *HistoryEntry) ToStatus() Status {
	return h.toStatus
}

// Action returns the user action that caused the transition.
func (h *HistoryEntry) Action() Action {
	return h.action
}

// ChangedBy returns the acting user.
func (h *HistoryEntry) ChangedBy() kernel.UUID {
	return h.changedBy
}

// ChangedAt returns when the transition committed.
func (h *HistoryEntry) ChangedAt() time.Time {
	return h.changedAt
}

// Notes returns the optional reason text, nil when none was given.
func (h *HistoryEntry) Notes() *string {
	return h.notes
}
