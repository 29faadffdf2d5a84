package reservation

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

var (
	// ErrReservationIsNotConstructed is returned when a NumberReservation was
	// not created through NewNumberReservation or RestoreNumberReservation.
	ErrReservationIsNotConstructed = errors.New(
		"NumberReservation must be created via NewNumberReservation constructor")

	// ErrReservationAlreadyConfirmed is returned when confirming or releasing
	// a reservation that has already been confirmed onto an order.
	ErrReservationAlreadyConfirmed = errors.New("reservation is already confirmed")

	// ErrReservationReleased is returned when confirming a reservation whose
	// slot has already been released back to the pool.
	ErrReservationReleased = errors.New("reservation has been released")
)

// NumberReservation is a provisional claim on one document number. It is
// owned by the reserving user until it is confirmed (ownership passes to the
// order) or released (the slot frees up for any caller).
//
// Lifecycle invariants:
//   - Confirm is valid exactly once; confirming a confirmed or released
//     reservation fails explicitly.
//   - Release of an already-released reservation is a no-op; release of a
//     confirmed reservation fails explicitly.
type NumberReservation struct {
	id              kernel.UUID
	companyID       kernel.UUID
	orderType       order.OrderType
	yearPrefix      string
	sequenceNumber  int
	fullNumber      string
	reservedBy      kernel.UUID
	reservedAt      time.Time
	confirmedAt     *time.Time
	releasedAt      *time.Time
	purchaseOrderID *kernel.UUID

	isConstructed bool
}

// NewNumberReservation creates a fresh unconfirmed reservation. The full
// number is derived from the year prefix and sequence and validated as part
// of construction.
func NewNumberReservation(
	id, companyID kernel.UUID,
	orderType order.OrderType,
	yearPrefix string,
	sequenceNumber int,
	reservedBy kernel.UUID,
) (*NumberReservation, error) {
	if err := errors.Join(
		id.Validate(),
		companyID.Validate(),
		orderType.Validate(),
		reservedBy.Validate(),
	); err != nil {
		return nil, err
	}

	fullNumber, err := FormatFullNumber(yearPrefix, sequenceNumber)
	if err != nil {
		return nil, err
	}

	return &NumberReservation{
		id:             id,
		companyID:      companyID,
		orderType:      orderType,
		yearPrefix:     yearPrefix,
		sequenceNumber: sequenceNumber,
		fullNumber:     fullNumber,
		reservedBy:     reservedBy,
		reservedAt:     time.Now().UTC(),
		isConstructed:  true,
	}, nil
}

// RestoreNumberReservation reconstructs a reservation from persistence.
func RestoreNumberReservation(
	id, companyID kernel.UUID,
	orderType order.OrderType,
	yearPrefix string,
	sequenceNumber int,
	reservedBy kernel.UUID,
	reservedAt time.Time,
	confirmedAt, releasedAt *time.Time,
	purchaseOrderID *kernel.UUID,
) (*NumberReservation, error) {
	r, err := NewNumberReservation(id, companyID, orderType, yearPrefix, sequenceNumber, reservedBy)
	if err != nil {
		return nil, err
	}

	r.reservedAt = reservedAt
	r.confirmedAt = confirmedAt
	r.releasedAt = releasedAt

	if purchaseOrderID != nil {
		if err := purchaseOrderID.Validate(); err != nil {
			return nil, err
		}
		r.purchaseOrderID = purchaseOrderID
	}

	return r, nil
}

// Validate ensures the reservation was created through a constructor.
func (r *NumberReservation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReservationIsNotConstructed
	}
	return nil
}

// ID returns the reservation's unique identifier.
func (r *NumberReservation) ID() kernel.UUID {
	return r.id
}

// CompanyID returns the company scope of the reserved number.
func (r *NumberReservation) CompanyID() kernel.UUID {
	return r.companyID
}

// OrderType returns the order-type scope of the reserved number.
func (r *NumberReservation) OrderType() order.OrderType {
	return r.orderType
}

// YearPrefix returns the 2-digit year scope of the reserved number.
func (r *NumberReservation) YearPrefix() string {
	return r.yearPrefix
}

// SequenceNumber returns the claimed sequence value.
func (r *NumberReservation) SequenceNumber() int {
	return r.sequenceNumber
}

// FullNumber returns the formatted "YY/SSS" document number.
func (r *NumberReservation) FullNumber() string {
	return r.fullNumber
}

// ReservedBy returns the user holding the reservation.
func (r *NumberReservation) ReservedBy() kernel.UUID {
	return r.reservedBy
}

// ReservedAt returns when the claim was made.
func (r *NumberReservation) ReservedAt() time.Time {
	return r.reservedAt
}

// ConfirmedAt returns when the reservation was confirmed, nil if it wasn't.
func (r *NumberReservation) ConfirmedAt() *time.Time {
	return r.confirmedAt
}

// ReleasedAt returns when the reservation was released, nil if it wasn't.
func (r *NumberReservation) ReleasedAt() *time.Time {
	return r.releasedAt
}

// PurchaseOrderID returns the order the number is attached to, nil until confirmed.
func (r *NumberReservation) PurchaseOrderID() *kernel.UUID {
	return r.purchaseOrderID
}

// IsConfirmed reports whether the reservation has been confirmed onto an order.
func (r *NumberReservation) IsConfirmed() bool {
	return r.confirmedAt != nil
}

// IsReleased reports whether the slot has been freed.
func (r *NumberReservation) IsReleased() bool {
	return r.releasedAt != nil
}

// IsHeldBy reports whether the given user owns this unconfirmed reservation.
func (r *NumberReservation) IsHeldBy(userID kernel.UUID) bool {
	return !r.IsConfirmed() && !r.IsReleased() && r.reservedBy.IsEqual(userID)
}

// Confirm attaches the order and stamps the confirmation time. Valid exactly
// once per reservation.
func (r *NumberReservation) Confirm(purchaseOrderID kernel.UUID, at time.Time) error {
	if err := purchaseOrderID.Validate(); err != nil {
		return err
	}
	if r.IsConfirmed() {
		return ErrReservationAlreadyConfirmed
	}
	if r.IsReleased() {
		return ErrReservationReleased
	}

	r.purchaseOrderID = &purchaseOrderID
	r.confirmedAt = &at
	return nil
}

// Release frees the slot for reuse. Releasing an already-released
// reservation is a no-op; releasing a confirmed reservation fails.
func (r *NumberReservation) Release(at time.Time) error {
	if r.IsConfirmed() {
		return ErrReservationAlreadyConfirmed
	}
	if r.IsReleased() {
		return nil
	}

	r.releasedAt = &at
	return nil
}
