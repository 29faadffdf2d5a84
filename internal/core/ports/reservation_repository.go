package ports

import (
	"context"
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/reservation"
)

// ErrDuplicateReservation is returned by Insert when an active reservation
// already holds the same (company, order type, year, sequence) slot. The
// caller classifies the conflict by reading the active holder.
var ErrDuplicateReservation = errors.New("duplicate active reservation")

// ReservationRepository is the persistence contract for number reservations.
//
// The uniqueness guarantee comes from the backing store's atomic
// constraint-checked insert over active rows (releasedAt IS NULL), never
// from application-level sequencing. Under two concurrent Insert calls for
// the same slot, exactly one succeeds and the other fails with
// ErrDuplicateReservation.
type ReservationRepository interface {
	// Insert atomically claims the reservation's slot. Fails with
	// ErrDuplicateReservation when an active reservation already holds it.
	Insert(ctx context.Context, aggregate *reservation.NumberReservation) error

	// Get retrieves a reservation by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*reservation.NumberReservation, error)

	// GetActive retrieves the active (not released) reservation holding the
	// given slot, or an ObjectNotFoundError when the slot is free.
	GetActive(
		ctx context.Context,
		companyID kernel.UUID,
		orderType order.OrderType,
		yearPrefix string,
		sequenceNumber int,
	) (*reservation.NumberReservation, error)

	// Update persists confirm/release changes to an existing reservation.
	Update(ctx context.Context, aggregate *reservation.NumberReservation) error

	// ListStale retrieves unconfirmed, unreleased reservations held since
	// before the cutoff. Used by the sweep job to reclaim abandoned slots.
	ListStale(ctx context.Context, before time.Time) ([]*reservation.NumberReservation, error)
}
