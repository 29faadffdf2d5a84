package inmemory

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/reservation"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// ReservationRepository is the in-memory ports.ReservationRepository. The
// active-slot uniqueness check runs under the store lock, mirroring the
// postgres partial unique index: insert and conflict detection are one
// atomic step.
type ReservationRepository struct {
	store *Store
}

// NewReservationRepository creates a reservation repository over the shared store.
func NewReservationRepository(store *Store) *ReservationRepository {
	return &ReservationRepository{store: store}
}

// Insert atomically claims the reservation's slot.
func (r *ReservationRepository) Insert(_ context.Context, aggregate *reservation.NumberReservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.findActiveLocked(
		aggregate.CompanyID(), aggregate.OrderType(),
		aggregate.YearPrefix(), aggregate.SequenceNumber()) != nil {
		return ports.ErrDuplicateReservation
	}

	snapshot, err := cloneReservation(aggregate)
	if err != nil {
		return err
	}

	r.store.reservations[aggregate.ID().String()] = snapshot
	return nil
}

// Get returns a deep copy of the stored reservation.
func (r *ReservationRepository) Get(
	_ context.Context, id kernel.UUID,
) (*reservation.NumberReservation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.reservations[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("reservation", id.String())
	}

	return cloneReservation(stored)
}

// GetActive returns the unreleased reservation holding the given slot.
func (r *ReservationRepository) GetActive(
	_ context.Context,
	companyID kernel.UUID,
	orderType order.OrderType,
	yearPrefix string,
	sequenceNumber int,
) (*reservation.NumberReservation, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := r.findActiveLocked(companyID, orderType, yearPrefix, sequenceNumber)
	if stored == nil {
		return nil, errs.NewObjectNotFoundError("reservation", nil)
	}

	return cloneReservation(stored)
}

// Update persists confirm/release changes. The stored row must still be
// active; a caller working from a snapshot a concurrent confirm or release
// already superseded is rejected, mirroring the postgres conditional write.
func (r *ReservationRepository) Update(_ context.Context, aggregate *reservation.NumberReservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.reservations[aggregate.ID().String()]
	if !ok {
		return errs.NewObjectNotFoundError("reservation", aggregate.ID().String())
	}
	if stored.IsConfirmed() {
		return reservation.ErrReservationAlreadyConfirmed
	}
	if stored.IsReleased() {
		return reservation.ErrReservationReleased
	}

	snapshot, err := cloneReservation(aggregate)
	if err != nil {
		return err
	}

	r.store.reservations[aggregate.ID().String()] = snapshot
	return nil
}

// ListStale returns unconfirmed, unreleased reservations held since before
// the cutoff.
func (r *ReservationRepository) ListStale(
	_ context.Context, before time.Time,
) ([]*reservation.NumberReservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stale := make([]*reservation.NumberReservation, 0)
	for _, stored := range r.store.reservations {
		if stored.IsConfirmed() || stored.IsReleased() {
			continue
		}
		if !stored.ReservedAt().Before(before) {
			continue
		}

		snapshot, err := cloneReservation(stored)
		if err != nil {
			return nil, err
		}
		stale = append(stale, snapshot)
	}

	return stale, nil
}

// findActiveLocked scans for the unreleased holder of a slot. Callers hold
// the store lock.
func (r *ReservationRepository) findActiveLocked(
	companyID kernel.UUID, orderType order.OrderType, yearPrefix string, sequenceNumber int,
) *reservation.NumberReservation {
	for _, stored := range r.store.reservations {
		if stored.IsReleased() {
			continue
		}
		if !stored.CompanyID().IsEqual(companyID) {
			continue
		}
		if stored.OrderType() != orderType ||
			stored.YearPrefix() != yearPrefix ||
			stored.SequenceNumber() != sequenceNumber {
			continue
		}
		return stored
	}
	return nil
}
