package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/reservation"
)

// SweepReservationsCommandHandler releases stale reservations so their
// number slots become claimable again.
type SweepReservationsCommandHandler struct {
	uowFactory ReservationUoWFactory
}

func NewSweepReservationsCommandHandler(uowFactory ReservationUoWFactory) SweepReservationsCommandHandler {
	return SweepReservationsCommandHandler{uowFactory: uowFactory}
}

// Handle releases every unconfirmed reservation reserved before now-TTL.
// Returns the number of released reservations.
func (h *SweepReservationsCommandHandler) Handle(
	ctx context.Context, cmd SweepReservationsCommand) (int, error) {
	err := cmd.Validate()
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()

	err = uow.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	now := time.Now().UTC()
	cutoff := now.Add(-cmd.TTL())

	stale, err := uow.ReservationRepository().ListStale(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	released := 0
	for _, claim := range stale {
		err = claim.Release(now)
		if err != nil {
			return 0, fmt.Errorf("release reservation %s: %w", claim.ID().String(), err)
		}
		err = uow.ReservationRepository().Update(ctx, claim)
		if err != nil {
			// A claim confirmed or released since ListStale is no longer
			// the sweep's to touch.
			if errors.Is(err, reservation.ErrReservationAlreadyConfirmed) ||
				errors.Is(err, reservation.ErrReservationReleased) {
				continue
			}
			return 0, err
		}
		released++
	}

	err = uow.Commit(ctx)
	if err != nil {
		return 0, err
	}

	return released, nil
}
