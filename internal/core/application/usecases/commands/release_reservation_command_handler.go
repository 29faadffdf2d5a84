package commands

import (
	"context"
	"errors"
	"time"

	"procurement/internal/core/domain/model/reservation"
	"procurement/internal/pkg/errs"
)

// ReleaseReservationCommandHandler handles freeing reserved numbers.
// Releasing is idempotent for an already-released reservation and always
// fails for a confirmed one; a number attached to an order never returns to
// the pool.
type ReleaseReservationCommandHandler struct {
	uowFactory ReservationUoWFactory
}

// NewReleaseReservationCommandHandler creates a handler for reservation release.
func NewReleaseReservationCommandHandler(uowFactory ReservationUoWFactory) ReleaseReservationCommandHandler {
	return ReleaseReservationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command. Only the reservation's holder (or a
// role with blanket authority) may release it.
func (h *ReleaseReservationCommandHandler) Handle(ctx context.Context, cmd ReleaseReservationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	session := cmd.Session()
	reservationRepo := uow.ReservationRepository()

	claim, err := reservationRepo.Get(ctx, cmd.ReservationID())
	if err != nil {
		return err
	}

	if !claim.CompanyID().IsEqual(session.CompanyID()) {
		return errs.NewPermissionDeniedError(session.UserID().String(), "release_reservation")
	}
	if !claim.ReservedBy().IsEqual(session.UserID()) && !session.Role().HasBlanketAuthority() {
		return errs.NewPermissionDeniedError(session.UserID().String(), "release_reservation")
	}

	if claim.IsReleased() {
		return nil
	}

	if err = claim.Release(time.Now().UTC()); err != nil {
		return err
	}

	if err = reservationRepo.Update(ctx, claim); err != nil {
		// A release that lost the race to another release is still released.
		if errors.Is(err, reservation.ErrReservationReleased) {
			return nil
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
