package commands

import (
	"context"
	"time"

	"procurement/internal/pkg/errs"
)

// ConfirmReservationResult reports the number that is now attached to the order.
type ConfirmReservationResult struct {
	FullNumber string
}

// ConfirmReservationCommandHandler handles reservation confirmation: the
// reservation's confirmed timestamp and the order's number column change in
// one transaction, so a number is never attached to an order without its
// reservation being marked confirmed, or vice versa.
type ConfirmReservationCommandHandler struct {
	uowFactory ConfirmUoWFactory
}

// NewConfirmReservationCommandHandler creates a handler for reservation confirmation.
func NewConfirmReservationCommandHandler(uowFactory ConfirmUoWFactory) ConfirmReservationCommandHandler {
	return ConfirmReservationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command. Only the reservation's holder
// (or a role with blanket authority) may confirm it, the order must belong
// to the session's company, and both the reservation and the order must not
// already carry a number. Confirmation is valid exactly once.
func (h *ConfirmReservationCommandHandler) Handle(
	ctx context.Context, cmd ConfirmReservationCommand,
) (ConfirmReservationResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmReservationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmReservationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	session := cmd.Session()

	reservationRepo := uow.ReservationRepository()
	claim, err := reservationRepo.Get(ctx, cmd.ReservationID())
	if err != nil {
		return ConfirmReservationResult{}, err
	}

	if !claim.CompanyID().IsEqual(session.CompanyID()) {
		return ConfirmReservationResult{}, errs.NewPermissionDeniedError(
			session.UserID().String(), "confirm_reservation")
	}
	if !claim.ReservedBy().IsEqual(session.UserID()) && !session.Role().HasBlanketAuthority() {
		return ConfirmReservationResult{}, errs.NewPermissionDeniedError(
			session.UserID().String(), "confirm_reservation")
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ConfirmReservationResult{}, err
	}

	if !aggregate.CompanyID().IsEqual(session.CompanyID()) {
		return ConfirmReservationResult{}, errs.NewPermissionDeniedError(
			session.UserID().String(), "confirm_reservation")
	}

	now := time.Now().UTC()
	if err = claim.Confirm(aggregate.ID(), now); err != nil {
		return ConfirmReservationResult{}, err
	}
	if err = aggregate.AssignNumber(claim.FullNumber()); err != nil {
		return ConfirmReservationResult{}, err
	}

	if err = reservationRepo.Update(ctx, claim); err != nil {
		return ConfirmReservationResult{}, err
	}
	if err = orderRepo.UpdateOrderNumber(ctx, aggregate.ID(), claim.FullNumber()); err != nil {
		return ConfirmReservationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmReservationResult{}, err
	}

	return ConfirmReservationResult{FullNumber: claim.FullNumber()}, nil
}
