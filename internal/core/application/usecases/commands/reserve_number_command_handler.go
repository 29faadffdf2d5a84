package commands

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/reservation"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// ReserveNumberResult reports the outcome of a successful reservation.
// Reused is true when the caller already held an active reservation for the
// slot, in which case ReservationID identifies that existing claim.
type ReserveNumberResult struct {
	ReservationID kernel.UUID
	FullNumber    string
	Reused        bool
}

// ReserveNumberCommandHandler handles document-number reservations. The
// uniqueness guarantee is the store's atomic constraint-checked insert over
// active rows; the handler never sequences around it, it only classifies the
// outcome. Under concurrent claims for the same slot exactly one caller
// wins and the rest receive a NumberConflictError.
type ReserveNumberCommandHandler struct {
	uowFactory ReservationUoWFactory
}

// NewReserveNumberCommandHandler creates a handler for number reservations.
func NewReserveNumberCommandHandler(uowFactory ReservationUoWFactory) ReserveNumberCommandHandler {
	return ReserveNumberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reservation command.
//
// Re-requesting a slot the caller already holds returns the existing
// reservation with Reused set rather than an error. A slot held by a
// confirmed reservation conflicts permanently and names the owning order; a
// slot held by another user's unconfirmed reservation conflicts temporarily.
func (h *ReserveNumberCommandHandler) Handle(
	ctx context.Context, cmd ReserveNumberCommand,
) (ReserveNumberResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReserveNumberResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReserveNumberResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	session := cmd.Session()
	reservationRepo := uow.ReservationRepository()

	active, err := reservationRepo.GetActive(
		ctx, session.CompanyID(), cmd.OrderType(), cmd.YearPrefix(), cmd.SequenceNumber())
	switch {
	case err == nil:
		if active.IsHeldBy(session.UserID()) {
			return ReserveNumberResult{
				ReservationID: active.ID(),
				FullNumber:    active.FullNumber(),
				Reused:        true,
			}, nil
		}
		return ReserveNumberResult{}, conflictFor(active)
	case !errors.Is(err, errs.ErrObjectNotFound):
		return ReserveNumberResult{}, err
	}

	aggregate, err := reservation.NewNumberReservation(
		cmd.ReservationID(),
		session.CompanyID(),
		cmd.OrderType(),
		cmd.YearPrefix(),
		cmd.SequenceNumber(),
		session.UserID(),
	)
	if err != nil {
		return ReserveNumberResult{}, err
	}

	if err = reservationRepo.Insert(ctx, aggregate); err != nil {
		if errors.Is(err, ports.ErrDuplicateReservation) {
			return h.classifyInsertConflict(ctx, reservationRepo, cmd, aggregate.FullNumber())
		}
		return ReserveNumberResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReserveNumberResult{}, err
	}

	return ReserveNumberResult{
		ReservationID: aggregate.ID(),
		FullNumber:    aggregate.FullNumber(),
		Reused:        false,
	}, nil
}

// classifyInsertConflict re-reads the slot after a lost insert race to name
// the holder. A race lost to the caller's own concurrent request still ends
// with the caller holding the slot, so it reads as a reuse, not a conflict.
// If the holder released in the meantime the slot may already be free again,
// which still reads as a temporary conflict; the caller retries.
func (h *ReserveNumberCommandHandler) classifyInsertConflict(
	ctx context.Context,
	reservationRepo ports.ReservationRepository,
	cmd ReserveNumberCommand,
	fullNumber string,
) (ReserveNumberResult, error) {
	holder, err := reservationRepo.GetActive(
		ctx, cmd.Session().CompanyID(), cmd.OrderType(), cmd.YearPrefix(), cmd.SequenceNumber())
	if err != nil {
		return ReserveNumberResult{}, errs.NewNumberConflictError(fullNumber, errs.ConflictTemporarilyHeld)
	}

	if holder.IsHeldBy(cmd.Session().UserID()) {
		return ReserveNumberResult{
			ReservationID: holder.ID(),
			FullNumber:    holder.FullNumber(),
			Reused:        true,
		}, nil
	}

	return ReserveNumberResult{}, conflictFor(holder)
}

func conflictFor(holder *reservation.NumberReservation) error {
	if holder.IsConfirmed() {
		orderID := ""
		if id := holder.PurchaseOrderID(); id != nil {
			orderID = id.String()
		}
		return errs.NewPermanentNumberConflictError(holder.FullNumber(), orderID)
	}

	return errs.NewNumberConflictError(holder.FullNumber(), errs.ConflictTemporarilyHeld)
}
