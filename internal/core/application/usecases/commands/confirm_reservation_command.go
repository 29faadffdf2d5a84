package commands

import (
	"errors"

	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/kernel"
)

var ErrConfirmReservationCommandIsNotConstructed = errors.New(
	"ConfirmReservationCommand must be created via NewConfirmReservationCommand constructor",
)

// ConfirmReservationCommand represents a request to attach a reserved
// document number to a purchase order, making the claim permanent.
type ConfirmReservationCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID
	orderID       kernel.UUID
	session       auth.Session

	guard kernel.ConstructorGuard
}

// NewConfirmReservationCommand creates a command to confirm a reservation
// onto the given order.
func NewConfirmReservationCommand(
	reservationID, orderID kernel.UUID,
	session auth.Session,
) (ConfirmReservationCommand, error) {
	cmd := ConfirmReservationCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReservationID(reservationID),
		cmd.setOrderID(orderID),
		cmd.setSession(session),
	); err != nil {
		return ConfirmReservationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReservationCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReservationCommandIsNotConstructed)
}

// ReservationID returns the reservation to confirm.
func (c ConfirmReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

// OrderID returns the order the number attaches to.
func (c ConfirmReservationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Session returns the acting user's session.
func (c ConfirmReservationCommand) Session() auth.Session {
	return c.session
}

func (c *ConfirmReservationCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}

	c.reservationID = reservationID
	return nil
}

func (c *ConfirmReservationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmReservationCommand) setSession(session auth.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	c.session = session
	return nil
}
