package commands

import (
	"errors"

	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/kernel"
)

var ErrReleaseReservationCommandIsNotConstructed = errors.New(
	"ReleaseReservationCommand must be created via NewReleaseReservationCommand constructor",
)

// ReleaseReservationCommand represents a request to free a reserved document
// number back to the pool.
type ReleaseReservationCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID
	session       auth.Session

	guard kernel.ConstructorGuard
}

// NewReleaseReservationCommand creates a command to release the given reservation.
func NewReleaseReservationCommand(
	reservationID kernel.UUID,
	session auth.Session,
) (ReleaseReservationCommand, error) {
	cmd := ReleaseReservationCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReservationID(reservationID),
		cmd.setSession(session),
	); err != nil {
		return ReleaseReservationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseReservationCommand) Validate() error {
	return c.guard.Validate(ErrReleaseReservationCommandIsNotConstructed)
}

// ReservationID returns the reservation to release.
func (c ReleaseReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

// Session returns the acting user's session.
func (c ReleaseReservationCommand) Session() auth.Session {
	return c.session
}

func (c *ReleaseReservationCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}

	c.reservationID = reservationID
	return nil
}

func (c *ReleaseReservationCommand) setSession(session auth.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	c.session = session
	return nil
}
