package commands

import (
	"errors"

	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/reservation"
)

var ErrReserveNumberCommandIsNotConstructed = errors.New(
	"ReserveNumberCommand must be created via NewReserveNumberCommand constructor",
)

// ReserveNumberCommand represents a request to claim one document number in
// the (company, order type, year) sequence space. The claim is provisional
// until confirmed onto an order.
type ReserveNumberCommand struct { //nolint:recvcheck //using for validation
	reservationID  kernel.UUID
	session        auth.Session
	orderType      order.OrderType
	yearPrefix     string
	sequenceNumber int

	guard kernel.ConstructorGuard
}

// NewReserveNumberCommand creates a command to reserve a document number.
// The year prefix and sequence are validated against the number format here,
// so malformed requests never reach the store.
func NewReserveNumberCommand(
	reservationID kernel.UUID,
	session auth.Session,
	orderType order.OrderType,
	yearPrefix string,
	sequenceNumber int,
) (ReserveNumberCommand, error) {
	cmd := ReserveNumberCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReservationID(reservationID),
		cmd.setSession(session),
		cmd.setOrderType(orderType),
		cmd.setNumber(yearPrefix, sequenceNumber),
	); err != nil {
		return ReserveNumberCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveNumberCommand) Validate() error {
	return c.guard.Validate(ErrReserveNumberCommandIsNotConstructed)
}

// ReservationID returns the identifier a fresh reservation will be created with.
func (c ReserveNumberCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

// Session returns the acting user's session.
func (c ReserveNumberCommand) Session() auth.Session {
	return c.session
}

// OrderType returns the order-type scope of the requested number.
func (c ReserveNumberCommand) OrderType() order.OrderType {
	return c.orderType
}

// YearPrefix returns the 2-digit year scope of the requested number.
func (c ReserveNumberCommand) YearPrefix() string {
	return c.yearPrefix
}

// SequenceNumber returns the requested sequence value.
func (c ReserveNumberCommand) SequenceNumber() int {
	return c.sequenceNumber
}

func (c *ReserveNumberCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}

	c.reservationID = reservationID
	return nil
}

func (c *ReserveNumberCommand) setSession(session auth.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	c.session = session
	return nil
}

func (c *ReserveNumberCommand) setOrderType(orderType order.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *ReserveNumberCommand) setNumber(yearPrefix string, sequenceNumber int) error {
	if _, err := reservation.FormatFullNumber(yearPrefix, sequenceNumber); err != nil {
		return err
	}

	c.yearPrefix = yearPrefix
	c.sequenceNumber = sequenceNumber
	return nil
}
