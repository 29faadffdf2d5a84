// Package queries contains read-side operations in the CQRS architecture.
// Query handlers read the database directly with raw SQL and return read
// models; they never mutate state.
package queries

import (
	"errors"

	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/reservation"
)

var ErrGetNextNumberQueryIsNotConstructed = errors.New(
	"GetNextNumberQuery must be created via NewGetNextNumberQuery constructor",
)

// GetNextNumberQuery asks for the next free sequence value in the
// (company, order type, year) number space. The answer is advisory: it is a
// suggestion for the reservation form, and only a reservation actually
// claims the slot.
type GetNextNumberQuery struct {
	session    auth.Session
	orderType  order.OrderType
	yearPrefix string

	guard kernel.ConstructorGuard
}

// NewGetNextNumberQuery creates a query for the next available document number.
func NewGetNextNumberQuery(
	session auth.Session,
	orderType order.OrderType,
	yearPrefix string,
) (GetNextNumberQuery, error) {
	if err := errors.Join(
		session.Validate(),
		orderType.Validate(),
		reservation.ValidateYearPrefix(yearPrefix),
	); err != nil {
		return GetNextNumberQuery{}, err
	}

	return GetNextNumberQuery{
		session:    session,
		orderType:  orderType,
		yearPrefix: yearPrefix,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNextNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetNextNumberQueryIsNotConstructed)
}

// Session returns the acting user's session.
func (q GetNextNumberQuery) Session() auth.Session {
	return q.session
}

// OrderType returns the order-type scope of the number space.
func (q GetNextNumberQuery) OrderType() order.OrderType {
	return q.orderType
}

// YearPrefix returns the 2-digit year scope of the number space.
func (q GetNextNumberQuery) YearPrefix() string {
	return q.yearPrefix
}

// GetNextNumberQueryResponse is the advisory next document number.
type GetNextNumberQueryResponse struct {
	YearPrefix     string
	SequenceNumber int
	FullNumber     string
}
