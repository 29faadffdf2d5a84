package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/kernel"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves an order's transition log. Chronological
// asks for oldest-first ordering; the default is newest-first for display.
type GetOrderHistoryQuery struct {
	orderID       kernel.UUID
	session       auth.Session
	chronological bool

	guard kernel.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for the given order's history.
func NewGetOrderHistoryQuery(
	orderID kernel.UUID,
	session auth.Session,
	chronological bool,
) (GetOrderHistoryQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		session.Validate(),
	); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		orderID:       orderID,
		session:       session,
		chronological: chronological,
		guard:         kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose history is requested.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Session returns the acting user's session.
func (q GetOrderHistoryQuery) Session() auth.Session {
	return q.session
}

// Chronological reports whether oldest-first ordering was requested.
func (q GetOrderHistoryQuery) Chronological() bool {
	return q.chronological
}

// GetOrderHistoryQueryResponse is one transition of the order's log.
type GetOrderHistoryQueryResponse struct {
	ID         kernel.UUID
	FromStatus string
	ToStatus   string
	Action     string
	ChangedBy  kernel.UUID
	ChangedAt  time.Time
	Notes      *string
}
