package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the session company's orders, optionally
// narrowed by status and order type. Nil filters match everything.
type ListOrdersQuery struct {
	session   auth.Session
	status    *order.Status
	orderType *order.OrderType

	guard kernel.ConstructorGuard
}

// NewListOrdersQuery creates a query listing the company's orders.
func NewListOrdersQuery(
	session auth.Session,
	status *order.Status,
	orderType *order.OrderType,
) (ListOrdersQuery, error) {
	if err := session.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if orderType != nil {
		if err := orderType.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		session:   session,
		status:    status,
		orderType: orderType,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Session returns the acting user's session.
func (q ListOrdersQuery) Session() auth.Session {
	return q.session
}

// Status returns the status filter, nil when not narrowed.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderType returns the order-type filter, nil when not narrowed.
func (q ListOrdersQuery) OrderType() *order.OrderType {
	return q.orderType
}

// ListOrdersQueryResponse is one order summary row.
type ListOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderNumber *string
	Status      string
	OrderType   string
	CreatorID   kernel.UUID
	CreatedAt   time.Time
}
