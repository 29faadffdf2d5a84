package queries

import (
	"errors"

	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/kernel"
)

var ErrGetAvailableActionsQueryIsNotConstructed = errors.New(
	"GetAvailableActionsQuery must be created via NewGetAvailableActionsQuery constructor",
)

// GetAvailableActionsQuery asks which workflow actions the session's user
// may currently perform on an order. The answer drives the UI's action
// buttons and is computed by the same authorizer the write side enforces
// with, so a listed action is exactly an accepted action.
type GetAvailableActionsQuery struct {
	orderID kernel.UUID
	session auth.Session

	guard kernel.ConstructorGuard
}

// NewGetAvailableActionsQuery creates a query for the user's available actions.
func NewGetAvailableActionsQuery(
	orderID kernel.UUID,
	session auth.Session,
) (GetAvailableActionsQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		session.Validate(),
	); err != nil {
		return GetAvailableActionsQuery{}, err
	}

	return GetAvailableActionsQuery{
		orderID: orderID,
		session: session,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableActionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableActionsQueryIsNotConstructed)
}

// OrderID returns the order the actions apply to.
func (q GetAvailableActionsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Session returns the acting user's session.
func (q GetAvailableActionsQuery) Session() auth.Session {
	return q.session
}

// GetAvailableActionsQueryResponse lists the permitted actions by name.
type GetAvailableActionsQueryResponse struct {
	Status  string
	Actions []string
}
