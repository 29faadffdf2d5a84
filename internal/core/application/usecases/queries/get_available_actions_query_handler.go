package queries

import (
	"context"

	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
)

// GetAvailableActionsQueryHandler evaluates the authorizer against the
// current aggregate. Unlike the raw SQL handlers it loads the full domain
// aggregate, because assignment narrowing needs the order's creator, site
// manager, and supplier.
type GetAvailableActionsQueryHandler struct {
	orderRepo  ports.OrderRepository
	authorizer services.Authorizer
}

// NewGetAvailableActionsQueryHandler creates a handler for available-action queries.
func NewGetAvailableActionsQueryHandler(
	orderRepo ports.OrderRepository,
	authorizer services.Authorizer,
) GetAvailableActionsQueryHandler {
	return GetAvailableActionsQueryHandler{
		orderRepo:  orderRepo,
		authorizer: authorizer,
	}
}

// Handle returns the actions the user may perform right now. An order the
// session may not see yields an empty list, the same answer the authorizer
// gives for any other unavailable action.
func (h GetAvailableActionsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableActionsQuery,
) (GetAvailableActionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAvailableActionsQueryResponse{}, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetAvailableActionsQueryResponse{}, err
	}

	actions := h.authorizer.AvailableActions(aggregate, query.Session())
	names := make([]string, 0, len(actions))
	for _, action := range actions {
		names = append(names, action.String())
	}

	return GetAvailableActionsQueryResponse{
		Status:  aggregate.Status().String(),
		Actions: names,
	}, nil
}
