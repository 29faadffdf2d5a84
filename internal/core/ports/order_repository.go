// Package ports defines the contracts between the domain core and
// infrastructure: repositories, the history store, the stock-lookup
// collaborator, and the unit of work. Adapters implement them; command and
// query handlers consume them.
package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// OrderFilters narrows ListByCompany results. Nil fields match everything.
type OrderFilters struct {
	Status    *order.Status
	OrderType *order.OrderType
}

// OrderRepository is the persistence contract for purchase-order aggregates.
//
// Writes report distinguishable outcomes: a conditional update that loses a
// race fails with a StaleStateError, a missing aggregate with an
// ObjectNotFoundError. Neither leaves a partial write behind.
type OrderRepository interface {
	// Add persists a new order aggregate. The order must be valid and not
	// already exist.
	Add(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.PurchaseOrder, error)

	// UpdateStatus persists the aggregate's current state (status,
	// milestones, supplier assignment, updatedAt) conditioned on the stored
	// status still equaling expectedFromStatus. When a concurrent transition
	// already landed, it fails with a StaleStateError and writes nothing;
	// the caller must re-fetch and retry.
	UpdateStatus(ctx context.Context, aggregate *order.PurchaseOrder, expectedFromStatus order.Status) error

	// UpdateOrderNumber attaches the confirmed document number to the order.
	// Fails if the order already carries a number.
	UpdateOrderNumber(ctx context.Context, id kernel.UUID, fullNumber string) error

	// ListByCompany retrieves a company's orders, optionally narrowed by
	// status and order type.
	ListByCompany(ctx context.Context, companyID kernel.UUID, filters OrderFilters) ([]*order.PurchaseOrder, error)
}
