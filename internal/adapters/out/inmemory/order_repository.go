package inmemory

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// OrderRepository is the in-memory ports.OrderRepository.
type OrderRepository struct {
	store *Store
}

// NewOrderRepository creates an order repository over the shared store.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Add persists a new order aggregate.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snapshot, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.store.orders[aggregate.ID().String()] = snapshot
	return nil
}

// Get returns a deep copy of the stored aggregate.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.PurchaseOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return cloneOrder(stored)
}

// UpdateStatus applies the compare-and-swap write: the stored status must
// still equal expectedFromStatus, checked and swapped under one lock hold.
// Under two concurrent transitions exactly one caller wins.
func (r *OrderRepository) UpdateStatus(
	_ context.Context, aggregate *order.PurchaseOrder, expectedFromStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedFromStatus.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.orders[aggregate.ID().String()]
	if !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	if stored.Status() != expectedFromStatus {
		return errs.NewStaleStateError(aggregate.ID().String(), expectedFromStatus.String())
	}

	snapshot, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.store.orders[aggregate.ID().String()] = snapshot
	return nil
}

// UpdateOrderNumber attaches the document number if the stored order has none.
func (r *OrderRepository) UpdateOrderNumber(_ context.Context, id kernel.UUID, fullNumber string) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.orders[id.String()]
	if !ok {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return stored.AssignNumber(fullNumber)
}

// ListByCompany returns deep copies of the company's orders.
func (r *OrderRepository) ListByCompany(
	_ context.Context, companyID kernel.UUID, filters ports.OrderFilters,
) ([]*order.PurchaseOrder, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	orders := make([]*order.PurchaseOrder, 0)
	for _, stored := range r.store.orders {
		if !stored.CompanyID().IsEqual(companyID) {
			continue
		}
		if filters.Status != nil && stored.Status() != *filters.Status {
			continue
		}
		if filters.OrderType != nil && stored.OrderType() != *filters.OrderType {
			continue
		}

		snapshot, err := cloneOrder(stored)
		if err != nil {
			return nil, err
		}
		orders = append(orders, snapshot)
	}

	return orders, nil
}
