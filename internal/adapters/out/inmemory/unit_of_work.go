package inmemory

import (
	"context"

	"procurement/internal/core/ports"
)

// UnitOfWorkFactory creates in-memory UnitOfWork instances over one shared store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory over the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is the in-memory transaction boundary. Writes apply eagerly
// under the store lock; the compare-and-swap in UpdateStatus and the
// active-slot check in Insert are what keep concurrent operations correct,
// the same guarantees the database constraints give the postgres adapters.
type UnitOfWork struct {
	store *Store
}

// Begin is a no-op for the in-memory store.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	return nil
}

// Commit is a no-op for the in-memory store.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	return nil
}

// Rollback is a no-op for the in-memory store.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	return nil
}

// OrderRepository returns the order repository.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return NewOrderRepository(uow.store)
}

// ReservationRepository returns the reservation repository.
func (uow *UnitOfWork) ReservationRepository() ports.ReservationRepository {
	return NewReservationRepository(uow.store)
}

// HistoryStore returns the history store.
func (uow *UnitOfWork) HistoryStore() ports.HistoryStore {
	return NewHistoryStore(uow.store)
}
