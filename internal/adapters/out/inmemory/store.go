// Package inmemory provides mutex-guarded in-memory implementations of the
// persistence ports. They keep the same contract as the postgres adapters,
// including the conditional status write and the active-slot uniqueness
// check, so command handlers can be exercised without a database.
package inmemory

import (
	"sync"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/reservation"
)

// Store is the shared backing state. All repositories hand out deep copies,
// so a caller mutating a loaded aggregate changes nothing until a write
// method commits it back under the store lock.
type Store struct {
	mu           sync.Mutex
	orders       map[string]*order.PurchaseOrder
	reservations map[string]*reservation.NumberReservation
	history      map[string][]*order.HistoryEntry
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		orders:       make(map[string]*order.PurchaseOrder),
		reservations: make(map[string]*reservation.NumberReservation),
		history:      make(map[string][]*order.HistoryEntry),
	}
}

func cloneOrder(po *order.PurchaseOrder) (*order.PurchaseOrder, error) {
	return order.RestorePurchaseOrder(
		po.ID(), po.CompanyID(),
		po.OrderType(), po.Status(),
		po.CreatorID(), po.SiteManagerID(),
		po.OrgUnit(), po.Project(), po.Supplier(),
		po.OrderNumber(),
		po.Milestones(),
		po.Items(),
		po.CreatedAt(), po.UpdatedAt(),
	)
}

func cloneReservation(r *reservation.NumberReservation) (*reservation.NumberReservation, error) {
	return reservation.RestoreNumberReservation(
		r.ID(), r.CompanyID(),
		r.OrderType(),
		r.YearPrefix(),
		r.SequenceNumber(),
		r.ReservedBy(),
		r.ReservedAt(),
		r.ConfirmedAt(), r.ReleasedAt(),
		r.PurchaseOrderID(),
	)
}
