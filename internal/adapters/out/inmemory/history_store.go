package inmemory

import (
	"context"
	"sort"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// HistoryStore is the in-memory ports.HistoryStore. Entries are immutable,
// so no copying is needed on reads.
type HistoryStore struct {
	store *Store
}

// NewHistoryStore creates a history store over the shared store.
func NewHistoryStore(store *Store) *HistoryStore {
	return &HistoryStore{store: store}
}

// Append writes one history entry.
func (s *HistoryStore) Append(_ context.Context, entry *order.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	key := entry.PurchaseOrderID().String()
	s.store.history[key] = append(s.store.history[key], entry)
	return nil
}

// List returns an order's entries newest-first.
func (s *HistoryStore) List(_ context.Context, purchaseOrderID kernel.UUID) ([]*order.HistoryEntry, error) {
	entries, err := s.snapshot(purchaseOrderID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ChangedAt().After(entries[j].ChangedAt())
	})
	return entries, nil
}

// ListChronological returns an order's entries oldest-first.
func (s *HistoryStore) ListChronological(
	_ context.Context, purchaseOrderID kernel.UUID,
) ([]*order.HistoryEntry, error) {
	entries, err := s.snapshot(purchaseOrderID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ChangedAt().Before(entries[j].ChangedAt())
	})
	return entries, nil
}

func (s *HistoryStore) snapshot(purchaseOrderID kernel.UUID) ([]*order.HistoryEntry, error) {
	if err := purchaseOrderID.Validate(); err != nil {
		return nil, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	stored := s.store.history[purchaseOrderID.String()]
	entries := make([]*order.HistoryEntry, len(stored))
	copy(entries, stored)
	return entries, nil
}
