package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// HistoryStore is the append-only transition log for purchase orders.
// No updates or deletes are ever issued against history rows.
type HistoryStore interface {
	// Append writes one immutable history entry.
	Append(ctx context.Context, entry *order.HistoryEntry) error

	// List returns an order's entries newest-first, for display.
	List(ctx context.Context, purchaseOrderID kernel.UUID) ([]*order.HistoryEntry, error)

	// ListChronological returns an order's entries oldest-first, for
	// lifecycle reconstruction.
	ListChronological(ctx context.Context, purchaseOrderID kernel.UUID) ([]*order.HistoryEntry, error)
}
