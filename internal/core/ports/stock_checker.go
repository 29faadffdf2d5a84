package ports

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// StockChecker is the external stock-lookup collaborator consulted when an
// approved order reaches the stock availability check. This core does not
// track stock levels itself.
type StockChecker interface {
	// IsStockAvailable reports whether the order's items can be served from
	// internal stock.
	IsStockAvailable(ctx context.Context, aggregate *order.PurchaseOrder) (bool, error)
}
