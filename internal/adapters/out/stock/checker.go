// Package stock provides the warehouse availability adapter used when an
// internal order passes site approval. The real warehouse system is outside
// this service; deployments that lack one run with a fixed answer.
package stock

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// StaticChecker reports the same availability for every order. It stands in
// for a warehouse integration behind the ports.StockChecker interface.
type StaticChecker struct {
	available bool
}

func NewStaticChecker(available bool) *StaticChecker {
	return &StaticChecker{available: available}
}

func (c *StaticChecker) IsStockAvailable(_ context.Context, _ *order.PurchaseOrder) (bool, error) {
	return c.available, nil
}
