package historyrepo

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormHistoryStore implements ports.HistoryStore using GORM.
type GormHistoryStore struct {
	db *gorm.DB
}

// NewGormHistoryStore creates a new GORM history store.
func NewGormHistoryStore(db *gorm.DB) *GormHistoryStore {
	return &GormHistoryStore{db: db}
}

// Append writes one immutable history entry.
func (s *GormHistoryStore) Append(ctx context.Context, entry *order.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return s.db.WithContext(ctx).Create(&dto).Error
}

// List returns an order's entries newest-first.
func (s *GormHistoryStore) List(
	ctx context.Context, purchaseOrderID kernel.UUID,
) ([]*order.HistoryEntry, error) {
	return s.list(ctx, purchaseOrderID, "changed_at DESC, id DESC")
}

// ListChronological returns an order's entries oldest-first.
func (s *GormHistoryStore) ListChronological(
	ctx context.Context, purchaseOrderID kernel.UUID,
) ([]*order.HistoryEntry, error) {
	return s.list(ctx, purchaseOrderID, "changed_at ASC, id ASC")
}

func (s *GormHistoryStore) list(
	ctx context.Context, purchaseOrderID kernel.UUID, ordering string,
) ([]*order.HistoryEntry, error) {
	if err := purchaseOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryEntryDTO
	err := s.db.WithContext(ctx).
		Where("purchase_order_id = ?", purchaseOrderID.Bytes()).
		Order(ordering).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*order.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
