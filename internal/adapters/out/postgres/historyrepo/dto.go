// Package historyrepo persists the order transition log. The table is
// append-only: rows are inserted on commit and never updated or deleted.
package historyrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// HistoryEntryDTO represents one row of the transition log.
type HistoryEntryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PurchaseOrderID uuid.UUID `gorm:"type:uuid;index"`
	FromStatus      string    `gorm:"type:varchar(32)"`
	ToStatus        string    `gorm:"type:varchar(32)"`
	Action          string    `gorm:"type:varchar(32)"`
	ChangedBy       uuid.UUID `gorm:"type:uuid"`
	ChangedAt       time.Time `gorm:"index"`
	Notes           *string   `gorm:"type:text"`
}

// TableName overrides GORM's default naming to use "order_history".
func (HistoryEntryDTO) TableName() string {
	return "order_history"
}

func fromDomain(entry *order.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:              entry.ID().Bytes(),
		PurchaseOrderID: entry.PurchaseOrderID().Bytes(),
		FromStatus:      entry.FromStatus().String(),
		ToStatus:        entry.ToStatus().String(),
		Action:          entry.Action().String(),
		ChangedBy:       entry.ChangedBy().Bytes(),
		ChangedAt:       entry.ChangedAt(),
		Notes:           entry.Notes(),
	}
}

func toDomain(dto HistoryEntryDTO) (*order.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	purchaseOrderID, err := kernel.UUIDFromBytes(dto.PurchaseOrderID[:])
	if err != nil {
		return nil, err
	}
	changedBy, err := kernel.UUIDFromBytes(dto.ChangedBy[:])
	if err != nil {
		return nil, err
	}

	fromStatus, err := order.StatusFromString(dto.FromStatus)
	if err != nil {
		return nil, err
	}
	toStatus, err := order.StatusFromString(dto.ToStatus)
	if err != nil {
		return nil, err
	}
	action, err := order.ActionFromString(dto.Action)
	if err != nil {
		return nil, err
	}

	return order.RestoreHistoryEntry(
		id, purchaseOrderID,
		fromStatus, toStatus,
		action,
		changedBy,
		dto.ChangedAt,
		dto.Notes,
	)
}
