// Package reservationrepo persists document-number reservations. Slot
// uniqueness is enforced by a partial unique index over active rows, so the
// database, not application code, decides which of two concurrent claims wins.
package reservationrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/reservation"

	"github.com/google/uuid"
)

// ReservationDTO represents the database structure for number reservations.
// The idx_reservations_active_slot index is partial (released_at IS NULL):
// released rows fall out of it, which is what makes a released number
// reusable while an active or confirmed one stays claimed.
type ReservationDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_reservations_active_slot,where:released_at IS NULL"`
	OrderType       string     `gorm:"type:varchar(16);uniqueIndex:idx_reservations_active_slot,where:released_at IS NULL"`
	YearPrefix      string     `gorm:"type:char(2);uniqueIndex:idx_reservations_active_slot,where:released_at IS NULL"`
	SequenceNumber  int        `gorm:"type:integer;uniqueIndex:idx_reservations_active_slot,where:released_at IS NULL"`
	FullNumber      string     `gorm:"type:varchar(8)"`
	ReservedBy      uuid.UUID  `gorm:"type:uuid;index"`
	ReservedAt      time.Time  `gorm:"index"`
	ConfirmedAt     *time.Time
	ReleasedAt      *time.Time
	PurchaseOrderID *uuid.UUID `gorm:"type:uuid"`
}

// TableName overrides GORM's default naming to use "number_reservations".
func (ReservationDTO) TableName() string {
	return "number_reservations"
}

func fromDomain(aggregate *reservation.NumberReservation) ReservationDTO {
	var purchaseOrderID *uuid.UUID
	if id := aggregate.PurchaseOrderID(); id != nil {
		raw := id.Bytes()
		purchaseOrderID = &raw
	}

	return ReservationDTO{
		ID:              aggregate.ID().Bytes(),
		CompanyID:       aggregate.CompanyID().Bytes(),
		OrderType:       aggregate.OrderType().String(),
		YearPrefix:      aggregate.YearPrefix(),
		SequenceNumber:  aggregate.SequenceNumber(),
		FullNumber:      aggregate.FullNumber(),
		ReservedBy:      aggregate.ReservedBy().Bytes(),
		ReservedAt:      aggregate.ReservedAt(),
		ConfirmedAt:     aggregate.ConfirmedAt(),
		ReleasedAt:      aggregate.ReleasedAt(),
		PurchaseOrderID: purchaseOrderID,
	}
}

func toDomain(dto ReservationDTO) (*reservation.NumberReservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}
	reservedBy, err := kernel.UUIDFromBytes(dto.ReservedBy[:])
	if err != nil {
		return nil, err
	}

	orderType, err := order.OrderTypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	var purchaseOrderID *kernel.UUID
	if dto.PurchaseOrderID != nil {
		poID, poErr := kernel.UUIDFromBytes((*dto.PurchaseOrderID)[:])
		if poErr != nil {
			return nil, poErr
		}
		purchaseOrderID = &poID
	}

	return reservation.RestoreNumberReservation(
		id, companyID,
		orderType,
		dto.YearPrefix,
		dto.SequenceNumber,
		reservedBy,
		dto.ReservedAt,
		dto.ConfirmedAt, dto.ReleasedAt,
		purchaseOrderID,
	)
}
