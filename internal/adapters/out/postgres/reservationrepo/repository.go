package reservationrepo

import (
	"context"
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/reservation"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReservationRepository implements ports.ReservationRepository using GORM.
// Requires the connection to be opened with TranslateError so unique
// violations surface as gorm.ErrDuplicatedKey.
type GormReservationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReservationRepository creates a new GORM reservation repository.
func NewGormReservationRepository(db *gorm.DB, tracker aggregateTracker) *GormReservationRepository {
	return &GormReservationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Insert atomically claims the reservation's slot. The partial unique index
// rejects a second active row for the same slot; that rejection is the
// entire concurrency story, there is no read-check-write window.
func (r *GormReservationRepository) Insert(ctx context.Context, aggregate *reservation.NumberReservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrDuplicateReservation
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a reservation by ID.
func (r *GormReservationRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*reservation.NumberReservation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReservationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reservation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActive retrieves the unreleased reservation holding the given slot.
func (r *GormReservationRepository) GetActive(
	ctx context.Context,
	companyID kernel.UUID,
	orderType order.OrderType,
	yearPrefix string,
	sequenceNumber int,
) (*reservation.NumberReservation, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dto ReservationDTO
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND order_type = ? AND year_prefix = ? AND sequence_number = ? AND released_at IS NULL",
			companyID.Bytes(), orderType.String(), yearPrefix, sequenceNumber).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reservation", nil)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists confirm/release changes to an existing reservation. Both
// transitions start from an active row, so the WHERE clause requires the
// stored row to still be unconfirmed and unreleased; a row a concurrent
// confirm or release already moved matches nothing and the caller's stale
// snapshot is rejected instead of overwriting the committed state.
func (r *GormReservationRepository) Update(ctx context.Context, aggregate *reservation.NumberReservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReservationDTO{}).
		Where("id = ? AND confirmed_at IS NULL AND released_at IS NULL", dto.ID).
		Updates(map[string]any{
			"confirmed_at":      dto.ConfirmedAt,
			"released_at":       dto.ReleasedAt,
			"purchase_order_id": dto.PurchaseOrderID,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var stored ReservationDTO
		err := r.db.WithContext(ctx).First(&stored, "id = ?", dto.ID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("reservation", aggregate.ID().String())
			}
			return err
		}
		if stored.ConfirmedAt != nil {
			return reservation.ErrReservationAlreadyConfirmed
		}
		return reservation.ErrReservationReleased
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ListStale retrieves unconfirmed, unreleased reservations held since before
// the cutoff, oldest first.
func (r *GormReservationRepository) ListStale(
	ctx context.Context, before time.Time,
) ([]*reservation.NumberReservation, error) {
	var dtos []ReservationDTO
	err := r.db.WithContext(ctx).
		Where("confirmed_at IS NULL AND released_at IS NULL AND reserved_at < ?", before).
		Order("reserved_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	reservations := make([]*reservation.NumberReservation, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		reservations = append(reservations, aggregate)
	}

	return reservations, nil
}
