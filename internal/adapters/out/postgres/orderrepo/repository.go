package orderrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new purchase order, including its item rows.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a purchase order by ID with its items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.PurchaseOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus persists the aggregate's mutable state with an optimistic
// concurrency check. The WHERE clause carries the caller's expected status,
// so a row a concurrent transition already moved matches nothing and the
// write reports StaleStateError instead of silently overwriting.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context, aggregate *order.PurchaseOrder, expectedFromStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedFromStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedFromStatus.String()).
		Updates(map[string]any{
			"status":                      dto.Status,
			"supplier_id":                 dto.SupplierID,
			"submitted_at":                dto.SubmittedAt,
			"approved_by_site_manager_at": dto.ApprovedBySiteManagerAt,
			"approved_by_management_at":   dto.ApprovedByManagementAt,
			"submitted_to_supplier_at":    dto.SubmittedToSupplierAt,
			"accepted_by_supplier_at":     dto.AcceptedBySupplierAt,
			"delivered_at":                dto.DeliveredAt,
			"updated_at":                  dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewStaleStateError(aggregate.ID().String(), expectedFromStatus.String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateOrderNumber attaches the confirmed document number. The WHERE clause
// requires the column to still be empty; a number never changes once set.
func (r *GormOrderRepository) UpdateOrderNumber(ctx context.Context, id kernel.UUID, fullNumber string) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND order_number IS NULL", id.Bytes()).
		Update("order_number", fullNumber)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		return order.ErrOrderNumberAlreadyAssigned
	}

	return nil
}

// ListByCompany retrieves a company's orders, optionally narrowed by status
// and order type, newest first.
func (r *GormOrderRepository) ListByCompany(
	ctx context.Context, companyID kernel.UUID, filters ports.OrderFilters,
) ([]*order.PurchaseOrder, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Preload("Items").Where("company_id = ?", companyID.Bytes())
	if filters.Status != nil {
		query = query.Where("status = ?", filters.Status.String())
	}
	if filters.OrderType != nil {
		query = query.Where("order_type = ?", filters.OrderType.String())
	}

	var dtos []OrderDTO
	if err := query.Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.PurchaseOrder, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
