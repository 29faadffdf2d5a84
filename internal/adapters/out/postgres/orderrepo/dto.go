// Package orderrepo provides data transfer objects and mapping functions for
// purchase-order persistence. It implements the repository pattern for the
// PurchaseOrder aggregate, converting between domain entities and their
// relational representation.
package orderrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting purchase orders.
// Status and order type are stored as their string forms so raw read-side
// queries stay legible.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID  `gorm:"type:uuid;index"`
	OrderType     string     `gorm:"type:varchar(16)"`
	Status        string     `gorm:"type:varchar(32);index"`
	OrgUnitID     *uuid.UUID `gorm:"type:uuid"`
	ProjectID     *uuid.UUID `gorm:"type:uuid"`
	SupplierID    *uuid.UUID `gorm:"type:uuid"`
	CreatorID     uuid.UUID  `gorm:"type:uuid;index"`
	SiteManagerID uuid.UUID  `gorm:"type:uuid;index"`
	OrderNumber   *string    `gorm:"type:varchar(8)"`

	SubmittedAt             *time.Time
	ApprovedBySiteManagerAt *time.Time
	ApprovedByManagementAt  *time.Time
	SubmittedToSupplierAt   *time.Time
	AcceptedBySupplierAt    *time.Time
	DeliveredAt             *time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "purchase_orders".
func (OrderDTO) TableName() string {
	return "purchase_orders"
}

// ItemDTO represents one order line in its own table.
type ItemDTO struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	Name      string          `gorm:"type:varchar(255)"`
	Quantity  int             `gorm:"type:integer"`
	Unit      string          `gorm:"type:varchar(32)"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName overrides GORM's default naming to use "purchase_order_items".
func (ItemDTO) TableName() string {
	return "purchase_order_items"
}

func fromDomain(aggregate *order.PurchaseOrder) OrderDTO {
	milestones := aggregate.Milestones()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Unit:      item.Unit(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CompanyID:     aggregate.CompanyID().Bytes(),
		OrderType:     aggregate.OrderType().String(),
		Status:        aggregate.Status().String(),
		OrgUnitID:     optionalUUID(aggregate.OrgUnit()),
		ProjectID:     optionalUUID(aggregate.Project()),
		SupplierID:    optionalUUID(aggregate.Supplier()),
		CreatorID:     aggregate.CreatorID().Bytes(),
		SiteManagerID: aggregate.SiteManagerID().Bytes(),
		OrderNumber:   aggregate.OrderNumber(),

		SubmittedAt:             milestones.SubmittedAt,
		ApprovedBySiteManagerAt: milestones.ApprovedBySiteManagerAt,
		ApprovedByManagementAt:  milestones.ApprovedByManagementAt,
		SubmittedToSupplierAt:   milestones.SubmittedToSupplierAt,
		AcceptedBySupplierAt:    milestones.AcceptedBySupplierAt,
		DeliveredAt:             milestones.DeliveredAt,

		Items: items,

		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.PurchaseOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}
	creatorID, err := kernel.UUIDFromBytes(dto.CreatorID[:])
	if err != nil {
		return nil, err
	}
	siteManagerID, err := kernel.UUIDFromBytes(dto.SiteManagerID[:])
	if err != nil {
		return nil, err
	}

	orgUnitID, err := optionalKernelUUID(dto.OrgUnitID)
	if err != nil {
		return nil, err
	}
	projectID, err := optionalKernelUUID(dto.ProjectID)
	if err != nil {
		return nil, err
	}
	supplierID, err := optionalKernelUUID(dto.SupplierID)
	if err != nil {
		return nil, err
	}

	orderType, err := order.OrderTypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Quantity, itemDTO.Unit, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestorePurchaseOrder(
		id, companyID,
		orderType, status,
		creatorID, siteManagerID,
		orgUnitID, projectID, supplierID,
		dto.OrderNumber,
		order.Milestones{
			SubmittedAt:             dto.SubmittedAt,
			ApprovedBySiteManagerAt: dto.ApprovedBySiteManagerAt,
			ApprovedByManagementAt:  dto.ApprovedByManagementAt,
			SubmittedToSupplierAt:   dto.SubmittedToSupplierAt,
			AcceptedBySupplierAt:    dto.AcceptedBySupplierAt,
			DeliveredAt:             dto.DeliveredAt,
		},
		items,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
