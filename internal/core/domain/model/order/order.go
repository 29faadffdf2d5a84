package order

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var (
	// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder
	// instance was not created through NewPurchaseOrder or RestorePurchaseOrder.
	ErrPurchaseOrderIsNotConstructed = errors.New(
		"PurchaseOrder must be created via NewPurchaseOrder constructor")

	// ErrSupplierAlreadyAssigned is returned when attempting to assign a
	// supplier to an order that already has one.
	ErrSupplierAlreadyAssigned = errors.New("supplier is already assigned")

	// ErrOrderNumberAlreadyAssigned is returned when attempting to assign a
	// document number to an order that already has one.
	ErrOrderNumberAlreadyAssigned = errors.New("order number is already assigned")
)

// Milestones holds the per-status timestamps stamped as the order moves
// through its lifecycle. A nil pointer means the milestone was never reached.
type Milestones struct {
	SubmittedAt             *time.Time
	ApprovedBySiteManagerAt *time.Time
	ApprovedByManagementAt  *time.Time
	SubmittedToSupplierAt   *time.Time
	AcceptedBySupplierAt    *time.Time
	DeliveredAt             *time.Time
}

// PurchaseOrder is the aggregate root for one purchase order. It is created
// in draft status, owned by its creator until a terminal status, and mutated
// only through workflow transitions.
//
// Structural invariants:
//   - Internal orders carry an org unit and no project; external orders
//     carry a project and no org unit.
//   - A supplier attaches only once the order is routed externally.
//   - The document number, once assigned, never changes.
//   - Items are validated line by line; there is always at least one.
type PurchaseOrder struct {
	id            kernel.UUID
	companyID     kernel.UUID
	orderType     OrderType
	status        Status
	orgUnitID     *kernel.UUID
	projectID     *kernel.UUID
	supplierID    *kernel.UUID
	creatorID     kernel.UUID
	siteManagerID kernel.UUID
	orderNumber   *string
	milestones    Milestones
	items         []Item
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewPurchaseOrder creates a new draft order with validation. Exactly one of
// orgUnitID (internal) or projectID (external) must be set, matching the
// order type.
func NewPurchaseOrder(
	id, companyID kernel.UUID,
	orderType OrderType,
	creatorID, siteManagerID kernel.UUID,
	orgUnitID, projectID *kernel.UUID,
	items []Item,
) (*PurchaseOrder, error) {
	now := time.Now().UTC()
	po := &PurchaseOrder{
		status:        StatusDraft,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		po.setID(id),
		po.setCompanyID(companyID),
		po.setOrderType(orderType),
		po.setCreatorID(creatorID),
		po.setSiteManagerID(siteManagerID),
		po.setLinkedEntity(orderType, orgUnitID, projectID),
		po.setItems(items),
	); err != nil {
		return nil, err
	}

	return po, nil
}

// RestorePurchaseOrder reconstructs an order from persistence, including its
// current status, supplier assignment, document number, and milestones.
func RestorePurchaseOrder(
	id, companyID kernel.UUID,
	orderType OrderType,
	status Status,
	creatorID, siteManagerID kernel.UUID,
	orgUnitID, projectID, supplierID *kernel.UUID,
	orderNumber *string,
	milestones Milestones,
	items []Item,
	createdAt, updatedAt time.Time,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		milestones:    milestones,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		po.setID(id),
		po.setCompanyID(companyID),
		po.setOrderType(orderType),
		po.setStatus(status),
		po.setCreatorID(creatorID),
		po.setSiteManagerID(siteManagerID),
		po.setLinkedEntity(orderType, orgUnitID, projectID),
		po.setItems(items),
	); err != nil {
		return nil, err
	}

	if supplierID != nil {
		if err := supplierID.Validate(); err != nil {
			return nil, err
		}
		po.supplierID = supplierID
	}

	if orderNumber != nil {
		po.orderNumber = orderNumber
	}

	return po, nil
}

// Validate ensures the order was created through a constructor.
func (o *PurchaseOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrPurchaseOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *PurchaseOrder) ID() kernel.UUID {
	return o.id
}

// CompanyID returns the owning company's identifier.
func (o *PurchaseOrder) CompanyID() kernel.UUID {
	return o.companyID
}

// OrderType returns whether this is an internal or external order.
func (o *PurchaseOrder) OrderType() OrderType {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *PurchaseOrder) Status() Status {
	return o.status
}

// OrgUnit returns the organizational unit for internal orders, nil otherwise.
func (o *PurchaseOrder) OrgUnit() *kernel.UUID {
	return o.orgUnitID
}

// Project returns the project for external orders, nil otherwise.
func (o *PurchaseOrder) Project() *kernel.UUID {
	return o.projectID
}

// Supplier returns the assigned supplier, nil until the order is routed externally.
func (o *PurchaseOrder) Supplier() *kernel.UUID {
	return o.supplierID
}

// CreatorID returns the identifier of the user who created the order.
func (o *PurchaseOrder) CreatorID() kernel.UUID {
	return o.creatorID
}

// SiteManagerID returns the site manager assigned to review this order.
func (o *PurchaseOrder) SiteManagerID() kernel.UUID {
	return o.siteManagerID
}

// OrderNumber returns the assigned document number, nil until one is confirmed.
func (o *PurchaseOrder) OrderNumber() *string {
	return o.orderNumber
}

// Milestones returns the per-status timestamps reached so far.
func (o *PurchaseOrder) Milestones() Milestones {
	return o.milestones
}

// Items returns a copy of the order lines.
func (o *PurchaseOrder) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns the creation time.
func (o *PurchaseOrder) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification time.
func (o *PurchaseOrder) UpdatedAt() time.Time {
	return o.updatedAt
}

// Advance moves the order to the given status and stamps the milestone that
// status represents. It does not check edge legality; that is the workflow
// service's responsibility before calling Advance.
func (o *PurchaseOrder) Advance(to Status, at time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}

	o.status = to
	o.stampMilestone(to, at)
	o.updatedAt = at
	return nil
}

// AssignSupplier attaches the external supplier. Valid only once the order
// has been routed externally and only while no supplier is assigned yet.
func (o *PurchaseOrder) AssignSupplier(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	if o.supplierID != nil {
		return ErrSupplierAlreadyAssigned
	}

	switch o.status {
	case StatusNeedsExternalOrder, StatusPendingManagement, StatusApprovedManagement:
		o.supplierID = &supplierID
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign a supplier", o.status))
	}
}

// AssignNumber attaches the confirmed document number. Valid exactly once.
func (o *PurchaseOrder) AssignNumber(fullNumber string) error {
	if fullNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if o.orderNumber != nil {
		return ErrOrderNumberAlreadyAssigned
	}

	o.orderNumber = &fullNumber
	return nil
}

func (o *PurchaseOrder) stampMilestone(to Status, at time.Time) {
	switch to {
	case StatusPendingSiteManager:
		o.milestones.SubmittedAt = &at
	case StatusApprovedSiteManager:
		o.milestones.ApprovedBySiteManagerAt = &at
	case StatusApprovedManagement:
		o.milestones.ApprovedByManagementAt = &at
	case StatusSubmittedToSupplier:
		o.milestones.SubmittedToSupplierAt = &at
	case StatusAcceptedSupplier:
		o.milestones.AcceptedBySupplierAt = &at
	case StatusDelivered:
		o.milestones.DeliveredAt = &at
	default:
	}
}

func (o *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *PurchaseOrder) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	o.companyID = companyID
	return nil
}

func (o *PurchaseOrder) setOrderType(orderType OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *PurchaseOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *PurchaseOrder) setCreatorID(creatorID kernel.UUID) error {
	if err := creatorID.Validate(); err != nil {
		return err
	}
	o.creatorID = creatorID
	return nil
}

func (o *PurchaseOrder) setSiteManagerID(siteManagerID kernel.UUID) error {
	if err := siteManagerID.Validate(); err != nil {
		return err
	}
	o.siteManagerID = siteManagerID
	return nil
}

// setLinkedEntity enforces internal/external exclusivity: exactly one of
// org unit (internal) or project (external) is set, matching the order type.
func (o *PurchaseOrder) setLinkedEntity(orderType OrderType, orgUnitID, projectID *kernel.UUID) error {
	switch orderType {
	case TypeInternal:
		if orgUnitID == nil {
			return errs.NewValueIsRequiredError("orgUnitId")
		}
		if projectID != nil {
			return errs.NewValueIsInvalidErrorWithCause("projectId",
				errors.New("internal orders must not carry a project"))
		}
		if err := orgUnitID.Validate(); err != nil {
			return err
		}
		o.orgUnitID = orgUnitID
	case TypeExternal:
		if projectID == nil {
			return errs.NewValueIsRequiredError("projectId")
		}
		if orgUnitID != nil {
			return errs.NewValueIsInvalidErrorWithCause("orgUnitId",
				errors.New("external orders must not carry an org unit"))
		}
		if err := projectID.Validate(); err != nil {
			return err
		}
		o.projectID = projectID
	default:
	}
	return nil
}

func (o *PurchaseOrder) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
