package commands

import (
	"errors"

	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one order item is required")
)

// CreateOrderCommand represents a request to create a new draft purchase
// order. Internal orders attach an org unit, external orders a project; the
// company scope and creator come from the acting session.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	session       auth.Session
	orderType     order.OrderType
	siteManagerID kernel.UUID
	orgUnitID     *kernel.UUID
	projectID     *kernel.UUID
	items         []order.Item

	guard kernel.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new draft order.
// Validates identifiers, the order type, and that every item is constructed.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	session auth.Session,
	orderType order.OrderType,
	siteManagerID kernel.UUID,
	orgUnitID, projectID *kernel.UUID,
	items []order.Item,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orgUnitID: orgUnitID,
		projectID: projectID,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSession(session),
		cmd.setOrderType(orderType),
		cmd.setSiteManagerID(siteManagerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created with.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Session returns the acting user's session.
func (c CreateOrderCommand) Session() auth.Session {
	return c.session
}

// OrderType returns whether the order is internal or external.
func (c CreateOrderCommand) OrderType() order.OrderType {
	return c.orderType
}

// SiteManagerID returns the site manager assigned to review the order.
func (c CreateOrderCommand) SiteManagerID() kernel.UUID {
	return c.siteManagerID
}

// OrgUnitID returns the org unit for internal orders, nil otherwise.
func (c CreateOrderCommand) OrgUnitID() *kernel.UUID {
	return c.orgUnitID
}

// ProjectID returns the project for external orders, nil otherwise.
func (c CreateOrderCommand) ProjectID() *kernel.UUID {
	return c.projectID
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setSession(session auth.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	c.session = session
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setSiteManagerID(siteManagerID kernel.UUID) error {
	if err := siteManagerID.Validate(); err != nil {
		return err
	}

	c.siteManagerID = siteManagerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
