package commands

import (
	"context"

	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for draft order
// creation. Orders start in draft status and are visible only within the
// creating user's company.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. Only employees (or roles with
// blanket authority) create orders; drafts carry no document number.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session := cmd.Session()
	if session.Role() != auth.RoleEmployee && !session.Role().HasBlanketAuthority() {
		return errs.NewPermissionDeniedError(session.UserID().String(), "create_order")
	}

	aggregate, err := order.NewPurchaseOrder(
		cmd.OrderID(),
		session.CompanyID(),
		cmd.OrderType(),
		session.UserID(),
		cmd.SiteManagerID(),
		cmd.OrgUnitID(),
		cmd.ProjectID(),
		cmd.Items(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
