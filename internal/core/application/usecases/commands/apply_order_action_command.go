package commands

import (
	"errors"

	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

var ErrApplyOrderActionCommandIsNotConstructed = errors.New(
	"ApplyOrderActionCommand must be created via NewApplyOrderActionCommand constructor",
)

// ApplyOrderActionCommand represents a request to perform one workflow
// action on an order. The caller states the status it last observed
// (expectedFromStatus); the transition commits only if the order is still in
// that status, which makes concurrent submissions lose cleanly instead of
// double-applying.
//
// Notes carry the reason for rejections and cancellations. SupplierID
// attaches the external supplier alongside a management approval.
type ApplyOrderActionCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	session            auth.Session
	action             order.Action
	expectedFromStatus order.Status
	supplierID         *kernel.UUID
	notes              *string

	guard kernel.ConstructorGuard
}

// NewApplyOrderActionCommand creates a command to apply a workflow action.
// supplierID and notes are optional and may be nil.
func NewApplyOrderActionCommand(
	orderID kernel.UUID,
	session auth.Session,
	action order.Action,
	expectedFromStatus order.Status,
	supplierID *kernel.UUID,
	notes *string,
) (ApplyOrderActionCommand, error) {
	cmd := ApplyOrderActionCommand{
		supplierID: supplierID,
		notes:      notes,
		guard:      kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSession(session),
		cmd.setAction(action),
		cmd.setExpectedFromStatus(expectedFromStatus),
	); err != nil {
		return ApplyOrderActionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyOrderActionCommand) Validate() error {
	return c.guard.Validate(ErrApplyOrderActionCommandIsNotConstructed)
}

// OrderID returns the order the action targets.
func (c ApplyOrderActionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Session returns the acting user's session.
func (c ApplyOrderActionCommand) Session() auth.Session {
	return c.session
}

// Action returns the workflow action to apply.
func (c ApplyOrderActionCommand) Action() order.Action {
	return c.action
}

// ExpectedFromStatus returns the status the caller last observed.
func (c ApplyOrderActionCommand) ExpectedFromStatus() order.Status {
	return c.expectedFromStatus
}

// SupplierID returns the supplier to attach, nil when none is supplied.
func (c ApplyOrderActionCommand) SupplierID() *kernel.UUID {
	return c.supplierID
}

// Notes returns the optional reason text, nil when none was given.
func (c ApplyOrderActionCommand) Notes() *string {
	return c.notes
}

func (c *ApplyOrderActionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyOrderActionCommand) setSession(session auth.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	c.session = session
	return nil
}

func (c *ApplyOrderActionCommand) setAction(action order.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}

func (c *ApplyOrderActionCommand) setExpectedFromStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.expectedFromStatus = status
	return nil
}
