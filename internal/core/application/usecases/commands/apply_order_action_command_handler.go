package commands

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// ApplyOrderActionResult reports where a committed transition settled.
// FinalStatus includes any system-evaluated hops taken after the user's
// action, so it is the status a re-fetch would observe.
type ApplyOrderActionResult struct {
	FromStatus  order.Status
	FinalStatus order.Status
}

// ApplyOrderActionCommandHandler handles workflow transitions on purchase
// orders. One user action produces one atomic commit: the conditional status
// write and exactly one history entry, covering the full auto-advance chain
// the action triggered.
type ApplyOrderActionCommandHandler struct {
	uowFactory   WorkflowUoWFactory
	workflow     services.Workflow
	authorizer   services.Authorizer
	stockChecker ports.StockChecker
}

// NewApplyOrderActionCommandHandler creates a handler for workflow transitions.
func NewApplyOrderActionCommandHandler(
	uowFactory WorkflowUoWFactory,
	workflow services.Workflow,
	authorizer services.Authorizer,
	stockChecker ports.StockChecker,
) ApplyOrderActionCommandHandler {
	return ApplyOrderActionCommandHandler{
		uowFactory:   uowFactory,
		workflow:     workflow,
		authorizer:   authorizer,
		stockChecker: stockChecker,
	}
}

// Handle processes one workflow action.
//
// The checks run in a fixed order so each failure mode maps to one error:
// a missing order is ObjectNotFoundError, another company's order is
// PermissionDeniedError, a stale expectedFromStatus is StaleStateError, an
// edge absent from the transition table is InvalidTransitionError, and an
// edge the user's role or assignment does not cover is PermissionDeniedError.
func (h *ApplyOrderActionCommandHandler) Handle(
	ctx context.Context, cmd ApplyOrderActionCommand,
) (ApplyOrderActionResult, error) {
	if err := cmd.Validate(); err != nil {
		return ApplyOrderActionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ApplyOrderActionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ApplyOrderActionResult{}, err
	}

	session := cmd.Session()
	if !aggregate.CompanyID().IsEqual(session.CompanyID()) {
		return ApplyOrderActionResult{}, errs.NewPermissionDeniedError(
			session.UserID().String(), cmd.Action().String())
	}

	expected := cmd.ExpectedFromStatus()
	if aggregate.Status() != expected {
		return ApplyOrderActionResult{}, errs.NewStaleStateError(
			aggregate.ID().String(), expected.String())
	}

	target, err := h.workflow.Decide(expected, cmd.Action())
	if err != nil {
		return ApplyOrderActionResult{}, err
	}

	if !h.authorizer.IsAllowed(aggregate, session, cmd.Action()) {
		return ApplyOrderActionResult{}, errs.NewPermissionDeniedError(
			session.UserID().String(), cmd.Action().String())
	}

	if supplierID := cmd.SupplierID(); supplierID != nil {
		if err = aggregate.AssignSupplier(*supplierID); err != nil {
			return ApplyOrderActionResult{}, err
		}
	}

	now := time.Now().UTC()
	if err = aggregate.Advance(target, now); err != nil {
		return ApplyOrderActionResult{}, err
	}

	if err = h.autoAdvance(ctx, aggregate, now); err != nil {
		return ApplyOrderActionResult{}, err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, expected); err != nil {
		return ApplyOrderActionResult{}, err
	}

	entry, err := order.NewHistoryEntry(
		kernel.NewUUID(),
		aggregate.ID(),
		expected,
		aggregate.Status(),
		cmd.Action(),
		session.UserID(),
		now,
		cmd.Notes(),
	)
	if err != nil {
		return ApplyOrderActionResult{}, err
	}

	if err = uow.HistoryStore().Append(ctx, entry); err != nil {
		return ApplyOrderActionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ApplyOrderActionResult{}, err
	}

	return ApplyOrderActionResult{
		FromStatus:  expected,
		FinalStatus: aggregate.Status(),
	}, nil
}

// autoAdvance walks the system-evaluated chain until the order settles in a
// status that waits for a user action. The stock fork consults the external
// stock checker exactly once per pass through checking_stock.
func (h *ApplyOrderActionCommandHandler) autoAdvance(
	ctx context.Context, aggregate *order.PurchaseOrder, at time.Time,
) error {
	for {
		current := aggregate.Status()

		if h.workflow.RequiresStockCheck(current) {
			available, err := h.stockChecker.IsStockAvailable(ctx, aggregate)
			if err != nil {
				return err
			}
			if err = aggregate.Advance(h.workflow.ResolveStockCheck(available), at); err != nil {
				return err
			}
			continue
		}

		next, ok := h.workflow.NextAutoAdvance(current)
		if !ok {
			return nil
		}
		if err := aggregate.Advance(next, at); err != nil {
			return err
		}
	}
}
