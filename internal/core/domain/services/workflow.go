package services

import (
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

// Workflow is the order state machine: it decides which status a user action
// leads to and how the system-evaluated statuses advance. It never touches
// persistence, so the commit protocol (conditional write plus history
// append) stays with the application layer and the machine can be unit
// tested in isolation.
type Workflow struct {
	transitions map[order.Status]map[order.Action]transition
	autoAdvance map[order.Status]order.Status
}

// NewWorkflow creates a workflow machine over the declarative transition table.
func NewWorkflow() Workflow {
	return Workflow{
		transitions: buildTransitionTable(),
		autoAdvance: autoAdvanceTable(),
	}
}

// Decide returns the status the given action leads to from the given status.
// Returns InvalidTransitionError when the table has no such edge; role
// gating is the Authorizer's concern and is checked separately.
func (w Workflow) Decide(from order.Status, action order.Action) (order.Status, error) {
	edges, ok := w.transitions[from]
	if !ok {
		return order.StatusUnknown, errs.NewInvalidTransitionError(from.String(), action.String())
	}

	edge, ok := edges[action]
	if !ok {
		return order.StatusUnknown, errs.NewInvalidTransitionError(from.String(), action.String())
	}

	return edge.next, nil
}

// NextAutoAdvance returns the unconditional system-evaluated hop from the
// given status, if one exists. The checking_stock fork is resolved by
// ResolveStockCheck instead.
func (w Workflow) NextAutoAdvance(from order.Status) (order.Status, bool) {
	next, ok := w.autoAdvance[from]
	return next, ok
}

// RequiresStockCheck reports whether the status forks on stock availability.
func (w Workflow) RequiresStockCheck(status order.Status) bool {
	return status == order.StatusCheckingStock
}

// ResolveStockCheck resolves the checking_stock fork: orders that can be
// served from internal stock are fulfilled internally, the rest need an
// external supplier order.
func (w Workflow) ResolveStockCheck(stockAvailable bool) order.Status {
	if stockAvailable {
		return order.StatusFulfilledInternal
	}
	return order.StatusNeedsExternalOrder
}
