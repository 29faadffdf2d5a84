package services

import (
	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/order"
)

// transition is one edge of the workflow: the status an action leads to and
// the role classes allowed to take it. Order-specific assignment narrowing
// (site-manager match, creator match, supplier match) is applied on top by
// the Authorizer.
type transition struct {
	next  order.Status
	roles []auth.Role
}

// buildTransitionTable declares every legal (status, action) edge. Cancel is
// added to every non-terminal status afterwards; the system-evaluated
// statuses (checking_stock and the routing chain) have no user edges beyond
// cancel and advance through auto-advance instead.
func buildTransitionTable() map[order.Status]map[order.Action]transition {
	table := map[order.Status]map[order.Action]transition{
		order.StatusDraft: {
			order.ActionSubmit: {
				next:  order.StatusPendingSiteManager,
				roles: []auth.Role{auth.RoleEmployee, auth.RoleAdmin},
			},
		},
		order.StatusPendingSiteManager: {
			order.ActionApproveSite: {
				next:  order.StatusApprovedSiteManager,
				roles: []auth.Role{auth.RoleSiteManager, auth.RoleAdmin},
			},
			order.ActionRejectSite: {
				next:  order.StatusRejectedManagement,
				roles: []auth.Role{auth.RoleSiteManager, auth.RoleAdmin},
			},
		},
		order.StatusFulfilledInternal: {
			order.ActionDeliver: {
				next:  order.StatusDelivered,
				roles: []auth.Role{auth.RoleSiteManager, auth.RoleAdmin},
			},
		},
		order.StatusNeedsExternalOrder: {
			order.ActionApproveMgmt: {
				next:  order.StatusApprovedManagement,
				roles: []auth.Role{auth.RoleManagement, auth.RoleAdmin},
			},
			order.ActionRejectMgmt: {
				next:  order.StatusRejectedManagement,
				roles: []auth.Role{auth.RoleManagement, auth.RoleAdmin},
			},
		},
		order.StatusPendingManagement: {
			order.ActionApproveMgmt: {
				next:  order.StatusApprovedManagement,
				roles: []auth.Role{auth.RoleManagement, auth.RoleAdmin},
			},
			order.ActionRejectMgmt: {
				next:  order.StatusRejectedManagement,
				roles: []auth.Role{auth.RoleManagement, auth.RoleAdmin},
			},
		},
		order.StatusPendingSupplier: {
			order.ActionAcceptSupplier: {
				next:  order.StatusAcceptedSupplier,
				roles: []auth.Role{auth.RoleSupplier, auth.RoleAdmin},
			},
			order.ActionRejectSupplier: {
				next:  order.StatusRejectedSupplier,
				roles: []auth.Role{auth.RoleSupplier, auth.RoleAdmin},
			},
		},
		order.StatusInTransit: {
			order.ActionDeliver: {
				next:  order.StatusDelivered,
				roles: []auth.Role{auth.RoleSiteManager, auth.RoleSupplier, auth.RoleAdmin},
			},
		},
		order.StatusDelivered: {
			order.ActionComplete: {
				next:  order.StatusCompleted,
				roles: []auth.Role{auth.RoleEmployee, auth.RoleSiteManager, auth.RoleAdmin},
			},
		},
	}

	for _, status := range allStatuses() {
		if status.IsTerminal() {
			continue
		}
		if table[status] == nil {
			table[status] = map[order.Action]transition{}
		}
		table[status][order.ActionCancel] = transition{
			next:  order.StatusCancelled,
			roles: []auth.Role{auth.RoleEmployee, auth.RoleManagement, auth.RoleAdmin},
		}
	}

	return table
}

// autoAdvanceTable declares the unconditional system-evaluated hops. The
// checking_stock fork is conditional on stock availability and handled
// separately by Workflow.ResolveStockCheck.
func autoAdvanceTable() map[order.Status]order.Status {
	return map[order.Status]order.Status{
		order.StatusApprovedSiteManager: order.StatusCheckingStock,
		order.StatusApprovedManagement:  order.StatusSubmittedToSupplier,
		order.StatusSubmittedToSupplier: order.StatusPendingSupplier,
		order.StatusAcceptedSupplier:    order.StatusInTransit,
	}
}

func allStatuses() []order.Status {
	return []order.Status{
		order.StatusDraft,
		order.StatusPendingSiteManager,
		order.StatusApprovedSiteManager,
		order.StatusCheckingStock,
		order.StatusFulfilledInternal,
		order.StatusNeedsExternalOrder,
		order.StatusPendingManagement,
		order.StatusRejectedManagement,
		order.StatusApprovedManagement,
		order.StatusSubmittedToSupplier,
		order.StatusPendingSupplier,
		order.StatusAcceptedSupplier,
		order.StatusRejectedSupplier,
		order.StatusInTransit,
		order.StatusDelivered,
		order.StatusCompleted,
		order.StatusCancelled,
	}
}
