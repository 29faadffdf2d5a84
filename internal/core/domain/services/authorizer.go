package services

import (
	"sort"

	"procurement/internal/core/domain/model/auth"
	"procurement/internal/core/domain/model/order"
)

// Authorizer computes the set of workflow actions a user may currently
// perform on an order. AvailableActions is the only evaluation path: the
// display layer lists it, and IsAllowed (used by the enforcement path) is a
// membership check against the same computation, never a second rule set.
//
// On top of the transition table's role classes, the authorizer narrows by
// order-specific assignment:
//   - a site manager acts only on orders where they are the assigned
//     site manager
//   - an employee acts only on orders they created
//   - a supplier acts only on orders routed to them
//
// Roles with blanket authority skip the narrowing.
type Authorizer struct {
	transitions map[order.Status]map[order.Action]transition
}

// NewAuthorizer creates an authorizer over the declarative transition table.
func NewAuthorizer() Authorizer {
	return Authorizer{transitions: buildTransitionTable()}
}

// AvailableActions returns the actions the session's user may invoke on the
// order right now, sorted for stable display. An invalid order or session
// yields no actions.
func (a Authorizer) AvailableActions(po *order.PurchaseOrder, session auth.Session) []order.Action {
	actions := make([]order.Action, 0)

	if po.Validate() != nil || session.Validate() != nil {
		return actions
	}
	if !po.CompanyID().IsEqual(session.CompanyID()) {
		return actions
	}

	for action, edge := range a.transitions[po.Status()] {
		if a.roleAllowed(po, session, edge.roles) {
			actions = append(actions, action)
		}
	}

	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}

// IsAllowed reports whether the action is in the user's available set. This
// is the enforcement check and is by construction identical to what
// AvailableActions offers for display.
func (a Authorizer) IsAllowed(po *order.PurchaseOrder, session auth.Session, action order.Action) bool {
	for _, available := range a.AvailableActions(po, session) {
		if available == action {
			return true
		}
	}
	return false
}

func (a Authorizer) roleAllowed(
	po *order.PurchaseOrder, session auth.Session, allowed []auth.Role,
) bool {
	role := session.Role()

	for _, candidate := range allowed {
		if candidate != role {
			continue
		}
		if role.HasBlanketAuthority() {
			return true
		}
		return a.assignmentMatches(po, session)
	}
	return false
}

// assignmentMatches applies order-specific narrowing for the acting role.
func (a Authorizer) assignmentMatches(po *order.PurchaseOrder, session auth.Session) bool {
	switch session.Role() {
	case auth.RoleSiteManager:
		return po.SiteManagerID().IsEqual(session.UserID())
	case auth.RoleEmployee:
		return po.CreatorID().IsEqual(session.UserID())
	case auth.RoleSupplier:
		// Once a supplier is routed, only that supplier may act.
		if supplier := po.Supplier(); supplier != nil {
			return supplier.IsEqual(session.UserID())
		}
		return true
	default:
		return true
	}
}
