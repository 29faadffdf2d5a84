package order

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Action names a user-invoked workflow operation. Which actions are legal in
// which status, and for which roles, is declared in the workflow transition
// table; Action itself is a plain enum.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionSubmit sends a draft to the site manager for review.
	ActionSubmit

	// ActionApproveSite approves the order as site manager; the system then
	// evaluates stock availability.
	ActionApproveSite

	// ActionRejectSite rejects the order as site manager.
	ActionRejectSite

	// ActionApproveMgmt approves the external purchase as management; the
	// order is then submitted to the supplier.
	ActionApproveMgmt

	// ActionRejectMgmt rejects the external purchase as management.
	ActionRejectMgmt

	// ActionAcceptSupplier accepts the order as the supplier; the order then
	// moves into transit.
	ActionAcceptSupplier

	// ActionRejectSupplier declines the order as the supplier.
	ActionRejectSupplier

	// ActionDeliver marks the goods as delivered.
	ActionDeliver

	// ActionComplete closes out a delivered order.
	ActionComplete

	// ActionCancel cancels the order from any non-terminal status.
	ActionCancel
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown:        "unknown",
		ActionSubmit:         "submit",
		ActionApproveSite:    "approve_site",
		ActionRejectSite:     "reject_site",
		ActionApproveMgmt:    "approve_mgmt",
		ActionRejectMgmt:     "reject_mgmt",
		ActionAcceptSupplier: "accept_supplier",
		ActionRejectSupplier: "reject_supplier",
		ActionDeliver:        "deliver",
		ActionComplete:       "complete",
		ActionCancel:         "cancel",
	}
}

// ActionFromString parses an action name as used in history rows and API payloads.
func ActionFromString(s string) (Action, error) {
	for action, name := range getActionStrings() {
		if action != ActionUnknown && name == s {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"action", fmt.Errorf("%q is not a valid action", s))
}

// String returns the snake_case name of the action.
func (a Action) String() string {
	if s, ok := getActionStrings()[a]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the action is a member of the enum.
func (a Action) Validate() error {
	if _, ok := getActionStrings()[a]; !ok || a == ActionUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"action", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}
