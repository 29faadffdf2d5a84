package order

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
//
// The full lifecycle, including the system-evaluated stock check and the
// supplier routing chain:
//
//	draft ──submit──> pending_site_manager ──approve_site──> approved_site_manager
//	                        │                                      │ (auto)
//	                    reject_site                           checking_stock
//	                        │                               (auto) │    │ (auto)
//	                        v                      fulfilled_internal  needs_external_order
//	               rejected_management                     │                │
//	                                                    deliver        approve_mgmt / reject_mgmt
//	                                                       │                │
//	                                                       v                v
//	                                                   delivered    approved_management
//	                                                       │          (auto) │
//	                                                   complete    submitted_to_supplier
//	                                                       │          (auto) │
//	                                                       v               v
//	                                                   completed    pending_supplier ── accept/reject_supplier
//
// Status values only ever change through a workflow transition. Rows persist
// the String() form, so the wire names are load-bearing and must not change;
// the numeric values are free to be reordered.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusDraft is the initial status; the order is editable by its creator.
	StatusDraft

	// StatusPendingSiteManager means the order awaits site-manager review.
	StatusPendingSiteManager

	// StatusApprovedSiteManager is the momentary status after site-manager
	// approval; the system immediately evaluates stock availability from here.
	StatusApprovedSiteManager

	// StatusCheckingStock is the system-evaluated stock availability check.
	StatusCheckingStock

	// StatusFulfilledInternal means the order can be served from internal stock.
	StatusFulfilledInternal

	// StatusNeedsExternalOrder means stock is insufficient and a supplier
	// purchase requires management approval.
	StatusNeedsExternalOrder

	// StatusPendingManagement means the order awaits management review.
	StatusPendingManagement

	// StatusRejectedManagement is terminal for this cycle; a new draft is
	// required to resume.
	StatusRejectedManagement

	// StatusApprovedManagement is the momentary status after management
	// approval; the order is immediately submitted to the supplier.
	StatusApprovedManagement

	// StatusSubmittedToSupplier means the order has been sent to the supplier.
	StatusSubmittedToSupplier

	// StatusPendingSupplier means the order awaits the supplier's response.
	StatusPendingSupplier

	// StatusAcceptedSupplier is the momentary status after supplier
	// acceptance; the order immediately moves into transit.
	StatusAcceptedSupplier

	// StatusRejectedSupplier is terminal; the supplier declined the order.
	StatusRejectedSupplier

	// StatusInTransit means goods are on their way.
	StatusInTransit

	// StatusDelivered means goods have arrived and await final confirmation.
	StatusDelivered

	// StatusCompleted is the successful terminal status.
	StatusCompleted

	// StatusCancelled is the terminal status for orders cancelled from any
	// non-terminal state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:             "unknown",
		StatusDraft:               "draft",
		StatusPendingSiteManager:  "pending_site_manager",
		StatusApprovedSiteManager: "approved_site_manager",
		StatusCheckingStock:       "checking_stock",
		StatusFulfilledInternal:   "fulfilled_internal",
		StatusNeedsExternalOrder:  "needs_external_order",
		StatusPendingManagement:   "pending_management",
		StatusRejectedManagement:  "rejected_management",
		StatusApprovedManagement:  "approved_management",
		StatusSubmittedToSupplier: "submitted_to_supplier",
		StatusPendingSupplier:     "pending_supplier",
		StatusAcceptedSupplier:    "accepted_supplier",
		StatusRejectedSupplier:    "rejected_supplier",
		StatusInTransit:           "in_transit",
		StatusDelivered:           "delivered",
		StatusCompleted:           "completed",
		StatusCancelled:           "cancelled",
	}
}

// StatusFromString parses a status name as persisted and used in API payloads.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// String returns the snake_case name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is a member of the lifecycle enum.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejectedManagement, StatusRejectedSupplier, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
