// Package auth contains the acting-user model for workflow and reservation
// calls: the Role enum and the Session value object that carries the current
// user, role, and active company explicitly through every operation.
package auth

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Role represents the class of authority a user acts under.
// Roles gate which workflow actions a user may invoke; the mapping from
// (status, action) to allowed roles lives in the workflow transition table.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleEmployee is a regular user who creates and submits orders.
	RoleEmployee

	// RoleSiteManager approves or rejects orders for the site they manage.
	RoleSiteManager

	// RoleManagement approves or rejects orders that require an external
	// supplier purchase.
	RoleManagement

	// RoleSupplier accepts or rejects orders routed to their company.
	RoleSupplier

	// RoleAdmin carries blanket authority: it may act in any role position
	// regardless of order-specific assignment.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:     "unknown",
		RoleEmployee:    "employee",
		RoleSiteManager: "site_manager",
		RoleManagement:  "management",
		RoleSupplier:    "supplier",
		RoleAdmin:       "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleEmployee:    "employee",
		RoleSiteManager: "site_manager",
		RoleManagement:  "management",
		RoleSupplier:    "supplier",
		RoleAdmin:       "admin",
	}
}

// RoleFromString parses a role name as used in persistence and API payloads.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the snake_case name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the role is one of the defined valid roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// HasBlanketAuthority reports whether the role may act in any role position
// without matching an order-specific assignment.
func (r Role) HasBlanketAuthority() bool {
	return r == RoleAdmin
}
