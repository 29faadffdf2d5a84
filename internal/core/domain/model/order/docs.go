// Package order contains the PurchaseOrder aggregate and its value objects:
// the Status lifecycle enum, the Action enum naming user-invoked workflow
// operations, the OrderType discriminator, and order line items.
//
// The aggregate enforces structural invariants (internal/external
// exclusivity, item validity, milestone stamping); which transitions are
// legal for which role is the concern of the workflow domain service.
package order
