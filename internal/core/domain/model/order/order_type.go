package order

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// OrderType discriminates stock-fulfillment orders from supplier orders.
type OrderType int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown OrderType = iota

	// TypeInternal is a stock-fulfillment order across organizational units;
	// it carries an org unit and no supplier initially.
	TypeInternal

	// TypeExternal is an order routed to an external supplier; it carries a
	// project reference.
	TypeExternal
)

func getOrderTypeStrings() map[OrderType]string {
	return map[OrderType]string{
		TypeUnknown:  "unknown",
		TypeInternal: "internal",
		TypeExternal: "external",
	}
}

// OrderTypeFromString parses an order type name.
func OrderTypeFromString(s string) (OrderType, error) {
	for orderType, name := range getOrderTypeStrings() {
		if orderType != TypeUnknown && name == s {
			return orderType, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"orderType", fmt.Errorf("%q is not a valid order type", s))
}

// String returns the name of the order type.
func (t OrderType) String() string {
	if s, ok := getOrderTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the order type is Internal or External.
func (t OrderType) Validate() error {
	if t != TypeInternal && t != TypeExternal {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderType", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}
