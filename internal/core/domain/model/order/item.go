package order

import (
	"errors"
	"fmt"

	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one order line: a named article, a quantity in some unit, and its
// pricing. TotalPrice is always quantity times unit price; it is computed at
// construction, never supplied.
type Item struct {
	name      string
	quantity  int
	unit      string
	unitPrice decimal.Decimal

	isConstructed bool
}

// NewItem creates a validated order line. Name and unit must be non-empty,
// quantity positive, and unit price non-negative.
func NewItem(name string, quantity int, unit string, unitPrice decimal.Decimal) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("itemName")
	}
	if unit == "" {
		return Item{}, errs.NewValueIsRequiredError("unit")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}

	return Item{
		name:          name,
		quantity:      quantity,
		unit:          unit,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Name returns the article name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Unit returns the unit of measure.
func (i Item) Unit() string {
	return i.unit
}

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// TotalPrice returns quantity times unit price.
func (i Item) TotalPrice() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}
