package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PizzaDraft is the modal configuration step for pizza-class products:
// exactly one size tier, an optional stuffed-crust add-on with an
// operator-editable surcharge, and any subset of toppings. Confirming
// produces one cart line; dropping the draft mutates nothing.
type PizzaDraft struct {
	product           Product
	size              Variant
	stuffedCrust      bool
	stuffedCrustPrice decimal.Decimal
	toppings          []Topping
}

// DefaultStuffedCrustPrice is the surcharge preloaded into a fresh
// draft; the operator may override it before confirming.
var DefaultStuffedCrustPrice = decimal.NewFromInt(20)

func NewPizzaDraft(product Product) (*PizzaDraft, error) {
	if !product.Configurable() {
		return nil, ErrNotConfigurable
	}
	return &PizzaDraft{
		product:           product,
		size:              SizeMedium,
		stuffedCrustPrice: DefaultStuffedCrustPrice,
	}, nil
}

func (d *PizzaDraft) Product() Product { return d.product }

// SetSize selects the size tier; the tier must be priced for this pizza.
func (d *PizzaDraft) SetSize(size Variant) error {
	if _, err := d.product.PriceFor(size); err != nil {
		return fmt.Errorf("size %q: %w", size, err)
	}
	d.size = size
	return nil
}

// SetStuffedCrust toggles the add-on and records its surcharge.
func (d *PizzaDraft) SetStuffedCrust(enabled bool, price decimal.Decimal) {
	d.stuffedCrust = enabled
	if enabled {
		d.stuffedCrustPrice = price
	}
}

// ToggleTopping selects the topping if absent and deselects it if
// present, keyed by topping ID. Toggling twice is a no-op overall.
func (d *PizzaDraft) ToggleTopping(topping Topping) {
	for i := range d.toppings {
		if d.toppings[i].ID == topping.ID {
			d.toppings = append(d.toppings[:i], d.toppings[i+1:]...)
			return
		}
	}
	d.toppings = append(d.toppings, topping)
}

// Toppings returns the current selection snapshot.
func (d *PizzaDraft) Toppings() []Topping {
	out := make([]Topping, len(d.toppings))
	copy(out, d.toppings)
	return out
}

// Total prices the draft as currently configured.
func (d *PizzaDraft) Total() (decimal.Decimal, error) {
	return PriceOf(d.product, d.size, d.toppings, d.stuffedCrust, d.stuffedCrustPrice)
}

// Confirm freezes the configuration into a quantity-1 line item.
func (d *PizzaDraft) Confirm() (LineItem, error) {
	total, err := d.Total()
	if err != nil {
		return LineItem{}, err
	}

	base, err := d.product.PriceFor(d.size)
	if err != nil {
		return LineItem{}, err
	}

	crustPrice := decimal.Zero
	if d.stuffedCrust {
		crustPrice = d.stuffedCrustPrice
	}

	return LineItem{
		ID:                fmt.Sprintf("%s-%s", d.product.ID, uuid.NewString()),
		ProductID:         d.product.ID,
		Name:              d.product.Name,
		Size:              string(d.size),
		BasePrice:         base,
		Toppings:          d.Toppings(),
		Quantity:          1,
		TotalPrice:        total,
		IsStuffedCrust:    d.stuffedCrust,
		StuffedCrustPrice: crustPrice,
	}, nil
}
