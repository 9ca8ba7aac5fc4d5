package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one cart entry. Identity is unique per add, not per
// product: adding the same product twice creates two distinct lines.
// Its unit economics (base price, topping snapshot, crust surcharge)
// are frozen at the moment the item is configured; later catalog
// changes never reprice an existing line.
type LineItem struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"productId"`
	Name              string          `json:"name"`
	Size              string          `json:"size,omitempty"`
	BasePrice         decimal.Decimal `json:"basePrice"`
	Toppings          []Topping       `json:"toppings"`
	Quantity          int             `json:"quantity"`
	TotalPrice        decimal.Decimal `json:"totalPrice"`
	IsStuffedCrust    bool            `json:"isStuffedCrust,omitempty"`
	StuffedCrustPrice decimal.Decimal `json:"stuffedCrustPrice"`
}

// UnitRate is the frozen per-unit price: base + toppings + crust.
// Equivalent to TotalPrice/Quantity while the line invariant holds,
// but exact under decimal arithmetic.
func (li LineItem) UnitRate() decimal.Decimal {
	rate := li.BasePrice
	for _, t := range li.Toppings {
		rate = rate.Add(t.Price)
	}
	if li.IsStuffedCrust {
		rate = rate.Add(li.StuffedCrustPrice)
	}
	return rate
}

// NewSimpleLineItem creates a quantity-1 line for a non-configurable
// product, resolving the unit price from the catalog. Crepe variants
// embed their label in the display name.
func NewSimpleLineItem(product Product, variant Variant) (LineItem, error) {
	if product.Configurable() {
		return LineItem{}, ErrConfigurableProduct
	}

	price, err := product.PriceFor(variant)
	if err != nil {
		return LineItem{}, fmt.Errorf("product %s variant %q: %w", product.ID, variant, err)
	}

	name := product.Name
	if variant == VariantRoll || variant == VariantTriangle {
		name = fmt.Sprintf("%s (%s)", product.Name, variant.Label())
	}

	return LineItem{
		ID:         fmt.Sprintf("%s-%s", product.ID, uuid.NewString()),
		ProductID:  product.ID,
		Name:       name,
		BasePrice:  price,
		Toppings:   []Topping{},
		Quantity:   1,
		TotalPrice: price,
	}, nil
}

// Cart is the ordered, mutable collection of priced lines for the
// in-progress sale. Append order is display order.
type Cart struct {
	items []LineItem
}

// Items returns a copy of the cart lines in display order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

// Add appends a line. Identical items are never merged.
func (c *Cart) Add(item LineItem) {
	c.items = append(c.items, item)
}

// Remove deletes the matching line. Removal is the only way a line
// leaves the cart; decrementing never removes implicitly.
func (c *Cart) Remove(lineID string) error {
	for i := range c.items {
		if c.items[i].ID == lineID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrLineItemNotFound
}

// Increment raises the line quantity by one, rescaling the total from
// the frozen per-unit rate rather than recomputing from the catalog.
func (c *Cart) Increment(lineID string) (LineItem, error) {
	return c.setQuantity(lineID, +1)
}

// Decrement lowers the line quantity by one, floored at 1. A
// quantity-1 line is left untouched.
func (c *Cart) Decrement(lineID string) (LineItem, error) {
	return c.setQuantity(lineID, -1)
}

func (c *Cart) setQuantity(lineID string, delta int) (LineItem, error) {
	for i := range c.items {
		if c.items[i].ID != lineID {
			continue
		}
		qty := c.items[i].Quantity + delta
		if qty < 1 {
			return c.items[i], nil
		}
		c.items[i].Quantity = qty
		c.items[i].TotalPrice = c.items[i].UnitRate().Mul(decimal.NewFromInt(int64(qty)))
		return c.items[i], nil
	}
	return LineItem{}, ErrLineItemNotFound
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.items = nil
}

// Subtotal sums the line totals.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.items {
		sum = sum.Add(item.TotalPrice)
	}
	return sum
}
