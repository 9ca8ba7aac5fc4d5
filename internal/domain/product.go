package domain

import "github.com/shopspring/decimal"

// Category classifies a product into one of the fixed menu sections.
type Category string

const (
	CategoryPizza    Category = "بيتزا"
	CategoryCrepe    Category = "كريب"
	CategorySandwich Category = "سندوتشات"
	CategoryExtras   Category = "إضافات"
)

// Variant keys a product's price table. Pizzas use size tiers,
// crepes use roll/triangle, everything else a single base price.
type Variant string

const (
	VariantBase     Variant = "base"
	SizeSmall       Variant = "S"
	SizeMedium      Variant = "M"
	SizeLarge       Variant = "L"
	VariantRoll     Variant = "roll"
	VariantTriangle Variant = "triangle"
)

// Label returns the display suffix printed next to the product name.
func (v Variant) Label() string {
	switch v {
	case VariantRoll:
		return "رول"
	case VariantTriangle:
		return "مثلث"
	default:
		return string(v)
	}
}

// Product is immutable reference data loaded once from the static catalog.
type Product struct {
	ID       string                      `json:"id"`
	Name     string                      `json:"name"`
	Category Category                    `json:"category"`
	Prices   map[Variant]decimal.Decimal `json:"prices"`
}

// Configurable reports whether the product must go through the pizza
// configuration step before it can be priced.
func (p Product) Configurable() bool {
	return p.Category == CategoryPizza
}

// PriceFor resolves the unit price for the requested variant.
// A variant absent from the price table is an error, never a zero price.
func (p Product) PriceFor(v Variant) (decimal.Decimal, error) {
	price, ok := p.Prices[v]
	if !ok {
		return decimal.Zero, ErrInvalidVariant
	}
	return price, nil
}

// Topping is a flat additive surcharge, immutable reference data.
type Topping struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
