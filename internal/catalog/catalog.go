// Package catalog holds the restaurant's static reference data: the
// menu, the topping list, and the seed records used when the store has
// no persisted state yet.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
)

// Catalog is the read-only product and topping registry consumed by
// the pricing calculator.
type Catalog struct {
	products     []domain.Product
	productsByID map[string]domain.Product
	toppings     []domain.Topping
	toppingsByID map[string]domain.Topping
}

func New(products []domain.Product, toppings []domain.Topping) *Catalog {
	c := &Catalog{
		products:     products,
		toppings:     toppings,
		productsByID: make(map[string]domain.Product, len(products)),
		toppingsByID: make(map[string]domain.Topping, len(toppings)),
	}
	for _, p := range products {
		c.productsByID[p.ID] = p
	}
	for _, t := range toppings {
		c.toppingsByID[t.ID] = t
	}
	return c
}

// Default builds the catalog from the restaurant's standing menu.
func Default() *Catalog {
	return New(Products(), Toppings())
}

func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Toppings() []domain.Topping {
	out := make([]domain.Topping, len(c.toppings))
	copy(out, c.toppings)
	return out
}

func (c *Catalog) Product(id string) (domain.Product, error) {
	p, ok := c.productsByID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %q: %w", id, domain.ErrUnknownProduct)
	}
	return p, nil
}

func (c *Catalog) Topping(id string) (domain.Topping, error) {
	t, ok := c.toppingsByID[id]
	if !ok {
		return domain.Topping{}, fmt.Errorf("topping %q: %w", id, domain.ErrUnknownTopping)
	}
	return t, nil
}

func price(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func sizePrices(s, m, l int64) map[domain.Variant]decimal.Decimal {
	return map[domain.Variant]decimal.Decimal{
		domain.SizeSmall:  price(s),
		domain.SizeMedium: price(m),
		domain.SizeLarge:  price(l),
	}
}

func basePrice(n int64) map[domain.Variant]decimal.Decimal {
	return map[domain.Variant]decimal.Decimal{domain.VariantBase: price(n)}
}

// Products returns the standing menu.
func Products() []domain.Product {
	var products []domain.Product

	pizzaNames := []string{
		"مارجريتا", "خضروات", "عشاق الجبنة", "شاورما فراخ", "تشيكن باربكيو",
		"بيبروني", "تشيكن رانش", "مشروم", "سوبر سوبريم", "فورسيزون", "بولونيز",
	}
	for i, name := range pizzaNames {
		products = append(products, domain.Product{
			ID:       fmt.Sprintf("piz-%d", i),
			Name:     "بيتزا " + name,
			Category: domain.CategoryPizza,
			Prices:   sizePrices(90, 110, 130),
		})
	}
	products = append(products, domain.Product{
		ID:       "piz-shrimp",
		Name:     "بيتزا جمبري",
		Category: domain.CategoryPizza,
		Prices:   sizePrices(120, 140, 170),
	})

	crepeNames := []string{"جبنة", "ميكس", "شاورما", "كريسبي", "زنجر", "فاهيتا", "بطاطس", "إندونيسي"}
	for i, name := range crepeNames {
		products = append(products, domain.Product{
			ID:       fmt.Sprintf("cr-%d", i),
			Name:     "كريب " + name,
			Category: domain.CategoryCrepe,
			Prices: map[domain.Variant]decimal.Decimal{
				domain.VariantRoll:     price(80),
				domain.VariantTriangle: price(120),
			},
		})
	}

	sandwiches := []struct {
		id    string
		name  string
		price int64
	}{
		{"sw-1", "شاورما فراخ", 35},
		{"sw-2", "بانيه", 25},
		{"sw-3", "كرسبي", 25},
		{"sw-4", "استربس حار", 35},
		{"sw-5", "شيش طاووق", 35},
		{"sw-6", "فاهيتا فراخ", 35},
		{"sw-7", "كوردن بلو", 30},
		{"sw-8", "زنجر", 30},
		{"sw-9", "زنجر سوبرم", 35},
		{"sw-10", "سوبر كرانشي", 35},
	}
	for _, s := range sandwiches {
		products = append(products, domain.Product{
			ID:       s.id,
			Name:     s.name,
			Category: domain.CategorySandwich,
			Prices:   basePrice(s.price),
		})
	}

	extras := []struct {
		id    string
		name  string
		price int64
	}{
		{"add-1", "جبنة", 10},
		{"add-2", "فراخ", 10},
		{"add-3", "لحمة", 10},
		{"add-4", "بطاطس", 15},
	}
	for _, e := range extras {
		products = append(products, domain.Product{
			ID:       e.id,
			Name:     e.name,
			Category: domain.CategoryExtras,
			Prices:   basePrice(e.price),
		})
	}

	return products
}

// Toppings returns the pizza topping list. The stuffed-crust entry is
// handled by the configuration draft, not the topping toggles.
func Toppings() []domain.Topping {
	return []domain.Topping{
		{ID: "top-stuffed-crust", Name: "حشو أطراف", Price: price(20)},
		{ID: "top-extra-cheese", Name: "جبنة إضافية", Price: price(10)},
		{ID: "top-extra-meat", Name: "لحمة إضافية", Price: price(15)},
	}
}

// StuffedCrustToppingID marks the topping entry excluded from the
// regular toggle list.
const StuffedCrustToppingID = "top-stuffed-crust"

// SelectableToppings returns toppings offered as regular toggles.
func (c *Catalog) SelectableToppings() []domain.Topping {
	var out []domain.Topping
	for _, t := range c.toppings {
		if t.ID != StuffedCrustToppingID {
			out = append(out, t)
		}
	}
	return out
}
