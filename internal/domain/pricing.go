package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceOf computes the unit price of one configured item.
//
// Simple products resolve to the variant's fixed price. Pizza-class
// products resolve to size tier + toppings + optional stuffed-crust
// surcharge. The surcharge amount is operator-provided, not catalog
// data. Referentially transparent given the same catalog.
func PriceOf(product Product, variant Variant, toppings []Topping, stuffedCrust bool, stuffedCrustPrice decimal.Decimal) (decimal.Decimal, error) {
	base, err := product.PriceFor(variant)
	if err != nil {
		return decimal.Zero, fmt.Errorf("product %s variant %q: %w", product.ID, variant, err)
	}

	if !product.Configurable() {
		return base, nil
	}

	total := base
	for _, t := range toppings {
		total = total.Add(t.Price)
	}
	if stuffedCrust {
		total = total.Add(stuffedCrustPrice)
	}
	return total, nil
}
