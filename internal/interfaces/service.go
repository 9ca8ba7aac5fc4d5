package interfaces

import (
	"github.com/shopspring/decimal"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
)

// AddSimpleCommand adds a non-configurable product to the cart.
type AddSimpleCommand struct {
	ProductID string
	Variant   domain.Variant
}

// ConfigurePizzaCommand runs the full pizza configuration step in one
// shot: size tier, optional stuffed crust with its surcharge, and the
// topping toggle sequence (duplicate IDs toggle back off).
type ConfigurePizzaCommand struct {
	ProductID         string
	Size              domain.Variant
	StuffedCrust      bool
	StuffedCrustPrice decimal.Decimal
	ToppingIDs        []string
}

// CheckoutCommand finalizes the in-progress sale.
type CheckoutCommand struct {
	Discount      decimal.Decimal
	DeliveryFees  decimal.Decimal
	PaidAmount    decimal.Decimal
	PaymentMethod domain.PaymentMethod
	OrderType     domain.OrderType
}

// CartView is the cart state returned after every mutation.
type CartView struct {
	Items    []domain.LineItem `json:"items"`
	Subtotal decimal.Decimal   `json:"subtotal"`
}

// OrderHistory exposes the append side of the order ledger to checkout.
type OrderHistory interface {
	AppendOrder(order domain.Order)
}
