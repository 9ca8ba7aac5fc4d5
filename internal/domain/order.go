package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod settles an order in cash or by card.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentVisa PaymentMethod = "visa"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentVisa
}

// OrderType records how the sale is served.
type OrderType string

const (
	OrderTypeDineIn   OrderType = "صالة"
	OrderTypeTakeaway OrderType = "تيك أواي"
	OrderTypeDelivery OrderType = "توصيل"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeDineIn || t == OrderTypeTakeaway || t == OrderTypeDelivery
}

// OrderStatus is a lifecycle tag fixed at creation. Nothing in the
// accounting core transitions it.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
)

// Order is a sealed receipt. Once built by checkout, none of its
// monetary fields are ever recomputed or mutated; the order history is
// destroyed only by the end-of-day close.
type Order struct {
	ID            string          `json:"id"`
	Items         []LineItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	DeliveryFees  decimal.Decimal `json:"deliveryFees"`
	Total         decimal.Decimal `json:"total"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	ChangeAmount  decimal.Decimal `json:"changeAmount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        OrderStatus     `json:"status"`
	Timestamp     time.Time       `json:"timestamp"`
	Cashier       string          `json:"cashier"`
	OrderType     OrderType       `json:"orderType"`
}

// SealOrder prices and freezes a sale. The total is clamped at zero so
// discounts and fees can never drive it negative; change is likewise
// clamped, so underpayment yields zero change rather than an error.
// Line items are deep-copied: later cart mutations must not reach a
// committed order.
func SealOrder(id string, items []LineItem, discount, deliveryFees, paid decimal.Decimal, method PaymentMethod, orderType OrderType, cashier string, at time.Time) Order {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice)
	}

	total := subtotal.Sub(discount).Add(deliveryFees)
	if total.IsNegative() {
		total = decimal.Zero
	}

	change := paid.Sub(total)
	if change.IsNegative() {
		change = decimal.Zero
	}

	frozen := make([]LineItem, len(items))
	copy(frozen, items)
	for i := range frozen {
		toppings := make([]Topping, len(items[i].Toppings))
		copy(toppings, items[i].Toppings)
		frozen[i].Toppings = toppings
	}

	return Order{
		ID:            id,
		Items:         frozen,
		Subtotal:      subtotal,
		Discount:      discount,
		DeliveryFees:  deliveryFees,
		Total:         total,
		PaidAmount:    paid,
		ChangeAmount:  change,
		PaymentMethod: method,
		Status:        StatusPreparing,
		Timestamp:     at,
		Cashier:       cashier,
		OrderType:     orderType,
	}
}
