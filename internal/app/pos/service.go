// Package pos drives the in-progress sale: cart mutation, the pizza
// configuration step, and order commitment.
package pos

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/logger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/catalog"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/interfaces"
)

type Service struct {
	mu      sync.Mutex
	cart    domain.Cart
	catalog *catalog.Catalog
	history interfaces.OrderHistory
	audit   interfaces.AuditRecorder
	session interfaces.Session
	logger  logger.Logger
	now     func() time.Time
	newID   func() string
}

func NewService(cat *catalog.Catalog, history interfaces.OrderHistory, audit interfaces.AuditRecorder, session interfaces.Session, lgr logger.Logger) *Service {
	return &Service{
		catalog: cat,
		history: history,
		audit:   audit,
		session: session,
		logger:  lgr,
		now:     time.Now,
		newID:   func() string { return fmt.Sprintf("ord-%s", uuid.NewString()) },
	}
}

// Cart returns the current sale's lines and subtotal.
func (s *Service) Cart() interfaces.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartView()
}

func (s *Service) cartView() interfaces.CartView {
	return interfaces.CartView{
		Items:    s.cart.Items(),
		Subtotal: s.cart.Subtotal(),
	}
}

// AddSimple adds a non-configurable product. Pizza-class products are
// refused here; they must go through ConfigurePizza.
func (s *Service) AddSimple(cmd interfaces.AddSimpleCommand) (interfaces.CartView, error) {
	product, err := s.catalog.Product(cmd.ProductID)
	if err != nil {
		return interfaces.CartView{}, err
	}

	variant := cmd.Variant
	if variant == "" {
		variant = domain.VariantBase
	}

	item, err := domain.NewSimpleLineItem(product, variant)
	if err != nil {
		return interfaces.CartView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(item)
	return s.cartView(), nil
}

// ConfigurePizza runs the configuration step end to end and appends
// the confirmed line. Topping IDs are applied as toggles, so a
// duplicated ID deselects again.
func (s *Service) ConfigurePizza(cmd interfaces.ConfigurePizzaCommand) (interfaces.CartView, error) {
	product, err := s.catalog.Product(cmd.ProductID)
	if err != nil {
		return interfaces.CartView{}, err
	}

	draft, err := domain.NewPizzaDraft(product)
	if err != nil {
		return interfaces.CartView{}, err
	}
	if cmd.Size != "" {
		if err := draft.SetSize(cmd.Size); err != nil {
			return interfaces.CartView{}, err
		}
	}
	draft.SetStuffedCrust(cmd.StuffedCrust, cmd.StuffedCrustPrice)
	for _, id := range cmd.ToppingIDs {
		topping, err := s.catalog.Topping(id)
		if err != nil {
			return interfaces.CartView{}, err
		}
		draft.ToggleTopping(topping)
	}

	item, err := draft.Confirm()
	if err != nil {
		return interfaces.CartView{}, err
	}

	s.mu.Lock()
	s.cart.Add(item)
	view := s.cartView()
	s.mu.Unlock()

	s.audit.Record(s.session.CurrentActor(), fmt.Sprintf("إضافة %s للسلة", item.Name))
	return view, nil
}

func (s *Service) RemoveLine(lineID string) (interfaces.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cart.Remove(lineID); err != nil {
		return interfaces.CartView{}, err
	}
	return s.cartView(), nil
}

func (s *Service) IncrementLine(lineID string) (interfaces.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.cart.Increment(lineID); err != nil {
		return interfaces.CartView{}, err
	}
	return s.cartView(), nil
}

func (s *Service) DecrementLine(lineID string) (interfaces.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.cart.Decrement(lineID); err != nil {
		return interfaces.CartView{}, err
	}
	return s.cartView(), nil
}

func (s *Service) ClearCart() interfaces.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	return s.cartView()
}

// Checkout seals the sale into an immutable order, appends it to the
// history, writes one audit entry with the total, and only then clears
// the cart. An empty cart is refused with no state change. Tendered
// below total is accepted and simply yields zero change.
func (s *Service) Checkout(cmd interfaces.CheckoutCommand) (domain.Order, error) {
	if !cmd.PaymentMethod.Valid() {
		return domain.Order{}, domain.ErrInvalidPaymentMethod
	}
	if !cmd.OrderType.Valid() {
		return domain.Order{}, domain.ErrInvalidOrderType
	}
	if cmd.Discount.IsNegative() || cmd.DeliveryFees.IsNegative() || cmd.PaidAmount.IsNegative() {
		return domain.Order{}, domain.ErrNegativeAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Len() == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	cashier := s.session.CurrentActor()
	order := domain.SealOrder(
		s.newID(),
		s.cart.Items(),
		cmd.Discount,
		cmd.DeliveryFees,
		cmd.PaidAmount,
		cmd.PaymentMethod,
		cmd.OrderType,
		cashier,
		s.now(),
	)

	// History append (and its persistence attempt) happens before the
	// cart is cleared.
	s.history.AppendOrder(order)
	s.audit.Record(cashier, fmt.Sprintf("إتمام بيع فاتورة بقيمة %s", order.Total))
	s.cart.Clear()

	s.logger.Debug("order_committed", "Order committed", "", map[string]interface{}{
		"order_id": order.ID,
		"total":    order.Total.String(),
	})

	return order, nil
}
