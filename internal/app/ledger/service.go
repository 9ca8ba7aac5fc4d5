// Package ledger owns the order and expense histories and derives the
// cash-drawer report from them.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/logger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/interfaces"
)

// OpeningBalanceProvider supplies the admin-configured start-of-day
// float. The ledger never mutates it; the end-of-day close leaves it
// untouched.
type OpeningBalanceProvider interface {
	OpeningBalance() decimal.Decimal
}

type Service struct {
	mu       sync.Mutex
	orders   []domain.Order
	expenses []domain.Expense
	opening  OpeningBalanceProvider
	store    interfaces.Store
	audit    interfaces.AuditRecorder
	session  interfaces.Session
	logger   logger.Logger
	now      func() time.Time
}

func NewService(initial *domain.State, opening OpeningBalanceProvider, store interfaces.Store, audit interfaces.AuditRecorder, session interfaces.Session, lgr logger.Logger) *Service {
	orders := make([]domain.Order, len(initial.Orders))
	copy(orders, initial.Orders)
	expenses := make([]domain.Expense, len(initial.Expenses))
	copy(expenses, initial.Expenses)

	return &Service{
		orders:   orders,
		expenses: expenses,
		opening:  opening,
		store:    store,
		audit:    audit,
		session:  session,
		logger:   lgr,
		now:      time.Now,
	}
}

// AppendOrder prepends a sealed order to the history (newest first)
// and persists it. Persistence failure is logged and never undoes the
// in-memory append.
func (s *Service) AppendOrder(order domain.Order) {
	s.mu.Lock()
	s.orders = append([]domain.Order{order}, s.orders...)
	s.mu.Unlock()

	if err := s.store.AppendOrder(context.Background(), order); err != nil {
		s.logger.Error("order_persist_failed", "Failed to persist order", "", map[string]interface{}{
			"order_id": order.ID,
		}, err)
	}
}

// Orders returns the history newest-first.
func (s *Service) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// AddExpense appends a drawer outflow and audits it.
func (s *Service) AddExpense(title string, amount decimal.Decimal) (domain.Expense, error) {
	if title == "" {
		return domain.Expense{}, domain.ErrExpenseTitleRequired
	}
	if amount.IsNegative() {
		return domain.Expense{}, domain.ErrNegativeAmount
	}

	expense := domain.Expense{
		ID:        fmt.Sprintf("exp-%s", uuid.NewString()),
		Title:     title,
		Amount:    amount,
		Timestamp: s.now(),
	}

	s.mu.Lock()
	s.expenses = append([]domain.Expense{expense}, s.expenses...)
	s.mu.Unlock()

	if err := s.store.AppendExpense(context.Background(), expense); err != nil {
		s.logger.Error("expense_persist_failed", "Failed to persist expense", "", map[string]interface{}{
			"expense_id": expense.ID,
		}, err)
	}

	s.audit.Record(s.session.CurrentActor(), fmt.Sprintf("إضافة مصروف: %s (%s)", expense.Title, expense.Amount))
	return expense, nil
}

// Expenses returns the history newest-first.
func (s *Service) Expenses() []domain.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Snapshot derives today's drawer figures on demand. Nothing is cached;
// recomputation is cheap relative to history size.
func (s *Service) Snapshot() domain.SafeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ComputeSafeSnapshot(s.orders, s.expenses, s.opening.OpeningBalance(), s.now())
}

// CloseDay irreversibly clears the entire order and expense histories,
// not just today's. The caller must pass explicit confirmation; the
// opening balance is left as configured.
func (s *Service) CloseDay(confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}

	s.mu.Lock()
	s.orders = nil
	s.expenses = nil
	s.mu.Unlock()

	if err := s.store.ClearHistory(context.Background()); err != nil {
		s.logger.Error("history_clear_persist_failed", "Failed to persist history reset", "", nil, err)
	}

	s.audit.Record(s.session.CurrentActor(), "تم إغلاق الوردية النهائية")
	return nil
}
