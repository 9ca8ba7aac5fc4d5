package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/logger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
)

type stubStore struct {
	appendedOrders   []domain.Order
	appendedExpenses []domain.Expense
	cleared          int
	appendErr        error
}

func (s *stubStore) Load(ctx context.Context) (*domain.State, error) { return &domain.State{}, nil }
func (s *stubStore) AppendOrder(ctx context.Context, order domain.Order) error {
	s.appendedOrders = append(s.appendedOrders, order)
	return s.appendErr
}
func (s *stubStore) AppendExpense(ctx context.Context, expense domain.Expense) error {
	s.appendedExpenses = append(s.appendedExpenses, expense)
	return s.appendErr
}
func (s *stubStore) ClearHistory(ctx context.Context) error {
	s.cleared++
	return nil
}
func (s *stubStore) SaveInventory(ctx context.Context, items []domain.InventoryItem) error {
	return nil
}
func (s *stubStore) SaveCustomers(ctx context.Context, customers []domain.Customer) error {
	return nil
}
func (s *stubStore) SaveEmployees(ctx context.Context, employees []domain.Employee) error {
	return nil
}
func (s *stubStore) SaveSettings(ctx context.Context, settings domain.Settings) error { return nil }
func (s *stubStore) SaveAuditLog(ctx context.Context, entries []domain.AuditEntry) error {
	return nil
}
func (s *stubStore) Close() {}

type stubAudit struct{ records []string }

func (a *stubAudit) Record(actor, action string) {
	a.records = append(a.records, actor+": "+action)
}

type stubSession struct{}

func (stubSession) CurrentActor() string { return "محمود حسن" }

type fixedBalance struct{ amount decimal.Decimal }

func (f fixedBalance) OpeningBalance() decimal.Decimal { return f.amount }

func newTestService(opening int64) (*Service, *stubStore, *stubAudit) {
	store := &stubStore{}
	trail := &stubAudit{}
	svc := NewService(&domain.State{}, fixedBalance{decimal.NewFromInt(opening)},
		store, trail, stubSession{}, logger.Discard())
	return svc, store, trail
}

func cashOrder(id string, total int64, at time.Time) domain.Order {
	return domain.Order{ID: id, Total: decimal.NewFromInt(total), PaymentMethod: domain.PaymentCash, Timestamp: at}
}

func TestAppendOrder(t *testing.T) {
	t.Run("orders are kept newest first and persisted", func(t *testing.T) {
		svc, store, _ := newTestService(0)
		svc.AppendOrder(cashOrder("ord-1", 100, time.Now()))
		svc.AppendOrder(cashOrder("ord-2", 50, time.Now()))

		orders := svc.Orders()
		if len(orders) != 2 || orders[0].ID != "ord-2" {
			t.Errorf("expected newest-first history, got %v", orders)
		}
		if len(store.appendedOrders) != 2 {
			t.Errorf("expected 2 persistence calls, got %d", len(store.appendedOrders))
		}
	})

	t.Run("persistence failure keeps the in-memory order", func(t *testing.T) {
		svc, store, _ := newTestService(0)
		store.appendErr = errors.New("connection refused")
		svc.AppendOrder(cashOrder("ord-1", 100, time.Now()))
		if len(svc.Orders()) != 1 {
			t.Errorf("order lost after failed persist")
		}
	})
}

func TestAddExpense(t *testing.T) {
	t.Run("records the outflow and audits it", func(t *testing.T) {
		svc, store, trail := newTestService(0)
		expense, err := svc.AddExpense("شراء خضروات", decimal.NewFromInt(50))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expense.ID == "" {
			t.Errorf("expense must get an ID")
		}
		if len(store.appendedExpenses) != 1 {
			t.Errorf("expected 1 persistence call, got %d", len(store.appendedExpenses))
		}
		if len(trail.records) != 1 {
			t.Errorf("expected 1 audit record, got %d", len(trail.records))
		}
	})

	t.Run("title is required", func(t *testing.T) {
		svc, _, _ := newTestService(0)
		if _, err := svc.AddExpense("", decimal.NewFromInt(10)); !errors.Is(err, domain.ErrExpenseTitleRequired) {
			t.Errorf("expected ErrExpenseTitleRequired, got %v", err)
		}
	})

	t.Run("negative amount is refused", func(t *testing.T) {
		svc, _, _ := newTestService(0)
		if _, err := svc.AddExpense("خصم", decimal.NewFromInt(-10)); !errors.Is(err, domain.ErrNegativeAmount) {
			t.Errorf("expected ErrNegativeAmount, got %v", err)
		}
	})
}

func TestSnapshot(t *testing.T) {
	now := time.Date(2024, 5, 10, 18, 0, 0, 0, time.Local)
	svc, _, _ := newTestService(200)
	svc.now = func() time.Time { return now }

	svc.AppendOrder(cashOrder("ord-1", 100, now))
	svc.AppendOrder(domain.Order{ID: "ord-2", Total: decimal.NewFromInt(50), PaymentMethod: domain.PaymentVisa, Timestamp: now})
	svc.AppendOrder(cashOrder("ord-old", 30, now.Add(-24*time.Hour)))
	if _, err := svc.AddExpense("ثلج", decimal.NewFromInt(20)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := svc.Snapshot()
	if !snap.CashSales.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected cash sales 100, got %s", snap.CashSales)
	}
	if !snap.VisaSales.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected visa sales 50, got %s", snap.VisaSales)
	}
	if !snap.NetCash.Equal(decimal.NewFromInt(280)) {
		t.Errorf("expected net cash 280, got %s", snap.NetCash)
	}
}

func TestCloseDay(t *testing.T) {
	t.Run("requires explicit confirmation", func(t *testing.T) {
		svc, store, _ := newTestService(0)
		svc.AppendOrder(cashOrder("ord-1", 100, time.Now()))

		if err := svc.CloseDay(false); !errors.Is(err, domain.ErrConfirmationRequired) {
			t.Fatalf("expected ErrConfirmationRequired, got %v", err)
		}
		if len(svc.Orders()) != 1 {
			t.Errorf("unconfirmed close must not touch the history")
		}
		if store.cleared != 0 {
			t.Errorf("unconfirmed close must not reach the store")
		}
	})

	t.Run("clears the entire history, not just today", func(t *testing.T) {
		svc, store, trail := newTestService(150)
		svc.AppendOrder(cashOrder("ord-1", 100, time.Now()))
		svc.AppendOrder(cashOrder("ord-old", 30, time.Now().Add(-48*time.Hour)))
		if _, err := svc.AddExpense("ثلج", decimal.NewFromInt(20)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := svc.CloseDay(true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(svc.Orders()) != 0 || len(svc.Expenses()) != 0 {
			t.Errorf("close must drop all orders and expenses")
		}
		if store.cleared != 1 {
			t.Errorf("expected one store clear, got %d", store.cleared)
		}

		// The opening balance survives the close.
		snap := svc.Snapshot()
		if !snap.NetCash.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected net cash back at the opening balance, got %s", snap.NetCash)
		}

		found := false
		for _, r := range trail.records {
			if r == "محمود حسن: تم إغلاق الوردية النهائية" {
				found = true
			}
		}
		if !found {
			t.Errorf("close must be audited, got %v", trail.records)
		}
	})
}
