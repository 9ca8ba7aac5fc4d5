package backoffice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/logger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/catalog"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
)

type stubStore struct {
	savedInventory int
	savedCustomers int
	savedEmployees int
	savedSettings  int
}

func (s *stubStore) Load(ctx context.Context) (*domain.State, error) { return &domain.State{}, nil }
func (s *stubStore) AppendOrder(ctx context.Context, order domain.Order) error { return nil }
func (s *stubStore) AppendExpense(ctx context.Context, expense domain.Expense) error { return nil }
func (s *stubStore) ClearHistory(ctx context.Context) error { return nil }
func (s *stubStore) SaveInventory(ctx context.Context, items []domain.InventoryItem) error {
	s.savedInventory++
	return nil
}
func (s *stubStore) SaveCustomers(ctx context.Context, customers []domain.Customer) error {
	s.savedCustomers++
	return nil
}
func (s *stubStore) SaveEmployees(ctx context.Context, employees []domain.Employee) error {
	s.savedEmployees++
	return nil
}
func (s *stubStore) SaveSettings(ctx context.Context, settings domain.Settings) error {
	s.savedSettings++
	return nil
}
func (s *stubStore) SaveAuditLog(ctx context.Context, entries []domain.AuditEntry) error {
	return nil
}
func (s *stubStore) Close() {}

type stubAudit struct{ records []string }

func (a *stubAudit) Record(actor, action string) {
	a.records = append(a.records, action)
}

type stubSession struct{}

func (stubSession) CurrentActor() string { return "محمود حسن" }

func newTestService() (*Service, *stubStore) {
	store := &stubStore{}
	svc := NewService(catalog.DefaultState(), store, &stubAudit{}, stubSession{}, logger.Discard())
	return svc, store
}

func TestInventory(t *testing.T) {
	t.Run("update changes quantity and threshold", func(t *testing.T) {
		svc, store := newTestService()
		item, err := svc.UpdateInventoryItem("mat-flour", 12, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Quantity != 12 || item.MinLimit != 20 {
			t.Errorf("unexpected item after update: %+v", item)
		}
		if store.savedInventory != 1 {
			t.Errorf("expected inventory persisted once, got %d", store.savedInventory)
		}
	})

	t.Run("unknown item is an error", func(t *testing.T) {
		svc, _ := newTestService()
		if _, err := svc.UpdateInventoryItem("missing", 1, 1); !errors.Is(err, domain.ErrUnknownInventoryItem) {
			t.Errorf("expected ErrUnknownInventoryItem, got %v", err)
		}
	})

	t.Run("low stock lists items at or below threshold", func(t *testing.T) {
		svc, _ := newTestService()
		if _, err := svc.UpdateInventoryItem("mat-flour", 20, 20); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		low := svc.LowStock()
		if len(low) != 1 || low[0].ID != "mat-flour" {
			t.Errorf("expected mat-flour flagged low, got %v", low)
		}
	})
}

func TestCustomers(t *testing.T) {
	svc, store := newTestService()
	customer := svc.AddCustomer("أحمد علي", "01000000000", "شارع النصر", "")
	if customer.ID == "" {
		t.Errorf("customer must get an ID")
	}
	if store.savedCustomers != 1 {
		t.Errorf("expected customers persisted once, got %d", store.savedCustomers)
	}

	customer.Points = 50
	updated, err := svc.UpdateCustomer(customer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Points != 50 {
		t.Errorf("expected points updated, got %d", updated.Points)
	}

	if _, err := svc.UpdateCustomer(domain.Customer{ID: "missing"}); !errors.Is(err, domain.ErrUnknownCustomer) {
		t.Errorf("expected ErrUnknownCustomer, got %v", err)
	}
}

func TestEmployees(t *testing.T) {
	t.Run("roster listing blanks password hashes", func(t *testing.T) {
		svc, _ := newTestService()
		for _, e := range svc.Employees() {
			if e.PasswordHash != "" {
				t.Errorf("employee %s leaked a password hash", e.Username)
			}
		}
	})

	t.Run("lookup for auth keeps the hash", func(t *testing.T) {
		svc, _ := newTestService()
		e, err := svc.FindEmployee("cashier")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.PasswordHash == "" {
			t.Errorf("auth lookup must include the hash")
		}
	})

	t.Run("attendance and delays", func(t *testing.T) {
		svc, store := newTestService()
		if err := svc.MarkAttendance("cashier", true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.RecordDelay("cashier"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		e, _ := svc.FindEmployee("cashier")
		if !e.IsPresent {
			t.Errorf("expected employee marked present")
		}
		if e.DelaysCount != 3 {
			t.Errorf("expected delay counter at 3, got %d", e.DelaysCount)
		}
		if store.savedEmployees != 2 {
			t.Errorf("expected roster persisted twice, got %d", store.savedEmployees)
		}
	})

	t.Run("unknown employee is an error", func(t *testing.T) {
		svc, _ := newTestService()
		if err := svc.MarkAttendance("ghost", true); !errors.Is(err, domain.ErrUnknownEmployee) {
			t.Errorf("expected ErrUnknownEmployee, got %v", err)
		}
	})
}

func TestSettings(t *testing.T) {
	t.Run("opening balance is validated and persisted", func(t *testing.T) {
		svc, store := newTestService()
		if err := svc.SetOpeningBalance(decimal.NewFromInt(-1)); !errors.Is(err, domain.ErrNegativeAmount) {
			t.Fatalf("expected ErrNegativeAmount, got %v", err)
		}
		if err := svc.SetOpeningBalance(decimal.NewFromInt(500)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !svc.OpeningBalance().Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected opening balance 500, got %s", svc.OpeningBalance())
		}
		if store.savedSettings != 1 {
			t.Errorf("expected settings persisted once, got %d", store.savedSettings)
		}
	})

	t.Run("settings update preserves the opening balance", func(t *testing.T) {
		svc, _ := newTestService()
		if err := svc.SetOpeningBalance(decimal.NewFromInt(300)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated := svc.UpdateSettings("https://example.com/logo.png", true, domain.WorkHours{Start: "10:00", End: "22:00"})
		if !updated.OpeningBalance.Equal(decimal.NewFromInt(300)) {
			t.Errorf("settings update must not touch the opening balance, got %s", updated.OpeningBalance)
		}
		if !updated.DarkMode || updated.LogoURL != "https://example.com/logo.png" {
			t.Errorf("unexpected settings after update: %+v", updated)
		}
	})
}
