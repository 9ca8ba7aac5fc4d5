package audit

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/logger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
)

// stubStore records SaveAuditLog calls and optionally fails them.
type stubStore struct {
	saved   [][]domain.AuditEntry
	saveErr error
}

func (s *stubStore) Load(ctx context.Context) (*domain.State, error) { return &domain.State{}, nil }
func (s *stubStore) AppendOrder(ctx context.Context, order domain.Order) error { return nil }
func (s *stubStore) AppendExpense(ctx context.Context, expense domain.Expense) error { return nil }
func (s *stubStore) ClearHistory(ctx context.Context) error { return nil }
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
	copied := make([]domain.AuditEntry, len(entries))
	copy(copied, entries)
	s.saved = append(s.saved, copied)
	return s.saveErr
}
func (s *stubStore) Close() {}

func TestTrailRecord(t *testing.T) {
	t.Run("entries are newest first", func(t *testing.T) {
		trail := NewTrail(nil, &stubStore{}, logger.Discard())
		trail.Record("رضا البغدي", "first")
		trail.Record("رضا البغدي", "second")

		entries := trail.Entries()
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].Action != "second" || entries[1].Action != "first" {
			t.Errorf("entries not newest-first: %v", entries)
		}
	})

	t.Run("every record is persisted", func(t *testing.T) {
		store := &stubStore{}
		trail := NewTrail(nil, store, logger.Discard())
		trail.Record("النظام", "action")
		if len(store.saved) != 1 {
			t.Fatalf("expected 1 persistence call, got %d", len(store.saved))
		}
	})

	t.Run("persistence failure keeps the in-memory entry", func(t *testing.T) {
		store := &stubStore{saveErr: errors.New("disk full")}
		trail := NewTrail(nil, store, logger.Discard())
		trail.Record("النظام", "action")
		if len(trail.Entries()) != 1 {
			t.Errorf("entry lost after failed persist")
		}
	})
}

func TestTrailCap(t *testing.T) {
	trail := NewTrail(nil, &stubStore{}, logger.Discard())
	for i := 0; i < domain.AuditLogCap+1; i++ {
		trail.Record("النظام", fmt.Sprintf("action-%d", i))
	}

	entries := trail.Entries()
	if len(entries) != domain.AuditLogCap {
		t.Fatalf("expected %d entries, got %d", domain.AuditLogCap, len(entries))
	}
	if entries[0].Action != fmt.Sprintf("action-%d", domain.AuditLogCap) {
		t.Errorf("newest entry missing from the head: %q", entries[0].Action)
	}
	// The very first record is the one evicted.
	for _, e := range entries {
		if e.Action == "action-0" {
			t.Errorf("oldest entry was not evicted")
		}
	}
}

func TestTrailLoadTruncates(t *testing.T) {
	oversized := make([]domain.AuditEntry, domain.AuditLogCap+50)
	for i := range oversized {
		oversized[i] = domain.AuditEntry{ID: fmt.Sprintf("log-%d", i)}
	}

	trail := NewTrail(oversized, &stubStore{}, logger.Discard())
	if got := len(trail.Entries()); got != domain.AuditLogCap {
		t.Errorf("expected persisted trail truncated to %d, got %d", domain.AuditLogCap, got)
	}
}
