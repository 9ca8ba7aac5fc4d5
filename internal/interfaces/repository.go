package interfaces

import (
	"context"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
)

// Store is the persistence contract shared by the file and Postgres
// drivers. Writes happen after every state change and are best-effort:
// a failed write is logged by the caller and never rolls back the
// in-memory mutation that already succeeded.
type Store interface {
	// Load assembles the full state bundle. A missing or unreadable
	// key yields that key's default; Load never fails the whole
	// startup over one bad record.
	Load(ctx context.Context) (*domain.State, error)

	AppendOrder(ctx context.Context, order domain.Order) error
	AppendExpense(ctx context.Context, expense domain.Expense) error

	// ClearHistory irreversibly drops all orders and expenses.
	ClearHistory(ctx context.Context) error

	SaveInventory(ctx context.Context, items []domain.InventoryItem) error
	SaveCustomers(ctx context.Context, customers []domain.Customer) error
	SaveEmployees(ctx context.Context, employees []domain.Employee) error
	SaveSettings(ctx context.Context, settings domain.Settings) error
	SaveAuditLog(ctx context.Context, entries []domain.AuditEntry) error

	Close()
}

// AuditRecorder is the cross-cutting sink for user-action records.
type AuditRecorder interface {
	Record(actor, action string)
}

// Session supplies the acting cashier's display name, or the system
// placeholder when nobody is signed in.
type Session interface {
	CurrentActor() string
}
