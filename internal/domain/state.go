package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an append-only drawer outflow; removed only by the
// end-of-day close.
type Expense struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// AuditEntry records one user action. The trail is append-only,
// newest-first, capped at AuditLogCap entries.
type AuditEntry struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// AuditLogCap bounds the audit trail; the oldest entry is evicted when
// the cap is exceeded.
const AuditLogCap = 200

// SystemActor names audit entries written when nobody is signed in.
const SystemActor = "النظام"

// InventoryItem is informational stock tracking; sales do not deplete it.
type InventoryItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
	MinLimit float64 `json:"minLimit"`
}

// Low reports whether the item has fallen to its reorder threshold.
func (i InventoryItem) Low() bool {
	return i.Quantity <= i.MinLimit
}

// Customer is a loyalty-list entry.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Points      int    `json:"points"`
	Notes       string `json:"notes"`
	OrdersCount int    `json:"ordersCount"`
}

// Role gates back-office access.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleCashier    Role = "cashier"
	RoleSupervisor Role = "supervisor"
)

// Employee is a roster entry. Passwords are stored only as bcrypt hashes.
type Employee struct {
	Username         string          `json:"username"`
	PasswordHash     string          `json:"passwordHash,omitempty"`
	Role             Role            `json:"role"`
	Name             string          `json:"name"`
	PerformanceScore int             `json:"performanceScore"`
	JoinedAt         string          `json:"joinedAt"`
	Salary           decimal.Decimal `json:"salary"`
	IsPresent        bool            `json:"isPresent"`
	DelaysCount      int             `json:"delaysCount"`
}

// WorkHours is the configured shift window.
type WorkHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Settings bundles the admin-configured system state.
type Settings struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	LogoURL        string          `json:"logo"`
	DarkMode       bool            `json:"darkMode"`
	WorkHours      WorkHours       `json:"workHours"`
}

// State is the full persisted bundle. Each slice maps to one logical
// storage key; a load failure for any key falls back to that key's
// default without aborting startup.
type State struct {
	Orders    []Order         `json:"orders"`
	Expenses  []Expense       `json:"expenses"`
	Inventory []InventoryItem `json:"inventory"`
	Customers []Customer      `json:"customers"`
	Employees []Employee      `json:"employees"`
	AuditLog  []AuditEntry    `json:"logs"`
	Settings  Settings        `json:"settings"`
}

// SafeSnapshot is the derived drawer report. Never persisted;
// recomputed on demand from the order and expense histories.
type SafeSnapshot struct {
	CashSales     decimal.Decimal `json:"cashSales"`
	VisaSales     decimal.Decimal `json:"visaSales"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetCash       decimal.Decimal `json:"netCash"`
	TotalSales    decimal.Decimal `json:"totalSales"`
}

// ComputeSafeSnapshot derives today's drawer figures. "Today" compares
// local calendar dates, not a rolling 24-hour window. Card sales never
// touch the physical drawer and are excluded from net cash.
func ComputeSafeSnapshot(orders []Order, expenses []Expense, openingBalance decimal.Decimal, now time.Time) SafeSnapshot {
	cash := decimal.Zero
	visa := decimal.Zero
	for _, o := range orders {
		if !sameDay(o.Timestamp, now) {
			continue
		}
		switch o.PaymentMethod {
		case PaymentCash:
			cash = cash.Add(o.Total)
		case PaymentVisa:
			visa = visa.Add(o.Total)
		}
	}

	spent := decimal.Zero
	for _, e := range expenses {
		if sameDay(e.Timestamp, now) {
			spent = spent.Add(e.Amount)
		}
	}

	return SafeSnapshot{
		CashSales:     cash,
		VisaSales:     visa,
		TotalExpenses: spent,
		NetCash:       openingBalance.Add(cash).Sub(spent),
		TotalSales:    cash.Add(visa),
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
