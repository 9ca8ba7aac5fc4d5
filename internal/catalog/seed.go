package catalog

import (
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
)

// SeedInventory is the stock list installed on first run.
func SeedInventory() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: "mat-flour", Name: "دقيق فاخر", Unit: "كجم", Quantity: 150, MinLimit: 20},
		{ID: "mat-cheese", Name: "جبنة موتزاريلا", Unit: "كجم", Quantity: 80, MinLimit: 10},
		{ID: "mat-chicken", Name: "صدور دجاج", Unit: "كجم", Quantity: 45, MinLimit: 5},
		{ID: "mat-meat", Name: "لحم بقري", Unit: "كجم", Quantity: 40, MinLimit: 5},
		{ID: "mat-dough", Name: "عجينة بيتزا جاهزة", Unit: "قطعة", Quantity: 200, MinLimit: 20},
	}
}

// SeedEmployees builds the default roster with bcrypt password hashes.
// Default credentials are dev-grade and expected to be replaced by the
// admin after first login.
func SeedEmployees() []domain.Employee {
	return []domain.Employee{
		{
			Username:         "admin",
			PasswordHash:     mustHash("admin"),
			Role:             domain.RoleAdmin,
			Name:             "محمود حسن",
			PerformanceScore: 99,
			JoinedAt:         "2023-01-01",
			Salary:           decimal.NewFromInt(15000),
		},
		{
			Username:         "cashier",
			PasswordHash:     mustHash("123"),
			Role:             domain.RoleCashier,
			Name:             "رضا البغدي",
			PerformanceScore: 85,
			JoinedAt:         "2023-06-01",
			Salary:           decimal.NewFromInt(4500),
			DelaysCount:      2,
		},
	}
}

// DefaultSettings is the configuration installed on first run.
func DefaultSettings() domain.Settings {
	return domain.Settings{
		OpeningBalance: decimal.Zero,
		LogoURL:        "https://img.icons8.com/color/120/pizza.png",
		WorkHours:      domain.WorkHours{Start: "16:00", End: "00:00"},
	}
}

// DefaultState assembles the full fallback bundle used for any storage
// key that is missing or unreadable.
func DefaultState() *domain.State {
	return &domain.State{
		Orders:    []domain.Order{},
		Expenses:  []domain.Expense{},
		Inventory: SeedInventory(),
		Customers: []domain.Customer{},
		Employees: SeedEmployees(),
		AuditLog:  []domain.AuditEntry{},
		Settings:  DefaultSettings(),
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
