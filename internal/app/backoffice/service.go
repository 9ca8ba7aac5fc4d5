// Package backoffice manages the administrative state: inventory,
// customers, the employee roster, and system settings.
package backoffice

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/logger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/interfaces"
)

type Service struct {
	mu        sync.Mutex
	inventory []domain.InventoryItem
	customers []domain.Customer
	employees []domain.Employee
	settings  domain.Settings
	store     interfaces.Store
	audit     interfaces.AuditRecorder
	session   interfaces.Session
	logger    logger.Logger
}

func NewService(initial *domain.State, store interfaces.Store, audit interfaces.AuditRecorder, session interfaces.Session, lgr logger.Logger) *Service {
	s := &Service{
		store:    store,
		audit:    audit,
		session:  session,
		logger:   lgr,
		settings: initial.Settings,
	}
	s.inventory = append(s.inventory, initial.Inventory...)
	s.customers = append(s.customers, initial.Customers...)
	s.employees = append(s.employees, initial.Employees...)
	return s
}

// SetSession wires the session after construction. The auth service
// needs the roster to exist before it can be built, so the session is
// attached once both sides are up.
func (s *Service) SetSession(session interfaces.Session) {
	s.session = session
}

// --- Inventory (informational only; sales never deplete it) ---

func (s *Service) Inventory() []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.InventoryItem, len(s.inventory))
	copy(out, s.inventory)
	return out
}

func (s *Service) UpdateInventoryItem(id string, quantity, minLimit float64) (domain.InventoryItem, error) {
	s.mu.Lock()
	var updated domain.InventoryItem
	found := false
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			s.inventory[i].Quantity = quantity
			s.inventory[i].MinLimit = minLimit
			updated = s.inventory[i]
			found = true
			break
		}
	}
	items := make([]domain.InventoryItem, len(s.inventory))
	copy(items, s.inventory)
	s.mu.Unlock()

	if !found {
		return domain.InventoryItem{}, fmt.Errorf("inventory %q: %w", id, domain.ErrUnknownInventoryItem)
	}

	s.persistInventory(items)
	s.audit.Record(s.session.CurrentActor(), fmt.Sprintf("تعديل مخزون: %s", updated.Name))
	return updated, nil
}

// LowStock lists items at or below their reorder threshold.
func (s *Service) LowStock() []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.InventoryItem
	for _, item := range s.inventory {
		if item.Low() {
			out = append(out, item)
		}
	}
	return out
}

// --- Customers ---

func (s *Service) Customers() []domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

func (s *Service) AddCustomer(name, phone, address, notes string) domain.Customer {
	customer := domain.Customer{
		ID:      fmt.Sprintf("cust-%s", uuid.NewString()),
		Name:    name,
		Phone:   phone,
		Address: address,
		Notes:   notes,
	}

	s.mu.Lock()
	s.customers = append(s.customers, customer)
	customers := make([]domain.Customer, len(s.customers))
	copy(customers, s.customers)
	s.mu.Unlock()

	s.persistCustomers(customers)
	s.audit.Record(s.session.CurrentActor(), fmt.Sprintf("إضافة عميل: %s", customer.Name))
	return customer
}

func (s *Service) UpdateCustomer(updated domain.Customer) (domain.Customer, error) {
	s.mu.Lock()
	found := false
	for i := range s.customers {
		if s.customers[i].ID == updated.ID {
			s.customers[i] = updated
			found = true
			break
		}
	}
	customers := make([]domain.Customer, len(s.customers))
	copy(customers, s.customers)
	s.mu.Unlock()

	if !found {
		return domain.Customer{}, fmt.Errorf("customer %q: %w", updated.ID, domain.ErrUnknownCustomer)
	}

	s.persistCustomers(customers)
	return updated, nil
}

// --- Employees ---

// Employees returns the roster with password hashes blanked.
func (s *Service) Employees() []domain.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Employee, len(s.employees))
	copy(out, s.employees)
	for i := range out {
		out[i].PasswordHash = ""
	}
	return out
}

// FindEmployee looks up a roster entry by username, hash included.
// Used by the auth service for credential checks.
func (s *Service) FindEmployee(username string) (domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.employees {
		if e.Username == username {
			return e, nil
		}
	}
	return domain.Employee{}, fmt.Errorf("employee %q: %w", username, domain.ErrUnknownEmployee)
}

// MarkAttendance flags an employee present or absent for the shift.
func (s *Service) MarkAttendance(username string, present bool) error {
	return s.updateEmployee(username, func(e *domain.Employee) {
		e.IsPresent = present
	})
}

// RecordDelay increments an employee's late-arrival counter.
func (s *Service) RecordDelay(username string) error {
	return s.updateEmployee(username, func(e *domain.Employee) {
		e.DelaysCount++
	})
}

func (s *Service) updateEmployee(username string, apply func(*domain.Employee)) error {
	s.mu.Lock()
	found := false
	for i := range s.employees {
		if s.employees[i].Username == username {
			apply(&s.employees[i])
			found = true
			break
		}
	}
	employees := make([]domain.Employee, len(s.employees))
	copy(employees, s.employees)
	s.mu.Unlock()

	if !found {
		return fmt.Errorf("employee %q: %w", username, domain.ErrUnknownEmployee)
	}

	s.persistEmployees(employees)
	return nil
}

// --- Settings ---

func (s *Service) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// OpeningBalance satisfies the ledger's balance provider.
func (s *Service) OpeningBalance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.OpeningBalance
}

// SetOpeningBalance records the admin-configured start-of-day float.
func (s *Service) SetOpeningBalance(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domain.ErrNegativeAmount
	}

	s.mu.Lock()
	s.settings.OpeningBalance = amount
	settings := s.settings
	s.mu.Unlock()

	s.persistSettings(settings)
	s.audit.Record(s.session.CurrentActor(), "تعديل إعدادات النظام")
	return nil
}

// UpdateSettings replaces the display and shift configuration. The
// opening balance is managed separately and preserved.
func (s *Service) UpdateSettings(logoURL string, darkMode bool, hours domain.WorkHours) domain.Settings {
	s.mu.Lock()
	s.settings.LogoURL = logoURL
	s.settings.DarkMode = darkMode
	s.settings.WorkHours = hours
	settings := s.settings
	s.mu.Unlock()

	s.persistSettings(settings)
	s.audit.Record(s.session.CurrentActor(), "تعديل إعدادات النظام")
	return settings
}

// --- Persistence (best effort, never rolls back memory) ---

func (s *Service) persistInventory(items []domain.InventoryItem) {
	if err := s.store.SaveInventory(context.Background(), items); err != nil {
		s.logger.Error("inventory_persist_failed", "Failed to persist inventory", "", nil, err)
	}
}

func (s *Service) persistCustomers(customers []domain.Customer) {
	if err := s.store.SaveCustomers(context.Background(), customers); err != nil {
		s.logger.Error("customers_persist_failed", "Failed to persist customers", "", nil, err)
	}
}

func (s *Service) persistEmployees(employees []domain.Employee) {
	if err := s.store.SaveEmployees(context.Background(), employees); err != nil {
		s.logger.Error("employees_persist_failed", "Failed to persist employees", "", nil, err)
	}
}

func (s *Service) persistSettings(settings domain.Settings) {
	if err := s.store.SaveSettings(context.Background(), settings); err != nil {
		s.logger.Error("settings_persist_failed", "Failed to persist settings", "", nil, err)
	}
}
