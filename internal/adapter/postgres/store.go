package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/interfaces"
)

const settingsKey = "settings"

// Store implements interfaces.Store on Postgres. Appends are single
// transactions; the Save* operations replace their table wholesale,
// mirroring the write-per-change cadence of the file driver.
type Store struct {
	db       DB
	defaults *domain.State
}

func NewStore(db DB, defaults *domain.State) interfaces.Store {
	return &Store{db: db, defaults: defaults}
}

func (s *Store) Load(ctx context.Context) (*domain.State, error) {
	state := &domain.State{}

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	state.Orders = orders

	expenses, err := s.loadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	state.Expenses = expenses

	if state.Inventory, err = s.loadInventory(ctx); err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	if state.Customers, err = s.loadCustomers(ctx); err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	if state.Employees, err = s.loadEmployees(ctx); err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	if state.AuditLog, err = s.loadAuditLog(ctx); err != nil {
		return nil, fmt.Errorf("failed to load audit log: %w", err)
	}
	if state.Settings, err = s.loadSettings(ctx); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	// First run: install the seed data.
	if len(state.Inventory) == 0 {
		state.Inventory = s.defaults.Inventory
	}
	if len(state.Employees) == 0 {
		state.Employees = s.defaults.Employees
	}

	return state, nil
}

func (s *Store) AppendOrder(ctx context.Context, order domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO orders (id, items, subtotal, discount, delivery_fees, total,
		                    paid_amount, change_amount, payment_method, status,
		                    order_type, cashier, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		order.ID, items, order.Subtotal.String(), order.Discount.String(),
		order.DeliveryFees.String(), order.Total.String(), order.PaidAmount.String(),
		order.ChangeAmount.String(), string(order.PaymentMethod), string(order.Status),
		string(order.OrderType), order.Cashier, order.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (s *Store) AppendExpense(ctx context.Context, expense domain.Expense) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO expenses (id, title, amount, created_at)
		VALUES ($1, $2, $3, $4)
	`, expense.ID, expense.Title, expense.Amount.String(), expense.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

func (s *Store) ClearHistory(ctx context.Context) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM orders`); err != nil {
		return fmt.Errorf("failed to clear orders: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("failed to clear expenses: %w", err)
	}
	return tx.Commit(ctx)
}

func (s *Store) SaveInventory(ctx context.Context, items []domain.InventoryItem) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM inventory`); err != nil {
		return fmt.Errorf("failed to clear inventory: %w", err)
	}
	for _, item := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO inventory (id, name, unit, quantity, min_limit)
			VALUES ($1, $2, $3, $4, $5)
		`, item.ID, item.Name, item.Unit, item.Quantity, item.MinLimit)
		if err != nil {
			return fmt.Errorf("failed to insert inventory item: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) SaveCustomers(ctx context.Context, customers []domain.Customer) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM customers`); err != nil {
		return fmt.Errorf("failed to clear customers: %w", err)
	}
	for _, c := range customers {
		_, err := tx.Exec(ctx, `
			INSERT INTO customers (id, name, phone, address, points, notes, orders_count)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, c.ID, c.Name, c.Phone, c.Address, c.Points, c.Notes, c.OrdersCount)
		if err != nil {
			return fmt.Errorf("failed to insert customer: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) SaveEmployees(ctx context.Context, employees []domain.Employee) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}
	for _, e := range employees {
		_, err := tx.Exec(ctx, `
			INSERT INTO employees (username, password_hash, role, name, performance_score,
			                       joined_at, salary, is_present, delays_count)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, e.Username, e.PasswordHash, string(e.Role), e.Name, e.PerformanceScore,
			e.JoinedAt, e.Salary.String(), e.IsPresent, e.DelaysCount)
		if err != nil {
			return fmt.Errorf("failed to insert employee: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, settingsKey, value)
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}
	return nil
}

func (s *Store) SaveAuditLog(ctx context.Context, entries []domain.AuditEntry) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM audit_log`); err != nil {
		return fmt.Errorf("failed to clear audit log: %w", err)
	}
	for i, entry := range entries {
		_, err := tx.Exec(ctx, `
			INSERT INTO audit_log (id, position, actor, action, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, entry.ID, i, entry.User, entry.Action, entry.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to insert audit entry: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) Close() {
	s.db.Close()
}

func (s *Store) loadOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, items, subtotal::text, discount::text, delivery_fees::text,
		       total::text, paid_amount::text, change_amount::text,
		       payment_method, status, order_type, cashier, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		var items []byte
		var subtotal, discount, fees, total, paid, change string
		var method, status, orderType string
		var createdAt time.Time
		if err := rows.Scan(&o.ID, &items, &subtotal, &discount, &fees, &total,
			&paid, &change, &method, &status, &orderType, &o.Cashier, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("failed to decode order items: %w", err)
		}
		if o.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
			return nil, err
		}
		if o.Discount, err = decimal.NewFromString(discount); err != nil {
			return nil, err
		}
		if o.DeliveryFees, err = decimal.NewFromString(fees); err != nil {
			return nil, err
		}
		if o.Total, err = decimal.NewFromString(total); err != nil {
			return nil, err
		}
		if o.PaidAmount, err = decimal.NewFromString(paid); err != nil {
			return nil, err
		}
		if o.ChangeAmount, err = decimal.NewFromString(change); err != nil {
			return nil, err
		}
		o.PaymentMethod = domain.PaymentMethod(method)
		o.Status = domain.OrderStatus(status)
		o.OrderType = domain.OrderType(orderType)
		o.Timestamp = createdAt
		orders = append(orders, o)
	}
	return orders, nil
}

func (s *Store) loadExpenses(ctx context.Context) ([]domain.Expense, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, amount::text, created_at
		FROM expenses
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var (
			e      domain.Expense
			amount string
		)
		if err := rows.Scan(&e.ID, &e.Title, &amount, &e.Timestamp); err != nil {
			return nil, err
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func (s *Store) loadInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, unit, quantity, min_limit FROM inventory`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Unit, &item.Quantity, &item.MinLimit); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Store) loadCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, phone, address, points, notes, orders_count FROM customers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Points, &c.Notes, &c.OrdersCount); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (s *Store) loadEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := s.db.Query(ctx, `
		SELECT username, password_hash, role, name, performance_score,
		       joined_at, salary::text, is_present, delays_count
		FROM employees
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var (
			e      domain.Employee
			role   string
			salary string
		)
		if err := rows.Scan(&e.Username, &e.PasswordHash, &role, &e.Name,
			&e.PerformanceScore, &e.JoinedAt, &salary, &e.IsPresent, &e.DelaysCount); err != nil {
			return nil, err
		}
		if e.Salary, err = decimal.NewFromString(salary); err != nil {
			return nil, err
		}
		e.Role = domain.Role(role)
		employees = append(employees, e)
	}
	return employees, nil
}

func (s *Store) loadAuditLog(ctx context.Context) ([]domain.AuditEntry, error) {
	rows, err := s.db.Query(ctx, `SELECT id, actor, action, created_at FROM audit_log ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.AuditEntry{}
	for rows.Next() {
		var entry domain.AuditEntry
		if err := rows.Scan(&entry.ID, &entry.User, &entry.Action, &entry.Timestamp); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Store) loadSettings(ctx context.Context) (domain.Settings, error) {
	var value []byte
	err := s.db.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, settingsKey).Scan(&value)
	if err != nil {
		// No row yet means first run; fall back to defaults.
		return s.defaults.Settings, nil
	}

	var settings domain.Settings
	if err := json.Unmarshal(value, &settings); err != nil {
		return s.defaults.Settings, nil
	}
	return settings, nil
}
