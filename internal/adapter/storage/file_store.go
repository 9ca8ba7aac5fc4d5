// Package storage persists the POS state to one JSON document per
// logical key under a local data directory. Every write replaces the
// whole key atomically (temp file + rename), once per state change —
// never batched, never debounced.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/logger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
)

const (
	keyOrders    = "orders"
	keyExpenses  = "expenses"
	keyInventory = "inventory"
	keyCustomers = "customers"
	keyEmployees = "employees"
	keySettings  = "settings"
	keyLogs      = "logs"
)

// FileStore implements interfaces.Store over per-key JSON files.
type FileStore struct {
	mu       sync.Mutex
	dir      string
	defaults *domain.State
	logger   logger.Logger
}

// NewFileStore opens (creating if needed) the data directory. The
// defaults bundle supplies the fallback value for any key that is
// missing or unreadable at load time.
func NewFileStore(dir string, defaults *domain.State, lgr logger.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir, defaults: defaults, logger: lgr}, nil
}

// Load reads every key independently. A corrupt or absent key falls
// back to its default; startup is never aborted over one bad record.
func (s *FileStore) Load(ctx context.Context) (*domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := &domain.State{}
	s.readKey(keyOrders, &state.Orders, s.defaults.Orders)
	s.readKey(keyExpenses, &state.Expenses, s.defaults.Expenses)
	s.readKey(keyInventory, &state.Inventory, s.defaults.Inventory)
	s.readKey(keyCustomers, &state.Customers, s.defaults.Customers)
	s.readKey(keyEmployees, &state.Employees, s.defaults.Employees)
	s.readKey(keyLogs, &state.AuditLog, s.defaults.AuditLog)
	s.readKey(keySettings, &state.Settings, s.defaults.Settings)
	return state, nil
}

func (s *FileStore) AppendOrder(ctx context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var orders []domain.Order
	s.readKey(keyOrders, &orders, s.defaults.Orders)
	orders = append([]domain.Order{order}, orders...)
	return s.writeKey(keyOrders, orders)
}

func (s *FileStore) AppendExpense(ctx context.Context, expense domain.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expenses []domain.Expense
	s.readKey(keyExpenses, &expenses, s.defaults.Expenses)
	expenses = append([]domain.Expense{expense}, expenses...)
	return s.writeKey(keyExpenses, expenses)
}

func (s *FileStore) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeKey(keyOrders, []domain.Order{}); err != nil {
		return err
	}
	return s.writeKey(keyExpenses, []domain.Expense{})
}

func (s *FileStore) SaveInventory(ctx context.Context, items []domain.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeKey(keyInventory, items)
}

func (s *FileStore) SaveCustomers(ctx context.Context, customers []domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeKey(keyCustomers, customers)
}

func (s *FileStore) SaveEmployees(ctx context.Context, employees []domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeKey(keyEmployees, employees)
}

func (s *FileStore) SaveSettings(ctx context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeKey(keySettings, settings)
}

func (s *FileStore) SaveAuditLog(ctx context.Context, entries []domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeKey(keyLogs, entries)
}

func (s *FileStore) Close() {}

// readKey decodes one key's file into dst, substituting def on any
// failure. dst must be a pointer to the same type as def.
func (s *FileStore) readKey(key string, dst any, def any) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Error("state_read_failed", "Failed to read state key, using default", "", map[string]interface{}{"key": key}, err)
		}
		assign(dst, def)
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Error("state_decode_failed", "Failed to decode state key, using default", "", map[string]interface{}{"key": key}, err)
		assign(dst, def)
	}
}

func assign(dst any, def any) {
	raw, err := json.Marshal(def)
	if err != nil {
		return
	}
	_ = json.Unmarshal(raw, dst)
}

// writeKey replaces the key's file atomically.
func (s *FileStore) writeKey(key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
