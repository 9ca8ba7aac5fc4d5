// Package auth tracks the signed-in operator and the emergency lock.
package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/logger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/interfaces"
)

// Roster resolves login usernames to roster entries, hash included.
type Roster interface {
	FindEmployee(username string) (domain.Employee, error)
}

type Service struct {
	mu         sync.Mutex
	current    *domain.Employee
	locked     bool
	unlockCode string
	roster     Roster
	audit      interfaces.AuditRecorder
	logger     logger.Logger
}

func NewService(roster Roster, unlockCode string, audit interfaces.AuditRecorder, lgr logger.Logger) *Service {
	return &Service{
		roster:     roster,
		unlockCode: unlockCode,
		audit:      audit,
		logger:     lgr,
	}
}

// Login verifies credentials against the roster. Wrong username and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(username, password string) (domain.Employee, error) {
	s.mu.Lock()
	locked := s.locked
	s.mu.Unlock()
	if locked {
		return domain.Employee{}, domain.ErrLocked
	}

	employee, err := s.roster.FindEmployee(username)
	if err != nil {
		return domain.Employee{}, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		s.logger.Debug("login_rejected", "Login rejected", "", map[string]interface{}{"username": username})
		return domain.Employee{}, domain.ErrInvalidCredentials
	}

	s.mu.Lock()
	s.current = &employee
	s.mu.Unlock()

	if employee.Role == domain.RoleAdmin {
		s.audit.Record(employee.Name, "تسجيل دخول المشرف")
	} else {
		s.audit.Record(employee.Name, "تسجيل دخول الكاشير")
	}

	employee.PasswordHash = ""
	return employee, nil
}

func (s *Service) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// CurrentActor returns the signed-in operator's display name, or the
// system placeholder when nobody is authenticated.
func (s *Service) CurrentActor() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.SystemActor
	}
	return s.current.Name
}

// Lock engages the emergency lock immediately.
func (s *Service) Lock() {
	s.mu.Lock()
	s.locked = true
	s.mu.Unlock()
}

// Unlock releases the emergency lock given the configured code.
func (s *Service) Unlock(code string) error {
	s.mu.Lock()
	if code != s.unlockCode {
		s.mu.Unlock()
		return domain.ErrInvalidUnlockCode
	}
	s.locked = false
	s.mu.Unlock()

	s.audit.Record(s.CurrentActor(), "تم فك قفل الطوارئ")
	return nil
}

func (s *Service) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}
