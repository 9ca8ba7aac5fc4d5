package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/logger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
)

type stubRoster struct {
	employees map[string]domain.Employee
}

func (r *stubRoster) FindEmployee(username string) (domain.Employee, error) {
	e, ok := r.employees[username]
	if !ok {
		return domain.Employee{}, domain.ErrUnknownEmployee
	}
	return e, nil
}

type stubAudit struct{ records []string }

func (a *stubAudit) Record(actor, action string) {
	a.records = append(a.records, actor+": "+action)
}

func newTestService(t *testing.T) (*Service, *stubAudit) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	roster := &stubRoster{employees: map[string]domain.Employee{
		"cashier": {Username: "cashier", Name: "رضا البغدي", Role: domain.RoleCashier, PasswordHash: string(hash)},
	}}
	trail := &stubAudit{}
	return NewService(roster, "999", trail, logger.Discard()), trail
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials sign the operator in", func(t *testing.T) {
		svc, trail := newTestService(t)
		employee, err := svc.Login("cashier", "123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if employee.PasswordHash != "" {
			t.Errorf("password hash must never leave the service")
		}
		if svc.CurrentActor() != "رضا البغدي" {
			t.Errorf("expected current actor set, got %q", svc.CurrentActor())
		}
		if len(trail.records) != 1 {
			t.Errorf("login must be audited")
		}
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, badPass := svc.Login("cashier", "wrong")
		_, badUser := svc.Login("ghost", "123")
		if !errors.Is(badPass, domain.ErrInvalidCredentials) || !errors.Is(badUser, domain.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for both, got %v / %v", badPass, badUser)
		}
	})

	t.Run("login is refused while locked", func(t *testing.T) {
		svc, _ := newTestService(t)
		svc.Lock()
		if _, err := svc.Login("cashier", "123"); !errors.Is(err, domain.ErrLocked) {
			t.Errorf("expected ErrLocked, got %v", err)
		}
	})
}

func TestCurrentActor(t *testing.T) {
	svc, _ := newTestService(t)
	if svc.CurrentActor() != domain.SystemActor {
		t.Errorf("expected system placeholder before login, got %q", svc.CurrentActor())
	}

	if _, err := svc.Login("cashier", "123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.Logout()
	if svc.CurrentActor() != domain.SystemActor {
		t.Errorf("expected system placeholder after logout, got %q", svc.CurrentActor())
	}
}

func TestEmergencyLock(t *testing.T) {
	t.Run("wrong code keeps the lock engaged", func(t *testing.T) {
		svc, _ := newTestService(t)
		svc.Lock()
		if err := svc.Unlock("000"); !errors.Is(err, domain.ErrInvalidUnlockCode) {
			t.Errorf("expected ErrInvalidUnlockCode, got %v", err)
		}
		if !svc.Locked() {
			t.Errorf("lock must stay engaged after a failed unlock")
		}
	})

	t.Run("correct code releases and audits", func(t *testing.T) {
		svc, trail := newTestService(t)
		svc.Lock()
		if err := svc.Unlock("999"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.Locked() {
			t.Errorf("lock must release on the correct code")
		}
		if len(trail.records) != 1 {
			t.Errorf("unlock must be audited")
		}
	})
}
