// Package audit keeps the bounded, append-only trail of user actions.
package audit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/logger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/interfaces"
)

// Trail records user actions newest-first, capped at
// domain.AuditLogCap entries. Every append is persisted best-effort;
// a failed write is logged and the in-memory trail stands.
type Trail struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
	store   interfaces.Store
	logger  logger.Logger
	now     func() time.Time
}

func NewTrail(initial []domain.AuditEntry, store interfaces.Store, lgr logger.Logger) *Trail {
	entries := make([]domain.AuditEntry, len(initial))
	copy(entries, initial)
	if len(entries) > domain.AuditLogCap {
		entries = entries[:domain.AuditLogCap]
	}
	return &Trail{
		entries: entries,
		store:   store,
		logger:  lgr,
		now:     time.Now,
	}
}

// Record prepends one entry and evicts the oldest beyond the cap.
func (t *Trail) Record(actor, action string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry := domain.AuditEntry{
		ID:        fmt.Sprintf("log-%s", uuid.NewString()),
		User:      actor,
		Action:    action,
		Timestamp: t.now(),
	}

	t.entries = append([]domain.AuditEntry{entry}, t.entries...)
	if len(t.entries) > domain.AuditLogCap {
		t.entries = t.entries[:domain.AuditLogCap]
	}

	if err := t.store.SaveAuditLog(context.Background(), t.entries); err != nil {
		t.logger.Error("audit_persist_failed", "Failed to persist audit log", "", nil, err)
	}
}

// Entries returns the trail newest-first.
func (t *Trail) Entries() []domain.AuditEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]domain.AuditEntry, len(t.entries))
	copy(out, t.entries)
	return out
}
