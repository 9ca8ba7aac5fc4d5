package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/logger"
)

func LoggingMiddleware(lgr logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := fmt.Sprintf("req-%s", uuid.NewString())

			lgr.Debug("http_request", fmt.Sprintf("%s %s", r.Method, r.URL.Path), requestID, map[string]interface{}{
				"method": r.Method,
				"path":   r.URL.Path,
			})

			next.ServeHTTP(w, r)

			lgr.Debug("http_response", "Request completed", requestID, map[string]interface{}{
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}

func RecoveryMiddleware(lgr logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					lgr.Error("panic_recovered", "Panic recovered", "", map[string]interface{}{
						"path": r.URL.Path,
					}, fmt.Errorf("%v", err))
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// lockGuard rejects everything but the unlock endpoint while the
// emergency lock is engaged.
type lockChecker interface {
	Locked() bool
}

func LockMiddleware(auth lockChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth.Locked() && r.URL.Path != "/api/unlock" {
				writeError(w, http.StatusLocked, "system is emergency locked")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
