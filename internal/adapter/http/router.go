package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/logger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/app/auth"
)

// NewRouter assembles the API surface. The UI is a thin client over
// these endpoints; all domain rules live behind them.
func NewRouter(posH *PosHandler, adminH *AdminHandler, authH *AuthHandler, authSvc *auth.Service, lgr logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RecoveryMiddleware(lgr))
	r.Use(LoggingMiddleware(lgr))
	r.Use(LockMiddleware(authSvc))

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", authH.Login)
		r.Post("/logout", authH.Logout)
		r.Post("/lock", authH.Lock)
		r.Post("/unlock", authH.Unlock)

		r.Get("/catalog", posH.GetCatalog)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", posH.GetCart)
			r.Delete("/", posH.ClearCart)
			r.Post("/items", posH.AddSimple)
			r.Post("/pizza", posH.ConfigurePizza)
			r.Delete("/items/{id}", posH.RemoveLine)
			r.Post("/items/{id}/increment", posH.IncrementLine)
			r.Post("/items/{id}/decrement", posH.DecrementLine)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", adminH.GetOrders)
			r.Post("/", posH.Checkout)
		})

		r.Route("/safe", func(r chi.Router) {
			r.Get("/", adminH.GetSafe)
			r.Post("/close", adminH.CloseDay)
			r.Put("/opening-balance", adminH.SetOpeningBalance)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", adminH.GetExpenses)
			r.Post("/", adminH.AddExpense)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", adminH.GetInventory)
			r.Get("/low", adminH.GetLowStock)
			r.Put("/{id}", adminH.UpdateInventoryItem)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", adminH.GetCustomers)
			r.Post("/", adminH.AddCustomer)
			r.Put("/{id}", adminH.UpdateCustomer)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", adminH.GetEmployees)
			r.Post("/{username}/attendance", adminH.MarkAttendance)
			r.Post("/{username}/delay", adminH.RecordDelay)
		})

		r.Get("/logs", adminH.GetAuditLog)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", adminH.GetSettings)
			r.Put("/", adminH.UpdateSettings)
		})
	})

	return r
}
