package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/app/backoffice"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/app/ledger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/audit"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
)

// AdminHandler exposes the drawer report, expense log, and the
// back-office state.
type AdminHandler struct {
	ledger     *ledger.Service
	backoffice *backoffice.Service
	trail      *audit.Trail
}

func NewAdminHandler(ledgerSvc *ledger.Service, backofficeSvc *backoffice.Service, trail *audit.Trail) *AdminHandler {
	return &AdminHandler{ledger: ledgerSvc, backoffice: backofficeSvc, trail: trail}
}

// --- Safe / ledger ---

func (h *AdminHandler) GetSafe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Snapshot())
}

func (h *AdminHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Orders())
}

type CloseDayRequest struct {
	Confirm bool `json:"confirm"`
}

func (h *AdminHandler) CloseDay(w http.ResponseWriter, r *http.Request) {
	var req CloseDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.ledger.CloseDay(req.Confirm); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.ledger.Snapshot())
}

type OpeningBalanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *AdminHandler) SetOpeningBalance(w http.ResponseWriter, r *http.Request) {
	var req OpeningBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.backoffice.SetOpeningBalance(req.Amount); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.ledger.Snapshot())
}

// --- Expenses ---

func (h *AdminHandler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Expenses())
}

type AddExpenseRequest struct {
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
}

func (h *AdminHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req AddExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	expense, err := h.ledger.AddExpense(req.Title, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

// --- Inventory ---

func (h *AdminHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.backoffice.Inventory())
}

func (h *AdminHandler) GetLowStock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.backoffice.LowStock())
}

type UpdateInventoryRequest struct {
	Quantity float64 `json:"quantity"`
	MinLimit float64 `json:"minLimit"`
}

func (h *AdminHandler) UpdateInventoryItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item, err := h.backoffice.UpdateInventoryItem(chi.URLParam(r, "id"), req.Quantity, req.MinLimit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// --- Customers ---

func (h *AdminHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.backoffice.Customers())
}

type AddCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (h *AdminHandler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	var req AddCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusCreated, h.backoffice.AddCustomer(req.Name, req.Phone, req.Address, req.Notes))
}

func (h *AdminHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	customer.ID = chi.URLParam(r, "id")
	updated, err := h.backoffice.UpdateCustomer(customer)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// --- Employees ---

func (h *AdminHandler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.backoffice.Employees())
}

type AttendanceRequest struct {
	Present bool `json:"present"`
}

func (h *AdminHandler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req AttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.backoffice.MarkAttendance(chi.URLParam(r, "username"), req.Present); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) RecordDelay(w http.ResponseWriter, r *http.Request) {
	if err := h.backoffice.RecordDelay(chi.URLParam(r, "username")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Audit log ---

func (h *AdminHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.trail.Entries())
}

// --- Settings ---

func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.backoffice.Settings())
}

type UpdateSettingsRequest struct {
	LogoURL   string           `json:"logo"`
	DarkMode  bool             `json:"darkMode"`
	WorkHours domain.WorkHours `json:"workHours"`
}

func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, h.backoffice.UpdateSettings(req.LogoURL, req.DarkMode, req.WorkHours))
}
