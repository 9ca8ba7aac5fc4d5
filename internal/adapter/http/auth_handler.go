package http

import (
	"encoding/json"
	"net/http"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/app/auth"
)

type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	employee, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Lock(w http.ResponseWriter, r *http.Request) {
	h.service.Lock()
	w.WriteHeader(http.StatusNoContent)
}

type UnlockRequest struct {
	Code string `json:"code"`
}

func (h *AuthHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	var req UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.service.Unlock(req.Code); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
