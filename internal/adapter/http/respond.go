package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError maps domain sentinels to HTTP statuses; anything
// unrecognized is a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidVariant),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrConfigurableProduct),
		errors.Is(err, domain.ErrNotConfigurable),
		errors.Is(err, domain.ErrInvalidOrderType),
		errors.Is(err, domain.ErrInvalidPaymentMethod),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrExpenseTitleRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrLineItemNotFound),
		errors.Is(err, domain.ErrUnknownProduct),
		errors.Is(err, domain.ErrUnknownTopping),
		errors.Is(err, domain.ErrUnknownCustomer),
		errors.Is(err, domain.ErrUnknownEmployee),
		errors.Is(err, domain.ErrUnknownInventoryItem):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConfirmationRequired):
		writeError(w, http.StatusPreconditionRequired, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidUnlockCode):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrLocked):
		writeError(w, http.StatusLocked, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
