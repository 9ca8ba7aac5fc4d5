package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ahmedsasa87-beep/cashier-Reda/internal/adapter/logger"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/app/pos"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/catalog"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/domain"
	"github.com/ahmedsasa87-beep/cashier-Reda/internal/interfaces"
)

// PosHandler exposes the cart and checkout flow.
type PosHandler struct {
	service *pos.Service
	catalog *catalog.Catalog
	logger  logger.Logger
}

func NewPosHandler(service *pos.Service, cat *catalog.Catalog, lgr logger.Logger) *PosHandler {
	return &PosHandler{service: service, catalog: cat, logger: lgr}
}

type CatalogResponse struct {
	Products []domain.Product `json:"products"`
	Toppings []domain.Topping `json:"toppings"`
}

func (h *PosHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CatalogResponse{
		Products: h.catalog.Products(),
		Toppings: h.catalog.Toppings(),
	})
}

func (h *PosHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Cart())
}

type AddSimpleRequest struct {
	ProductID string `json:"product_id"`
	Variant   string `json:"variant,omitempty"`
}

func (h *PosHandler) AddSimple(w http.ResponseWriter, r *http.Request) {
	var req AddSimpleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.service.AddSimple(interfaces.AddSimpleCommand{
		ProductID: req.ProductID,
		Variant:   domain.Variant(req.Variant),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

type ConfigurePizzaRequest struct {
	ProductID         string          `json:"product_id"`
	Size              string          `json:"size"`
	StuffedCrust      bool            `json:"stuffed_crust"`
	StuffedCrustPrice decimal.Decimal `json:"stuffed_crust_price"`
	ToppingIDs        []string        `json:"topping_ids"`
}

func (h *PosHandler) ConfigurePizza(w http.ResponseWriter, r *http.Request) {
	var req ConfigurePizzaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.service.ConfigurePizza(interfaces.ConfigurePizzaCommand{
		ProductID:         req.ProductID,
		Size:              domain.Variant(req.Size),
		StuffedCrust:      req.StuffedCrust,
		StuffedCrustPrice: req.StuffedCrustPrice,
		ToppingIDs:        req.ToppingIDs,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *PosHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.RemoveLine(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *PosHandler) IncrementLine(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.IncrementLine(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *PosHandler) DecrementLine(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.DecrementLine(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *PosHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ClearCart())
}

type CheckoutRequest struct {
	Discount      decimal.Decimal `json:"discount"`
	DeliveryFees  decimal.Decimal `json:"delivery_fees"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PaymentMethod string          `json:"payment_method"`
	OrderType     string          `json:"order_type"`
}

func (h *PosHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.service.Checkout(interfaces.CheckoutCommand{
		Discount:      req.Discount,
		DeliveryFees:  req.DeliveryFees,
		PaidAmount:    req.PaidAmount,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		OrderType:     domain.OrderType(req.OrderType),
	})
	if err != nil {
		h.logger.Debug("checkout_rejected", "Checkout rejected", "", map[string]interface{}{"reason": err.Error()})
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}
