package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nqbjnh/go-shop/internal/basket/domain"
	"github.com/nqbjnh/go-shop/internal/basket/service"
)

type BasketHandler struct {
	service *service.BasketService
}

func NewBasketHandler(svc *service.BasketService) *BasketHandler {
	return &BasketHandler{service: svc}
}

func (h *BasketHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{username}", h.GetBasket)
	r.Post("/", h.UpdateBasket)
	r.Delete("/{username}", h.DeleteBasket)
	r.Post("/checkout", h.Checkout)
	return r
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (h *BasketHandler) GetBasket(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "username is required")
		return
	}

	cart, err := h.service.GetBasket(r.Context(), username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *BasketHandler) UpdateBasket(w http.ResponseWriter, r *http.Request) {
	var cart domain.ShoppingCart
	if err := json.NewDecoder(r.Body).Decode(&cart); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if cart.UserName == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "user_name is required")
		return
	}
	for _, item := range cart.Items {
		if item.Quantity <= 0 {
			respondError(w, http.StatusBadRequest, "invalid_quantity", "item quantity must be positive")
			return
		}
		if item.Price < 0 {
			respondError(w, http.StatusBadRequest, "invalid_price", "item price must not be negative")
			return
		}
	}

	stored, err := h.service.UpdateBasket(r.Context(), &cart)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stored)
}

func (h *BasketHandler) DeleteBasket(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "username is required")
		return
	}

	if err := h.service.DeleteBasket(r.Context(), username); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *BasketHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var checkout domain.BasketCheckout
	if err := json.NewDecoder(r.Body).Decode(&checkout); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if checkout.UserName == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "user_name is required")
		return
	}

	event, err := h.service.Checkout(r.Context(), &checkout)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{
		"event_id": event.EventID.String(),
		"status":   "accepted",
	})
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNoBasket):
		respondError(w, http.StatusBadRequest, "no_basket", err.Error())
	case errors.Is(err, service.ErrDiscountUnavailable),
		errors.Is(err, service.ErrPublishFailed):
		respondError(w, http.StatusServiceUnavailable, "upstream_unavailable", err.Error())
	case errors.Is(err, service.ErrStoreUnavailable):
		respondError(w, http.StatusInternalServerError, "store_failure", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
