package cart

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/loja-labs/backend-loja/internal/common"
)

// Handler wires the cart manager to HTTP.
type Handler struct {
	Manager  *Manager
	Currency string
}

type addItemPayload struct {
	ProductID string `json:"productId" validate:"required"`
	VariantID string `json:"variantId"`
	Qty       int    `json:"qty" validate:"omitempty,min=1"`
}

type updateItemPayload struct {
	Qty *int `json:"qty" validate:"required"`
}

type applyCouponPayload struct {
	Code string `json:"code" validate:"required"`
}

type quoteShippingPayload struct {
	CEP string `json:"cep" validate:"required"`
}

// Create allocates a new cart and returns its identifier.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.Manager == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "cart manager not configured", nil)
		return
	}
	store := h.Manager.Create(r.Context())
	common.JSONData(w, http.StatusCreated, map[string]any{"cartId": store.CartID})
}

// Get returns the cart snapshot with its pricing summary.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	h.writeSnapshot(w, store)
}

// AddItem adds or increments a cart line.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	var payload addItemPayload
	if err := common.DecodeJSON(r, &payload); err != nil {
		h.writeError(w, err)
		return
	}
	if err := store.AddItem(r.Context(), payload.ProductID, payload.VariantID, payload.Qty); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSnapshot(w, store)
}

// UpdateItem sets the quantity of a cart line; zero or below removes it.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	var payload updateItemPayload
	if err := common.DecodeJSON(r, &payload); err != nil {
		h.writeError(w, err)
		return
	}
	itemID := chi.URLParam(r, "itemId")
	if err := store.UpdateQuantity(r.Context(), itemID, *payload.Qty); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSnapshot(w, store)
}

// RemoveItem deletes a cart line.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	itemID := chi.URLParam(r, "itemId")
	if err := store.RemoveItem(r.Context(), itemID); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSnapshot(w, store)
}

// Clear empties the cart.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	store.Clear(r.Context())
	h.writeSnapshot(w, store)
}

// ApplyCoupon activates a coupon code on the cart.
func (h *Handler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	var payload applyCouponPayload
	if err := common.DecodeJSON(r, &payload); err != nil {
		h.writeError(w, err)
		return
	}
	if err := store.ApplyCoupon(r.Context(), payload.Code); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSnapshot(w, store)
}

// RemoveCoupon clears the applied coupon.
func (h *Handler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	store.RemoveCoupon(r.Context())
	h.writeSnapshot(w, store)
}

// QuoteShipping kicks off an asynchronous CEP rate lookup for the cart.
func (h *Handler) QuoteShipping(w http.ResponseWriter, r *http.Request) {
	store, ok := h.resolve(w, r)
	if !ok {
		return
	}
	var payload quoteShippingPayload
	if err := common.DecodeJSON(r, &payload); err != nil {
		h.writeError(w, err)
		return
	}
	if err := store.QuoteShipping(r.Context(), payload.CEP); err != nil {
		h.writeError(w, err)
		return
	}
	common.JSONData(w, http.StatusAccepted, map[string]any{"status": "pending"})
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) (*Store, bool) {
	if h.Manager == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "cart manager not configured", nil)
		return nil, false
	}
	store, err := h.Manager.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return nil, false
	}
	return store, true
}

// snapshotBody is the cart response payload, the snapshot plus the
// display currency of the storefront.
type snapshotBody struct {
	Snapshot
	Currency string `json:"currency"`
}

func (h *Handler) writeSnapshot(w http.ResponseWriter, store *Store) {
	common.JSONData(w, http.StatusOK, snapshotBody{
		Snapshot: store.Snapshot(),
		Currency: h.Currency,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		common.JSONError(w, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
		return
	}
	switch {
	case errors.Is(err, ErrCartNotFound):
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, ErrItemNotFound):
		common.JSONError(w, http.StatusNotFound, "ITEM_NOT_FOUND", err.Error(), nil)
	case errors.Is(err, ErrUnknownCoupon):
		common.JSONError(w, http.StatusNotFound, "UNKNOWN_COUPON", err.Error(), nil)
	case errors.Is(err, ErrOutOfStock):
		common.JSONError(w, http.StatusUnprocessableEntity, "OUT_OF_STOCK", err.Error(), nil)
	case errors.Is(err, ErrQuantityExceeded):
		common.JSONError(w, http.StatusUnprocessableEntity, "QUANTITY_EXCEEDED", err.Error(), nil)
	case errors.Is(err, ErrMinimumNotMet):
		common.JSONError(w, http.StatusUnprocessableEntity, "MINIMUM_NOT_MET", err.Error(), nil)
	case errors.Is(err, ErrInvalidProduct), errors.Is(err, ErrInvalidZipCode), errors.Is(err, common.ErrInvalidPayload):
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
	}
}
