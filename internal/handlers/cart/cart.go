package carthandler

import (
	"context"
	"log/slog"
	"net/http"

	"shopapi/internal/handlers"
	"shopapi/internal/models"
	"shopapi/pkg/lib/logger/sl"
	"shopapi/pkg/lib/urlparser"

	"github.com/go-chi/chi/v5"
)

type CartService interface {
	GetCartSummary(ctx context.Context, username string) (models.Cart, error)
	AddToCart(ctx context.Context, username string, productId int) error
	RemoveFromCart(ctx context.Context, username string, productId int) error
	DeleteCart(ctx context.Context, username string) error
}

type Handler struct {
	log     *slog.Logger
	service CartService
}

func New(log *slog.Logger, service CartService) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

type AddItemRequest struct {
	ProductId int `json:"product_id" validate:"required,gt=0"`
}

// GET /carts/{username}
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.GetCart"
	log := h.log.With("op", op)

	username, err := urlparser.ParseUsername(chi.URLParam(r, "username"))
	if err != nil {
		log.Warn("Invalid username", sl.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.service.GetCartSummary(r.Context(), username)
	if err != nil {
		handlers.WriteServiceError(w, r, log, err, "Failed to get cart")
		return
	}

	handlers.RespondJSON(w, log, http.StatusOK, cart)
}

// POST /carts/{username}/items
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.AddToCart"
	log := h.log.With("op", op)

	username, err := urlparser.ParseUsername(chi.URLParam(r, "username"))
	if err != nil {
		log.Warn("Invalid username", sl.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req AddItemRequest
	if err := handlers.DecodeBody(r, &req); err != nil {
		log.Warn("Invalid request body", sl.Err(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.AddToCart(r.Context(), username, req.ProductId); err != nil {
		handlers.WriteServiceError(w, r, log, err, "Failed to add product to cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DELETE /carts/{username}/items/{productId}
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.RemoveFromCart"
	log := h.log.With("op", op)

	username, err := urlparser.ParseUsername(chi.URLParam(r, "username"))
	if err != nil {
		log.Warn("Invalid username", sl.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	productId, err := urlparser.ParseId(chi.URLParam(r, "productId"))
	if err != nil {
		log.Warn("Invalid product id", sl.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveFromCart(r.Context(), username, productId); err != nil {
		handlers.WriteServiceError(w, r, log, err, "Failed to remove product from cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DELETE /carts/{username}
func (h *Handler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.DeleteCart"
	log := h.log.With("op", op)

	username, err := urlparser.ParseUsername(chi.URLParam(r, "username"))
	if err != nil {
		log.Warn("Invalid username", sl.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteCart(r.Context(), username); err != nil {
		handlers.WriteServiceError(w, r, log, err, "Failed to delete cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
