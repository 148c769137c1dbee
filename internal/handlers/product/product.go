package producthandler

import (
	"context"
	"log/slog"
	"net/http"

	"shopapi/internal/handlers"
	"shopapi/internal/models"
	"shopapi/pkg/lib/logger/sl"
	"shopapi/pkg/lib/urlparser"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (models.Product, error)
	AddProduct(ctx context.Context, p models.Product) error
	UpdateQty(ctx context.Context, id int, qty int) error
}

type Handler struct {
	log     *slog.Logger
	service ProductService
}

func New(log *slog.Logger, service ProductService) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

type AddProductRequest struct {
	Id          int              `json:"id" validate:"required,gt=0"`
	Name        string           `json:"name" validate:"required"`
	Description *string          `json:"description" validate:"required"`
	Cost        *decimal.Decimal `json:"cost" validate:"required"`
	Qty         *int             `json:"qty" validate:"required"`
}

type UpdateQtyRequest struct {
	Qty *int `json:"qty" validate:"required"`
}

// GET /products
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.ListProducts"
	log := h.log.With("op", op)

	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		handlers.WriteServiceError(w, r, log, err, "Failed to list products")
		return
	}

	handlers.RespondJSON(w, log, http.StatusOK, products)
}

// GET /products/{id}
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.GetProduct"
	log := h.log.With("op", op)

	id, err := urlparser.ParseId(chi.URLParam(r, "id"))
	if err != nil {
		log.Warn("Invalid product id", sl.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		handlers.WriteServiceError(w, r, log, err, "Failed to get product")
		return
	}

	handlers.RespondJSON(w, log, http.StatusOK, product)
}

// POST /products
func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.AddProduct"
	log := h.log.With("op", op)

	var req AddProductRequest
	if err := handlers.DecodeBody(r, &req); err != nil {
		log.Warn("Invalid request body", sl.Err(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	product := models.Product{
		Id:          req.Id,
		Name:        req.Name,
		Description: *req.Description,
		Cost:        *req.Cost,
		Qty:         *req.Qty,
	}

	if err := h.service.AddProduct(r.Context(), product); err != nil {
		handlers.WriteServiceError(w, r, log, err, "Failed to add product")
		return
	}

	handlers.RespondJSON(w, log, http.StatusCreated, product)
}

// PUT /products/{id}/qty
func (h *Handler) UpdateQty(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.UpdateQty"
	log := h.log.With("op", op)

	id, err := urlparser.ParseId(chi.URLParam(r, "id"))
	if err != nil {
		log.Warn("Invalid product id", sl.Err(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req UpdateQtyRequest
	if err := handlers.DecodeBody(r, &req); err != nil {
		log.Warn("Invalid request body", sl.Err(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateQty(r.Context(), id, *req.Qty); err != nil {
		handlers.WriteServiceError(w, r, log, err, "Failed to update quantity")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
