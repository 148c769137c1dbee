package catalogservice

import (
	"context"
	"fmt"
	"log/slog"

	"shopapi/internal/models"
	serviceerrors "shopapi/internal/service"
	"shopapi/pkg/lib/logger/sl"
)

type ProductStorage interface {
	ListProducts(ctx context.Context) ([]models.ProductRecord, error)
	GetProduct(ctx context.Context, id int) (models.ProductRecord, error)
	AddProduct(ctx context.Context, record models.ProductRecord) error
	UpdateQty(ctx context.Context, id int, qty int) error
	GetProductsBulk(ctx context.Context, ids []int) ([]models.ProductRecord, error)
}

type CatalogService struct {
	log     *slog.Logger
	storage ProductStorage
}

func New(log *slog.Logger, storage ProductStorage) *CatalogService {
	return &CatalogService{
		log:     log,
		storage: storage,
	}
}

func (c *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	const op = "service.catalog.ListProducts"
	log := c.log.With("op", op)

	if err := ctxErr(ctx, log); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records, err := c.storage.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, fail(log, err, "Failed to list products"))
	}

	products := make([]models.Product, 0, len(records))
	for _, record := range records {
		products = append(products, record.Product())
	}

	return products, nil
}

func (c *CatalogService) GetProduct(ctx context.Context, id int) (models.Product, error) {
	const op = "service.catalog.GetProduct"
	log := c.log.With(
		"op", op,
		"product_id", id,
	)

	if err := ctxErr(ctx, log); err != nil {
		return models.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	record, err := c.storage.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("%s: product with id %d: %w", op, id, fail(log, err, "Failed to get product"))
	}

	return record.Product(), nil
}

// AddProduct stores p as is. Constraint violations come back from storage.
func (c *CatalogService) AddProduct(ctx context.Context, p models.Product) error {
	const op = "service.catalog.AddProduct"
	log := c.log.With(
		"op", op,
		"product_id", p.Id,
	)

	if err := ctxErr(ctx, log); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.storage.AddProduct(ctx, p.Record()); err != nil {
		return fmt.Errorf("%s: %w", op, fail(log, err, "Failed to add product"))
	}

	return nil
}

// UpdateQty rejects negative quantities without touching storage. The id is
// not checked for existence.
func (c *CatalogService) UpdateQty(ctx context.Context, id int, qty int) error {
	const op = "service.catalog.UpdateQty"
	log := c.log.With(
		"op", op,
		"product_id", id,
	)

	if qty < 0 {
		log.Warn("Quantity cannot be negative", slog.Int("qty", qty))
		return fmt.Errorf("%s: quantity cannot be negative: %w", op, serviceerrors.ErrInvalidArgument)
	}

	if err := ctxErr(ctx, log); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.storage.UpdateQty(ctx, id, qty); err != nil {
		return fmt.Errorf("%s: %w", op, fail(log, err, "Failed to update quantity"))
	}

	return nil
}

// GetProductsBulk resolves ids with a single storage call. Ids that do not
// exist are absent from the result.
func (c *CatalogService) GetProductsBulk(ctx context.Context, ids []int) (map[int]models.Product, error) {
	const op = "service.catalog.GetProductsBulk"
	log := c.log.With("op", op)

	if err := ctxErr(ctx, log); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	unique := dedup(ids)
	if len(unique) == 0 {
		return map[int]models.Product{}, nil
	}

	records, err := c.storage.GetProductsBulk(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, fail(log, err, "Failed to fetch products"))
	}

	products := make(map[int]models.Product, len(records))
	for _, record := range records {
		products[record.Id] = record.Product()
	}

	log.Debug("Products fetched", slog.Int("requested", len(unique)), slog.Int("found", len(products)))

	return products, nil
}

func dedup(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	unique := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func ctxErr(ctx context.Context, log *slog.Logger) error {
	select {
	case <-ctx.Done():
		err := serviceerrors.Translate(ctx.Err())
		log.Warn("Context is over", sl.Err(err))
		return err
	default:
		return nil
	}
}

func fail(log *slog.Logger, err error, msg string) error {
	svcErr := serviceerrors.Translate(err)
	if serviceerrors.IsExpected(svcErr) {
		log.Warn(msg, sl.Err(err))
		return svcErr
	}

	log.Error(msg, sl.Err(err))
	return err
}
