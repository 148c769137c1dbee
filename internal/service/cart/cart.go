package cartservice

import (
	"context"
	"fmt"
	"log/slog"

	"shopapi/internal/models"
	serviceerrors "shopapi/internal/service"
	"shopapi/pkg/lib/logger/sl"
)

type CartStorage interface {
	GetCart(ctx context.Context, username string) ([]models.CartRow, error)
	AddToCart(ctx context.Context, username string, productId int) error
	RemoveFromCart(ctx context.Context, username string, productId int) error
	DeleteCart(ctx context.Context, username string) error
}

type ProductCatalog interface {
	GetProductsBulk(ctx context.Context, ids []int) (map[int]models.Product, error)
}

type CartService struct {
	log     *slog.Logger
	storage CartStorage
	catalog ProductCatalog
}

func New(log *slog.Logger, storage CartStorage, catalog ProductCatalog) *CartService {
	return &CartService{
		log:     log,
		storage: storage,
		catalog: catalog,
	}
}

// GetCart returns the products in every cart row stored for username,
// flattened in row order and then in the order ids were added. Rows that
// cannot be decoded and ids that no longer resolve to a product are skipped.
func (c *CartService) GetCart(ctx context.Context, username string) ([]models.Product, error) {
	const op = "service.cart.GetCart"
	log := c.log.With(
		"op", op,
		"username", username,
	)

	if err := ctxErr(ctx, log); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := c.storage.GetCart(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, fail(log, err, "Failed to get cart rows"))
	}
	if len(rows) == 0 {
		return []models.Product{}, nil
	}

	contents := make([]Contents, 0, len(rows))
	for _, row := range rows {
		decoded := DecodeContents(row.Contents)
		if empty, ok := decoded.(Empty); ok && empty.Err != nil {
			log.Debug("Skipping unreadable cart row", slog.Int("cart_id", row.Id), sl.Err(empty.Err))
		}
		contents = append(contents, decoded)
	}

	ids := UniqueIDs(contents)
	if len(ids) == 0 {
		return []models.Product{}, nil
	}

	products, err := c.catalog.GetProductsBulk(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, fail(log, err, "Failed to fetch cart products"))
	}

	hydrated := Hydrate(contents, products)
	if missing := len(ids) - len(products); missing > 0 {
		log.Debug("Dropped unknown products from cart", slog.Int("missing", missing))
	}

	return hydrated, nil
}

// GetCartSummary is GetCart with the total cost of the hydrated products.
func (c *CartService) GetCartSummary(ctx context.Context, username string) (models.Cart, error) {
	const op = "service.cart.GetCartSummary"

	products, err := c.GetCart(ctx, username)
	if err != nil {
		return models.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.NewCart(username, products), nil
}

// AddToCart does not check that productId exists.
func (c *CartService) AddToCart(ctx context.Context, username string, productId int) error {
	const op = "service.cart.AddToCart"
	log := c.log.With(
		"op", op,
		"username", username,
		"product_id", productId,
	)

	if err := ctxErr(ctx, log); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.storage.AddToCart(ctx, username, productId); err != nil {
		return fmt.Errorf("%s: %w", op, fail(log, err, "Failed to add product to cart"))
	}

	return nil
}

func (c *CartService) RemoveFromCart(ctx context.Context, username string, productId int) error {
	const op = "service.cart.RemoveFromCart"
	log := c.log.With(
		"op", op,
		"username", username,
		"product_id", productId,
	)

	if err := ctxErr(ctx, log); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.storage.RemoveFromCart(ctx, username, productId); err != nil {
		return fmt.Errorf("%s: %w", op, fail(log, err, "Failed to remove product from cart"))
	}

	return nil
}

func (c *CartService) DeleteCart(ctx context.Context, username string) error {
	const op = "service.cart.DeleteCart"
	log := c.log.With(
		"op", op,
		"username", username,
	)

	if err := ctxErr(ctx, log); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.storage.DeleteCart(ctx, username); err != nil {
		return fmt.Errorf("%s: %w", op, fail(log, err, "Failed to delete cart"))
	}

	return nil
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
