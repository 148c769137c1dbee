package psql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	databaseerrors "shopapi/internal/database"
	"shopapi/internal/models"
	"shopapi/pkg/lib/logger/sl"

	"github.com/lib/pq"
)

func (s *Storage) ListProducts(ctx context.Context) ([]models.ProductRecord, error) {
	const op = "database.psql.ListProducts"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	records := make([]models.ProductRecord, 0)
	if err := s.db.SelectContext(ctx, &records, `
		SELECT id, name, description, cost, qty FROM product
		ORDER BY id;
	`); err != nil {
		log.Error("Failed to list products", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *Storage) GetProduct(ctx context.Context, id int) (models.ProductRecord, error) {
	const op = "database.psql.GetProduct"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return models.ProductRecord{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var record models.ProductRecord
	if err := s.db.GetContext(ctx, &record, `
		SELECT id, name, description, cost, qty FROM product
		WHERE id=$1;
	`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("Product doesn't exists", sl.Err(databaseerrors.ErrNotFound))
			return models.ProductRecord{}, fmt.Errorf("%s: %w", op, databaseerrors.ErrNotFound)
		}

		log.Error("Failed to get product", sl.Err(err))
		return models.ProductRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	return record, nil
}

func (s *Storage) AddProduct(ctx context.Context, record models.ProductRecord) error {
	const op = "database.psql.AddProduct"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO product (id, name, description, cost, qty)
		VALUES ($1, $2, $3, $4, $5);
	`, record.Id, record.Name, record.Description, record.Cost, record.Qty); err != nil {
		log.Error("Failed to insert product", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateQty overwrites the stored quantity. Updating an absent id is not an error.
func (s *Storage) UpdateQty(ctx context.Context, id int, qty int) error {
	const op = "database.psql.UpdateQty"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if _, err := s.db.ExecContext(ctx, `
		UPDATE product SET qty=$1
		WHERE id=$2;
	`, qty, id); err != nil {
		log.Error("Failed to update quantity", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// GetProductsBulk resolves all ids in a single query. Unknown ids are skipped.
func (s *Storage) GetProductsBulk(ctx context.Context, ids []int) ([]models.ProductRecord, error) {
	const op = "database.psql.GetProductsBulk"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	records := make([]models.ProductRecord, 0, len(ids))
	if err := s.db.SelectContext(ctx, &records, `
		SELECT id, name, description, cost, qty FROM product
		WHERE id = ANY($1);
	`, pq.Array(ids)); err != nil {
		log.Error("Failed to fetch products", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}
