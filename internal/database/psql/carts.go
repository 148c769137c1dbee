package psql

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"shopapi/internal/models"
	"shopapi/pkg/lib/logger/sl"
)

// GetCart returns every cart row stored for username, oldest first.
func (s *Storage) GetCart(ctx context.Context, username string) ([]models.CartRow, error) {
	const op = "database.psql.GetCart"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows := make([]models.CartRow, 0, 1)
	if err := s.db.SelectContext(ctx, &rows, `
		SELECT id, username, contents FROM cart
		WHERE username=$1
		ORDER BY id;
	`, username); err != nil {
		log.Error("Failed to get cart rows", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

// AddToCart appends productId to the user's first readable cart row. A new
// row is created when the user has none or none of them can be decoded;
// unreadable rows are left untouched.
func (s *Storage) AddToCart(ctx context.Context, username string, productId int) error {
	const op = "database.psql.AddToCart"
	log := s.log.With(
		"op", op,
		"username", username,
	)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		log.Error("Failed to begin transaction", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var rows []models.CartRow
	if err := tx.SelectContext(ctx, &rows, `
		SELECT id, username, contents FROM cart
		WHERE username=$1
		ORDER BY id
		FOR UPDATE;
	`, username); err != nil {
		log.Error("Failed to get cart rows", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	updated := false
	for _, row := range rows {
		ids, err := models.ParseContents(row.Contents)
		if err != nil {
			log.Warn("Skipping unreadable cart row", sl.Err(err), slogCartId(row.Id))
			continue
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE cart SET contents=$1
			WHERE id=$2;
		`, models.FormatContents(append(ids, productId)), row.Id); err != nil {
			log.Error("Failed to update cart", sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
		updated = true
		break
	}

	if !updated {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO cart (username, contents)
			VALUES ($1, $2);
		`, username, models.FormatContents([]int{productId})); err != nil {
			log.Error("Failed to create cart", sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveFromCart drops the first occurrence of productId across the user's
// rows. Nothing happens when the id is not in the cart.
func (s *Storage) RemoveFromCart(ctx context.Context, username string, productId int) error {
	const op = "database.psql.RemoveFromCart"
	log := s.log.With(
		"op", op,
		"username", username,
	)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		log.Error("Failed to begin transaction", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	var rows []models.CartRow
	if err := tx.SelectContext(ctx, &rows, `
		SELECT id, username, contents FROM cart
		WHERE username=$1
		ORDER BY id
		FOR UPDATE;
	`, username); err != nil {
		log.Error("Failed to get cart rows", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, row := range rows {
		ids, err := models.ParseContents(row.Contents)
		if err != nil {
			log.Debug("Skipping unreadable cart row", sl.Err(err), slogCartId(row.Id))
			continue
		}

		idx := slices.Index(ids, productId)
		if idx < 0 {
			continue
		}

		remaining := slices.Delete(ids, idx, idx+1)
		if _, err := tx.ExecContext(ctx, `
			UPDATE cart SET contents=$1
			WHERE id=$2;
		`, models.FormatContents(remaining), row.Id); err != nil {
			log.Error("Failed to update cart", sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
		break
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteCart(ctx context.Context, username string) error {
	const op = "database.psql.DeleteCart"
	log := s.log.With(
		"op", op,
		"username", username,
	)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM cart
		WHERE username=$1;
	`, username); err != nil {
		log.Error("Failed to delete cart", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func slogCartId(id int) slog.Attr {
	return slog.Int("cart_id", id)
}
