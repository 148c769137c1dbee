package psql_test

import (
	"context"
	"testing"
	"time"

	"shopapi/internal/database/psql"
	"shopapi/internal/models"
	"shopapi/pkg/lib/logger/slogdiscard"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newTestStorage(t *testing.T) (*psql.Storage, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %s", err)
	}

	storage := psql.NewWithParams(slogdiscard.NewDiscardLogger(), sqlx.NewDb(db, "postgres"))
	cleanup := func() { db.Close() }
	return storage, mock, cleanup
}

// storageCalls invokes every Storage method once so context handling can be
// checked uniformly.
func storageCalls(s *psql.Storage) map[string]func(ctx context.Context) error {
	return map[string]func(ctx context.Context) error{
		"ListProducts": func(ctx context.Context) error {
			_, err := s.ListProducts(ctx)
			return err
		},
		"GetProduct": func(ctx context.Context) error {
			_, err := s.GetProduct(ctx, 1)
			return err
		},
		"AddProduct": func(ctx context.Context) error {
			return s.AddProduct(ctx, models.ProductRecord{Id: 1})
		},
		"UpdateQty": func(ctx context.Context) error {
			return s.UpdateQty(ctx, 1, 1)
		},
		"GetProductsBulk": func(ctx context.Context) error {
			_, err := s.GetProductsBulk(ctx, []int{1})
			return err
		},
		"GetCart": func(ctx context.Context) error {
			_, err := s.GetCart(ctx, "alice")
			return err
		},
		"AddToCart": func(ctx context.Context) error {
			return s.AddToCart(ctx, "alice", 1)
		},
		"RemoveFromCart": func(ctx context.Context) error {
			return s.RemoveFromCart(ctx, "alice", 1)
		},
		"DeleteCart": func(ctx context.Context) error {
			return s.DeleteCart(ctx, "alice")
		},
	}
}

func TestStorage_ContextCanceled(t *testing.T) {
	storage, mock, cleanup := newTestStorage(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, call := range storageCalls(storage) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(ctx), context.Canceled)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorage_DeadlineExceeded(t *testing.T) {
	storage, mock, cleanup := newTestStorage(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*50)
	defer cancel()
	time.Sleep(time.Millisecond * 55)

	for name, call := range storageCalls(storage) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(ctx), context.DeadlineExceeded)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
