package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopapi/internal/app"
	"shopapi/internal/models"
	"shopapi/pkg/lib/logger/slogdiscard"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage is an in-memory Storage used to exercise the full request path.
type memStorage struct {
	products map[int]models.ProductRecord
	carts    []models.CartRow
}

func (m *memStorage) ListProducts(ctx context.Context) ([]models.ProductRecord, error) {
	out := make([]models.ProductRecord, 0, len(m.products))
	for id := 1; id <= len(m.products); id++ {
		out = append(out, m.products[id])
	}
	return out, nil
}

func (m *memStorage) GetProduct(ctx context.Context, id int) (models.ProductRecord, error) {
	return m.products[id], nil
}

func (m *memStorage) AddProduct(ctx context.Context, record models.ProductRecord) error {
	m.products[record.Id] = record
	return nil
}

func (m *memStorage) UpdateQty(ctx context.Context, id int, qty int) error {
	return nil
}

func (m *memStorage) GetProductsBulk(ctx context.Context, ids []int) ([]models.ProductRecord, error) {
	out := make([]models.ProductRecord, 0, len(ids))
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStorage) GetCart(ctx context.Context, username string) ([]models.CartRow, error) {
	out := make([]models.CartRow, 0)
	for _, row := range m.carts {
		if row.Username == username {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memStorage) AddToCart(ctx context.Context, username string, productId int) error {
	return nil
}

func (m *memStorage) RemoveFromCart(ctx context.Context, username string, productId int) error {
	return nil
}

func (m *memStorage) DeleteCart(ctx context.Context, username string) error {
	return nil
}

func TestApp_GetCartEndToEnd(t *testing.T) {
	storage := &memStorage{
		products: map[int]models.ProductRecord{
			1: {Id: 1, Name: "one", Cost: decimal.NewFromInt(1)},
			2: {Id: 2, Name: "two", Cost: decimal.NewFromInt(2)},
			3: {Id: 3, Name: "three", Cost: decimal.NewFromInt(3)},
		},
		carts: []models.CartRow{
			{Id: 1, Username: "alice", Contents: "[1,2,3]"},
			{Id: 2, Username: "alice", Contents: "[3,4]"},
			{Id: 3, Username: "alice", Contents: "oops"},
			{Id: 4, Username: "bob", Contents: "[1]"},
		},
	}

	a := app.New(slogdiscard.NewDiscardLogger(), 0, time.Second, storage)
	srv := httptest.NewServer(a.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/carts/alice")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var cart models.Cart
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cart))

	ids := make([]int, 0, len(cart.Contents))
	for _, p := range cart.Contents {
		ids = append(ids, p.Id)
	}
	assert.Equal(t, []int{1, 2, 3, 3}, ids)
	assert.True(t, decimal.NewFromInt(9).Equal(cart.Cost))
}

func TestApp_UpdateQtyNegative(t *testing.T) {
	a := app.New(slogdiscard.NewDiscardLogger(), 0, time.Second, &memStorage{products: map[int]models.ProductRecord{}})
	srv := httptest.NewServer(a.Router())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/products/1/qty", strings.NewReader(`{"qty":-1}`))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
