package mocks

import (
	"context"

	"shopapi/internal/models"

	"github.com/stretchr/testify/mock"
)

type Storage struct {
	mock.Mock
}

func (m *Storage) ListProducts(ctx context.Context) ([]models.ProductRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ProductRecord), args.Error(1)
}
func (m *Storage) GetProduct(ctx context.Context, id int) (models.ProductRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ProductRecord), args.Error(1)
}
func (m *Storage) AddProduct(ctx context.Context, record models.ProductRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *Storage) UpdateQty(ctx context.Context, id int, qty int) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}
func (m *Storage) GetProductsBulk(ctx context.Context, ids []int) ([]models.ProductRecord, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.ProductRecord), args.Error(1)
}
