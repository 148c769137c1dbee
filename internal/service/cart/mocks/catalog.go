package mocks

import (
	"context"

	"shopapi/internal/models"

	"github.com/stretchr/testify/mock"
)

type Catalog struct {
	mock.Mock
}

func (m *Catalog) GetProductsBulk(ctx context.Context, ids []int) (map[int]models.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[int]models.Product), args.Error(1)
}
