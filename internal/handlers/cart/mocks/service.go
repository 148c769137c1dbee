package mocks

import (
	"context"

	"shopapi/internal/models"

	"github.com/stretchr/testify/mock"
)

type Service struct {
	mock.Mock
}

func (m *Service) GetCartSummary(ctx context.Context, username string) (models.Cart, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(models.Cart), args.Error(1)
}
func (m *Service) AddToCart(ctx context.Context, username string, productId int) error {
	args := m.Called(ctx, username, productId)
	return args.Error(0)
}
func (m *Service) RemoveFromCart(ctx context.Context, username string, productId int) error {
	args := m.Called(ctx, username, productId)
	return args.Error(0)
}
func (m *Service) DeleteCart(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}
