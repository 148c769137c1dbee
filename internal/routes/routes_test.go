package routes_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	carthandler "shopapi/internal/handlers/cart"
	cartmocks "shopapi/internal/handlers/cart/mocks"
	producthandler "shopapi/internal/handlers/product"
	productmocks "shopapi/internal/handlers/product/mocks"
	"shopapi/internal/models"
	"shopapi/internal/routes"
	"shopapi/pkg/lib/logger/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRouter(products *productmocks.Service, carts *cartmocks.Service) http.Handler {
	log := slogdiscard.NewDiscardLogger()
	r := chi.NewRouter()
	routes.New(producthandler.New(log, products), carthandler.New(log, carts)).Register(r)
	return r
}

func TestRoutes(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		setupMock    func(p *productmocks.Service, c *cartmocks.Service)
		expectedCode int
	}{
		{
			name:         "Health",
			method:       http.MethodGet,
			path:         "/health",
			setupMock:    func(p *productmocks.Service, c *cartmocks.Service) {},
			expectedCode: http.StatusOK,
		},
		{
			name:   "List products",
			method: http.MethodGet,
			path:   "/products",
			setupMock: func(p *productmocks.Service, c *cartmocks.Service) {
				p.On("ListProducts", mock.Anything).Return([]models.Product{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Get product",
			method: http.MethodGet,
			path:   "/products/3",
			setupMock: func(p *productmocks.Service, c *cartmocks.Service) {
				p.On("GetProduct", mock.Anything, 3).Return(models.Product{Id: 3}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Update qty",
			method: http.MethodPut,
			path:   "/products/3/qty",
			body:   `{"qty":1}`,
			setupMock: func(p *productmocks.Service, c *cartmocks.Service) {
				p.On("UpdateQty", mock.Anything, 3, 1).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Get cart",
			method: http.MethodGet,
			path:   "/carts/alice",
			setupMock: func(p *productmocks.Service, c *cartmocks.Service) {
				c.On("GetCartSummary", mock.Anything, "alice").Return(models.NewCart("alice", []models.Product{}), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Add to cart",
			method: http.MethodPost,
			path:   "/carts/alice/items",
			body:   `{"product_id":3}`,
			setupMock: func(p *productmocks.Service, c *cartmocks.Service) {
				c.On("AddToCart", mock.Anything, "alice", 3).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Remove from cart",
			method: http.MethodDelete,
			path:   "/carts/alice/items/3",
			setupMock: func(p *productmocks.Service, c *cartmocks.Service) {
				c.On("RemoveFromCart", mock.Anything, "alice", 3).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Delete cart",
			method: http.MethodDelete,
			path:   "/carts/alice",
			setupMock: func(p *productmocks.Service, c *cartmocks.Service) {
				c.On("DeleteCart", mock.Anything, "alice").Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Unknown route",
			method:       http.MethodGet,
			path:         "/orders",
			setupMock:    func(p *productmocks.Service, c *cartmocks.Service) {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := new(productmocks.Service)
			carts := new(cartmocks.Service)
			tt.setupMock(products, carts)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			ww := httptest.NewRecorder()
			newRouter(products, carts).ServeHTTP(ww, req)

			assert.Equal(t, tt.expectedCode, ww.Code)
			products.AssertExpectations(t)
			carts.AssertExpectations(t)
		})
	}
}
