package routes

import (
	"net/http"

	carthandler "shopapi/internal/handlers/cart"
	producthandler "shopapi/internal/handlers/product"

	"github.com/go-chi/chi/v5"
)

type Routes struct {
	productHandler *producthandler.Handler
	cartHandler    *carthandler.Handler
}

func New(productHandler *producthandler.Handler, cartHandler *carthandler.Handler) *Routes {
	return &Routes{
		productHandler: productHandler,
		cartHandler:    cartHandler,
	}
}

func (rt *Routes) Register(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", rt.productHandler.ListProducts)
		r.Post("/", rt.productHandler.AddProduct)
		r.Get("/{id}", rt.productHandler.GetProduct)
		r.Put("/{id}/qty", rt.productHandler.UpdateQty)
	})

	r.Route("/carts/{username}", func(r chi.Router) {
		r.Get("/", rt.cartHandler.GetCart)
		r.Delete("/", rt.cartHandler.DeleteCart)
		r.Post("/items", rt.cartHandler.AddToCart)
		r.Delete("/items/{productId}", rt.cartHandler.RemoveFromCart)
	})
}
