package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"shopapi/internal/handlers"
	carthandler "shopapi/internal/handlers/cart"
	producthandler "shopapi/internal/handlers/product"
	"shopapi/internal/routes"
	cartservice "shopapi/internal/service/cart"
	catalogservice "shopapi/internal/service/catalog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Storage interface {
	catalogservice.ProductStorage
	cartservice.CartStorage
}

type App struct {
	log     *slog.Logger
	port    int
	timeout time.Duration
	storage Storage
	server  *http.Server
}

func New(log *slog.Logger, port int, timeout time.Duration, storage Storage) *App {
	a := &App{
		log:     log,
		port:    port,
		timeout: timeout,
		storage: storage,
	}

	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      a.Router(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout + time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return a
}

// Router wires storage, services and handlers into one chi router.
func (a *App) Router() http.Handler {
	catalog := catalogservice.New(a.log, a.storage)
	carts := cartservice.New(a.log, a.storage, catalog)

	productHandler := producthandler.New(a.log, catalog)
	cartHandler := carthandler.New(a.log, carts)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(handlers.RequestLogger(a.log))
	r.Use(middleware.Timeout(a.timeout))

	routes.New(productHandler, cartHandler).Register(r)

	return r
}

func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic(err)
	}
}

func (a *App) Run() error {
	const op = "app.Run"

	a.log.Info("Starting HTTP server", slog.Int("port", a.port))

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	const op = "app.Shutdown"

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
