// Package app contains the application setup for the CRUD service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/crudapi/internal/config"
	"github.com/abgdnv/crudapi/internal/service"
	"github.com/abgdnv/crudapi/internal/store"
	"github.com/abgdnv/crudapi/internal/store/db"
	"github.com/abgdnv/crudapi/internal/transport/rest"
	"github.com/abgdnv/crudapi/pkg/server"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependencies struct {
	UserService    service.UserService
	ProductService service.ProductService
	Logger         *slog.Logger
}

// SetupDependencies builds both services on one persistence adapter over dbPool.
func SetupDependencies(dbPool *pgxpool.Pool, logger *slog.Logger) *Dependencies {
	adapter := db.NewFromPool(dbPool, logger)

	return &Dependencies{
		UserService:    service.NewUserService(store.NewPgUserStore(adapter)),
		ProductService: service.NewProductService(store.NewPgProductStore(adapter)),
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the router and routes for the CRUD service.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return server.Instrument(mux, "crud-http")
}

// wireRoutes sets up the HTTP routes for the CRUD service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	handler := rest.NewHandler(deps.UserService, deps.ProductService, deps.Logger)
	handler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the CRUD service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
