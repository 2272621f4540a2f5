// Package app contains the application setup for the product cache service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"productcache/internal/cache"
	"productcache/internal/config"
	"productcache/internal/service"
	"productcache/internal/store"
	"productcache/internal/transport/rest"
	pkgconfig "productcache/pkg/config"
	"productcache/pkg/server"
)

type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
}

// SetupDependencies wires the store, cache and service. Both variants are
// selected by configuration: the store is PostgreSQL-backed or in-memory,
// the cache is map-backed when enabled and no-op otherwise.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	var pStore store.ProductStore
	switch cfg.Store.Type {
	case pkgconfig.StoreTypeMemory:
		pStore = store.NewInMemoryStore()
	default:
		pStore = store.NewPgStore(cfg.Database.URL, cfg.Database.Timeout)
	}

	var pCache cache.ProductCache
	if cfg.Cache.Enabled {
		pCache = cache.NewMemoryCache()
	}

	pService := service.NewService(pStore, pCache, logger)

	return &Dependencies{
		ProductService: pService,
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the service.
// Used by tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	productHandler := rest.NewHandler(deps.ProductService, deps.Logger)
	productHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the service.
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
