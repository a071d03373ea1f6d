package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/numfmt/internal/api/handlers"
	custommiddleware "github.com/ndewijer/numfmt/internal/api/middleware"
	"github.com/ndewijer/numfmt/internal/config"
	"github.com/ndewijer/numfmt/internal/metrics"
	"github.com/ndewijer/numfmt/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	numberService *service.NumberService,
	shopService *service.ShopService,
	m *metrics.Metrics,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(custommiddleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	r.Handle("/metrics", m.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/numbers", func(r chi.Router) {
			numberHandler := handlers.NewNumberHandler(numberService)
			r.Get("/round", numberHandler.Round)
			r.Get("/fraction", numberHandler.Fraction)
		})

		r.Route("/shop", func(r chi.Router) {
			shopHandler := handlers.NewShopHandler(shopService)
			r.Get("/products", shopHandler.Products)
			r.Get("/customers", shopHandler.Customers)
			r.Get("/orders", shopHandler.Orders)
			r.Get("/orders/totals", shopHandler.OrderTotals)
			r.Get("/orders/{orderId}", shopHandler.Order)
		})
	})

	return r
}
