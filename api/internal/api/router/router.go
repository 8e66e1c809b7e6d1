// api/internal/api/router/router.go
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"muebleria/api/internal/api/handlers"
	app_middleware "muebleria/api/internal/api/middleware"
)

// RouterConfig defines the strict dependencies required to build the API routing tree.
type RouterConfig struct {
	AllowedOrigins []string
	ContactHandler *handlers.ContactHandler
	CatalogHandler *handlers.CatalogHandler
	ConfigHandler  *handlers.PublicConfigHandler
	WhatsHandler   *handlers.WhatsAppHandler
	HealthHandler  *handlers.HealthHandler

	// Admin surface; nil when the operator account is not configured.
	AdminHandler *handlers.AdminHandler
	AdminGuard   *app_middleware.AdminGuard

	Logger *slog.Logger
}

// NewRouter constructs the Chi multiplexer, attaches global middleware, and wires all endpoints.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// =========================================================================
	// 1. Global Gateway Middleware Pipeline
	// =========================================================================

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app_middleware.StructuredLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// 🛡️ Limit all incoming JSON requests to 1 Megabyte max (OOM Protection)
	r.Use(app_middleware.MaxBytes(1_048_576))

	// OptionsPassthrough lets browser preflights reach the contact
	// handler, which answers 204 instead of the cors default 200.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     cfg.AllowedOrigins,
		AllowedMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:             300,
		OptionsPassthrough: true,
	}))

	// 🛡️ The form endpoint is the only abuse magnet; bucket it per IP
	formLimiter := app_middleware.NewRateLimiter(rate.Every(10*time.Second), 5)

	// =========================================================================
	// 2. API v1 Routing Tree
	// =========================================================================

	r.Route("/api/v1", func(r chi.Router) {

		// ---------------------------------------------------------------------
		// Public Routes
		// ---------------------------------------------------------------------
		r.Group(func(r chi.Router) {
			r.With(formLimiter.Handler).Post("/contact", cfg.ContactHandler.Submit)
			r.Options("/contact", cfg.ContactHandler.Preflight)

			r.Get("/productos", cfg.CatalogHandler.ListProducts)
			r.Get("/productos/{id}", cfg.CatalogHandler.GetProduct)
			r.Get("/categorias", cfg.CatalogHandler.ListCategories)

			r.Get("/config", cfg.ConfigHandler.Get)
			r.Get("/whatsapp-link", cfg.WhatsHandler.Link)
		})

		// ---------------------------------------------------------------------
		// Admin Routes (operator token required)
		// ---------------------------------------------------------------------
		if cfg.AdminHandler != nil && cfg.AdminGuard != nil {
			r.Post("/auth/login", cfg.AdminHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(cfg.AdminGuard.RequireAdmin)
				r.Get("/admin/stats", cfg.AdminHandler.Stats)
			})
		}
	})

	r.Get("/health", cfg.HealthHandler.Check)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	return r
}
