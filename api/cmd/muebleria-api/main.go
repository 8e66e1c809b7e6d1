package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"muebleria/api/internal/api/handlers"
	app_middleware "muebleria/api/internal/api/middleware"
	"muebleria/api/internal/api/router"
	"muebleria/api/internal/config"
	"muebleria/api/internal/core/services"
	supastore "muebleria/api/internal/db/supabase"
	"muebleria/api/internal/mailer"
)

func main() {
	// --- 1. Telemetry & Configuration ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("booting muebleria API")

	cfg, err := config.LoadServer()
	if err != nil {
		logger.Error("FATAL: configuration invalid", "error", err)
		os.Exit(1)
	}
	clientCfg := config.LoadClient()

	// --- 2. Outbound Infrastructure ---
	// 🛡️ The server process is a trusted context: it never ships code to
	// the browser, so the privileged handle may exist here and only here.
	handles := supastore.NewHandles(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseServiceKey, true)
	inquiryRepo := supastore.NewInquiryRepo(handles)
	catalogRepo := supastore.NewCatalogRepo(handles)

	transport, err := mailer.New(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass)
	if err != nil {
		logger.Error("FATAL: email transport", "error", err)
		os.Exit(1)
	}

	// --- 3. Services & Handlers ---
	inquiryService := services.NewInquiryService(inquiryRepo, transport, logger, cfg.OnPersistenceFailure)

	routerCfg := router.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		ContactHandler: handlers.NewContactHandler(inquiryService),
		CatalogHandler: handlers.NewCatalogHandler(catalogRepo),
		ConfigHandler:  handlers.NewPublicConfigHandler(clientCfg),
		WhatsHandler:   handlers.NewWhatsAppHandler(cfg.WhatsAppPhone, catalogRepo),
		HealthHandler:  handlers.NewHealthHandler(catalogRepo),
		Logger:         logger,
	}

	if cfg.AdminEnabled() {
		authService := services.NewAdminAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret)
		statsService := services.NewStatsService(inquiryRepo, catalogRepo)
		routerCfg.AdminHandler = handlers.NewAdminHandler(authService, statsService)
		routerCfg.AdminGuard = app_middleware.NewAdminGuard(authService, logger)
	}

	// --- 4. HTTP Gateway ---
	mux := router.NewRouter(routerCfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// --- 5. Graceful Exit ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("muebleria API active", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("CRITICAL: server crashed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	logger.Info("muebleria API stopped")
}
