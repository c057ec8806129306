package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edumarket/checkout-gateway/internal/application/services"
	"github.com/edumarket/checkout-gateway/internal/config"
	"github.com/edumarket/checkout-gateway/internal/infrastructure/paypal"
	"github.com/edumarket/checkout-gateway/internal/interfaces/rest/handlers"
	"github.com/edumarket/checkout-gateway/internal/interfaces/rest/middleware"
	"github.com/edumarket/checkout-gateway/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting checkout service",
		"port", cfg.Server.Port,
		"paypal_env", cfg.PayPal.Environment,
		"log_level", cfg.Logger.Level,
	)

	providerClient := paypal.NewClient(cfg.PayPal)
	checkoutService := services.NewCheckoutService(providerClient)

	h := handlers.NewHandlers(checkoutService, logger)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	metrics := observability.NewHTTPMetrics("checkout", prometheus.DefaultRegisterer)

	handler := http.Handler(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Metrics(metrics)(handler)
	handler = middleware.Recovery(logger)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
