package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/edumarket/checkout-gateway/internal/application"
	"github.com/edumarket/checkout-gateway/internal/application/services"
)

// CheckoutService is what the handlers need from the application layer.
type CheckoutService interface {
	CreateOrder(ctx context.Context, cmd services.CreateOrderCommand) (*application.OrderCreated, error)
	CaptureOrder(ctx context.Context, cmd services.CaptureOrderCommand) (json.RawMessage, error)
}

type Handlers struct {
	checkout CheckoutService
	logger   *slog.Logger
}

func NewHandlers(checkout CheckoutService, logger *slog.Logger) *Handlers {
	return &Handlers{
		checkout: checkout,
		logger:   logger,
	}
}

// RegisterRoutes registers the bare paths; method checks happen inside the
// handlers so that non-POST requests get the contract's 405 body.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/create-order", h.HandleCreateOrder)
	mux.HandleFunc("/capture-order", h.HandleCaptureOrder)
}
