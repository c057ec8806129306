package application

import (
	"context"
	"encoding/json"

	"github.com/edumarket/checkout-gateway/internal/domain"
)

// OrderRequest is everything the provider needs to create one order with a
// single purchase unit.
type OrderRequest struct {
	Amount      domain.Amount
	Description string
	// CustomID is the caller-supplied correlation id (e.g. a registration id),
	// threaded through to the provider for later reconciliation.
	CustomID string
	Payer    *domain.Payer
}

// OrderCreated carries the only thing callers get back from order creation:
// the provider's opaque order identifier.
type OrderCreated struct {
	ID string `json:"id"`
}

// ProviderClient is the port for the upstream payment provider. Each call
// authenticates itself; implementations must not cache credentials across
// invocations.
type ProviderClient interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*OrderCreated, error)
	// CaptureOrder finalizes a previously approved order and returns the
	// provider's capture payload verbatim.
	CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error)
}
