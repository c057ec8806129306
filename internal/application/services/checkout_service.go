package services

import (
	"context"
	"encoding/json"

	"github.com/edumarket/checkout-gateway/internal/application"
	"github.com/edumarket/checkout-gateway/internal/domain"
)

// DefaultDescription labels orders created without a caller-supplied one.
const DefaultDescription = "Event registration"

// CheckoutService drives the two-step checkout flow: create an order for a
// payment intent, then capture it once the payment widget reports approval.
// It keeps no state between calls; the provider owns the order lifecycle.
type CheckoutService struct {
	provider application.ProviderClient
}

func NewCheckoutService(provider application.ProviderClient) *CheckoutService {
	return &CheckoutService{provider: provider}
}

func (s *CheckoutService) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*application.OrderCreated, error) {
	amount, err := domain.NewAmount(cmd.Amount, cmd.Currency)
	if err != nil {
		return nil, err
	}

	description := cmd.Description
	if description == "" {
		description = DefaultDescription
	}

	req := application.OrderRequest{
		Amount:      amount,
		Description: description,
		CustomID:    cmd.RegistrationID,
	}

	if cmd.PayerName != "" || cmd.PayerEmail != "" {
		payer := domain.Payer{Email: cmd.PayerEmail}
		if cmd.PayerName != "" {
			payer = domain.NewPayer(cmd.PayerName, cmd.PayerEmail)
		}
		req.Payer = &payer
	}

	return s.provider.CreateOrder(ctx, req)
}

// CaptureOrder finalizes a previously approved order. Repeat captures for the
// same order id are forwarded as-is; deduplication is left to the provider.
func (s *CheckoutService) CaptureOrder(ctx context.Context, cmd CaptureOrderCommand) (json.RawMessage, error) {
	if cmd.OrderID == "" {
		return nil, domain.ErrMissingOrderID
	}
	return s.provider.CaptureOrder(ctx, cmd.OrderID)
}
