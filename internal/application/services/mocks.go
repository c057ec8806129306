package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/edumarket/checkout-gateway/internal/application"
)

// MockProviderClient is a function-field test double for the provider port.
type MockProviderClient struct {
	mu    sync.Mutex
	calls map[string]int

	CreateOrderFn  func(ctx context.Context, req application.OrderRequest) (*application.OrderCreated, error)
	CaptureOrderFn func(ctx context.Context, orderID string) (json.RawMessage, error)
}

func (m *MockProviderClient) inc(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

func (m *MockProviderClient) GetCalls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MockProviderClient) CreateOrder(ctx context.Context, req application.OrderRequest) (*application.OrderCreated, error) {
	m.inc("CreateOrder")
	if m.CreateOrderFn != nil {
		return m.CreateOrderFn(ctx, req)
	}
	return &application.OrderCreated{ID: "ORDER-123"}, nil
}

func (m *MockProviderClient) CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	m.inc("CaptureOrder")
	if m.CaptureOrderFn != nil {
		return m.CaptureOrderFn(ctx, orderID)
	}
	return json.RawMessage(`{"id":"` + orderID + `","status":"COMPLETED"}`), nil
}
