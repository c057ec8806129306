package paypal_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/edumarket/checkout-gateway/internal/application"
	"github.com/edumarket/checkout-gateway/internal/config"
	"github.com/edumarket/checkout-gateway/internal/domain"
	"github.com/edumarket/checkout-gateway/internal/infrastructure/paypal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	mux *http.ServeMux

	tokenCalls   atomic.Int64
	orderCalls   atomic.Int64
	captureCalls atomic.Int64

	tokenStatus   int
	tokenBody     string
	orderStatus   int
	orderBody     string
	captureStatus int
	captureBodies []string

	lastTokenAuth    string
	lastOrderAuth    string
	lastGrantType    string
	lastOrderPayload map[string]any
}

func newFakeProvider() *fakeProvider {
	f := &fakeProvider{
		tokenStatus:   http.StatusOK,
		tokenBody:     `{"access_token":"test-token","token_type":"Bearer","expires_in":32400}`,
		orderStatus:   http.StatusCreated,
		orderBody:     `{"id":"ORDER-123","status":"CREATED"}`,
		captureStatus: http.StatusCreated,
		captureBodies: []string{`{"id":"ORDER-123","status":"COMPLETED"}`},
	}

	f.mux = http.NewServeMux()
	f.mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		f.lastTokenAuth = r.Header.Get("Authorization")
		_ = r.ParseForm()
		f.lastGrantType = r.PostForm.Get("grant_type")
		w.WriteHeader(f.tokenStatus)
		fmt.Fprint(w, f.tokenBody)
	})
	f.mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		f.orderCalls.Add(1)
		f.lastOrderAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&f.lastOrderPayload)
		w.WriteHeader(f.orderStatus)
		fmt.Fprint(w, f.orderBody)
	})
	f.mux.HandleFunc("/v2/checkout/orders/", func(w http.ResponseWriter, r *http.Request) {
		n := int(f.captureCalls.Add(1))
		if n > len(f.captureBodies) {
			n = len(f.captureBodies)
		}
		body := f.captureBodies[n-1]
		w.WriteHeader(f.captureStatus)
		fmt.Fprint(w, body)
	})

	return f
}

func newTestClient(t *testing.T, f *fakeProvider) application.ProviderClient {
	t.Helper()
	srv := httptest.NewServer(f.mux)
	t.Cleanup(srv.Close)

	return paypal.NewClient(config.PayPalConfig{
		Environment:  "sandbox",
		BaseURL:      srv.URL,
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		ConnTimeout:  5 * time.Second,
	})
}

func orderReq(t *testing.T, value float64) application.OrderRequest {
	t.Helper()
	amt, err := domain.NewAmount(value, "USD")
	require.NoError(t, err)
	return application.OrderRequest{
		Amount:      amt,
		Description: "Event registration",
	}
}

func TestClient_CreateOrder_SendsExpectedPayload(t *testing.T) {
	fake := newFakeProvider()
	client := newTestClient(t, fake)

	payer := domain.NewPayer("Maria Elena Garcia", "maria@example.com")
	req := orderReq(t, 19.999)
	req.Description = "Fair ticket"
	req.CustomID = "reg_1"
	req.Payer = &payer

	created, err := client.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ORDER-123", created.ID)

	// token exchange used basic auth with the configured credentials
	assert.Contains(t, fake.lastTokenAuth, "Basic ")
	assert.Equal(t, "client_credentials", fake.lastGrantType)
	// order call carried the bearer token
	assert.Equal(t, "Bearer test-token", fake.lastOrderAuth)

	payload := fake.lastOrderPayload
	assert.Equal(t, "CAPTURE", payload["intent"])

	units := payload["purchase_units"].([]any)
	require.Len(t, units, 1)
	unit := units[0].(map[string]any)
	amount := unit["amount"].(map[string]any)
	assert.Equal(t, "20.00", amount["value"])
	assert.Equal(t, "USD", amount["currency_code"])
	assert.Equal(t, "Fair ticket", unit["description"])
	assert.Equal(t, "reg_1", unit["custom_id"])

	payerPayload := payload["payer"].(map[string]any)
	name := payerPayload["name"].(map[string]any)
	assert.Equal(t, "Maria", name["given_name"])
	assert.Equal(t, "Elena Garcia", name["surname"])
	assert.Equal(t, "maria@example.com", payerPayload["email_address"])

	appCtx := payload["application_context"].(map[string]any)
	assert.Equal(t, "NO_SHIPPING", appCtx["shipping_preference"])
	assert.Equal(t, "PAY_NOW", appCtx["user_action"])
}

func TestClient_CreateOrder_WholeAmountFormatting(t *testing.T) {
	fake := newFakeProvider()
	client := newTestClient(t, fake)

	_, err := client.CreateOrder(context.Background(), orderReq(t, 5))
	require.NoError(t, err)

	unit := fake.lastOrderPayload["purchase_units"].([]any)[0].(map[string]any)
	amount := unit["amount"].(map[string]any)
	assert.Equal(t, "5.00", amount["value"])
}

func TestClient_CreateOrder_ProviderErrorPassthrough(t *testing.T) {
	fake := newFakeProvider()
	fake.orderStatus = http.StatusUnprocessableEntity
	fake.orderBody = `{"name":"UNPROCESSABLE_ENTITY","details":[{"issue":"CURRENCY_NOT_SUPPORTED"}]}`
	client := newTestClient(t, fake)

	_, err := client.CreateOrder(context.Background(), orderReq(t, 10))
	require.Error(t, err)

	apiErr, ok := paypal.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.JSONEq(t, fake.orderBody, string(apiErr.Body))
}

func TestClient_AuthFailure_NoOrderCallAttempted(t *testing.T) {
	fake := newFakeProvider()
	fake.tokenStatus = http.StatusUnauthorized
	fake.tokenBody = `{"error":"invalid_client","error_description":"Client Authentication failed"}`
	client := newTestClient(t, fake)

	_, err := client.CreateOrder(context.Background(), orderReq(t, 10))
	require.Error(t, err)

	authErr, ok := paypal.IsAuthError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
	assert.Contains(t, err.Error(), "token error")
	assert.Equal(t, int64(0), fake.orderCalls.Load())

	_, err = client.CaptureOrder(context.Background(), "ORDER-123")
	require.Error(t, err)
	_, ok = paypal.IsAuthError(err)
	assert.True(t, ok)
	assert.Equal(t, int64(0), fake.captureCalls.Load())
}

func TestClient_CaptureOrder_ReturnsProviderBodyVerbatim(t *testing.T) {
	fake := newFakeProvider()
	fake.captureBodies = []string{
		`{"id":"ORDER-123","status":"COMPLETED","purchase_units":[{"payments":{"captures":[{"id":"CAP-1"}]}}]}`,
	}
	client := newTestClient(t, fake)

	raw, err := client.CaptureOrder(context.Background(), "ORDER-123")
	require.NoError(t, err)
	assert.JSONEq(t, fake.captureBodies[0], string(raw))
}

func TestClient_CaptureOrder_RepeatCapturePassesSecondResponseThrough(t *testing.T) {
	fake := newFakeProvider()
	fake.captureBodies = []string{
		`{"id":"ORDER-123","status":"COMPLETED"}`,
		`{"id":"ORDER-123","status":"COMPLETED","note":"already captured"}`,
	}
	client := newTestClient(t, fake)

	first, err := client.CaptureOrder(context.Background(), "ORDER-123")
	require.NoError(t, err)
	second, err := client.CaptureOrder(context.Background(), "ORDER-123")
	require.NoError(t, err)

	assert.JSONEq(t, fake.captureBodies[0], string(first))
	assert.JSONEq(t, fake.captureBodies[1], string(second))
	assert.Equal(t, int64(2), fake.captureCalls.Load())
}

func TestClient_FetchesFreshTokenPerOperation(t *testing.T) {
	fake := newFakeProvider()
	client := newTestClient(t, fake)

	_, err := client.CreateOrder(context.Background(), orderReq(t, 10))
	require.NoError(t, err)
	_, err = client.CaptureOrder(context.Background(), "ORDER-123")
	require.NoError(t, err)
	_, err = client.CaptureOrder(context.Background(), "ORDER-123")
	require.NoError(t, err)

	assert.Equal(t, int64(3), fake.tokenCalls.Load())
}

func TestClient_CaptureOrder_ProviderErrorPassthrough(t *testing.T) {
	fake := newFakeProvider()
	fake.captureStatus = http.StatusUnprocessableEntity
	fake.captureBodies = []string{`{"name":"UNPROCESSABLE_ENTITY","details":[{"issue":"ORDER_NOT_APPROVED"}]}`}
	client := newTestClient(t, fake)

	_, err := client.CaptureOrder(context.Background(), "ORDER-123")
	require.Error(t, err)

	apiErr, ok := paypal.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.JSONEq(t, fake.captureBodies[0], string(apiErr.Body))
}
