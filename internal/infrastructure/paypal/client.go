// Package paypal implements the provider port against PayPal's Checkout
// Orders v2 API.
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/edumarket/checkout-gateway/internal/application"
	"github.com/edumarket/checkout-gateway/internal/config"
)

const (
	sandboxBaseURL = "https://api-m.sandbox.paypal.com"
	liveBaseURL    = "https://api-m.paypal.com"

	intentCapture = "CAPTURE"
)

type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

func NewClient(cfg config.PayPalConfig) application.ProviderClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = sandboxBaseURL
		if cfg.Environment == "live" {
			baseURL = liveBaseURL
		}
	}

	return &Client{
		baseURL:      baseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

// fetchAccessToken performs the client-credentials exchange. Tokens are
// deliberately not cached: every operation re-authenticates.
func (c *Client) fetchAccessToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("error creating token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error requesting token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &AuthError{StatusCode: resp.StatusCode, Body: body}
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("error decoding token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", &AuthError{StatusCode: resp.StatusCode, Body: body}
	}

	return tok.AccessToken, nil
}

func (c *Client) CreateOrder(ctx context.Context, req application.OrderRequest) (*application.OrderCreated, error) {
	token, err := c.fetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	unit := purchaseUnit{
		Amount: unitAmount{
			CurrencyCode: req.Amount.Currency,
			Value:        req.Amount.String(),
		},
		Description: req.Description,
		CustomID:    req.CustomID,
	}

	orderReq := orderRequest{
		Intent:        intentCapture,
		PurchaseUnits: []purchaseUnit{unit},
		ApplicationContext: appContext{
			ShippingPreference: "NO_SHIPPING",
			UserAction:         "PAY_NOW",
		},
	}

	if req.Payer != nil {
		p := &orderPayer{EmailAddress: req.Payer.Email}
		if req.Payer.GivenName != "" {
			p.Name = &payerName{
				GivenName: req.Payer.GivenName,
				Surname:   req.Payer.FamilyName,
			}
		}
		orderReq.Payer = p
	}

	body, err := c.post(ctx, "/v2/checkout/orders", token, orderReq)
	if err != nil {
		return nil, err
	}

	var order orderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("error decoding order response: %w", err)
	}

	return &application.OrderCreated{ID: order.ID}, nil
}

func (c *Client) CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	token, err := c.fetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/v2/checkout/orders/%s/capture", url.PathEscape(orderID))
	return c.post(ctx, path, token, nil)
}

func (c *Client) post(ctx context.Context, path, token string, reqBody any) ([]byte, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}
