package paypal

// Wire types for the provider's Checkout Orders v2 API.

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type orderRequest struct {
	Intent             string         `json:"intent"`
	PurchaseUnits      []purchaseUnit `json:"purchase_units"`
	Payer              *orderPayer    `json:"payer,omitempty"`
	ApplicationContext appContext     `json:"application_context"`
}

type purchaseUnit struct {
	Amount      unitAmount `json:"amount"`
	Description string     `json:"description"`
	CustomID    string     `json:"custom_id,omitempty"`
}

type unitAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type orderPayer struct {
	Name         *payerName `json:"name,omitempty"`
	EmailAddress string     `json:"email_address,omitempty"`
}

type payerName struct {
	GivenName string `json:"given_name"`
	Surname   string `json:"surname"`
}

type appContext struct {
	ShippingPreference string `json:"shipping_preference"`
	UserAction         string `json:"user_action"`
}

type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
