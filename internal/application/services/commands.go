package services

// CreateOrderCommand carries one payment intent from the HTTP layer.
type CreateOrderCommand struct {
	Amount         float64
	Currency       string
	Description    string
	RegistrationID string
	PayerName      string
	PayerEmail     string
}

type CaptureOrderCommand struct {
	OrderID string
}
