package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/edumarket/checkout-gateway/internal/application/services"
	"github.com/edumarket/checkout-gateway/internal/interfaces/rest"
)

// HandleCreateOrder creates a pending provider order for one payment intent
// and returns only its id. The client-side payment widget takes it from there.
func (h *Handlers) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		rest.WriteText(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	var req CreateOrderRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			rest.WriteError(w, err)
			return
		}
	}

	if req.Amount == 0 {
		rest.WriteText(w, http.StatusBadRequest, "Missing amount")
		return
	}

	cmd := services.CreateOrderCommand{
		Amount:         float64(req.Amount),
		Currency:       req.Currency,
		Description:    req.Description,
		RegistrationID: string(req.RegistrationID),
		PayerName:      req.PayerName,
		PayerEmail:     req.PayerEmail,
	}

	created, err := h.checkout.CreateOrder(r.Context(), cmd)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, created)
}
