package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/edumarket/checkout-gateway/internal/application/services"
	"github.com/edumarket/checkout-gateway/internal/interfaces/rest"
)

// HandleCaptureOrder finalizes an approved order and forwards the provider's
// capture payload verbatim. Repeat captures are not deduplicated here; the
// provider's own semantics decide what a second capture returns.
func (h *Handlers) HandleCaptureOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		rest.WriteText(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	var req CaptureOrderRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			rest.WriteError(w, err)
			return
		}
	}

	if req.OrderID == "" {
		rest.WriteText(w, http.StatusBadRequest, "Missing orderID")
		return
	}

	raw, err := h.checkout.CaptureOrder(r.Context(), services.CaptureOrderCommand{OrderID: req.OrderID})
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteRawJSON(w, http.StatusOK, raw)
}
