// Package rest maps service results and errors onto the HTTP contract.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/edumarket/checkout-gateway/internal/domain"
	"github.com/edumarket/checkout-gateway/internal/infrastructure/paypal"
)

// WriteError maps an error to the wire contract:
//   - input errors -> 400 with a short plain-text message
//   - provider API rejections -> 400 with the provider's JSON body untouched
//   - provider auth failures -> 500 with the token error text
//   - anything else -> 500 with the error's message
func WriteError(w http.ResponseWriter, err error) {
	if inputErr, ok := domain.IsInputError(err); ok {
		WriteText(w, http.StatusBadRequest, inputErr.Message)
		return
	}

	if apiErr, ok := paypal.IsAPIError(err); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(apiErr.Body)
		return
	}

	WriteText(w, http.StatusInternalServerError, err.Error())
}

func WriteText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteRawJSON forwards an upstream JSON payload without re-encoding it.
func WriteRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
