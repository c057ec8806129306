package handlers

import (
	"encoding/json"
	"strconv"
)

// CreateOrderRequest tolerates the loose typing browsers send: amount may be
// a number or a numeric string, registrationId a string or a number.
type CreateOrderRequest struct {
	Amount         FlexNumber `json:"amount"`
	Currency       string     `json:"currency"`
	Description    string     `json:"description"`
	RegistrationID FlexString `json:"registrationId"`
	PayerName      string     `json:"payerName"`
	PayerEmail     string     `json:"payerEmail"`
}

type CaptureOrderRequest struct {
	OrderID string `json:"orderID"`
}

// FlexNumber decodes a JSON number, a numeric string, null, or an empty
// string (which counts as absent, not as a parse error).
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = FlexNumber(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = FlexNumber(f)
	return nil
}

// FlexString decodes a JSON string or number into its textual form.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = FlexString(num.String())
	return nil
}
