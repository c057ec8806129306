// Package domain encodes the checkout value objects and their validation rules.
package domain

import (
	"strconv"
	"strings"
)

// DefaultCurrency is used whenever the caller does not supply one.
const DefaultCurrency = "USD"

// Amount is a monetary value destined for the provider's order API.
type Amount struct {
	Value    float64
	Currency string
}

func NewAmount(value float64, currency string) (Amount, error) {
	if value <= 0 {
		return Amount{}, ErrMissingAmount
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return Amount{Value: value, Currency: currency}, nil
}

// String formats the amount the way the provider expects it: a fixed
// two-decimal string, rounded (19.999 -> "20.00", 5 -> "5.00").
func (a Amount) String() string {
	return strconv.FormatFloat(a.Value, 'f', 2, 64)
}

// Payer identifies the paying user as far as the provider cares.
type Payer struct {
	GivenName  string
	FamilyName string
	Email      string
}

func NewPayer(fullName, email string) Payer {
	given, family := SplitName(fullName)
	return Payer{GivenName: given, FamilyName: family, Email: email}
}

// SplitName cuts a full name at the first space: given name before it,
// family name after. The provider rejects an empty family name, so it
// falls back to a single space.
func SplitName(full string) (given, family string) {
	given, family, _ = strings.Cut(full, " ")
	if family == "" {
		family = " "
	}
	return given, family
}

// OrderID is the opaque identifier the provider issues for a created order.
type OrderID string
