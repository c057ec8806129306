package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAmount_RejectsZeroAndNegative(t *testing.T) {
	_, err := NewAmount(0, "USD")
	assert.ErrorIs(t, err, ErrMissingAmount)

	_, err = NewAmount(-3.50, "USD")
	assert.ErrorIs(t, err, ErrMissingAmount)
}

func TestNewAmount_DefaultsCurrency(t *testing.T) {
	amt, err := NewAmount(10, "")
	require.NoError(t, err)
	assert.Equal(t, "USD", amt.Currency)

	amt, err = NewAmount(10, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR", amt.Currency)
}

func TestAmount_String(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{19.999, "20.00"},
		{5, "5.00"},
		{49.5, "49.50"},
		{0.1, "0.10"},
		{0.999, "1.00"},
	}

	for _, tt := range tests {
		amt, err := NewAmount(tt.value, "USD")
		require.NoError(t, err)
		assert.Equal(t, tt.want, amt.String(), "value %v", tt.value)
	}
}

func TestSplitName(t *testing.T) {
	given, family := SplitName("Maria Elena Garcia")
	assert.Equal(t, "Maria", given)
	assert.Equal(t, "Elena Garcia", family)

	given, family = SplitName("Cher")
	assert.Equal(t, "Cher", given)
	assert.Equal(t, " ", family)
}

func TestNewPayer(t *testing.T) {
	p := NewPayer("Ada Lovelace", "ada@example.com")
	assert.Equal(t, "Ada", p.GivenName)
	assert.Equal(t, "Lovelace", p.FamilyName)
	assert.Equal(t, "ada@example.com", p.Email)
}
