package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in       string
		currency string
		units    int64
	}{
		{"USD 1000", "USD", 100000},
		{"USD 1,000", "USD", 100000},
		{"usd 1000", "USD", 100000},
		{"EUR 2500.50", "EUR", 250050},
		{"USD 0.05", "USD", 5},
		{"USD 0.5", "USD", 50},
		{"KZT 1,000,000", "KZT", 100000000},
		{"  USD 42  ", "USD", 4200},
	}

	for _, tc := range cases {
		amount, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.currency, amount.Currency, tc.in)
		assert.Equal(t, tc.units, amount.Units, tc.in)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"1000",
		"USD",
		"US 1000",
		"DOLLAR 1000",
		"USD 10.123",
		"USD 10.",
		"USD ten",
		"USD 1 000",
		"USD -5",
	} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "USD 1,000", Format("USD", 100000))
	assert.Equal(t, "USD 1,000.50", Format("USD", 100050))
	assert.Equal(t, "USD 0", Format("USD", 0))
	assert.Equal(t, "EUR 0.05", Format("EUR", 5))
	assert.Equal(t, "KZT 1,234,567", Format("KZT", 123456700))
}

func TestAccumulationStaysExact(t *testing.T) {
	a, err := Parse("USD 1000")
	require.NoError(t, err)
	b, err := Parse("USD 500")
	require.NoError(t, err)

	total := a.Units + b.Units
	assert.Equal(t, "USD 1,500", Format("USD", total))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, in := range []string{"USD 1,000", "EUR 2,500.50", "USD 0.05"} {
		amount, err := Parse(in)
		require.NoError(t, err)
		assert.Equal(t, in, amount.String())
	}
}
