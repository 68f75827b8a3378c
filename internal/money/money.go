// Package money handles currency-formatted amounts at the presentation
// boundary. Amounts are stored as int64 minor units (cents) plus a currency
// code; strings like "USD 1,000.50" exist only at the API edge.
package money

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrInvalidAmount   = errors.New("money: invalid amount")
	ErrInvalidCurrency = errors.New("money: invalid currency code")
)

// Amount is a currency-tagged value in minor units.
type Amount struct {
	Currency string
	Units    int64 // minor units, e.g. cents
}

// Parse reads a currency-formatted string: a three-letter currency code,
// whitespace, then a decimal number with optional thousands separators.
// "USD 1000", "USD 1,000", "EUR 2500.50" are all valid. At most two decimal
// places are accepted.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	currency := strings.ToUpper(fields[0])
	if len(currency) != 3 {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, fields[0])
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return Amount{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, fields[0])
		}
	}

	units, err := parseUnits(fields[1])
	if err != nil {
		return Amount{}, err
	}

	return Amount{Currency: currency, Units: units}, nil
}

// parseUnits converts a decimal string into minor units.
func parseUnits(s string) (int64, error) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
	}
	if whole == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	var w int64
	for _, r := range whole {
		if !unicode.IsDigit(r) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		w = w*10 + int64(r-'0')
		if w < 0 {
			return 0, fmt.Errorf("%w: overflow in %q", ErrInvalidAmount, s)
		}
	}
	units := w * 100
	if units < 0 {
		return 0, fmt.Errorf("%w: overflow in %q", ErrInvalidAmount, s)
	}

	// Fractional part contributes 10s then 1s of minor units.
	mult := int64(10)
	for _, r := range frac {
		if !unicode.IsDigit(r) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		units += int64(r-'0') * mult
		mult /= 10
	}

	return units, nil
}

// Format renders minor units as "USD 1,000.50". Whole amounts omit the
// decimal part, matching how the platform displays funding figures.
func Format(currency string, units int64) string {
	whole := units / 100
	frac := units % 100

	grouped := group(whole)
	if frac == 0 {
		return fmt.Sprintf("%s %s", currency, grouped)
	}
	return fmt.Sprintf("%s %s.%02d", currency, grouped, frac)
}

func (a Amount) String() string {
	return Format(a.Currency, a.Units)
}

// group inserts thousands separators into a non-negative integer.
func group(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
