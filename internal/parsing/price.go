package parsing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice converts a comma-decimal price token (e.g. "1,38") to a decimal
// with exactly two fractional digits, rounding half to even. Dot-decimal
// input is accepted too so formatted prices round-trip.
func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing price %q: %w", raw, err)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("parsing price %q: negative value", raw)
	}
	return price.RoundBank(2), nil
}

// FormatPrice renders a price with two fractional digits and a dot decimal
// separator, the form used in the exported CSV.
func FormatPrice(price decimal.Decimal) string {
	return price.StringFixed(2)
}
