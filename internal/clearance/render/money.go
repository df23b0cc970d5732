package render

import (
	"fmt"
	"math"
	"strconv"
)

// groupThousands inserts comma separators into a non-negative integer literal.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var out []byte
	lead := n % 3
	if lead > 0 {
		out = append(out, digits[:lead]...)
	}
	for i := lead; i < n; i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}

// FormatCurrency renders a whole-dollar amount, "$25,000,000".
func FormatCurrency(amount float64) string {
	whole := int64(math.Round(amount))
	return "$" + groupThousands(strconv.FormatInt(whole, 10))
}

// FormatCurrencyCents renders a two-decimal amount, "$25,000,000.00".
func FormatCurrencyCents(amount float64) string {
	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100
	return fmt.Sprintf("$%s.%02d", groupThousands(strconv.FormatInt(whole, 10)), frac)
}
