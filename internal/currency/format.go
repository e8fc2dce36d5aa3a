package currency

import (
	"strconv"
	"strings"

	"github.com/loja-labs/backend-loja/internal/pricing"
)

// FormatBRL renders a centavo amount as a Brazilian Real display string,
// e.g. 123456 -> "R$ 1.234,56". Display only, never used for arithmetic.
func FormatBRL(amount pricing.Money) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	reais := amount / 100
	cents := amount % 100

	digits := strconv.FormatInt(reais, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := "R$ " + b.String() + ","
	if cents < 10 {
		out += "0"
	}
	out += strconv.FormatInt(cents, 10)
	if negative {
		return "-" + out
	}
	return out
}
