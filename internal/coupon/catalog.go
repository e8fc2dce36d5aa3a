package coupon

import (
	"strings"

	"github.com/loja-labs/backend-loja/internal/pricing"
)

// Kind discriminates how a coupon rule discounts the subtotal.
type Kind string

const (
	// KindPercent discounts a percentage of the subtotal.
	KindPercent Kind = "percent"
	// KindFixed discounts a fixed amount, clamped to the subtotal.
	KindFixed Kind = "fixed"
)

// Rule captures a named discount policy. Rules are configuration data,
// defined once at startup and never mutated.
type Rule struct {
	Code        string
	Kind        Kind
	PercentBps  int32
	Value       pricing.Money
	MinSubtotal pricing.Money
	Description string
}

// catalog is the fixed code -> rule table. Keys are normalized upper case.
var catalog = map[string]Rule{
	"BEMVINDO10": {
		Code:        "BEMVINDO10",
		Kind:        KindPercent,
		PercentBps:  1000,
		MinSubtotal: 100_00,
		Description: "10% de desconto em compras acima de R$ 100,00",
	},
	"DESCONTO50": {
		Code:        "DESCONTO50",
		Kind:        KindFixed,
		Value:       50_00,
		MinSubtotal: 200_00,
		Description: "R$ 50,00 de desconto em compras acima de R$ 200,00",
	},
	"BLACK20": {
		Code:        "BLACK20",
		Kind:        KindPercent,
		PercentBps:  2000,
		MinSubtotal: 500_00,
		Description: "20% de desconto em compras acima de R$ 500,00",
	},
}

// Normalize returns the canonical representation of a coupon code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup finds a rule by code. Matching is case-insensitive.
func Lookup(code string) (Rule, bool) {
	rule, ok := catalog[Normalize(code)]
	return rule, ok
}

// Discount derives the discount the rule grants for the given subtotal.
// The minimum-subtotal gate is re-checked on every call, so a coupon
// that no longer qualifies contributes zero while remaining applied.
func (r Rule) Discount(subtotal pricing.Money) pricing.Money {
	if subtotal <= 0 || subtotal < r.MinSubtotal {
		return 0
	}
	var discount pricing.Money
	switch r.Kind {
	case KindPercent:
		if r.PercentBps <= 0 {
			return 0
		}
		discount = (subtotal * pricing.Money(r.PercentBps)) / 10000
	default:
		discount = r.Value
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		return 0
	}
	return discount
}
