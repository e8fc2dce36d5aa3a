package pricing

// Money represents a monetary value stored in centavos.
type Money = int64

const (
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold Money = 200_00
	// StandardShippingCost is the flat rate charged below the threshold.
	StandardShippingCost Money = 15_00
)

// Item describes a line item used for totals calculation.
type Item struct {
	Qty       int
	UnitPrice Money
}

// Shipping carries the shipping pricing inputs for a cart. When Override
// is set, a quoted cost replaces the flat rule; the free-shipping
// threshold always wins regardless.
type Shipping struct {
	Override     bool
	OverrideCost Money
}

// Summary aggregates the derived pricing components of a cart.
type Summary struct {
	Subtotal Money `json:"subtotal"`
	Shipping Money `json:"shipping"`
	Discount Money `json:"discount"`
	Total    Money `json:"total"`
}

// Subtotal sums unit price times quantity across all lines.
func Subtotal(items []Item) Money {
	var subtotal Money
	for _, it := range items {
		if it.Qty <= 0 {
			continue
		}
		subtotal += Money(it.Qty) * it.UnitPrice
	}
	return subtotal
}

// ShippingCost resolves the shipping charge for the given subtotal. An
// empty cart ships nothing and owes nothing.
func ShippingCost(subtotal Money, s Shipping) Money {
	if subtotal <= 0 {
		return 0
	}
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	if s.Override {
		if s.OverrideCost < 0 {
			return 0
		}
		return s.OverrideCost
	}
	return StandardShippingCost
}

// Compute calculates cart totals given the provided inputs. The discount
// is clamped so it never exceeds the subtotal and the grand total never
// goes negative.
func Compute(items []Item, discount Money, s Shipping) Summary {
	subtotal := Subtotal(items)
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	shipping := ShippingCost(subtotal, s)
	total := subtotal + shipping - discount
	if total < 0 {
		total = 0
	}
	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    total,
	}
}
