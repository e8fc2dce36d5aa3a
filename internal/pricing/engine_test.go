package pricing

import "testing"

func TestSubtotalSumsLines(t *testing.T) {
	items := []Item{
		{Qty: 2, UnitPrice: 79_90},
		{Qty: 1, UnitPrice: 45_50},
	}
	if got := Subtotal(items); got != 205_30 {
		t.Fatalf("unexpected subtotal: %d", got)
	}
}

func TestSubtotalIgnoresNonPositiveQuantities(t *testing.T) {
	items := []Item{
		{Qty: 0, UnitPrice: 100_00},
		{Qty: -3, UnitPrice: 100_00},
		{Qty: 1, UnitPrice: 10_00},
	}
	if got := Subtotal(items); got != 10_00 {
		t.Fatalf("unexpected subtotal: %d", got)
	}
}

func TestShippingCostFlatRateBelowThreshold(t *testing.T) {
	if got := ShippingCost(150_00, Shipping{}); got != StandardShippingCost {
		t.Fatalf("expected flat rate, got %d", got)
	}
}

func TestShippingCostFreeAtThreshold(t *testing.T) {
	if got := ShippingCost(FreeShippingThreshold, Shipping{}); got != 0 {
		t.Fatalf("expected free shipping at threshold, got %d", got)
	}
	if got := ShippingCost(500_00, Shipping{Override: true, OverrideCost: 25_00}); got != 0 {
		t.Fatalf("threshold must beat quoted cost, got %d", got)
	}
}

func TestShippingCostOverride(t *testing.T) {
	if got := ShippingCost(100_00, Shipping{Override: true, OverrideCost: 25_00}); got != 25_00 {
		t.Fatalf("expected quoted cost, got %d", got)
	}
	if got := ShippingCost(100_00, Shipping{Override: true, OverrideCost: -5}); got != 0 {
		t.Fatalf("negative quote must clamp to zero, got %d", got)
	}
}

func TestComputeEmptyCart(t *testing.T) {
	sum := Compute(nil, 0, Shipping{})
	if sum.Subtotal != 0 || sum.Shipping != 0 || sum.Discount != 0 || sum.Total != 0 {
		t.Fatalf("empty cart must be all zeros: %+v", sum)
	}
}

func TestComputeClampsDiscountToSubtotal(t *testing.T) {
	items := []Item{{Qty: 1, UnitPrice: 30_00}}
	sum := Compute(items, 50_00, Shipping{})
	if sum.Discount != 30_00 {
		t.Fatalf("discount must clamp to subtotal, got %d", sum.Discount)
	}
	// shipping still owed after a full discount
	if sum.Total != StandardShippingCost {
		t.Fatalf("expected total %d, got %d", StandardShippingCost, sum.Total)
	}
}

func TestComputeNegativeDiscountIgnored(t *testing.T) {
	items := []Item{{Qty: 1, UnitPrice: 100_00}}
	sum := Compute(items, -10_00, Shipping{})
	if sum.Discount != 0 {
		t.Fatalf("negative discount must be ignored, got %d", sum.Discount)
	}
}

func TestComputeTotalNeverNegative(t *testing.T) {
	items := []Item{{Qty: 1, UnitPrice: 10_00}}
	sum := Compute(items, 10_00, Shipping{Override: true, OverrideCost: 0})
	if sum.Total != 0 {
		t.Fatalf("expected zero total, got %d", sum.Total)
	}
}

func TestComputeRepresentativeCart(t *testing.T) {
	// two lines above the free shipping threshold with a fixed discount
	items := []Item{
		{Qty: 2, UnitPrice: 120_00},
		{Qty: 1, UnitPrice: 60_00},
	}
	sum := Compute(items, 50_00, Shipping{})
	if sum.Subtotal != 300_00 {
		t.Fatalf("unexpected subtotal: %d", sum.Subtotal)
	}
	if sum.Shipping != 0 {
		t.Fatalf("expected free shipping, got %d", sum.Shipping)
	}
	if sum.Total != 250_00 {
		t.Fatalf("unexpected total: %d", sum.Total)
	}
}
