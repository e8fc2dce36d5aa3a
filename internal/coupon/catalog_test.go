package coupon

import "testing"

func TestLookupIsCaseInsensitive(t *testing.T) {
	for _, code := range []string{"BEMVINDO10", "bemvindo10", "  BemVindo10  "} {
		rule, ok := Lookup(code)
		if !ok {
			t.Fatalf("expected %q to resolve", code)
		}
		if rule.Code != "BEMVINDO10" {
			t.Fatalf("unexpected rule code: %s", rule.Code)
		}
	}
}

func TestLookupUnknownCode(t *testing.T) {
	if _, ok := Lookup("NAOEXISTE"); ok {
		t.Fatal("expected unknown code to miss")
	}
}

func TestPercentDiscount(t *testing.T) {
	rule, _ := Lookup("BEMVINDO10")
	if got := rule.Discount(150_00); got != 15_00 {
		t.Fatalf("expected 10%% of 150.00, got %d", got)
	}
}

func TestPercentDiscountTruncates(t *testing.T) {
	rule, _ := Lookup("BEMVINDO10")
	// 10% of 100.05 is 10.005, fractional centavo drops
	if got := rule.Discount(100_05); got != 10_00 {
		t.Fatalf("expected truncation to 1000, got %d", got)
	}
}

func TestFixedDiscountClampedToSubtotal(t *testing.T) {
	rule := Rule{Code: "X", Kind: KindFixed, Value: 500_00}
	if got := rule.Discount(30_00); got != 30_00 {
		t.Fatalf("fixed discount must clamp to subtotal, got %d", got)
	}
}

func TestDiscountBelowMinimumIsZero(t *testing.T) {
	rule, _ := Lookup("DESCONTO50")
	if got := rule.Discount(199_99); got != 0 {
		t.Fatalf("expected zero below minimum, got %d", got)
	}
	if got := rule.Discount(200_00); got != 50_00 {
		t.Fatalf("expected full value at minimum, got %d", got)
	}
}

func TestDiscountAtExactMinimumPercent(t *testing.T) {
	rule, _ := Lookup("BLACK20")
	if got := rule.Discount(500_00); got != 100_00 {
		t.Fatalf("expected 20%% at exact minimum, got %d", got)
	}
	if got := rule.Discount(499_99); got != 0 {
		t.Fatalf("expected zero just below minimum, got %d", got)
	}
}

func TestDiscountZeroSubtotal(t *testing.T) {
	rule, _ := Lookup("BEMVINDO10")
	if got := rule.Discount(0); got != 0 {
		t.Fatalf("expected zero for empty subtotal, got %d", got)
	}
}
