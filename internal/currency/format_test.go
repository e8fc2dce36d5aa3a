package currency

import "testing"

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 0,05"},
		{99, "R$ 0,99"},
		{100_00, "R$ 100,00"},
		{1234_56, "R$ 1.234,56"},
		{1_000_000_00, "R$ 1.000.000,00"},
		{-50_00, "-R$ 50,00"},
	}
	for _, tc := range cases {
		if got := FormatBRL(tc.amount); got != tc.want {
			t.Fatalf("FormatBRL(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
