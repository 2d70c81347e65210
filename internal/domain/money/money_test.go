package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeDiscountAmount(t *testing.T) {
	cases := []struct {
		name     string
		subtotal string
		discount *Discount
		want     string
	}{
		{name: "no discount", subtotal: "100", discount: nil, want: "0"},
		{name: "percentage", subtotal: "100", discount: &Discount{Type: DiscountTypePercentage, Value: d("10")}, want: "10"},
		{name: "percentage with cents", subtotal: "59.99", discount: &Discount{Type: DiscountTypePercentage, Value: d("15")}, want: "8.9985"},
		{name: "percentage above 100 clamps", subtotal: "80", discount: &Discount{Type: DiscountTypePercentage, Value: d("150")}, want: "80"},
		{name: "negative percentage clamps", subtotal: "80", discount: &Discount{Type: DiscountTypePercentage, Value: d("-5")}, want: "0"},
		{name: "fixed", subtotal: "100", discount: &Discount{Type: DiscountTypeFixed, Value: d("25.50")}, want: "25.5"},
		{name: "fixed above subtotal", subtotal: "20", discount: &Discount{Type: DiscountTypeFixed, Value: d("30")}, want: "20"},
		{name: "unknown type", subtotal: "20", discount: &Discount{Type: "coupon", Value: d("5")}, want: "0"},
		{name: "zero subtotal", subtotal: "0", discount: &Discount{Type: DiscountTypeFixed, Value: d("5")}, want: "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeDiscountAmount(d(tc.subtotal), tc.discount)
			assert.True(t, got.Equal(d(tc.want)), "got %s want %s", got, tc.want)
		})
	}
}

func TestComputeDiscountPercentage(t *testing.T) {
	assert.True(t, ComputeDiscountPercentage(d("200"), d("50")).Equal(d("25")))
	assert.True(t, ComputeDiscountPercentage(d("0"), d("50")).IsZero())
}

func TestRatioAndTax(t *testing.T) {
	assert.True(t, Ratio(d("300"), 4).Equal(d("75")))
	assert.True(t, Ratio(d("300"), 0).IsZero())
	assert.True(t, TaxOn(d("90"), d("15")).Equal(d("13.5")))
}

func TestRoundCurrency(t *testing.T) {
	cases := map[string]string{
		"1.005":   "1.01",
		"1.004":   "1",
		"2.675":   "2.68",
		"-2.675":  "-2.68",
		"8.9985":  "9",
		"10":      "10",
		"0.125":   "0.13",
		"99.9949": "99.99",
	}
	for in, want := range cases {
		got := RoundCurrency(d(in))
		assert.True(t, got.Equal(d(want)), "RoundCurrency(%s) = %s, want %s", in, got, want)
	}
	assert.Equal(t, 1.01, ToFloat(d("1.005")))
}

func TestDiscountTypeValid(t *testing.T) {
	assert.True(t, DiscountTypePercentage.Valid())
	assert.True(t, DiscountTypeFixed.Valid())
	assert.False(t, DiscountType("bogus").Valid())
}
