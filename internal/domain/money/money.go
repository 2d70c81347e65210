// Package money holds the decimal arithmetic shared by every report.
//
// Values flow through the aggregators at full precision; RoundCurrency is
// only called by the response mappers that turn a report into JSON.
package money

import "github.com/shopspring/decimal"

// DiscountType is the kind of discount applied to a quotation subtotal.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

func (t DiscountType) Valid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

// Discount is the source input of a discount amount. The amount itself is
// never stored; it is always recomputed from (Type, Value, subtotal).
type Discount struct {
	Type  DiscountType    `json:"type"`
	Value decimal.Decimal `json:"value"`
}

var hundred = decimal.NewFromInt(100)

// ComputeDiscountAmount returns the discount amount for subtotal, clamped to
// [0, subtotal]. A nil discount yields zero.
func ComputeDiscountAmount(subtotal decimal.Decimal, d *Discount) decimal.Decimal {
	if d == nil || !subtotal.IsPositive() {
		return decimal.Zero
	}

	var amount decimal.Decimal
	switch d.Type {
	case DiscountTypePercentage:
		amount = subtotal.Mul(d.Value).Div(hundred)
	case DiscountTypeFixed:
		amount = d.Value
	default:
		return decimal.Zero
	}
	return clamp(amount, decimal.Zero, subtotal)
}

// ComputeDiscountPercentage returns amount as a percentage of subtotal, or
// zero when subtotal is not positive.
func ComputeDiscountPercentage(subtotal, amount decimal.Decimal) decimal.Decimal {
	return Percent(amount, subtotal)
}

// Percent returns part / whole * 100, or zero when whole is not positive.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole)
}

// Ratio returns total / count, or zero when count is not positive.
func Ratio(total decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}

// TaxOn returns base * rate / 100.
func TaxOn(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(hundred)
}

// RoundCurrency rounds x to cents, half away from zero.
func RoundCurrency(x decimal.Decimal) decimal.Decimal {
	return x.Round(2)
}

// ToFloat rounds x to cents and returns it as a float64 for JSON output.
func ToFloat(x decimal.Decimal) float64 {
	return RoundCurrency(x).InexactFloat64()
}

func clamp(x, lo, hi decimal.Decimal) decimal.Decimal {
	if x.LessThan(lo) {
		return lo
	}
	if x.GreaterThan(hi) {
		return hi
	}
	return x
}
