package repository

import (
	"fmt"
	"time"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/entities"
	"github.com/aicedeno1/quotations-business-rules/internal/domain/money"

	"github.com/shopspring/decimal"
)

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// parseDecimal treats a blank column as zero.
func parseDecimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return d, nil
}

func parseTaxRates(iva, service, other string) (entities.TaxRates, error) {
	var (
		r   entities.TaxRates
		err error
	)
	if r.IVA, err = parseDecimal("tax_iva", iva); err != nil {
		return r, err
	}
	if r.Service, err = parseDecimal("tax_service", service); err != nil {
		return r, err
	}
	if r.Other, err = parseDecimal("tax_other", other); err != nil {
		return r, err
	}
	return r, nil
}

// parseDiscount returns nil when no discount type is stored.
func parseDiscount(discountType, value string) (*money.Discount, error) {
	if discountType == "" {
		return nil, nil
	}
	v, err := parseDecimal("discount_value", value)
	if err != nil {
		return nil, err
	}
	return &money.Discount{Type: money.DiscountType(discountType), Value: v}, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return t.UTC(), nil
}
