package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/aicedeno1/quotations-business-rules/internal/domain/money"

	"github.com/shopspring/decimal"
)

// QuotationStatus represents the lifecycle of a quotation.
//
// The set is closed: records carrying any other value are rejected on write
// and left out of every report on read.
type QuotationStatus string

const (
	QuotationStatusPending   QuotationStatus = "pending"
	QuotationStatusApproved  QuotationStatus = "approved"
	QuotationStatusCancelled QuotationStatus = "cancelled"
	QuotationStatusCompleted QuotationStatus = "completed"
)

func (s QuotationStatus) Valid() bool {
	switch s {
	case QuotationStatusPending, QuotationStatusApproved, QuotationStatusCancelled, QuotationStatusCompleted:
		return true
	}
	return false
}

var (
	ErrInvalidQuotationID       = errors.New("quotation id must be a positive integer")
	ErrInvalidQuotationStatus   = errors.New("unknown quotation status")
	ErrInvalidQuotationSubtotal = errors.New("subtotal must be greater than or equal to 0")
	ErrInvalidDiscount          = errors.New("invalid discount")
	ErrInvalidTaxRate           = errors.New("tax rates must be greater than or equal to 0")
	ErrInvalidChefID            = errors.New("chef id must be a positive integer")
)

// TaxRates are the percentages applied to the post-discount base.
type TaxRates struct {
	IVA     decimal.Decimal `json:"iva"`
	Service decimal.Decimal `json:"service"`
	Other   decimal.Decimal `json:"other"`
}

// TaxComponents are the tax amounts derived from TaxRates for a given base.
type TaxComponents struct {
	IVA     decimal.Decimal
	Service decimal.Decimal
	Other   decimal.Decimal
}

func (c TaxComponents) Total() decimal.Decimal {
	return c.IVA.Add(c.Service).Add(c.Other)
}

// Quotation is a priced service offer prepared by a chef.
//
// Storage model:
//   - PK: id (positive integer, supplied by the caller)
//   - ChefID nil means the quotation has not been assigned yet
//
// Discount amount and tax components are never stored; they are derived
// from Subtotal, Discount and TaxRates so they cannot drift.
type Quotation struct {
	ID        int64           `json:"id"`
	ChefID    *int64          `json:"chefId,omitempty"`
	Status    QuotationStatus `json:"status"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  *money.Discount `json:"discount,omitempty"`
	TaxRates  TaxRates        `json:"taxRates"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (q Quotation) DiscountAmount() decimal.Decimal {
	return money.ComputeDiscountAmount(q.Subtotal, q.Discount)
}

// DiscountedBase is the subtotal after discount; taxes are computed on it.
func (q Quotation) DiscountedBase() decimal.Decimal {
	return q.Subtotal.Sub(q.DiscountAmount())
}

// TaxesOn applies the quotation tax rates to an arbitrary base.
func (q Quotation) TaxesOn(base decimal.Decimal) TaxComponents {
	return TaxComponents{
		IVA:     money.TaxOn(base, q.TaxRates.IVA),
		Service: money.TaxOn(base, q.TaxRates.Service),
		Other:   money.TaxOn(base, q.TaxRates.Other),
	}
}

// Taxes are the tax components actually charged.
func (q Quotation) Taxes() TaxComponents {
	return q.TaxesOn(q.DiscountedBase())
}

// FinalTotal is subtotal - discount + taxes on the discounted base.
func (q Quotation) FinalTotal() decimal.Decimal {
	base := q.DiscountedBase()
	return base.Add(q.TaxesOn(base).Total())
}

// Validate checks the record invariants enforced on write.
func (q Quotation) Validate() error {
	if q.ID <= 0 {
		return ErrInvalidQuotationID
	}
	if q.ChefID != nil && *q.ChefID <= 0 {
		return ErrInvalidChefID
	}
	if !q.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidQuotationStatus, q.Status)
	}
	if q.Subtotal.IsNegative() {
		return ErrInvalidQuotationSubtotal
	}
	if q.TaxRates.IVA.IsNegative() || q.TaxRates.Service.IsNegative() || q.TaxRates.Other.IsNegative() {
		return ErrInvalidTaxRate
	}
	if q.Discount == nil {
		return nil
	}

	switch q.Discount.Type {
	case money.DiscountTypePercentage:
		if q.Discount.Value.IsNegative() || q.Discount.Value.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("%w: percentage must be between 0 and 100", ErrInvalidDiscount)
		}
	case money.DiscountTypeFixed:
		if q.Discount.Value.IsNegative() {
			return fmt.Errorf("%w: fixed value must be greater than or equal to 0", ErrInvalidDiscount)
		}
		if q.Discount.Value.GreaterThan(q.Subtotal) {
			return fmt.Errorf("%w: fixed value exceeds subtotal", ErrInvalidDiscount)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidDiscount, q.Discount.Type)
	}
	return nil
}
