// Package pricing computes deterministic price breakdowns for bookings.  The
// calculator is pure: no I/O, no clock, no ambient globals.  The tax rate is
// injected once at construction so quotes are reproducible and testable.
package pricing

import (
	"errors"
	"math"

	"github.com/bookit/experience-booking/internal/model"
)

// DefaultTaxRate is applied when no rate is configured.
const DefaultTaxRate = 0.06

// ErrInvalidInput reports a negative unit price or quantity.  That is a
// programming error in the caller, not a runtime condition to recover from.
var ErrInvalidInput = errors.New("pricing: unit price and quantity must be non-negative")

// Breakdown is the result of a quote.  All amounts are whole currency units.
type Breakdown struct {
	Subtotal int64
	Taxes    int64
	Total    int64
	Promo    *model.AppliedPromo // nil when no discount was applied
}

// Calculator turns (unit price, quantity, promo) into a Breakdown.
type Calculator struct {
	taxRate float64
}

// NewCalculator returns a calculator charging the given fraction of the
// subtotal as tax.  Rates at or below zero fall back to DefaultTaxRate.
func NewCalculator(taxRate float64) *Calculator {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	return &Calculator{taxRate: taxRate}
}

// Quote prices a reservation.  Taxes are rounded half-up on the subtotal.  A
// percentage promo discounts round-half-up(subtotal*value/100); a flat promo
// discounts its value outright.  The discount is computed from the subtotal
// but subtracted from the tax-inclusive amount, and the total is clamped at
// zero so an oversized flat discount never produces a negative price.  promo
// may be nil.
func (c *Calculator) Quote(unitPrice, qty int64, promo *model.Promo) (Breakdown, error) {
	if unitPrice < 0 || qty < 0 {
		return Breakdown{}, ErrInvalidInput
	}
	subtotal := unitPrice * qty
	taxes := roundHalfUp(float64(subtotal) * c.taxRate)
	total := subtotal + taxes

	b := Breakdown{Subtotal: subtotal, Taxes: taxes}
	if promo != nil {
		var discount int64
		if promo.Type == model.PromoPercentage {
			discount = roundHalfUp(float64(subtotal) * float64(promo.Value) / 100)
		} else {
			discount = promo.Value
		}
		total -= discount
		if total < 0 {
			total = 0
		}
		b.Promo = &model.AppliedPromo{Code: promo.Code, Discount: discount}
	}
	b.Total = total
	return b, nil
}

func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
