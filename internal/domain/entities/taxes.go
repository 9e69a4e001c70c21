package entities

import "math"

// Quebec sales tax rates. The tax is computed as two independent amounts
// summed (GST on the subtotal plus QST on the subtotal), not a single
// combined rate multiplied once.
const (
	TaxRateGST = 0.05
	TaxRateQST = 0.09975
)

// Totals is the computed money summary for a set of line items.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// NormalizeLineItem applies the degenerate-input fallbacks and computes the
// line total: a missing/invalid quantity counts as 1, a missing/invalid
// unit price counts as 0. NaN never propagates into totals.
func NormalizeLineItem(it LineItem) LineItem {
	if it.Quantity <= 0 || math.IsNaN(it.Quantity) || math.IsInf(it.Quantity, 0) {
		it.Quantity = 1
	}
	if math.IsNaN(it.UnitPrice) || math.IsInf(it.UnitPrice, 0) {
		it.UnitPrice = 0
	}
	it.Total = it.Quantity * it.UnitPrice
	return it
}

// ComputeTotals sums normalized line totals and applies GST+QST.
//
// No intermediate rounding: amounts are rounded to cents only at the point
// of display or persistence (RoundCents), so multi-item invoices do not
// accumulate rounding error.
func ComputeTotals(items []LineItem) Totals {
	subtotal := 0.0
	for _, it := range items {
		subtotal += NormalizeLineItem(it).Total
	}
	tax := subtotal*TaxRateGST + subtotal*TaxRateQST
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// RoundCents rounds a currency amount to two decimals for display.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
