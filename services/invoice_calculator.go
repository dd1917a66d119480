package services

import (
	"github.com/storebill/billing-engine/helpers"
	"github.com/storebill/billing-engine/types/api/params"
	"github.com/storebill/billing-engine/types/api/responses"
	"github.com/storebill/billing-engine/types/business"
)

// InvoiceCalculator computes authoritative bill totals from tax-inclusive
// entered prices
type InvoiceCalculator struct {
	// Room for per-currency precision configuration if it is ever needed
}

// NewInvoiceCalculator creates a new invoice calculator
func NewInvoiceCalculator() *InvoiceCalculator {
	return &InvoiceCalculator{}
}

// ComputeTotals calculates subtotal, tax and grand total for a set of line
// items. The grand total is always the tax-inclusive sum of line totals as
// entered. On taxed bill types the pre-tax base is recovered by reverse
// calculation: subtotal = total / (1 + rate/100), derived before the tax
// amount so the two cannot drift apart. All outputs are rounded to two
// decimals at the edge; intermediate math keeps full precision.
func (c *InvoiceCalculator) ComputeTotals(p params.TotalsParams) *responses.BillTotals {
	rate := p.RatePercent
	if !p.BillType.Taxed() {
		// NON_GST bills are zero-rated regardless of the resolved rate
		rate = 0
	}

	var grandTotal float64
	lines := make([]responses.LineBreakdown, 0, len(p.Items))
	for _, item := range p.Items {
		lineTotal := item.Total()
		grandTotal += lineTotal
		lines = append(lines, c.lineBreakdown(item, lineTotal, rate))
	}

	// Divide first, subtract second; the ordering keeps subtotal + tax == total
	subtotal := grandTotal / (1 + rate/100)
	taxAmount := grandTotal - subtotal

	roundedTax := helpers.RoundMoney(taxAmount)
	cgst := helpers.RoundMoney(roundedTax / 2)

	return &responses.BillTotals{
		SubtotalAmount: helpers.RoundMoney(subtotal),
		TaxAmount:      roundedTax,
		CGSTAmount:     cgst,
		SGSTAmount:     helpers.RoundMoney(roundedTax - cgst),
		TotalAmount:    helpers.RoundMoney(grandTotal),
		RatePercent:    rate,
		Lines:          lines,
	}
}

// lineBreakdown applies the same reverse formula to a single line for
// display and PDF rendering
func (c *InvoiceCalculator) lineBreakdown(item business.LineItem, lineTotal, rate float64) responses.LineBreakdown {
	base := lineTotal / (1 + rate/100)

	quantity := item.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return responses.LineBreakdown{
		Name:       item.Name,
		Quantity:   quantity,
		LineTotal:  helpers.RoundMoney(lineTotal),
		BaseAmount: helpers.RoundMoney(base),
		TaxAmount:  helpers.RoundMoney(lineTotal - base),
	}
}
