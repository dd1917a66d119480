package services_test

import (
	"testing"

	"github.com/storebill/billing-engine/services"
	"github.com/storebill/billing-engine/types/api/params"
	"github.com/storebill/billing-engine/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceCalculator_ComputeTotals(t *testing.T) {
	calculator := services.NewInvoiceCalculator()

	tests := []struct {
		name             string
		items            []business.LineItem
		billType         business.BillType
		ratePercent      float64
		expectedSubtotal float64
		expectedTax      float64
		expectedTotal    float64
	}{
		{
			name: "GST bill reverse-derives pre-tax base",
			items: []business.LineItem{
				{Name: "Mixer", UnitPrice: 1180, Quantity: 1},
			},
			billType:         business.BillTypeGST,
			ratePercent:      18,
			expectedSubtotal: 1000.00,
			expectedTax:      180.00,
			expectedTotal:    1180.00,
		},
		{
			name: "NON_GST bill keeps entered total as subtotal",
			items: []business.LineItem{
				{Name: "Mixer", UnitPrice: 1180, Quantity: 1},
			},
			billType:         business.BillTypeNonGST,
			ratePercent:      18, // resolved rate is ignored for NON_GST
			expectedSubtotal: 1180.00,
			expectedTax:      0,
			expectedTotal:    1180.00,
		},
		{
			name: "quotation is taxed like GST",
			items: []business.LineItem{
				{Name: "Mixer", UnitPrice: 1180, Quantity: 1},
			},
			billType:         business.BillTypeQuotation,
			ratePercent:      18,
			expectedSubtotal: 1000.00,
			expectedTax:      180.00,
			expectedTotal:    1180.00,
		},
		{
			name: "demo is taxed like GST",
			items: []business.LineItem{
				{Name: "Mixer", UnitPrice: 590, Quantity: 2},
			},
			billType:         business.BillTypeDemo,
			ratePercent:      18,
			expectedSubtotal: 1000.00,
			expectedTax:      180.00,
			expectedTotal:    1180.00,
		},
		{
			name: "multiple items sum before the reverse calculation",
			items: []business.LineItem{
				{Name: "Soap", UnitPrice: 59, Quantity: 10},
				{Name: "Oil", UnitPrice: 295, Quantity: 2},
			},
			billType:         business.BillTypeGST,
			ratePercent:      18,
			expectedSubtotal: 1000.00,
			expectedTax:      180.00,
			expectedTotal:    1180.00,
		},
		{
			name: "zero rate on a taxed type",
			items: []business.LineItem{
				{Name: "Mixer", UnitPrice: 1180, Quantity: 1},
			},
			billType:         business.BillTypeGST,
			ratePercent:      0,
			expectedSubtotal: 1180.00,
			expectedTax:      0,
			expectedTotal:    1180.00,
		},
		{
			name: "missing quantity counts as one",
			items: []business.LineItem{
				{Name: "Mixer", UnitPrice: 1180},
			},
			billType:         business.BillTypeGST,
			ratePercent:      18,
			expectedSubtotal: 1000.00,
			expectedTax:      180.00,
			expectedTotal:    1180.00,
		},
		{
			name:             "empty bill degrades to zeros",
			items:            nil,
			billType:         business.BillTypeGST,
			ratePercent:      18,
			expectedSubtotal: 0,
			expectedTax:      0,
			expectedTotal:    0,
		},
		{
			name: "rounding at output for awkward rates",
			items: []business.LineItem{
				{Name: "Fan", UnitPrice: 999, Quantity: 1},
			},
			billType:         business.BillTypeGST,
			ratePercent:      12,
			expectedSubtotal: 891.96,
			expectedTax:      107.04,
			expectedTotal:    999.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := calculator.ComputeTotals(params.TotalsParams{
				Items:       tt.items,
				BillType:    tt.billType,
				RatePercent: tt.ratePercent,
			})

			assert.InDelta(t, tt.expectedSubtotal, totals.SubtotalAmount, 0.001)
			assert.InDelta(t, tt.expectedTax, totals.TaxAmount, 0.001)
			assert.InDelta(t, tt.expectedTotal, totals.TotalAmount, 0.001)
		})
	}
}

func TestInvoiceCalculator_RoundTripProperty(t *testing.T) {
	calculator := services.NewInvoiceCalculator()

	// subtotal + tax must reconstruct the entered total within a paisa for
	// any non-negative total and rate
	totalsToTry := []float64{0, 0.01, 1, 99.99, 1180, 12345.67, 999999.99}
	ratesToTry := []float64{0, 5, 9, 10, 12, 18, 28}

	for _, total := range totalsToTry {
		for _, rate := range ratesToTry {
			result := calculator.ComputeTotals(params.TotalsParams{
				Items:       []business.LineItem{{Name: "x", UnitPrice: total, Quantity: 1}},
				BillType:    business.BillTypeGST,
				RatePercent: rate,
			})
			assert.InDelta(t, result.TotalAmount, result.SubtotalAmount+result.TaxAmount, 0.01,
				"total=%v rate=%v", total, rate)
		}
	}
}

func TestInvoiceCalculator_NonGSTInvariant(t *testing.T) {
	calculator := services.NewInvoiceCalculator()

	for _, rate := range []float64{0, 9, 18, 28} {
		result := calculator.ComputeTotals(params.TotalsParams{
			Items:       []business.LineItem{{Name: "x", UnitPrice: 777.77, Quantity: 3}},
			BillType:    business.BillTypeNonGST,
			RatePercent: rate,
		})
		assert.Zero(t, result.TaxAmount)
		assert.Equal(t, result.TotalAmount, result.SubtotalAmount)
		assert.Zero(t, result.RatePercent)
	}
}

func TestInvoiceCalculator_LineBreakdown(t *testing.T) {
	calculator := services.NewInvoiceCalculator()

	totals := calculator.ComputeTotals(params.TotalsParams{
		Items: []business.LineItem{
			{Name: "Soap", UnitPrice: 59, Quantity: 10},
			{Name: "Oil", UnitPrice: 295, Quantity: 2},
		},
		BillType:    business.BillTypeGST,
		RatePercent: 18,
	})

	require.Len(t, totals.Lines, 2)

	soap := totals.Lines[0]
	assert.Equal(t, "Soap", soap.Name)
	assert.Equal(t, 10, soap.Quantity)
	assert.InDelta(t, 590.00, soap.LineTotal, 0.001)
	assert.InDelta(t, 500.00, soap.BaseAmount, 0.001)
	assert.InDelta(t, 90.00, soap.TaxAmount, 0.001)

	oil := totals.Lines[1]
	assert.InDelta(t, 590.00, oil.LineTotal, 0.001)
	assert.InDelta(t, 500.00, oil.BaseAmount, 0.001)
	assert.InDelta(t, 90.00, oil.TaxAmount, 0.001)

	// Line bases sum to the bill subtotal within rounding tolerance
	assert.InDelta(t, totals.SubtotalAmount, soap.BaseAmount+oil.BaseAmount, 0.01)
}

func TestInvoiceCalculator_GSTSplitHalvesSumExactly(t *testing.T) {
	calculator := services.NewInvoiceCalculator()

	// Odd paisa amounts must not leak when halving the blended tax
	totals := calculator.ComputeTotals(params.TotalsParams{
		Items:       []business.LineItem{{Name: "Fan", UnitPrice: 999, Quantity: 1}},
		BillType:    business.BillTypeGST,
		RatePercent: 12,
	})

	assert.InDelta(t, totals.TaxAmount, totals.CGSTAmount+totals.SGSTAmount, 0.0001)
}
