package responses

import (
	"time"

	"github.com/storebill/billing-engine/types/business"
)

// LineBreakdown is the per-line reverse-calculated tax split used for
// display and PDF rendering
type LineBreakdown struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"line_total"`
	BaseAmount float64 `json:"base_amount"`
	TaxAmount  float64 `json:"tax_amount"`
}

// BillTotals contains the computed invoice totals. TotalAmount is the
// tax-inclusive grand total as entered; SubtotalAmount is the reverse-derived
// pre-tax base. CGST and SGST are a cosmetic halving of the blended tax and
// always sum to TaxAmount.
type BillTotals struct {
	SubtotalAmount float64         `json:"subtotal_amount"`
	TaxAmount      float64         `json:"tax_amount"`
	CGSTAmount     float64         `json:"cgst_amount"`
	SGSTAmount     float64         `json:"sgst_amount"`
	TotalAmount    float64         `json:"total_amount"`
	RatePercent    float64         `json:"rate_percent"`
	Lines          []LineBreakdown `json:"lines"`
}

// PaymentState contains the reconciled payment position of a bill
type PaymentState struct {
	RemainingAmount float64             `json:"remaining_amount"`
	EffectiveStatus business.BillStatus `json:"effective_status"`
}

// BillComputationResult is the full derived state of a bill: totals plus
// payment position. Callers treat this as the single source of truth,
// overriding any stale persisted fields.
type BillComputationResult struct {
	Totals       BillTotals   `json:"totals"`
	Payment      PaymentState `json:"payment"`
	CalculatedAt time.Time    `json:"calculated_at"`
}
