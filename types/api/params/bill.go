package params

import (
	"github.com/storebill/billing-engine/types/business"
)

// TotalsParams contains parameters for invoice total calculation
type TotalsParams struct {
	Items       []business.LineItem
	BillType    business.BillType
	RatePercent float64
}

// ReconcileParams contains parameters for payment reconciliation
type ReconcileParams struct {
	TotalAmount    float64
	PaidAmount     float64
	PaymentMode    business.PaymentMode
	ExplicitStatus business.BillStatus // persisted status, consulted for the DRAFT marker only
}

// AuditRenderParams contains parameters for rendering a bill's audit entry
type AuditRenderParams struct {
	Bill    business.Bill
	Changes []business.ChangeRecord // nil triggers best-effort inference
}
