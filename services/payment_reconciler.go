package services

import (
	"github.com/storebill/billing-engine/helpers"
	"github.com/storebill/billing-engine/types/api/params"
	"github.com/storebill/billing-engine/types/api/responses"
	"github.com/storebill/billing-engine/types/business"
)

// PaymentReconciler derives a bill's remaining amount and lifecycle status
// from its payment state. Reconciliation is pure and idempotent; the derived
// status always overrides whatever status was persisted, except that an
// explicit DRAFT marker wins unconditionally.
type PaymentReconciler struct{}

// NewPaymentReconciler creates a new payment reconciler
func NewPaymentReconciler() *PaymentReconciler {
	return &PaymentReconciler{}
}

// Reconcile computes the remaining amount and effective status for a bill
func (r *PaymentReconciler) Reconcile(p params.ReconcileParams) *responses.PaymentState {
	var remaining float64
	switch p.PaymentMode {
	case business.PaymentModePartial:
		remaining = p.TotalAmount - p.PaidAmount
		if remaining < 0 {
			remaining = 0
		}
	default:
		// FULL: the bill is settled by definition; a divergent stored paid
		// amount is ignored for the remaining-amount calculation
		remaining = 0
	}

	return &responses.PaymentState{
		RemainingAmount: helpers.RoundMoney(remaining),
		EffectiveStatus: r.effectiveStatus(remaining, p.ExplicitStatus),
	}
}

// effectiveStatus derives the lifecycle status. Drafts are never
// auto-completed regardless of the remaining amount.
func (r *PaymentReconciler) effectiveStatus(remaining float64, explicit business.BillStatus) business.BillStatus {
	if explicit == business.BillStatusDraft {
		return business.BillStatusDraft
	}
	if remaining > 0 {
		return business.BillStatusPending
	}
	return business.BillStatusCompleted
}
