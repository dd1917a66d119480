package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/storebill/billing-engine/helpers"
	"github.com/storebill/billing-engine/interfaces"
	"github.com/storebill/billing-engine/types/api/params"
	"github.com/storebill/billing-engine/types/api/responses"
	"github.com/storebill/billing-engine/types/business"
)

// BillingService is the single source of truth for a bill's derived state.
// It chains rate resolution, total calculation and payment reconciliation;
// callers display the result instead of any persisted totals or status.
type BillingService struct {
	settings   interfaces.SettingsProvider
	logger     *zap.Logger
	taxRates   *TaxRateService
	calculator *InvoiceCalculator
	reconciler *PaymentReconciler
}

// NewBillingService creates a new billing service
func NewBillingService(
	settings interfaces.SettingsProvider,
	logger *zap.Logger,
	taxRates *TaxRateService,
	calculator *InvoiceCalculator,
	reconciler *PaymentReconciler,
) *BillingService {
	return &BillingService{
		settings:   settings,
		logger:     logger,
		taxRates:   taxRates,
		calculator: calculator,
		reconciler: reconciler,
	}
}

// ComputeBill recomputes the authoritative totals and status for a bill.
// Safe to call concurrently for many bills; the bill is owned by the caller
// and nothing here mutates shared state.
func (s *BillingService) ComputeBill(ctx context.Context, bill business.Bill) (*responses.BillComputationResult, error) {
	settings, err := s.settings.GetCompanySettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get company settings: %w", err)
	}

	// NON_GST bills are zero-rated by definition of the bill type, so the
	// resolver is only consulted for taxed types
	var rate float64
	if bill.BillType.Taxed() {
		rate = s.taxRates.ResolveRate(bill.CustomerState, settings.States, settings.DefaultGSTRate)
	}

	totals := s.calculator.ComputeTotals(params.TotalsParams{
		Items:       bill.Items,
		BillType:    bill.BillType,
		RatePercent: rate,
	})

	payment := s.reconciler.Reconcile(params.ReconcileParams{
		TotalAmount:    totals.TotalAmount,
		PaidAmount:     bill.PaidAmount,
		PaymentMode:    bill.PaymentMode,
		ExplicitStatus: bill.Status,
	})

	s.logger.Debug("computed bill",
		zap.String("bill_number", bill.BillNumber),
		zap.String("bill_type", string(bill.BillType)),
		zap.Float64("rate_percent", rate),
		zap.String("total", helpers.FormatAmount(totals.TotalAmount)),
		zap.String("remaining", helpers.FormatAmount(payment.RemainingAmount)),
		zap.String("effective_status", string(payment.EffectiveStatus)))

	return &responses.BillComputationResult{
		Totals:       *totals,
		Payment:      *payment,
		CalculatedAt: time.Now(),
	}, nil
}

// ComputeBills recomputes derived state for a list of bills, preserving
// order. Used by list views that must not trust persisted totals.
func (s *BillingService) ComputeBills(ctx context.Context, bills []business.Bill) ([]responses.BillComputationResult, error) {
	results := make([]responses.BillComputationResult, 0, len(bills))
	for _, bill := range bills {
		result, err := s.ComputeBill(ctx, bill)
		if err != nil {
			return nil, fmt.Errorf("failed to compute bill %s: %w", bill.BillNumber, err)
		}
		results = append(results, *result)
	}
	return results, nil
}
