package services

import (
	"strings"

	"go.uber.org/zap"

	"github.com/storebill/billing-engine/constants"
	"github.com/storebill/billing-engine/logger"
	"github.com/storebill/billing-engine/types/business"
)

// DefaultGSTRatePercent is the company-wide blended rate applied when the
// company has not configured its own default.
const DefaultGSTRatePercent = 18.0

// TaxRateService resolves the blended GST percentage applicable to a bill
type TaxRateService struct {
	logger *zap.Logger
}

// NewTaxRateService creates a new tax rate service
func NewTaxRateService() *TaxRateService {
	return &TaxRateService{
		logger: logger.Log,
	}
}

// fallbackStateRates covers the states most commonly seen on bills. The
// company rate table always takes precedence over this table.
var fallbackStateRates = map[string]float64{
	"maharashtra":    10,
	"gujarat":        9,
	"karnataka":      9,
	"tamil nadu":     9,
	"kerala":         9,
	"andhra pradesh": 9,
	"telangana":      9,
	"rajasthan":      9,
	"punjab":         9,
	"haryana":        9,
	"uttar pradesh":  9,
	"madhya pradesh": 9,
	"west bengal":    9,
	"bihar":          9,
}

// ResolveRate returns the percentage rate applicable to a customer state,
// consulting the company rate table, then the static state fallback table,
// then the company default. It never fails: unknown, empty and "N/A" states
// all resolve to the default. The returned rate is always >= 0. Zero-rating
// of NON_GST bills is a hard override applied by the caller, not here.
func (s *TaxRateService) ResolveRate(customerState string, companyRates []business.StateTaxRate, defaultRate float64) float64 {
	state := normalizeStateName(customerState)

	if state != "" && state != strings.ToLower(constants.UnknownState) {
		for _, entry := range companyRates {
			if normalizeStateName(entry.StateName) == state && entry.GSTRatePercent >= 0 {
				return entry.GSTRatePercent
			}
		}

		if rate, ok := fallbackStateRates[state]; ok {
			return rate
		}

		s.logger.Debug("state not in any rate table, using default rate",
			zap.String("customer_state", customerState))
	}

	if defaultRate > 0 {
		return defaultRate
	}
	return DefaultGSTRatePercent
}

// normalizeStateName trims and lower-cases a state name for table lookups
func normalizeStateName(state string) string {
	return strings.ToLower(strings.TrimSpace(state))
}
