package interfaces

import (
	"context"

	"github.com/storebill/billing-engine/types/business"
)

// SettingsProvider exposes the company billing settings maintained by the
// settings collaborator. The engine performs no I/O of its own; implementations
// live with the caller (API client, cache, fixture).
type SettingsProvider interface {
	GetCompanySettings(ctx context.Context) (*business.CompanySettings, error)
}
