package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockSettingsProviderForTest creates a new mock SettingsProvider for testing
func NewMockSettingsProviderForTest(t *testing.T) *MockSettingsProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSettingsProvider(ctrl)
}
