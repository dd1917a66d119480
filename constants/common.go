package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"
	TestEnvironment = "test"

	// Currencies
	INRCurrency = "INR"

	// Field names recognized by the change classifier
	PaidAmountField      = "paidAmount"
	RemainingAmountField = "remainingAmount"
	StatusField          = "status"
	CustomerNameField    = "customerName"
	CustomerPhoneField   = "customerPhone"
	CustomerAddressField = "customerAddress"

	// Placeholder for a customer state that was never captured
	UnknownState = "N/A"
)
