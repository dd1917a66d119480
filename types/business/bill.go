package business

import (
	"time"

	"github.com/google/uuid"
)

// BillType classifies which tax rules apply to a bill
type BillType string

const (
	BillTypeGST       BillType = "GST"
	BillTypeNonGST    BillType = "NON_GST"
	BillTypeQuotation BillType = "QUOTATION"
	BillTypeDemo      BillType = "DEMO"
)

// Taxed reports whether entered prices on this bill type embed GST.
// Quotations and demos follow the GST rules; only NON_GST is exempt.
func (t BillType) Taxed() bool {
	return t != BillTypeNonGST
}

// PaymentMode indicates how the customer settled the bill
type PaymentMode string

const (
	PaymentModeFull    PaymentMode = "FULL"
	PaymentModePartial PaymentMode = "PARTIAL"
)

// BillStatus is a bill's lifecycle status. Only the DRAFT marker is ever
// trusted from storage; COMPLETED and PENDING are recomputed on every read.
type BillStatus string

const (
	BillStatusDraft     BillStatus = "DRAFT"
	BillStatusCompleted BillStatus = "COMPLETED"
	BillStatusPending   BillStatus = "PENDING"
)

// LineItem is a single billed item. On taxed bill types UnitPrice is
// tax-inclusive as entered by the operator.
type LineItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Total returns the tax-inclusive line total. A missing quantity counts as 1
// so incomplete line items never fail a computation.
func (li LineItem) Total() float64 {
	quantity := li.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return li.UnitPrice * float64(quantity)
}

// Bill represents a bill as persisted or in-flight-edited by the caller.
// Subtotal, tax, total, remaining amount and effective status are never read
// from here; they are derived fresh by the engine.
type Bill struct {
	ID              uuid.UUID   `json:"id"`
	BillNumber      string      `json:"bill_number"`
	BillType        BillType    `json:"bill_type"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	CustomerAddress string      `json:"customer_address,omitempty"`
	CustomerState   string      `json:"customer_state"`
	Items           []LineItem  `json:"items"`
	PaymentMode     PaymentMode `json:"payment_mode"`
	PaidAmount      float64     `json:"paid_amount"`
	Status          BillStatus  `json:"status,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Edited reports whether the bill has been modified after creation. Bills
// that were never edited produce no audit entry.
func (b Bill) Edited() bool {
	return !b.UpdatedAt.IsZero() && !b.UpdatedAt.Equal(b.CreatedAt)
}
