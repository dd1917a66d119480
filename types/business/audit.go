package business

import (
	"time"

	"github.com/google/uuid"
)

// ChangeKind identifies what a backend diff recorded about a bill edit
type ChangeKind string

const (
	ChangeFieldUpdated ChangeKind = "FIELD_UPDATED"
	ChangeItemAdded    ChangeKind = "ITEM_ADDED"
	ChangeItemRemoved  ChangeKind = "ITEM_REMOVED"
	ChangeItemUpdated  ChangeKind = "ITEM_UPDATED"
)

// ChangeRecord is one field- or item-level change from a bill update,
// produced by the backend diff or inferred as a fallback
type ChangeRecord struct {
	Kind      ChangeKind `json:"kind"`
	FieldName string     `json:"field_name,omitempty"`
}

// AuditIcon selects the icon shown next to an audit entry
type AuditIcon string

const (
	IconMoney   AuditIcon = "money"
	IconCard    AuditIcon = "card"
	IconReceipt AuditIcon = "receipt"
	IconPerson  AuditIcon = "person"
	IconNote    AuditIcon = "note"
)

// AuditEntry is the single rendered summary of one bill-update event.
// Message carries the highest-priority change; AllMessages carries every
// matched category in priority order.
type AuditEntry struct {
	BillID       uuid.UUID `json:"bill_id"`
	BillNumber   string    `json:"bill_number"`
	CustomerName string    `json:"customer_name"`
	Icon         AuditIcon `json:"icon"`
	Message      string    `json:"message"`
	AllMessages  []string  `json:"all_messages"`
	Timestamp    time.Time `json:"timestamp"`
}
