package services

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storebill/billing-engine/constants"
	"github.com/storebill/billing-engine/logger"
	"github.com/storebill/billing-engine/types/api/params"
	"github.com/storebill/billing-engine/types/business"
)

// AuditService classifies bill changes and renders the human-readable
// change history, per bill and across all bills
type AuditService struct {
	logger *zap.Logger
}

// NewAuditService creates a new audit service
func NewAuditService() *AuditService {
	return &AuditService{
		logger: logger.Log,
	}
}

// fallbackMessage is used when no record matches a known category
const fallbackMessage = "bill updated"

// recognizedFields are the field names handled by a dedicated category; the
// catch-all field rule only fires for fields outside this set
var recognizedFields = map[string]bool{
	constants.PaidAmountField:      true,
	constants.RemainingAmountField: true,
	constants.StatusField:          true,
	constants.CustomerNameField:    true,
	constants.CustomerPhoneField:   true,
	constants.CustomerAddressField: true,
}

// changeCategory is a single classifier rule: a predicate over one change
// record plus the message and icon it renders to
type changeCategory struct {
	match   func(business.ChangeRecord) bool
	message func(business.ChangeRecord) string
	icon    business.AuditIcon
}

// changeCategories is the classifier's priority order. Categories are
// evaluated top-to-bottom over the whole change set; the first category with
// any matching record supplies the entry's message and icon.
var changeCategories = []changeCategory{
	{
		match:   fieldUpdated(constants.PaidAmountField),
		message: staticMessage("payment updated"),
		icon:    business.IconMoney,
	},
	{
		match:   fieldUpdated(constants.RemainingAmountField),
		message: staticMessage("pending amount changed"),
		icon:    business.IconCard,
	},
	{
		match:   kindIs(business.ChangeItemAdded),
		message: staticMessage("new item added"),
		icon:    business.IconReceipt,
	},
	{
		match:   kindIs(business.ChangeItemRemoved),
		message: staticMessage("item removed"),
		icon:    business.IconReceipt,
	},
	{
		match:   kindIs(business.ChangeItemUpdated),
		message: staticMessage("item updated"),
		icon:    business.IconReceipt,
	},
	{
		match:   fieldUpdated(constants.StatusField),
		message: staticMessage("status changed"),
		icon:    business.IconNote,
	},
	{
		match: anyFieldUpdated(
			constants.CustomerNameField,
			constants.CustomerPhoneField,
			constants.CustomerAddressField,
		),
		message: func(rec business.ChangeRecord) string {
			return fmt.Sprintf("%s changed", humanizeFieldName(rec.FieldName))
		},
		icon: business.IconPerson,
	},
	{
		match: func(rec business.ChangeRecord) bool {
			return rec.Kind == business.ChangeFieldUpdated &&
				rec.FieldName != "" && !recognizedFields[rec.FieldName]
		},
		message: func(rec business.ChangeRecord) string {
			return fmt.Sprintf("%s updated", rec.FieldName)
		},
		icon: business.IconNote,
	},
}

// Classify reduces a change set to its display message and icon. Exactly one
// primary message is produced per update event; every matched category is
// reported in allMessages, in priority order.
func (s *AuditService) Classify(records []business.ChangeRecord) (message string, icon business.AuditIcon, allMessages []string) {
	for _, category := range changeCategories {
		for _, rec := range records {
			if category.match(rec) {
				allMessages = append(allMessages, category.message(rec))
				if message == "" {
					message = category.message(rec)
					icon = category.icon
				}
				break
			}
		}
	}

	if message == "" {
		message = fallbackMessage
		icon = business.IconNote
		allMessages = []string{fallbackMessage}
	}
	return message, icon, allMessages
}

// InferChanges is the degraded fallback used when no backend diff was
// supplied: it pattern-matches the bill's own current values into synthetic
// change records. Strictly less precise than a real diff.
func (s *AuditService) InferChanges(bill business.Bill) []business.ChangeRecord {
	var records []business.ChangeRecord

	if bill.PaidAmount > 0 {
		records = append(records, business.ChangeRecord{
			Kind:      business.ChangeFieldUpdated,
			FieldName: constants.PaidAmountField,
		})
	}
	if bill.Status != "" && bill.Status != business.BillStatusDraft {
		records = append(records, business.ChangeRecord{
			Kind:      business.ChangeFieldUpdated,
			FieldName: constants.StatusField,
		})
	}

	return records
}

// RenderEntry produces the single audit entry for one bill-update event, or
// nil for a bill that has never been edited after creation. When no change
// records are supplied the inference fallback is used.
func (s *AuditService) RenderEntry(p params.AuditRenderParams) *business.AuditEntry {
	if !p.Bill.Edited() {
		return nil
	}

	records := p.Changes
	if len(records) == 0 {
		s.logger.Debug("no change records supplied, inferring from bill values",
			zap.String("bill_number", p.Bill.BillNumber))
		records = s.InferChanges(p.Bill)
	}

	message, icon, allMessages := s.Classify(records)

	return &business.AuditEntry{
		BillID:       p.Bill.ID,
		BillNumber:   p.Bill.BillNumber,
		CustomerName: p.Bill.CustomerName,
		Icon:         icon,
		Message:      message,
		AllMessages:  allMessages,
		Timestamp:    p.Bill.UpdatedAt,
	}
}

// BuildTrail aggregates audit entries across all bills into the global
// history view, most recent first. Bills never edited contribute nothing.
func (s *AuditService) BuildTrail(bills []business.Bill, changes map[uuid.UUID][]business.ChangeRecord) []business.AuditEntry {
	entries := make([]business.AuditEntry, 0, len(bills))
	for _, bill := range bills {
		entry := s.RenderEntry(params.AuditRenderParams{
			Bill:    bill,
			Changes: changes[bill.ID],
		})
		if entry != nil {
			entries = append(entries, *entry)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}

func kindIs(kind business.ChangeKind) func(business.ChangeRecord) bool {
	return func(rec business.ChangeRecord) bool {
		return rec.Kind == kind
	}
}

func fieldUpdated(name string) func(business.ChangeRecord) bool {
	return func(rec business.ChangeRecord) bool {
		return rec.Kind == business.ChangeFieldUpdated && rec.FieldName == name
	}
}

func anyFieldUpdated(names ...string) func(business.ChangeRecord) bool {
	return func(rec business.ChangeRecord) bool {
		if rec.Kind != business.ChangeFieldUpdated {
			return false
		}
		for _, name := range names {
			if rec.FieldName == name {
				return true
			}
		}
		return false
	}
}

func staticMessage(msg string) func(business.ChangeRecord) string {
	return func(business.ChangeRecord) string { return msg }
}

// humanizeFieldName maps the customer contact field names to display form
func humanizeFieldName(field string) string {
	switch field {
	case constants.CustomerNameField:
		return "customer name"
	case constants.CustomerPhoneField:
		return "customer phone"
	case constants.CustomerAddressField:
		return "customer address"
	}
	return field
}
