package invoice

import "doctrack/internal/core/domain/model/document"

// Condition is a single gate requirement of a workflow transition.
type Condition string

const (
	CommercialInvoiceAttached Condition = "commercial_invoice"
	PackingListAttached       Condition = "packing_list"
	LoadConfirmationIssued    Condition = "load_confirmation"
	QCPassed                  Condition = "qc_passed"
	BVPassed                  Condition = "bv_passed"
	FeriApprovedWhenRequired  Condition = "feri_approved"
	FeriReferenceRecorded     Condition = "feri_reference"
	ManifestGenerated         Condition = "manifest"
	DeliveryNoteAttached      Condition = "delivery_note"
)

type conditionRule struct {
	description string
	satisfied   func(*Invoice) bool
}

func getConditionRules() map[Condition]conditionRule {
	return map[Condition]conditionRule{
		CommercialInvoiceAttached: {
			description: "commercial invoice document missing",
			satisfied:   func(i *Invoice) bool { return i.hasDocument(document.CommercialInvoice) },
		},
		PackingListAttached: {
			description: "packing list document missing",
			satisfied:   func(i *Invoice) bool { return i.hasDocument(document.PackingList) },
		},
		LoadConfirmationIssued: {
			description: "load confirmation not issued",
			satisfied:   func(i *Invoice) bool { return i.loadConfirmationID != nil },
		},
		QCPassed: {
			description: "QC inspection not passed",
			satisfied:   func(i *Invoice) bool { return i.qc.Satisfied() },
		},
		BVPassed: {
			description: "BV inspection not passed",
			satisfied:   func(i *Invoice) bool { return i.bv.Satisfied() },
		},
		FeriApprovedWhenRequired: {
			description: "FERI not approved",
			satisfied:   func(i *Invoice) bool { return i.feri.Satisfied() },
		},
		FeriReferenceRecorded: {
			description: "FERI reference missing",
			satisfied:   func(i *Invoice) bool { return !i.feri.IsRequired() || i.feriReference != "" },
		},
		ManifestGenerated: {
			description: "manifest not generated",
			satisfied:   func(i *Invoice) bool { return i.manifestID != nil },
		},
		DeliveryNoteAttached: {
			description: "delivery note missing",
			satisfied:   func(i *Invoice) bool { return i.hasDocument(document.DeliveryNote) },
		},
	}
}

// Description is the text shown to users for an unmet condition.
func (c Condition) Description() string {
	if rule, ok := getConditionRules()[c]; ok {
		return rule.description
	}
	return string(c)
}

// IsDocument reports whether the condition is met by attaching a document.
func (c Condition) IsDocument() bool {
	return c == CommercialInvoiceAttached || c == PackingListAttached || c == DeliveryNoteAttached
}

// IsKnown reports whether the condition exists in the workflow.
func (c Condition) IsKnown() bool {
	_, ok := getConditionRules()[c]
	return ok
}

func (c Condition) satisfiedBy(i *Invoice) bool {
	rule, ok := getConditionRules()[c]
	return ok && rule.satisfied(i)
}

func describe(conditions []Condition) []string {
	out := make([]string, 0, len(conditions))
	for _, c := range conditions {
		out = append(out, c.Description())
	}
	return out
}
