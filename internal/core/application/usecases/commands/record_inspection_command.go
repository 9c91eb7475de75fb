package commands

import (
	"errors"

	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/guard"
)

var ErrRecordInspectionCommandIsNotConstructed = errors.New(
	"RecordInspectionCommand must be created via NewRecordInspectionCommand constructor",
)

// RecordInspectionCommand stores a QC or BV inspection result.
type RecordInspectionCommand struct {
	invoiceID kernel.UUID
	kind      invoice.InspectionKind
	result    invoice.InspectionStatus

	guard guard.ConstructorGuard
}

// NewRecordInspectionCommand takes the API names of the inspection ("qc",
// "bv") and of its result ("passed", "failed").
func NewRecordInspectionCommand(invoiceID kernel.UUID, kind string, result string) (RecordInspectionCommand, error) {
	k, kindErr := invoice.ParseInspectionKind(kind)
	r, resultErr := invoice.ParseInspectionResult(result)
	if err := errors.Join(invoiceID.Validate(), kindErr, resultErr); err != nil {
		return RecordInspectionCommand{}, err
	}

	return RecordInspectionCommand{
		invoiceID: invoiceID,
		kind:      k,
		result:    r,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RecordInspectionCommand) Validate() error {
	return c.guard.Validate(ErrRecordInspectionCommandIsNotConstructed)
}

func (c RecordInspectionCommand) InvoiceID() kernel.UUID           { return c.invoiceID }
func (c RecordInspectionCommand) Kind() invoice.InspectionKind     { return c.kind }
func (c RecordInspectionCommand) Result() invoice.InspectionStatus { return c.result }
