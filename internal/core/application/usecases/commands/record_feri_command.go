package commands

import (
	"errors"
	"strings"

	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/guard"
)

var ErrRecordFeriCommandIsNotConstructed = errors.New(
	"RecordFeriCommand must be created via NewRecordFeriCommand constructor",
)

// RecordFeriCommand updates the FERI application of an invoice. Recording
// an approval while the invoice is with the FERI department releases it for
// dispatch.
type RecordFeriCommand struct {
	invoiceID kernel.UUID
	status    invoice.FeriStatus
	reference string
	actor     string

	guard guard.ConstructorGuard
}

func NewRecordFeriCommand(invoiceID kernel.UUID, status string, reference string, actor string) (RecordFeriCommand, error) {
	s, statusErr := invoice.ParseFeriStatus(status)
	if err := errors.Join(invoiceID.Validate(), statusErr); err != nil {
		return RecordFeriCommand{}, err
	}

	return RecordFeriCommand{
		invoiceID: invoiceID,
		status:    s,
		reference: strings.TrimSpace(reference),
		actor:     strings.TrimSpace(actor),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RecordFeriCommand) Validate() error {
	return c.guard.Validate(ErrRecordFeriCommandIsNotConstructed)
}

func (c RecordFeriCommand) InvoiceID() kernel.UUID     { return c.invoiceID }
func (c RecordFeriCommand) Status() invoice.FeriStatus { return c.status }
func (c RecordFeriCommand) Reference() string          { return c.reference }
func (c RecordFeriCommand) Actor() string              { return c.actor }
