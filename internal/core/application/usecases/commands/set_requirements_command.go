package commands

import (
	"errors"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/guard"
)

var ErrSetRequirementsCommandIsNotConstructed = errors.New(
	"SetRequirementsCommand must be created via NewSetRequirementsCommand constructor",
)

// SetRequirementsCommand records which inspections apply to an invoice and
// whether a FERI is needed. Set by the key accounts manager.
type SetRequirementsCommand struct {
	invoiceID kernel.UUID
	qc        bool
	bv        bool
	feri      bool

	guard guard.ConstructorGuard
}

func NewSetRequirementsCommand(invoiceID kernel.UUID, qc, bv, feri bool) (SetRequirementsCommand, error) {
	if err := invoiceID.Validate(); err != nil {
		return SetRequirementsCommand{}, err
	}
	return SetRequirementsCommand{
		invoiceID: invoiceID,
		qc:        qc,
		bv:        bv,
		feri:      feri,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetRequirementsCommand) Validate() error {
	return c.guard.Validate(ErrSetRequirementsCommandIsNotConstructed)
}

func (c SetRequirementsCommand) InvoiceID() kernel.UUID { return c.invoiceID }
func (c SetRequirementsCommand) QC() bool               { return c.qc }
func (c SetRequirementsCommand) BV() bool               { return c.bv }
func (c SetRequirementsCommand) Feri() bool             { return c.feri }
