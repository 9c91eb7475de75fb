package commands

import (
	"errors"
	"strings"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"
	"doctrack/internal/pkg/guard"
)

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceCommand opens an invoice at the key accounts stage before
// any document has been ingested for it.
//
// Example:
//
//	cmd, err := NewCreateInvoiceCommand(kernel.NewUUID(), "INV-2025-0142")
//	if err != nil {
//	    return fmt.Errorf("invalid invoice data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	number    string

	guard guard.ConstructorGuard
}

func NewCreateInvoiceCommand(invoiceID kernel.UUID, number string) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setNumber(number),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return cmd, nil
}

func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

func (c CreateInvoiceCommand) InvoiceID() kernel.UUID { return c.invoiceID }
func (c CreateInvoiceCommand) Number() string         { return c.number }

func (c *CreateInvoiceCommand) setInvoiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.invoiceID = id
	return nil
}

func (c *CreateInvoiceCommand) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("invoice number")
	}
	c.number = number
	return nil
}
