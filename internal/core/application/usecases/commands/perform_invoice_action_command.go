package commands

import (
	"errors"
	"fmt"
	"strings"

	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"
	"doctrack/internal/pkg/guard"
)

var ErrPerformInvoiceActionCommandIsNotConstructed = errors.New(
	"PerformInvoiceActionCommand must be created via NewPerformInvoiceActionCommand constructor",
)

// PerformInvoiceActionCommand asks to move an invoice along the workflow.
// Only manual actions are accepted: ConfirmLoad follows from issuing a load
// confirmation and ApproveFeri from recording an approved FERI.
//
// Example:
//
//	cmd, err := NewPerformInvoiceActionCommand(invoiceID, invoice.SubmitToPlanning, "j.mwale")
//	err = handler.Handle(ctx, cmd)
//	var blocked *errs.TransitionIsBlockedError
//	if errors.As(err, &blocked) {
//	    // blocked.Unmet lists what is missing
//	}
type PerformInvoiceActionCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	action    invoice.Action
	actor     string

	guard guard.ConstructorGuard
}

func NewPerformInvoiceActionCommand(invoiceID kernel.UUID, action invoice.Action, actor string) (PerformInvoiceActionCommand, error) {
	cmd := PerformInvoiceActionCommand{
		actor: strings.TrimSpace(actor),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setAction(action),
	); err != nil {
		return PerformInvoiceActionCommand{}, err
	}

	return cmd, nil
}

func (c PerformInvoiceActionCommand) Validate() error {
	return c.guard.Validate(ErrPerformInvoiceActionCommandIsNotConstructed)
}

func (c PerformInvoiceActionCommand) InvoiceID() kernel.UUID { return c.invoiceID }
func (c PerformInvoiceActionCommand) Action() invoice.Action { return c.action }
func (c PerformInvoiceActionCommand) Actor() string          { return c.actor }

func (c *PerformInvoiceActionCommand) setInvoiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.invoiceID = id
	return nil
}

func (c *PerformInvoiceActionCommand) setAction(action invoice.Action) error {
	if err := action.Validate(); err != nil {
		return err
	}
	if !action.IsManual() {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid",
			fmt.Errorf("%s is performed by the workflow, not requested", action))
	}
	c.action = action
	return nil
}
