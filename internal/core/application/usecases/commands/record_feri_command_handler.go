package commands

import (
	"context"
	"errors"
	"time"

	"doctrack/internal/pkg/errs"
)

// RecordFeriCommandHandler records the FERI certificate status. An approval
// also attempts the ApproveFeri transition, so a TransitionIsBlockedError is
// possible when an inspection is still outstanding.
//
// Example:
//
//	handler := NewRecordFeriCommandHandler(uowFactory)
//	cmd, _ := NewRecordFeriCommand(invoiceID, "approved", "FERI-2025-118", "agent@example.com")
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrTransitionIsBlocked) {
//		// saved, but the invoice stays in the FERI stage
//	}
type RecordFeriCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

func NewRecordFeriCommandHandler(uowFactory InvoiceUoWFactory) RecordFeriCommandHandler {
	return RecordFeriCommandHandler{uowFactory: uowFactory}
}

func (h RecordFeriCommandHandler) Handle(ctx context.Context, cmd RecordFeriCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()

	inv, err := invoiceRepo.Get(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	feriErr := inv.RecordFeri(cmd.Status(), cmd.Reference(), cmd.Actor(), time.Now().UTC())
	if feriErr != nil && !errors.Is(feriErr, errs.ErrTransitionIsBlocked) {
		return feriErr
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return feriErr
}
