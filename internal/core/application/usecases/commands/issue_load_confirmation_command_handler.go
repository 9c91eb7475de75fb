package commands

import (
	"context"
	"time"

	"doctrack/internal/core/domain/services"
)

// IssueLoadConfirmationCommandHandler confirms a transport request and
// moves all of its invoices to Loading in one transaction. If any invoice
// cannot move, nothing is stored.
type IssueLoadConfirmationCommandHandler struct {
	uowFactory UoWFactory
	booker     services.TransportBooker
}

func NewIssueLoadConfirmationCommandHandler(uowFactory UoWFactory) IssueLoadConfirmationCommandHandler {
	return IssueLoadConfirmationCommandHandler{
		uowFactory: uowFactory,
		booker:     services.NewTransportBooker(),
	}
}

func (h IssueLoadConfirmationCommandHandler) Handle(ctx context.Context, cmd IssueLoadConfirmationCommand) error {
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
	transportRepo := uow.TransportRepository()

	request, err := transportRepo.GetTransportRequest(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	invoices, err := invoiceRepo.GetMany(ctx, request.InvoiceIDs())
	if err != nil {
		return err
	}

	lc, err := h.booker.ConfirmLoad(cmd.ConfirmationID(), request, invoices, cmd.Details(), cmd.Actor(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = transportRepo.AddLoadConfirmation(ctx, lc); err != nil {
		return err
	}
	if err = transportRepo.UpdateTransportRequest(ctx, request); err != nil {
		return err
	}
	for _, inv := range invoices {
		if err = invoiceRepo.Update(ctx, inv); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
