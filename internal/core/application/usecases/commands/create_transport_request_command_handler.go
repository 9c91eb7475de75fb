package commands

import (
	"context"
	"fmt"
	"time"

	"doctrack/internal/core/domain/services"
	"doctrack/internal/core/ports"
)

// CreateTransportRequestCommandHandler books transport, renders the request
// PDF, stores it and mails it to the transporter. The transaction commits
// only after the mail went out, so a request either exists and was sent or
// does not exist at all. Returns the request number.
type CreateTransportRequestCommandHandler struct {
	uowFactory UoWFactory
	booker     services.TransportBooker
	paperwork  paperwork
}

func NewCreateTransportRequestCommandHandler(
	uowFactory UoWFactory,
	renderer ports.PaperworkRenderer,
	fileStore ports.FileStore,
	mailer ports.Mailer,
) CreateTransportRequestCommandHandler {
	return CreateTransportRequestCommandHandler{
		uowFactory: uowFactory,
		booker:     services.NewTransportBooker(),
		paperwork:  paperwork{renderer: renderer, fileStore: fileStore, mailer: mailer},
	}
}

func (h CreateTransportRequestCommandHandler) Handle(ctx context.Context, cmd CreateTransportRequestCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()
	transportRepo := uow.TransportRepository()

	transporter, err := transportRepo.GetTransporter(ctx, cmd.TransporterID())
	if err != nil {
		return "", err
	}

	invoices, err := invoiceRepo.GetMany(ctx, cmd.InvoiceIDs())
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	request, err := h.booker.Book(cmd.RequestID(), transporter, invoices, cmd.PickupDate(), cmd.Destination(), now)
	if err != nil {
		return "", err
	}

	pdf, err := h.paperwork.renderer.RenderTransportRequest(ctx, ports.TransportRequestSheet{
		Number:      request.Number(),
		IssuedAt:    now,
		Transporter: transporter.Name(),
		PickupDate:  request.PickupDate(),
		Destination: request.Destination(),
		Lines:       shipmentLines(invoices),
	})
	if err != nil {
		return "", fmt.Errorf("render transport request: %w", err)
	}

	filename := request.Number() + ".pdf"
	key := "paperwork/transport-requests/" + filename
	if err = h.paperwork.store(ctx, key, pdf); err != nil {
		return "", err
	}
	if err = request.SetDocumentKey(key, now); err != nil {
		return "", err
	}

	if err = transportRepo.AddTransportRequest(ctx, request); err != nil {
		return "", err
	}
	for _, inv := range invoices {
		if err = invoiceRepo.Update(ctx, inv); err != nil {
			return "", err
		}
	}

	body := fmt.Sprintf("Please find attached transport request %s for pickup on %s to %s.",
		request.Number(), request.PickupDate().Format("2 Jan 2006"), request.Destination())
	if err = h.paperwork.send(ctx, transporter.Email(), "Transport request "+request.Number(), body, filename, pdf); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return request.Number(), nil
}
