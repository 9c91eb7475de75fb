package services

import (
	"errors"
	"fmt"
	"time"

	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/core/domain/model/transport"
	"doctrack/internal/pkg/errs"
)

// ErrTransporterIsInactive is returned when booking with a deactivated transporter.
var ErrTransporterIsInactive = errs.NewValueIsInvalidErrorWithCause("transporter", errors.New("transporter is inactive"))

// TransportBooker books trucks for invoices waiting at the transport planner
// and applies the transporter's load confirmation to them.
type TransportBooker struct{}

func NewTransportBooker() TransportBooker {
	return TransportBooker{}
}

// Book creates a transport request for the invoices and links it to each of
// them. Every invoice must be in TransportPlanning.
func (b TransportBooker) Book(
	id kernel.UUID,
	transporter *transport.Transporter,
	invoices []*invoice.Invoice,
	pickupDate time.Time,
	destination string,
	at time.Time,
) (*transport.TransportRequest, error) {
	if err := transporter.Validate(); err != nil {
		return nil, err
	}
	if !transporter.IsActive() {
		return nil, ErrTransporterIsInactive
	}
	if err := requireStage(invoices, invoice.TransportPlanning); err != nil {
		return nil, err
	}

	request, err := transport.NewTransportRequest(id, transporter.ID(), invoiceIDs(invoices), pickupDate, destination, at)
	if err != nil {
		return nil, err
	}

	for _, inv := range invoices {
		if err = inv.AttachTransportRequest(request.ID(), at); err != nil {
			return nil, err
		}
	}
	return request, nil
}

// ConfirmLoad issues the load confirmation for a request, confirms the
// request and moves each of its invoices to Loading. invoices must be exactly
// the invoices of the request.
func (b TransportBooker) ConfirmLoad(
	id kernel.UUID,
	request *transport.TransportRequest,
	invoices []*invoice.Invoice,
	details transport.LoadConfirmationSnapshot,
	actor string,
	at time.Time,
) (*transport.LoadConfirmation, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	if err := sameInvoices(request.InvoiceIDs(), invoices); err != nil {
		return nil, err
	}
	if err := requireStage(invoices, invoice.TransportPlanning); err != nil {
		return nil, err
	}

	lc, err := transport.NewLoadConfirmation(id, request, details, at)
	if err != nil {
		return nil, err
	}

	for _, inv := range invoices {
		if err = inv.AttachLoadConfirmation(lc.ID(), at); err != nil {
			return nil, err
		}
		if err = inv.Perform(invoice.ConfirmLoad, actor, at); err != nil {
			return nil, err
		}
	}
	return lc, nil
}

func requireStage(invoices []*invoice.Invoice, stage invoice.Stage) error {
	if len(invoices) == 0 {
		return errs.NewValueIsRequiredError("invoices")
	}
	for _, inv := range invoices {
		if err := inv.Validate(); err != nil {
			return err
		}
		if inv.Stage() != stage {
			return errs.NewValueIsInvalidErrorWithCause("stage is invalid",
				fmt.Errorf("invoice %s is %s, expected %s", inv.Number(), inv.Stage(), stage))
		}
	}
	return nil
}

func sameInvoices(ids []kernel.UUID, invoices []*invoice.Invoice) error {
	if len(ids) != len(invoices) {
		return errs.NewValueIsInvalidErrorWithCause("invoices",
			fmt.Errorf("request lists %d invoices, got %d", len(ids), len(invoices)))
	}
	want := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	for _, inv := range invoices {
		if _, ok := want[inv.ID()]; !ok {
			return errs.NewValueIsInvalidErrorWithCause("invoices",
				fmt.Errorf("invoice %s is not on the request", inv.Number()))
		}
	}
	return nil
}

func invoiceIDs(invoices []*invoice.Invoice) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID())
	}
	return ids
}
