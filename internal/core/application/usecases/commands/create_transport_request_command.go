package commands

import (
	"errors"
	"strings"
	"time"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"
	"doctrack/internal/pkg/guard"
)

var ErrCreateTransportRequestCommandIsNotConstructed = errors.New(
	"CreateTransportRequestCommand must be created via NewCreateTransportRequestCommand constructor",
)

// CreateTransportRequestCommand books a truck for invoices waiting at the
// transport planner.
type CreateTransportRequestCommand struct {
	requestID     kernel.UUID
	transporterID kernel.UUID
	invoiceIDs    []kernel.UUID
	pickupDate    time.Time
	destination   string

	guard guard.ConstructorGuard
}

func NewCreateTransportRequestCommand(
	requestID kernel.UUID,
	transporterID kernel.UUID,
	invoiceIDs []kernel.UUID,
	pickupDate time.Time,
	destination string,
) (CreateTransportRequestCommand, error) {
	var idsErr, dateErr, destErr error
	if len(invoiceIDs) == 0 {
		idsErr = errs.NewValueIsRequiredError("invoice ids")
	}
	if pickupDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("pickup date")
	}
	destination = strings.TrimSpace(destination)
	if destination == "" {
		destErr = errs.NewValueIsRequiredError("destination")
	}
	if err := errors.Join(requestID.Validate(), transporterID.Validate(), idsErr, dateErr, destErr); err != nil {
		return CreateTransportRequestCommand{}, err
	}

	return CreateTransportRequestCommand{
		requestID:     requestID,
		transporterID: transporterID,
		invoiceIDs:    invoiceIDs,
		pickupDate:    pickupDate,
		destination:   destination,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateTransportRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransportRequestCommandIsNotConstructed)
}

func (c CreateTransportRequestCommand) RequestID() kernel.UUID     { return c.requestID }
func (c CreateTransportRequestCommand) TransporterID() kernel.UUID { return c.transporterID }
func (c CreateTransportRequestCommand) InvoiceIDs() []kernel.UUID  { return c.invoiceIDs }
func (c CreateTransportRequestCommand) PickupDate() time.Time      { return c.pickupDate }
func (c CreateTransportRequestCommand) Destination() string        { return c.destination }
