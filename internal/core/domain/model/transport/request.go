package transport

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"
)

// RequestStatus tracks a transport request.
type RequestStatus int

const (
	UnknownRequestStatus RequestStatus = iota
	Requested
	Confirmed
	Cancelled
)

func getRequestStatusStrings() map[RequestStatus]string {
	return map[RequestStatus]string{
		UnknownRequestStatus: "unknown",
		Requested:            "requested",
		Confirmed:            "confirmed",
		Cancelled:            "cancelled",
	}
}

func (s RequestStatus) String() string {
	if str, ok := getRequestStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s RequestStatus) Validate() error {
	if s <= UnknownRequestStatus || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("request status is invalid", fmt.Errorf("%d is not a valid request status", s))
	}
	return nil
}

// ErrTransportRequestIsNotConstructed is returned for requests not built by NewTransportRequest.
var ErrTransportRequestIsNotConstructed = errors.New("TransportRequest must be created via NewTransportRequest constructor")

// TransportRequest books a truck with a transporter for one or more invoices.
type TransportRequest struct {
	id            kernel.UUID
	number        string
	transporterID kernel.UUID
	invoiceIDs    []kernel.UUID
	pickupDate    time.Time
	destination   string
	status        RequestStatus
	documentKey   string
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewTransportRequest opens a request in status Requested. invoiceIDs must
// hold at least one id and no duplicates.
func NewTransportRequest(
	id kernel.UUID,
	transporterID kernel.UUID,
	invoiceIDs []kernel.UUID,
	pickupDate time.Time,
	destination string,
	at time.Time,
) (*TransportRequest, error) {
	destination = strings.TrimSpace(destination)

	var destErr, dateErr error
	if destination == "" {
		destErr = errs.NewValueIsRequiredError("destination")
	}
	if pickupDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("pickup date")
	}
	if err := errors.Join(
		id.Validate(),
		transporterID.Validate(),
		validateInvoiceIDs(invoiceIDs),
		destErr,
		dateErr,
	); err != nil {
		return nil, err
	}

	return &TransportRequest{
		id:            id,
		number:        newNumber(transportRequestPrefix, id, at),
		transporterID: transporterID,
		invoiceIDs:    slices.Clone(invoiceIDs),
		pickupDate:    pickupDate,
		destination:   destination,
		status:        Requested,
		createdAt:     at,
		updatedAt:     at,
		isConstructed: true,
	}, nil
}

// RequestSnapshot is the persisted form of a TransportRequest.
type RequestSnapshot struct {
	ID            kernel.UUID
	Number        string
	TransporterID kernel.UUID
	InvoiceIDs    []kernel.UUID
	PickupDate    time.Time
	Destination   string
	Status        RequestStatus
	DocumentKey   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func RestoreTransportRequest(s RequestSnapshot) (*TransportRequest, error) {
	r, err := NewTransportRequest(s.ID, s.TransporterID, s.InvoiceIDs, s.PickupDate, s.Destination, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err = s.Status.Validate(); err != nil {
		return nil, err
	}
	if s.Number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}
	r.number = s.Number
	r.status = s.Status
	r.documentKey = s.DocumentKey
	r.updatedAt = s.UpdatedAt
	return r, nil
}

func (r *TransportRequest) Snapshot() RequestSnapshot {
	return RequestSnapshot{
		ID:            r.id,
		Number:        r.number,
		TransporterID: r.transporterID,
		InvoiceIDs:    slices.Clone(r.invoiceIDs),
		PickupDate:    r.pickupDate,
		Destination:   r.destination,
		Status:        r.status,
		DocumentKey:   r.documentKey,
		CreatedAt:     r.createdAt,
		UpdatedAt:     r.updatedAt,
	}
}

func (r *TransportRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrTransportRequestIsNotConstructed
	}
	return nil
}

func (r *TransportRequest) ID() kernel.UUID            { return r.id }
func (r *TransportRequest) Number() string             { return r.number }
func (r *TransportRequest) TransporterID() kernel.UUID { return r.transporterID }
func (r *TransportRequest) InvoiceIDs() []kernel.UUID  { return slices.Clone(r.invoiceIDs) }
func (r *TransportRequest) PickupDate() time.Time      { return r.pickupDate }
func (r *TransportRequest) Destination() string        { return r.destination }
func (r *TransportRequest) Status() RequestStatus      { return r.status }
func (r *TransportRequest) DocumentKey() string        { return r.documentKey }
func (r *TransportRequest) CreatedAt() time.Time       { return r.createdAt }
func (r *TransportRequest) UpdatedAt() time.Time       { return r.updatedAt }

// SetDocumentKey records where the rendered request PDF is stored.
func (r *TransportRequest) SetDocumentKey(key string, at time.Time) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errs.NewValueIsRequiredError("document key")
	}
	r.documentKey = key
	r.updatedAt = at
	return nil
}

// Confirm marks the truck as booked. Only a Requested request can be confirmed.
func (r *TransportRequest) Confirm(at time.Time) error {
	if r.status != Requested {
		return errs.NewValueIsInvalidErrorWithCause("request status is invalid",
			fmt.Errorf("%s request %s cannot be confirmed", r.status, r.number))
	}
	r.status = Confirmed
	r.updatedAt = at
	return nil
}

// Cancel withdraws a request that has not been confirmed.
func (r *TransportRequest) Cancel(at time.Time) error {
	if r.status != Requested {
		return errs.NewValueIsInvalidErrorWithCause("request status is invalid",
			fmt.Errorf("%s request %s cannot be cancelled", r.status, r.number))
	}
	r.status = Cancelled
	r.updatedAt = at
	return nil
}

func validateInvoiceIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("invoice ids")
	}
	seen := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("invoice ids", fmt.Errorf("invoice %s is listed twice", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}
