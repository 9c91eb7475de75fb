package transport

import (
	"errors"
	"strings"
	"time"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"
)

// LoadConfirmation is the transporter's answer to a transport request: the
// truck and driver assigned and the agreed rate. It is immutable.
type LoadConfirmation struct {
	id                  kernel.UUID
	transportRequestID  kernel.UUID
	truckRegistration   string
	trailerRegistration string
	driverName          string
	rate                *kernel.Amount
	loadingDate         time.Time
	createdAt           time.Time
}

// LoadConfirmationSnapshot is the persisted form of a LoadConfirmation.
type LoadConfirmationSnapshot struct {
	ID                  kernel.UUID
	TransportRequestID  kernel.UUID
	TruckRegistration   string
	TrailerRegistration string
	DriverName          string
	Rate                *kernel.Amount
	LoadingDate         time.Time
	CreatedAt           time.Time
}

// NewLoadConfirmation issues a confirmation for a request and confirms it.
// Truck registration, driver and loading date are required; trailer and
// rate are optional.
func NewLoadConfirmation(id kernel.UUID, request *TransportRequest, s LoadConfirmationSnapshot, at time.Time) (*LoadConfirmation, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	s.ID = id
	s.TransportRequestID = request.ID()
	s.CreatedAt = at

	lc, err := RestoreLoadConfirmation(s)
	if err != nil {
		return nil, err
	}
	if err = request.Confirm(at); err != nil {
		return nil, err
	}
	return lc, nil
}

// RestoreLoadConfirmation rebuilds a confirmation loaded from storage.
func RestoreLoadConfirmation(s LoadConfirmationSnapshot) (*LoadConfirmation, error) {
	lc := &LoadConfirmation{
		id:                  s.ID,
		transportRequestID:  s.TransportRequestID,
		truckRegistration:   strings.ToUpper(strings.TrimSpace(s.TruckRegistration)),
		trailerRegistration: strings.ToUpper(strings.TrimSpace(s.TrailerRegistration)),
		driverName:          strings.TrimSpace(s.DriverName),
		rate:                s.Rate,
		loadingDate:         s.LoadingDate,
		createdAt:           s.CreatedAt,
	}

	var truckErr, driverErr, dateErr, rateErr error
	if lc.truckRegistration == "" {
		truckErr = errs.NewValueIsRequiredError("truck registration")
	}
	if lc.driverName == "" {
		driverErr = errs.NewValueIsRequiredError("driver name")
	}
	if lc.loadingDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("loading date")
	}
	if lc.rate != nil {
		rateErr = lc.rate.Validate()
	}
	if err := errors.Join(s.ID.Validate(), s.TransportRequestID.Validate(), truckErr, driverErr, dateErr, rateErr); err != nil {
		return nil, err
	}
	return lc, nil
}

func (lc *LoadConfirmation) Snapshot() LoadConfirmationSnapshot {
	return LoadConfirmationSnapshot{
		ID:                  lc.id,
		TransportRequestID:  lc.transportRequestID,
		TruckRegistration:   lc.truckRegistration,
		TrailerRegistration: lc.trailerRegistration,
		DriverName:          lc.driverName,
		Rate:                lc.rate,
		LoadingDate:         lc.loadingDate,
		CreatedAt:           lc.createdAt,
	}
}

func (lc *LoadConfirmation) ID() kernel.UUID                 { return lc.id }
func (lc *LoadConfirmation) TransportRequestID() kernel.UUID { return lc.transportRequestID }
func (lc *LoadConfirmation) TruckRegistration() string       { return lc.truckRegistration }
func (lc *LoadConfirmation) TrailerRegistration() string     { return lc.trailerRegistration }
func (lc *LoadConfirmation) DriverName() string              { return lc.driverName }
func (lc *LoadConfirmation) Rate() *kernel.Amount            { return lc.rate }
func (lc *LoadConfirmation) LoadingDate() time.Time          { return lc.loadingDate }
func (lc *LoadConfirmation) CreatedAt() time.Time            { return lc.createdAt }
