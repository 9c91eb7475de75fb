package transport

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"
	"doctrack/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a transporter or agent has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPartyIsNotConstructed is returned when using a zero Transporter or Agent.
	ErrPartyIsNotConstructed = errors.New("Transporter and Agent must be created via their constructors")
)

// Transporter is a haulage company trucks are booked with. Transport
// requests are emailed to it.
type Transporter struct {
	id        kernel.UUID
	name      string
	email     string
	phone     string
	active    bool
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewTransporter creates an active transporter.
//
// Parameters:
//   - id: unique identifier (must be valid UUID)
//   - name: company name, unique across transporters
//   - email: address transport requests are sent to
//   - phone: optional contact number
func NewTransporter(id kernel.UUID, name, email, phone string, at time.Time) (*Transporter, error) {
	name, email, err := validateParty(id, name, email)
	if err != nil {
		return nil, err
	}

	return &Transporter{
		id:        id,
		name:      name,
		email:     email,
		phone:     strings.TrimSpace(phone),
		active:    true,
		createdAt: at,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreTransporter rebuilds a transporter loaded from storage.
func RestoreTransporter(id kernel.UUID, name, email, phone string, active bool, createdAt time.Time) (*Transporter, error) {
	t, err := NewTransporter(id, name, email, phone, createdAt)
	if err != nil {
		return nil, err
	}
	t.active = active
	return t, nil
}

func (t *Transporter) Validate() error {
	if t == nil {
		return ErrPartyIsNotConstructed
	}
	return t.guard.Validate(ErrPartyIsNotConstructed)
}

func (t *Transporter) ID() kernel.UUID      { return t.id }
func (t *Transporter) Name() string         { return t.name }
func (t *Transporter) Email() string        { return t.email }
func (t *Transporter) Phone() string        { return t.phone }
func (t *Transporter) IsActive() bool       { return t.active }
func (t *Transporter) CreatedAt() time.Time { return t.createdAt }

// Deactivate stops new transport requests to the transporter.
func (t *Transporter) Deactivate() {
	t.active = false
}

// Agent is a clearing agent at a border post. Manifests are emailed to it.
type Agent struct {
	id         kernel.UUID
	name       string
	email      string
	borderPost string
	createdAt  time.Time
	guard      guard.ConstructorGuard
}

func NewAgent(id kernel.UUID, name, email, borderPost string, at time.Time) (*Agent, error) {
	name, email, err := validateParty(id, name, email)
	if err != nil {
		return nil, err
	}

	return &Agent{
		id:         id,
		name:       name,
		email:      email,
		borderPost: strings.TrimSpace(borderPost),
		createdAt:  at,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (a *Agent) Validate() error {
	if a == nil {
		return ErrPartyIsNotConstructed
	}
	return a.guard.Validate(ErrPartyIsNotConstructed)
}

func (a *Agent) ID() kernel.UUID      { return a.id }
func (a *Agent) Name() string         { return a.name }
func (a *Agent) Email() string        { return a.email }
func (a *Agent) BorderPost() string   { return a.borderPost }
func (a *Agent) CreatedAt() time.Time { return a.createdAt }

func validateParty(id kernel.UUID, name, email string) (string, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	var nameErr, emailErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	if email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	} else if addr, err := mail.ParseAddress(email); err != nil {
		emailErr = errs.NewValueIsInvalidErrorWithCause("email", err)
	} else {
		email = addr.Address
	}

	return name, email, errors.Join(id.Validate(), nameErr, emailErr)
}
