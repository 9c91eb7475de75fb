package ports

import (
	"context"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/core/domain/model/transport"
)

// TransportRepository persists transporters, agents and the paperwork
// records of the transport package. Unique names and numbers fail with
// errs.ErrObjectAlreadyExists; missing records with errs.ErrObjectNotFound.
type TransportRepository interface {
	AddTransporter(ctx context.Context, t *transport.Transporter) error
	GetTransporter(ctx context.Context, id kernel.UUID) (*transport.Transporter, error)

	AddAgent(ctx context.Context, a *transport.Agent) error
	GetAgent(ctx context.Context, id kernel.UUID) (*transport.Agent, error)

	AddTransportRequest(ctx context.Context, r *transport.TransportRequest) error
	UpdateTransportRequest(ctx context.Context, r *transport.TransportRequest) error
	GetTransportRequest(ctx context.Context, id kernel.UUID) (*transport.TransportRequest, error)

	AddLoadConfirmation(ctx context.Context, lc *transport.LoadConfirmation) error
	GetLoadConfirmation(ctx context.Context, id kernel.UUID) (*transport.LoadConfirmation, error)

	AddManifest(ctx context.Context, m *transport.Manifest) error
	GetManifest(ctx context.Context, id kernel.UUID) (*transport.Manifest, error)
}
