package transportrepo

import (
	"context"
	"errors"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/core/domain/model/transport"
	"doctrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransportRepository implements ports.TransportRepository using GORM.
type GormTransportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTransportRepository(db *gorm.DB, tracker aggregateTracker) *GormTransportRepository {
	return &GormTransportRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTransportRepository) AddTransporter(ctx context.Context, t *transport.Transporter) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := transporterFromDomain(t)
	if err := r.create(ctx, &dto, "transporter name", t.Name()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(t.ID(), t)
	return nil
}

func (r *GormTransportRepository) GetTransporter(ctx context.Context, id kernel.UUID) (*transport.Transporter, error) {
	var dto TransporterDTO
	if err := r.first(ctx, &dto, "transporter", id); err != nil {
		return nil, err
	}
	return transporterToDomain(dto)
}

func (r *GormTransportRepository) AddAgent(ctx context.Context, a *transport.Agent) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := agentFromDomain(a)
	if err := r.create(ctx, &dto, "agent name", a.Name()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(a.ID(), a)
	return nil
}

func (r *GormTransportRepository) GetAgent(ctx context.Context, id kernel.UUID) (*transport.Agent, error) {
	var dto AgentDTO
	if err := r.first(ctx, &dto, "agent", id); err != nil {
		return nil, err
	}
	return agentToDomain(dto)
}

func (r *GormTransportRepository) AddTransportRequest(ctx context.Context, request *transport.TransportRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(request)
	if err := r.create(ctx, &dto, "transport request number", request.Number()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

func (r *GormTransportRepository) UpdateTransportRequest(ctx context.Context, request *transport.TransportRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(request)
	result := r.db.WithContext(ctx).Model(&TransportRequestDTO{}).Where("id = ?", dto.ID).Select("*").Omit("id", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("transport request", request.ID().String())
	}

	r.tracker.TrackAggregate(request.ID(), request)
	return nil
}

func (r *GormTransportRepository) GetTransportRequest(ctx context.Context, id kernel.UUID) (*transport.TransportRequest, error) {
	var dto TransportRequestDTO
	if err := r.first(ctx, &dto, "transport request", id); err != nil {
		return nil, err
	}
	return requestToDomain(dto)
}

// AddLoadConfirmation fails with errs.ErrObjectAlreadyExists when the
// request already has a confirmation.
func (r *GormTransportRepository) AddLoadConfirmation(ctx context.Context, lc *transport.LoadConfirmation) error {
	if lc == nil {
		return errs.NewValueIsRequiredError("load confirmation")
	}

	dto := loadConfirmationFromDomain(lc)
	if err := r.create(ctx, &dto, "load confirmation for request", lc.TransportRequestID().String()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(lc.ID(), lc)
	return nil
}

func (r *GormTransportRepository) GetLoadConfirmation(ctx context.Context, id kernel.UUID) (*transport.LoadConfirmation, error) {
	var dto LoadConfirmationDTO
	if err := r.first(ctx, &dto, "load confirmation", id); err != nil {
		return nil, err
	}
	return loadConfirmationToDomain(dto)
}

func (r *GormTransportRepository) AddManifest(ctx context.Context, m *transport.Manifest) error {
	if m == nil {
		return errs.NewValueIsRequiredError("manifest")
	}

	dto := manifestFromDomain(m)
	if err := r.create(ctx, &dto, "manifest number", m.Number()); err != nil {
		return err
	}

	r.tracker.TrackAggregate(m.ID(), m)
	return nil
}

func (r *GormTransportRepository) GetManifest(ctx context.Context, id kernel.UUID) (*transport.Manifest, error) {
	var dto ManifestDTO
	if err := r.first(ctx, &dto, "manifest", id); err != nil {
		return nil, err
	}
	return manifestToDomain(dto)
}

func (r *GormTransportRepository) create(ctx context.Context, dto any, param string, value any) error {
	if err := r.db.WithContext(ctx).Create(dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError(param, value)
		}
		return err
	}
	return nil
}

func (r *GormTransportRepository) first(ctx context.Context, dto any, param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).First(dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError(param, id.String())
		}
		return err
	}
	return nil
}
