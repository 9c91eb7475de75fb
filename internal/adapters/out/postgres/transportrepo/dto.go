// Package transportrepo persists transporters, clearing agents and the
// paperwork issued for shipments.
package transportrepo

import (
	"time"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/core/domain/model/transport"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransporterDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;uniqueIndex"`
	Email     string    `gorm:"size:255"`
	Phone     string    `gorm:"size:64"`
	Active    bool
	CreatedAt time.Time
}

func (TransporterDTO) TableName() string {
	return "transporters"
}

type AgentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"size:255;uniqueIndex"`
	Email      string    `gorm:"size:255"`
	BorderPost string    `gorm:"size:128"`
	CreatedAt  time.Time
}

func (AgentDTO) TableName() string {
	return "agents"
}

type TransportRequestDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Number        string      `gorm:"size:32;uniqueIndex"`
	TransporterID uuid.UUID   `gorm:"type:uuid"`
	InvoiceIDs    []uuid.UUID `gorm:"column:invoice_ids;type:jsonb;serializer:json"`
	PickupDate    time.Time
	Destination   string `gorm:"size:255"`
	Status        int    `gorm:"type:smallint"`
	DocumentKey   string `gorm:"size:512"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TransportRequestDTO) TableName() string {
	return "transport_requests"
}

type LoadConfirmationDTO struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primaryKey"`
	TransportRequestID  uuid.UUID        `gorm:"type:uuid;uniqueIndex"`
	TruckRegistration   string           `gorm:"size:32"`
	TrailerRegistration string           `gorm:"size:32"`
	DriverName          string           `gorm:"size:255"`
	RateAmount          *decimal.Decimal `gorm:"type:numeric(18,2)"`
	RateCurrency        string           `gorm:"size:3"`
	LoadingDate         time.Time
	CreatedAt           time.Time
}

func (LoadConfirmationDTO) TableName() string {
	return "load_confirmations"
}

// ManifestDTO stores the manifest with its totals. Values per currency are
// kept as a JSON array of {amount, currency}.
type ManifestDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number             string          `gorm:"size:32;uniqueIndex"`
	LoadConfirmationID uuid.UUID       `gorm:"type:uuid"`
	AgentID            uuid.UUID       `gorm:"type:uuid"`
	InvoiceIDs         []uuid.UUID     `gorm:"column:invoice_ids;type:jsonb;serializer:json"`
	GrossWeightKg      decimal.Decimal `gorm:"column:gross_weight_kg;type:numeric(14,3)"`
	PackageCount       int
	TotalValues        []AmountDTO `gorm:"type:jsonb;serializer:json"`
	DocumentKey        string      `gorm:"size:512"`
	CreatedAt          time.Time
}

func (ManifestDTO) TableName() string {
	return "manifests"
}

type AmountDTO struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func transporterFromDomain(t *transport.Transporter) TransporterDTO {
	return TransporterDTO{
		ID:        t.ID().Bytes(),
		Name:      t.Name(),
		Email:     t.Email(),
		Phone:     t.Phone(),
		Active:    t.IsActive(),
		CreatedAt: t.CreatedAt(),
	}
}

func transporterToDomain(dto TransporterDTO) (*transport.Transporter, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return transport.RestoreTransporter(id, dto.Name, dto.Email, dto.Phone, dto.Active, dto.CreatedAt)
}

func agentFromDomain(a *transport.Agent) AgentDTO {
	return AgentDTO{
		ID:         a.ID().Bytes(),
		Name:       a.Name(),
		Email:      a.Email(),
		BorderPost: a.BorderPost(),
		CreatedAt:  a.CreatedAt(),
	}
}

func agentToDomain(dto AgentDTO) (*transport.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return transport.NewAgent(id, dto.Name, dto.Email, dto.BorderPost, dto.CreatedAt)
}

func requestFromDomain(r *transport.TransportRequest) TransportRequestDTO {
	s := r.Snapshot()
	return TransportRequestDTO{
		ID:            s.ID.Bytes(),
		Number:        s.Number,
		TransporterID: s.TransporterID.Bytes(),
		InvoiceIDs:    idsFromDomain(s.InvoiceIDs),
		PickupDate:    s.PickupDate,
		Destination:   s.Destination,
		Status:        int(s.Status),
		DocumentKey:   s.DocumentKey,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func requestToDomain(dto TransportRequestDTO) (*transport.TransportRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	transporterID, err := kernel.UUIDFromBytes(dto.TransporterID[:])
	if err != nil {
		return nil, err
	}
	invoiceIDs, err := idsToDomain(dto.InvoiceIDs)
	if err != nil {
		return nil, err
	}

	return transport.RestoreTransportRequest(transport.RequestSnapshot{
		ID:            id,
		Number:        dto.Number,
		TransporterID: transporterID,
		InvoiceIDs:    invoiceIDs,
		PickupDate:    dto.PickupDate,
		Destination:   dto.Destination,
		Status:        transport.RequestStatus(dto.Status),
		DocumentKey:   dto.DocumentKey,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
}

func loadConfirmationFromDomain(lc *transport.LoadConfirmation) LoadConfirmationDTO {
	s := lc.Snapshot()
	dto := LoadConfirmationDTO{
		ID:                  s.ID.Bytes(),
		TransportRequestID:  s.TransportRequestID.Bytes(),
		TruckRegistration:   s.TruckRegistration,
		TrailerRegistration: s.TrailerRegistration,
		DriverName:          s.DriverName,
		LoadingDate:         s.LoadingDate,
		CreatedAt:           s.CreatedAt,
	}
	if s.Rate != nil {
		v := s.Rate.Value()
		dto.RateAmount = &v
		dto.RateCurrency = s.Rate.Currency()
	}
	return dto
}

func loadConfirmationToDomain(dto LoadConfirmationDTO) (*transport.LoadConfirmation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	requestID, err := kernel.UUIDFromBytes(dto.TransportRequestID[:])
	if err != nil {
		return nil, err
	}

	s := transport.LoadConfirmationSnapshot{
		ID:                  id,
		TransportRequestID:  requestID,
		TruckRegistration:   dto.TruckRegistration,
		TrailerRegistration: dto.TrailerRegistration,
		DriverName:          dto.DriverName,
		LoadingDate:         dto.LoadingDate,
		CreatedAt:           dto.CreatedAt,
	}
	if dto.RateAmount != nil {
		rate, rateErr := kernel.NewAmount(*dto.RateAmount, dto.RateCurrency)
		if rateErr != nil {
			return nil, rateErr
		}
		s.Rate = &rate
	}

	return transport.RestoreLoadConfirmation(s)
}

func manifestFromDomain(m *transport.Manifest) ManifestDTO {
	s := m.Snapshot()
	values := make([]AmountDTO, 0, len(s.Totals.Values))
	for _, v := range s.Totals.Values {
		values = append(values, AmountDTO{Amount: v.Value(), Currency: v.Currency()})
	}

	return ManifestDTO{
		ID:                 s.ID.Bytes(),
		Number:             s.Number,
		LoadConfirmationID: s.LoadConfirmationID.Bytes(),
		AgentID:            s.AgentID.Bytes(),
		InvoiceIDs:         idsFromDomain(s.InvoiceIDs),
		GrossWeightKg:      s.Totals.GrossWeight.Kilograms(),
		PackageCount:       s.Totals.PackageCount,
		TotalValues:        values,
		DocumentKey:        s.DocumentKey,
		CreatedAt:          s.CreatedAt,
	}
}

func manifestToDomain(dto ManifestDTO) (*transport.Manifest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	lcID, err := kernel.UUIDFromBytes(dto.LoadConfirmationID[:])
	if err != nil {
		return nil, err
	}
	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}
	invoiceIDs, err := idsToDomain(dto.InvoiceIDs)
	if err != nil {
		return nil, err
	}
	weight, err := kernel.NewWeight(dto.GrossWeightKg)
	if err != nil {
		return nil, err
	}

	values := make([]kernel.Amount, 0, len(dto.TotalValues))
	for _, v := range dto.TotalValues {
		amount, amountErr := kernel.NewAmount(v.Amount, v.Currency)
		if amountErr != nil {
			return nil, amountErr
		}
		values = append(values, amount)
	}

	return transport.RestoreManifest(transport.ManifestSnapshot{
		ID:                 id,
		Number:             dto.Number,
		LoadConfirmationID: lcID,
		AgentID:            agentID,
		InvoiceIDs:         invoiceIDs,
		Totals: transport.Totals{
			GrossWeight:  weight,
			PackageCount: dto.PackageCount,
			Values:       values,
		},
		DocumentKey: dto.DocumentKey,
		CreatedAt:   dto.CreatedAt,
	})
}

func idsFromDomain(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}

func idsToDomain(raw []uuid.UUID) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromBytes(r[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
