// Package invoicerepo persists invoice aggregates. Scalar fields map to
// columns; documents, block reasons and history are stored as JSONB.
package invoicerepo

import (
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO is the invoices table row.
type InvoiceDTO struct {
	ID                 uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Number             string               `gorm:"size:64;uniqueIndex"`
	CustomerName       string               `gorm:"size:255"`
	Destination        string               `gorm:"size:2"`
	ValueAmount        *decimal.Decimal     `gorm:"type:numeric(18,2)"`
	ValueCurrency      string               `gorm:"size:3"`
	GrossWeightKg      decimal.Decimal      `gorm:"column:gross_weight_kg;type:numeric(14,3)"`
	PackageCount       int                  `gorm:"not null"`
	Stage              int                  `gorm:"type:smallint;index"`
	Owner              int                  `gorm:"type:smallint;index"`
	QC                 int                  `gorm:"column:qc;type:smallint"`
	BV                 int                  `gorm:"column:bv;type:smallint"`
	Feri               int                  `gorm:"type:smallint"`
	FeriReference      string               `gorm:"size:64"`
	Documents          map[string]uuid.UUID `gorm:"type:jsonb;serializer:json"`
	TransportRequestID *uuid.UUID           `gorm:"type:uuid"`
	LoadConfirmationID *uuid.UUID           `gorm:"type:uuid"`
	ManifestID         *uuid.UUID           `gorm:"type:uuid"`
	Blocked            bool                 `gorm:"index"`
	BlockReasons       []string             `gorm:"type:jsonb;serializer:json"`
	History            []HistoryEntryDTO    `gorm:"type:jsonb;serializer:json"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (InvoiceDTO) TableName() string {
	return "invoices"
}

// HistoryEntryDTO is one element of the history JSON array. Stages and
// actions are stored by API name so the column stays readable.
type HistoryEntryDTO struct {
	From   string    `json:"from"`
	To     string    `json:"to"`
	Action string    `json:"action"`
	Actor  string    `json:"actor"`
	At     time.Time `json:"at"`
}

func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	s := aggregate.Snapshot()

	dto := InvoiceDTO{
		ID:                 s.ID.Bytes(),
		Number:             s.Number,
		CustomerName:       s.CustomerName,
		Destination:        s.Destination,
		GrossWeightKg:      s.GrossWeight.Kilograms(),
		PackageCount:       s.PackageCount,
		Stage:              int(s.Stage),
		Owner:              int(s.Stage.Owner()),
		QC:                 int(s.QC),
		BV:                 int(s.BV),
		Feri:               int(s.Feri),
		FeriReference:      s.FeriReference,
		Documents:          make(map[string]uuid.UUID, len(s.Documents)),
		TransportRequestID: optionalID(s.TransportRequestID),
		LoadConfirmationID: optionalID(s.LoadConfirmationID),
		ManifestID:         optionalID(s.ManifestID),
		Blocked:            s.Blocked,
		BlockReasons:       make([]string, 0, len(s.BlockReasons)),
		History:            make([]HistoryEntryDTO, 0, len(s.History)),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}

	if s.Value != nil {
		v := s.Value.Value()
		dto.ValueAmount = &v
		dto.ValueCurrency = s.Value.Currency()
	}
	for t, id := range s.Documents {
		dto.Documents[t.String()] = id.Bytes()
	}
	for _, c := range s.BlockReasons {
		dto.BlockReasons = append(dto.BlockReasons, string(c))
	}
	for _, h := range s.History {
		dto.History = append(dto.History, HistoryEntryDTO{
			From:   h.From.String(),
			To:     h.To.String(),
			Action: h.Action.String(),
			Actor:  h.Actor,
			At:     h.At,
		})
	}

	return dto
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.GrossWeightKg)
	if err != nil {
		return nil, err
	}

	s := invoice.Snapshot{
		ID:            id,
		Number:        dto.Number,
		CustomerName:  dto.CustomerName,
		Destination:   dto.Destination,
		GrossWeight:   weight,
		PackageCount:  dto.PackageCount,
		Stage:         invoice.Stage(dto.Stage),
		QC:            invoice.InspectionStatus(dto.QC),
		BV:            invoice.InspectionStatus(dto.BV),
		Feri:          invoice.FeriStatus(dto.Feri),
		FeriReference: dto.FeriReference,
		Documents:     make(map[document.Type]kernel.UUID, len(dto.Documents)),
		Blocked:       dto.Blocked,
		BlockReasons:  make([]invoice.Condition, 0, len(dto.BlockReasons)),
		History:       make([]invoice.HistoryEntry, 0, len(dto.History)),
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	}

	if dto.ValueAmount != nil {
		value, amountErr := kernel.NewAmount(*dto.ValueAmount, dto.ValueCurrency)
		if amountErr != nil {
			return nil, amountErr
		}
		s.Value = &value
	}

	for name, raw := range dto.Documents {
		t, typeErr := document.ParseType(name)
		if typeErr != nil {
			return nil, typeErr
		}
		docID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		s.Documents[t] = docID
	}

	if s.TransportRequestID, err = restoreID(dto.TransportRequestID); err != nil {
		return nil, err
	}
	if s.LoadConfirmationID, err = restoreID(dto.LoadConfirmationID); err != nil {
		return nil, err
	}
	if s.ManifestID, err = restoreID(dto.ManifestID); err != nil {
		return nil, err
	}

	for _, c := range dto.BlockReasons {
		s.BlockReasons = append(s.BlockReasons, invoice.Condition(c))
	}

	for _, h := range dto.History {
		entry, entryErr := restoreHistoryEntry(h)
		if entryErr != nil {
			return nil, entryErr
		}
		s.History = append(s.History, entry)
	}

	return invoice.Restore(s)
}

func restoreHistoryEntry(h HistoryEntryDTO) (invoice.HistoryEntry, error) {
	from, err := invoice.ParseStage(h.From)
	if err != nil {
		return invoice.HistoryEntry{}, err
	}
	to, err := invoice.ParseStage(h.To)
	if err != nil {
		return invoice.HistoryEntry{}, err
	}
	action, err := invoice.ParseAction(h.Action)
	if err != nil {
		return invoice.HistoryEntry{}, err
	}
	return invoice.HistoryEntry{From: from, To: to, Action: action, Actor: h.Actor, At: h.At}, nil
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
