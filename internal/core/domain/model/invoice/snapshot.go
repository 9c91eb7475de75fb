package invoice

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"
)

// Snapshot is the persisted form of an Invoice.
type Snapshot struct {
	ID                 kernel.UUID
	Number             string
	CustomerName       string
	Destination        string
	Value              *kernel.Amount
	GrossWeight        kernel.Weight
	PackageCount       int
	Stage              Stage
	QC                 InspectionStatus
	BV                 InspectionStatus
	Feri               FeriStatus
	FeriReference      string
	Documents          map[document.Type]kernel.UUID
	TransportRequestID *kernel.UUID
	LoadConfirmationID *kernel.UUID
	ManifestID         *kernel.UUID
	Blocked            bool
	BlockReasons       []Condition
	History            []HistoryEntry
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (i *Invoice) Snapshot() Snapshot {
	return Snapshot{
		ID:                 i.id,
		Number:             i.number,
		CustomerName:       i.customerName,
		Destination:        i.destination,
		Value:              i.value,
		GrossWeight:        i.grossWeight,
		PackageCount:       i.packageCount,
		Stage:              i.stage,
		QC:                 i.qc,
		BV:                 i.bv,
		Feri:               i.feri,
		FeriReference:      i.feriReference,
		Documents:          maps.Clone(i.documents),
		TransportRequestID: i.transportRequestID,
		LoadConfirmationID: i.loadConfirmationID,
		ManifestID:         i.manifestID,
		Blocked:            i.blocked,
		BlockReasons:       slices.Clone(i.blockReasons),
		History:            slices.Clone(i.history),
		CreatedAt:          i.createdAt,
		UpdatedAt:          i.updatedAt,
	}
}

// Restore rebuilds an invoice loaded from storage.
func Restore(s Snapshot) (*Invoice, error) {
	i, err := NewInvoice(s.ID, s.Number, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err = s.Stage.Validate(); err != nil {
		return nil, err
	}
	if err = s.QC.Validate(); err != nil {
		return nil, err
	}
	if err = s.BV.Validate(); err != nil {
		return nil, err
	}
	if err = s.Feri.Validate(); err != nil {
		return nil, err
	}
	if s.Blocked != (len(s.BlockReasons) > 0) {
		return nil, errs.NewValueIsInvalidError("block reasons")
	}
	for _, c := range s.BlockReasons {
		if !c.IsKnown() {
			return nil, errs.NewValueIsInvalidErrorWithCause("block reasons", fmt.Errorf("%q is not a workflow condition", string(c)))
		}
	}

	i.customerName = s.CustomerName
	i.destination = s.Destination
	i.value = s.Value
	i.grossWeight = s.GrossWeight
	i.packageCount = s.PackageCount
	i.stage = s.Stage
	i.qc = s.QC
	i.bv = s.BV
	i.feri = s.Feri
	i.feriReference = s.FeriReference
	if s.Documents != nil {
		i.documents = maps.Clone(s.Documents)
	}
	i.transportRequestID = s.TransportRequestID
	i.loadConfirmationID = s.LoadConfirmationID
	i.manifestID = s.ManifestID
	i.blocked = s.Blocked
	i.blockReasons = slices.Clone(s.BlockReasons)
	i.history = slices.Clone(s.History)
	i.updatedAt = s.UpdatedAt
	return i, nil
}
