package transport

import (
	"errors"
	"slices"
	"strings"
	"time"

	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/errs"
)

// Totals summarises the cargo listed on a manifest. Values holds one amount
// per currency, ordered by currency code.
type Totals struct {
	GrossWeight  kernel.Weight
	PackageCount int
	Values       []kernel.Amount
}

// Manifest lists the invoices travelling on one confirmed load and is handed
// to the clearing agent at the border.
type Manifest struct {
	id                 kernel.UUID
	number             string
	loadConfirmationID kernel.UUID
	agentID            kernel.UUID
	invoiceIDs         []kernel.UUID
	totals             Totals
	documentKey        string
	createdAt          time.Time
}

// ManifestSnapshot is the persisted form of a Manifest.
type ManifestSnapshot struct {
	ID                 kernel.UUID
	Number             string
	LoadConfirmationID kernel.UUID
	AgentID            kernel.UUID
	InvoiceIDs         []kernel.UUID
	Totals             Totals
	DocumentKey        string
	CreatedAt          time.Time
}

func NewManifest(id, loadConfirmationID, agentID kernel.UUID, invoiceIDs []kernel.UUID, totals Totals, at time.Time) (*Manifest, error) {
	if err := errors.Join(
		id.Validate(),
		loadConfirmationID.Validate(),
		agentID.Validate(),
		validateInvoiceIDs(invoiceIDs),
	); err != nil {
		return nil, err
	}
	if totals.PackageCount < 0 {
		return nil, errs.NewValueIsOutOfRangeError("package count", totals.PackageCount, 0, "unbounded")
	}

	totals.Values = slices.Clone(totals.Values)
	slices.SortFunc(totals.Values, func(a, b kernel.Amount) int {
		return strings.Compare(a.Currency(), b.Currency())
	})

	return &Manifest{
		id:                 id,
		number:             newNumber(manifestPrefix, id, at),
		loadConfirmationID: loadConfirmationID,
		agentID:            agentID,
		invoiceIDs:         slices.Clone(invoiceIDs),
		totals:             totals,
		createdAt:          at,
	}, nil
}

func RestoreManifest(s ManifestSnapshot) (*Manifest, error) {
	m, err := NewManifest(s.ID, s.LoadConfirmationID, s.AgentID, s.InvoiceIDs, s.Totals, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if s.Number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}
	m.number = s.Number
	m.documentKey = s.DocumentKey
	return m, nil
}

func (m *Manifest) Snapshot() ManifestSnapshot {
	return ManifestSnapshot{
		ID:                 m.id,
		Number:             m.number,
		LoadConfirmationID: m.loadConfirmationID,
		AgentID:            m.agentID,
		InvoiceIDs:         slices.Clone(m.invoiceIDs),
		Totals:             m.Totals(),
		DocumentKey:        m.documentKey,
		CreatedAt:          m.createdAt,
	}
}

func (m *Manifest) ID() kernel.UUID                 { return m.id }
func (m *Manifest) Number() string                  { return m.number }
func (m *Manifest) LoadConfirmationID() kernel.UUID { return m.loadConfirmationID }
func (m *Manifest) AgentID() kernel.UUID            { return m.agentID }
func (m *Manifest) InvoiceIDs() []kernel.UUID       { return slices.Clone(m.invoiceIDs) }
func (m *Manifest) DocumentKey() string             { return m.documentKey }
func (m *Manifest) CreatedAt() time.Time            { return m.createdAt }

func (m *Manifest) Totals() Totals {
	t := m.totals
	t.Values = slices.Clone(t.Values)
	return t
}

// SetDocumentKey records where the rendered manifest PDF is stored.
func (m *Manifest) SetDocumentKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errs.NewValueIsRequiredError("document key")
	}
	m.documentKey = key
	return nil
}
